package commands

import (
	"context"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
)

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

// keyAction is what a key press means to the game.
type keyAction int

const (
	actionNone keyAction = iota
	actionIntent
	actionQuit
)

func translateKey(ev termbox.Event) (controller.Intent, keyAction) {
	if ev.Type != termbox.EventKey {
		return controller.Intent{}, actionNone
	}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return controller.Intent{}, actionQuit
	case termbox.KeySpace:
		return controller.Intent{TogglePause: true}, actionIntent
	case termbox.KeyArrowUp:
		return controller.Intent{Direction: rules.Up}, actionIntent
	case termbox.KeyArrowDown:
		return controller.Intent{Direction: rules.Down}, actionIntent
	case termbox.KeyArrowLeft:
		return controller.Intent{Direction: rules.Left}, actionIntent
	case termbox.KeyArrowRight:
		return controller.Intent{Direction: rules.Right}, actionIntent
	}

	switch ev.Ch {
	case 'q', 'Q':
		return controller.Intent{}, actionQuit
	case 'w', 'W', 'k':
		return controller.Intent{Direction: rules.Up}, actionIntent
	case 's', 'S', 'j':
		return controller.Intent{Direction: rules.Down}, actionIntent
	case 'a', 'A', 'h':
		return controller.Intent{Direction: rules.Left}, actionIntent
	case 'd', 'D', 'l':
		return controller.Intent{Direction: rules.Right}, actionIntent
	}
	return controller.Intent{}, actionNone
}

// readIntents turns terminal events into intents until ctx is done or the
// player quits, in which case cancel is called.
func readIntents(ctx context.Context, cancel func(), events <-chan termbox.Event) <-chan controller.Intent {
	intents := make(chan controller.Intent)
	go func() {
		defer close(intents)
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-events:
				in, action := translateKey(ev)
				switch action {
				case actionQuit:
					cancel()
					return
				case actionIntent:
					if !sendIntent(ctx, cancel, events, intents, in) {
						return
					}
				}
			}
		}
	}()
	return intents
}

// sendIntent waits for the game to take in. The game may be busy, holding
// a notification on screen, so quit keys are still honoured meanwhile and
// other keys are dropped. It returns false once reading should stop.
func sendIntent(ctx context.Context, cancel func(), events <-chan termbox.Event, intents chan<- controller.Intent, in controller.Intent) bool {
	for {
		select {
		case intents <- in:
			return true
		case <-ctx.Done():
			return false
		case ev := <-events:
			if _, action := translateKey(ev); action == actionQuit {
				cancel()
				return false
			}
		}
	}
}
