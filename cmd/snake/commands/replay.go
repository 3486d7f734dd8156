package commands

import (
	"time"

	"github.com/battlesnakeio/snake/controller/filestore"
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replaySpeed = 200 * time.Millisecond

func init() {
	replayCmd.Flags().DurationVar(&replaySpeed, "speed", replaySpeed, "time between frames")
}

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "replays a game recorded with play --record",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return replayGame(args[0])
	},
}

func loadFrames(path string) *frameHolder {
	frames := newFrameHolder()
	go func() {
		err := filestore.ReadFrameFile(path, func(f rules.Frame) error {
			frames.append(f)
			return nil
		})
		if err != nil {
			log.WithError(err).WithField("path", path).Error("unable to read recording")
		}
	}()
	return frames
}

func moveFrameForwards(frameIndex int, frames *frameHolder) (int, rules.Frame, bool) {
	frameIndex++
	if frameIndex >= frames.count() {
		return frameIndex, rules.Frame{}, true
	}
	f, _ := frames.get(frameIndex)
	return frameIndex, f, false
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) (int, rules.Frame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	f, _ := frames.get(frameIndex)
	return frameIndex, f
}

// bestScore is the highest score in the frames up to and including index.
func bestScore(frames *frameHolder, index int) int {
	best := 0
	for i := 0; i <= index; i++ {
		f, ok := frames.get(i)
		if !ok {
			break
		}
		if f.Score > best {
			best = f.Score
		}
	}
	return best
}

func replayGame(path string) error {
	frames := loadFrames(path)

	var currentFrame rules.Frame
	select {
	case currentFrame = <-frames.initialFrame():
	case <-time.After(time.Second):
		return errors.Errorf("no frames found in %s", path)
	}

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	cycle := time.NewTicker(replaySpeed)
	defer func() { cycle.Stop() }()

	frameIndex := 0
	paused := false
	done := false
	show := func() error {
		return render(currentFrame, bestScore(frames, frameIndex), paused)
	}
	if err := show(); err != nil {
		return err
	}

	for !done {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return nil
			case termbox.KeySpace:
				paused = !paused
				if paused {
					cycle.Stop()
				} else {
					cycle = time.NewTicker(replaySpeed)
				}
			case termbox.KeyArrowLeft:
				paused = true
				cycle.Stop()
				frameIndex, currentFrame = moveFrameBackwards(frameIndex, frames)
			case termbox.KeyArrowRight:
				paused = true
				cycle.Stop()
				var next rules.Frame
				var end bool
				if frameIndex, next, end = moveFrameForwards(frameIndex, frames); end {
					frameIndex--
					continue
				}
				currentFrame = next
			}
			if err := show(); err != nil {
				return err
			}
		case <-cycle.C:
			var next rules.Frame
			frameIndex, next, done = moveFrameForwards(frameIndex, frames)
			if done {
				break
			}
			currentFrame = next
			if err := show(); err != nil {
				return err
			}
		}
	}

	tbprint(0, 0, defaultColor, defaultColor, "Press any key to exit...")
	if err := termbox.Flush(); err != nil {
		return err
	}
	<-eventQueue
	return nil
}
