package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor  = termbox.ColorDefault
	bgColor       = termbox.ColorDefault
	snakeColor    = termbox.ColorGreen
	headColor     = termbox.ColorYellow
	deadColor     = termbox.ColorRed
	foodColor     = termbox.ColorRed
	obstacleColor = termbox.ColorWhite

	// every board cell is two terminal columns wide so it looks square
	cellWidth = 2
	left      = 2
	top       = 2
)

type termRenderer struct{}

func (termRenderer) Render(v controller.View) error {
	return render(v.Frame, v.HighScore, v.Paused)
}

func render(frame rules.Frame, highScore int, paused bool) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	renderTitle(frame)
	renderBoard(frame)
	for _, o := range frame.Obstacles {
		setCell(o, obstacleColor)
	}
	if frame.Food != nil {
		setCell(*frame.Food, foodColor)
	}
	renderSnake(frame)
	renderHUD(frame, highScore, paused)

	return termbox.Flush()
}

func setCell(p rules.Point, color termbox.Attribute) {
	x := left + p.X*cellWidth
	y := top + p.Y + 1
	fill(x, y, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: color, Bg: color})
}

func renderSnake(frame rules.Frame) {
	color := snakeColor
	if frame.Death != nil {
		color = deadColor
	}
	for i := len(frame.Snake) - 1; i >= 0; i-- {
		if i == 0 && frame.Death == nil {
			setCell(frame.Snake[i], headColor)
			continue
		}
		setCell(frame.Snake[i], color)
	}
}

func renderBoard(frame rules.Frame) {
	var (
		width  = frame.Width * cellWidth
		bottom = top + frame.Height + 1
	)
	for i := top; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(frame rules.Frame) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake - Turn %d", frame.Turn))
}

func renderHUD(frame rules.Frame, highScore int, paused bool) {
	y := top + frame.Height + 2
	tbprint(left, y, defaultColor, defaultColor, hudText(frame.Score, highScore))
	if paused {
		tbprint(left, y+1, termbox.ColorYellow, defaultColor, "Paused - press space to resume")
	}
}

func hudText(score, highScore int) string {
	return fmt.Sprintf("Score: %d | High Score: %d", score, highScore)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

// termNotifier draws a message box over the board and holds it on screen
// for a while before the game carries on.
type termNotifier struct {
	hold time.Duration
}

func (n termNotifier) Notify(ctx context.Context, note controller.Notification) error {
	lines := []string{
		note.Message,
		hudText(note.Score, note.HighScore),
	}
	width := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}

	x, y := left+1, top+1
	fill(x, y, width+4, len(lines)+2, termbox.Cell{Ch: ' ', Bg: termbox.ColorBlue})
	for i, l := range lines {
		tbprint(x+2, y+1+i, termbox.ColorWhite|termbox.AttrBold, termbox.ColorBlue, l)
	}
	if err := termbox.Flush(); err != nil {
		return err
	}
	n.wait(ctx)
	return nil
}

// wait holds until the hold time passes or the player quits.
func (n termNotifier) wait(ctx context.Context) {
	if n.hold <= 0 {
		return
	}
	t := time.NewTimer(n.hold)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
