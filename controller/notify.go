package controller

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// NotificationKind tells a Notifier what ended.
type NotificationKind string

const (
	// NotificationGameOver is sent when a terminal collision ends a game.
	NotificationGameOver NotificationKind = "game-over"
	// NotificationWin is sent when a reset leaves no free cell for food.
	NotificationWin NotificationKind = "win"
)

// Notification is a user facing message about the end of a game.
type Notification struct {
	Kind      NotificationKind
	Score     int
	HighScore int
	Message   string
}

// Notifier presents notifications to the player. Notify may block until the
// player has seen the message; it should return early when ctx is done.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

func gameOverNotification(score, highScore int) Notification {
	return Notification{
		Kind:      NotificationGameOver,
		Score:     score,
		HighScore: highScore,
		Message:   fmt.Sprintf("Game Over! Your final score was: %d", score),
	}
}

func winNotification(score, highScore int) Notification {
	return Notification{
		Kind:      NotificationWin,
		Score:     score,
		HighScore: highScore,
		Message:   "You Win! No more space.",
	}
}

// LogNotifier writes notifications to the log and never blocks.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(ctx context.Context, n Notification) error {
	log.WithFields(log.Fields{
		"kind":      n.Kind,
		"score":     n.Score,
		"highScore": n.HighScore,
	}).Info(n.Message)
	return nil
}
