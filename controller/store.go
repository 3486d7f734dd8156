package controller

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when no high score is stored for a key.
	ErrNotFound = errors.New("controller: high score not found")
)

// DefaultHighScoreKey is the key the high score is kept under.
const DefaultHighScoreKey = "highScore"

// Store is the interface to the backend high score store. Stores are
// monotonic: PutHighScore only replaces a stored value that is lower.
type Store interface {
	GetHighScore(ctx context.Context, key string) (int, error)
	PutHighScore(ctx context.Context, key string, score int) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		scores: map[string]int{},
	}
}

type inmem struct {
	scores map[string]int
	lock   sync.Mutex
}

func (in *inmem) GetHighScore(ctx context.Context, key string) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if s, ok := in.scores[key]; ok {
		return s, nil
	}
	return 0, ErrNotFound
}

func (in *inmem) PutHighScore(ctx context.Context, key string, score int) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if s, ok := in.scores[key]; !ok || score > s {
		in.scores[key] = score
	}
	return nil
}
