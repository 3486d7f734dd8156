package testsuite

import (
	"context"
	"sync"
	"testing"

	"github.com/battlesnakeio/snake/controller"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func testStoreMissing(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// NotFound error thrown.
	score, err := s.GetHighScore(ctx, key)
	require.Equal(t, controller.ErrNotFound, err)
	require.Equal(t, 0, score)
}

func testStorePutGet(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// First score is stored as is, even 0.
	err := s.PutHighScore(ctx, key, 0)
	require.Nil(t, err)
	score, err := s.GetHighScore(ctx, key)
	require.Nil(t, err)
	require.Equal(t, 0, score)

	// Higher score replaces it.
	err = s.PutHighScore(ctx, key, 12)
	require.Nil(t, err)
	score, err = s.GetHighScore(ctx, key)
	require.Nil(t, err)
	require.Equal(t, 12, score)

	// Other keys are untouched.
	_, err = s.GetHighScore(ctx, key+"-missing")
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreMonotonic(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	require.Nil(t, s.PutHighScore(ctx, key, 9))

	// Lower and equal scores are ignored without error.
	require.Nil(t, s.PutHighScore(ctx, key, 3))
	require.Nil(t, s.PutHighScore(ctx, key, 9))

	score, err := s.GetHighScore(ctx, key)
	require.Nil(t, err)
	require.Equal(t, 9, score)
}

func testStoreConcurrentWriters(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(20)

	for i := 0; i < 20; i++ {
		go func(score int) {
			defer wg.Done()
			// Errors are checked by the read below.
			_ = s.PutHighScore(ctx, key, score)
		}(i + 1)
	}

	wg.Wait()

	// Whatever the interleaving, the best score wins.
	score, err := s.GetHighScore(ctx, key)
	require.Nil(t, err)
	require.Equal(t, 20, score)
}

type options struct {
	skipConcurrent string
}

// Option changes which parts of the suite run.
type Option func(*options)

// SkipConcurrentWriters skips the concurrent writers case, for test doubles
// that cannot run a store's updates atomically.
func SkipConcurrentWriters(reason string) Option {
	return func(o *options) { o.skipConcurrent = reason }
}

// Suite will execute the store testsuite.
func Suite(t *testing.T, s controller.Store, pretest func(), opts ...Option) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	s = controller.InstrumentStore(s)
	t.Run("Missing", func(t *testing.T) { pretest(); testStoreMissing(t, s) })
	t.Run("PutGet", func(t *testing.T) { pretest(); testStorePutGet(t, s) })
	t.Run("Monotonic", func(t *testing.T) { pretest(); testStoreMonotonic(t, s) })
	t.Run("ConcurrentWriters", func(t *testing.T) {
		if o.skipConcurrent != "" {
			t.Skip(o.skipConcurrent)
		}
		pretest()
		testStoreConcurrentWriters(t, s)
	})
}
