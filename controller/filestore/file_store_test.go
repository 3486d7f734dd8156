package filestore

import (
	"context"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/controller/testsuite"
	"github.com/stretchr/testify/require"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "snake-filestore")
	require.NoError(t, err)
	return dir
}

func TestFileStore(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	testsuite.Suite(t, NewFileStore(dir), func() {
		os.Remove(path.Join(dir, scoresFile))
	})
}

func TestFileStorePersists(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	ctx := context.Background()

	err := NewFileStore(dir).PutHighScore(ctx, controller.DefaultHighScoreKey, 21)
	require.NoError(t, err)

	score, err := NewFileStore(dir).GetHighScore(ctx, controller.DefaultHighScoreKey)
	require.NoError(t, err)
	require.Equal(t, 21, score)
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	nested := path.Join(dir, "a", "b")

	err := NewFileStore(nested).PutHighScore(context.Background(), "k", 1)
	require.NoError(t, err)
	_, err = os.Stat(path.Join(nested, scoresFile))
	require.NoError(t, err)
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	require.NoError(t, ioutil.WriteFile(path.Join(dir, scoresFile), []byte("{not json"), 0644))

	s := NewFileStore(dir)
	_, err := s.GetHighScore(context.Background(), "k")
	require.Error(t, err)
	require.NotEqual(t, controller.ErrNotFound, err)

	require.Error(t, s.PutHighScore(context.Background(), "k", 3))
}
