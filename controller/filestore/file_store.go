package filestore

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/user"
	"path"
	"sync"

	"github.com/battlesnakeio/snake/controller"
	"github.com/pkg/errors"
)

const scoresFile = "highscores.json"

// DefaultDir is where the high scores and recordings live by default.
func DefaultDir() string {
	return path.Join(homeDir(), ".battlesnake")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store implementation. All keys share a
// single JSON file in the given directory.
func NewFileStore(directory string) controller.Store {
	if directory == "" {
		directory = DefaultDir()
	}

	return &fileStore{
		directory: directory,
	}
}

type fileStore struct {
	lock      sync.Mutex
	directory string
}

func (fs *fileStore) path() string {
	return path.Join(fs.directory, scoresFile)
}

// readScores loads the whole file. A missing file is an empty store.
func (fs *fileStore) readScores() (map[string]int, error) {
	scores := map[string]int{}
	data, err := ioutil.ReadFile(fs.path())
	if os.IsNotExist(err) {
		return scores, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read high scores")
	}
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, errors.Wrapf(err, "corrupt high score file %s", fs.path())
	}
	return scores, nil
}

// writeScores replaces the file atomically, so a crash never leaves a
// half written file behind.
func (fs *fileStore) writeScores(scores map[string]int) error {
	if err := os.MkdirAll(fs.directory, 0775); err != nil {
		return errors.Wrap(err, "unable to create save dir")
	}
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := ioutil.TempFile(fs.directory, scoresFile+".*")
	if err != nil {
		return errors.Wrap(err, "unable to create temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "unable to write high scores")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return errors.Wrap(os.Rename(tmp.Name(), fs.path()), "unable to replace high score file")
}

func (fs *fileStore) GetHighScore(ctx context.Context, key string) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	scores, err := fs.readScores()
	if err != nil {
		return 0, err
	}
	if s, ok := scores[key]; ok {
		return s, nil
	}
	return 0, controller.ErrNotFound
}

func (fs *fileStore) PutHighScore(ctx context.Context, key string, score int) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	scores, err := fs.readScores()
	if err != nil {
		return err
	}
	if s, ok := scores[key]; ok && s >= score {
		return nil
	}
	scores[key] = score
	return fs.writeScores(scores)
}
