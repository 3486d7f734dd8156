package filestore

import (
	"errors"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/battlesnakeio/snake/rules"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) ([]rules.Frame, error) {
	frames := []rules.Frame{}
	err := ReadFrames(strings.NewReader(input), func(f rules.Frame) error {
		frames = append(frames, f)
		return nil
	})
	return frames, err
}

func TestReadFrames(t *testing.T) {
	input := `{"turn":0,"snake":[{"x":9,"y":9}],"status":"running"}
{"turn":1,"snake":[{"x":10,"y":9}],"status":"running"}

{"turn":2,"snake":[{"x":11,"y":9}],"status":"over","death":{"cause":"obstacle-collision","turn":2,"finalScore":4}}`

	frames, err := collect(t, input)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	require.Equal(t, 1, frames[1].Turn)
	require.Equal(t, rules.Point{X: 10, Y: 9}, frames[1].Snake[0])
	require.Equal(t, rules.GameStatusOver, frames[2].Status)
	require.Equal(t, 4, frames[2].Death.FinalScore)
}

func TestReadFramesDirection(t *testing.T) {
	frames, err := collect(t, `{"turn":1,"direction":"up"}`+"\n")
	require.NoError(t, err)
	require.Equal(t, rules.Up, frames[0].Direction)

	_, err = collect(t, `{"turn":1,"direction":"sideways"}`+"\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")
}

func TestReadFramesTrailingNewline(t *testing.T) {
	frames, err := collect(t, "{\"turn\":0}\n")
	require.NoError(t, err)
	require.Len(t, frames, 1)
}

func TestReadFramesBadLine(t *testing.T) {
	_, err := collect(t, "{\"turn\":0}\nnot json\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestReadFramesCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := ReadFrames(strings.NewReader("{}\n{}\n{}\n"), func(rules.Frame) error {
		calls++
		return stop
	})
	require.Equal(t, stop, err)
	require.Equal(t, 1, calls)
}

func TestFrameFileRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "snake-recording")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	file := path.Join(dir, "games", "game.jsonl")

	fw, err := NewFrameWriter(file)
	require.NoError(t, err)
	first := basicFrame()
	second := basicFrame()
	second.Turn = 4
	second.Food = nil
	second.Direction = rules.Down
	require.NoError(t, fw.Record(first))
	require.NoError(t, fw.Record(second))
	require.NoError(t, fw.Close())

	frames := []rules.Frame{}
	err = ReadFrameFile(file, func(f rules.Frame) error {
		frames = append(frames, f)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []rules.Frame{first, second}, frames)
}
