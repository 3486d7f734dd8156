package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

// FrameWriter records frames as JSON lines, one frame per line. It satisfies
// controller.Recorder.
type FrameWriter struct {
	w writer
}

// NewFrameWriter opens (or creates) the file at path for appending.
func NewFrameWriter(path string) (*FrameWriter, error) {
	w, err := openFileWriter(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open recording %s", path)
	}
	return &FrameWriter{w: w}, nil
}

// Record appends a frame.
func (fw *FrameWriter) Record(f rules.Frame) error {
	return writeLine(fw.w, &f)
}

// Close closes the underlying file.
func (fw *FrameWriter) Close() error {
	return fw.w.Close()
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func appendOnlyFileWriter(path string) (writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
}
