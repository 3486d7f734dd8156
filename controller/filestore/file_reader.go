package filestore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
)

func readLine(r *bufio.Reader, out interface{}) (bool, bool, error) {
	line, err := r.ReadBytes('\n')
	eof := err == io.EOF

	if err != nil && !eof {
		return false, false, err
	}

	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return false, !eof, nil
	}

	if err = json.Unmarshal(line, out); err != nil {
		return false, false, err
	}

	return true, !eof, nil
}

// ReadFrames calls fn for every frame in r, in order. It stops at the first
// error returned by fn.
func ReadFrames(r io.Reader, fn func(rules.Frame) error) error {
	reader := bufio.NewReader(r)

	for line := 1; ; line++ {
		f := rules.Frame{}
		ok, more, err := readLine(reader, &f)
		if err != nil {
			return errors.Wrapf(err, "unable to read frame on line %d", line)
		}
		if ok {
			if err := fn(f); err != nil {
				return err
			}
		}
		if !more {
			return nil
		}
	}
}

// ReadFrameFile reads a recording written by FrameWriter.
func ReadFrameFile(path string, fn func(rules.Frame) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return ReadFrames(f, fn)
}
