// Package reader loads a log file line by line and classifies open failures
// so callers can tell a missing file from a permission problem.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	ErrNotFound   = errors.New("log file not found")
	ErrPermission = errors.New("log file not readable")
)

// Lines reads every line of the file at path. The handle is released on all
// exit paths. Open failures come back wrapped around ErrNotFound or
// ErrPermission where the cause is known, so callers can match with errors.Is.
func Lines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	// Access log lines can exceed bufio's default 64K token limit when the
	// request line carries a long query string.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	default:
		return fmt.Errorf("open %s: %w", path, err)
	}
}
