package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "access.log")
	content := "192.168.1.1 - - \"GET /home HTTP/1.1\" 200\n\n10.0.0.2 - - \"GET /about HTTP/1.1\" 200\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Lines(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		`192.168.1.1 - - "GET /home HTTP/1.1" 200`,
		``,
		`10.0.0.2 - - "GET /about HTTP/1.1" 200`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.log")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Lines(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("empty file: want no lines, got %d", len(got))
	}
}

func TestLinesMissingFile(t *testing.T) {
	_, err := Lines(filepath.Join(t.TempDir(), "nope.log"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file: want ErrNotFound, got %v", err)
	}
}
