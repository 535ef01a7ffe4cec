package iojson

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Open returns a reader for a positional input argument. An empty path or
// "-" reads stdin, which is refused when stdin is an interactive terminal.
func Open(path string) (io.ReadCloser, error) {
	return OpenWith(path, os.Stdin)
}

// OpenWith is Open with an explicit stdin.
func OpenWith(path string, stdin *os.File) (io.ReadCloser, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}

	if term.IsTerminal(int(stdin.Fd())) {
		return nil, fmt.Errorf("no input provided (stdin is a terminal); pass an export file or pipe JSON input")
	}

	return io.NopCloser(stdin), nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
