// Package icsfile persists assembled calendars as .ics files in a directory.
package icsfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir writes documents into a single output directory, creating it on first
// use. It implements convert.Sink.
type Dir struct {
	Path string
}

// New returns a Dir rooted at path.
func New(path string) *Dir {
	return &Dir{Path: path}
}

// Write stores content as name inside the directory. The file is written to a
// temporary sibling first and renamed into place, so an interrupted run never
// leaves a truncated calendar behind.
func (d *Dir) Write(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid file name %q", name)
	}

	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(d.Path, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
