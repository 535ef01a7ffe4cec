package printer

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Printf("plain %d", 1)
	p.Infof("info %s", "x")
	p.Successf("done")
	p.Warnf("careful")
	p.Errorf("failed: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "plain 1\n")
	assert.Contains(t, out, "info x\n")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "careful\n")
	assert.Contains(t, out, "failed: boom\n")
}

func TestPrinter_Section(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Section("Summary")

	assert.Contains(t, buf.String(), "Summary")
	assert.Contains(t, buf.String(), "────")
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.Equal(t, os.Stderr, Ctx(context.Background()).Writer())
	assert.Equal(t, os.Stderr, New(nil).Writer())
}
