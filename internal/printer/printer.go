// Package printer writes styled, human readable status lines for the CLI.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colonyops/rtm2ics/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to a single writer.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w, or to stderr when w is nil.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{w: w}
}

// NewContext attaches p to ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer attached to ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Infof writes a muted informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextMutedStyle.Render("•"), format, args...)
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.TextSuccessStyle.Render("✔"), format, args...)
}

// Warnf writes a line prefixed with a warning marker.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle.Render("●"), format, args...)
}

// Errorf writes a line prefixed with a cross.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle.Render("✘"), format, args...)
}

// Section writes a bold title followed by a divider.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w, styles.TextPrimaryBoldStyle.Render(title))
	_, _ = fmt.Fprintln(p.w, styles.TextMutedStyle.Render(strings.Repeat("─", 40)))
}

func (p *Printer) line(icon, format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", icon, fmt.Sprintf(format, args...))
}
