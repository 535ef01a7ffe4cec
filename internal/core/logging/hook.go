package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts the input path and list name from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if input := GetInput(ctx); input != "" {
		e.Str("input", input)
	}

	if list := GetList(ctx); list != "" {
		e.Str("list", list)
	}
}
