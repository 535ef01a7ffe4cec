package convert

import (
	"context"
	"fmt"

	"github.com/colonyops/rtm2ics/internal/core/logging"
)

// Sink persists assembled documents.
type Sink interface {
	Write(ctx context.Context, name string, content []byte) error
}

// Discard is a Sink that drops every document. Used for dry runs.
var Discard Sink = discard{}

type discard struct{}

func (discard) Write(context.Context, string, []byte) error { return nil }

// Write hands every document in res to sink in order. The first failure stops
// the run.
func Write(ctx context.Context, res *Result, sink Sink) error {
	logger := logging.Component("sink")
	for _, doc := range res.Documents {
		if err := sink.Write(ctx, doc.FileName, []byte(doc.Content)); err != nil {
			return fmt.Errorf("write %s: %w", doc.FileName, err)
		}
		logger.Debug().Ctx(ctx).Str("file", doc.FileName).Msg("wrote calendar")
	}
	return nil
}
