package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/rtm2ics/internal/core/logging"
	"github.com/colonyops/rtm2ics/internal/core/rtm"
	"github.com/colonyops/rtm2ics/pkg/iojson"
)

// readExport opens and decodes the export named by path ("-" or "" is stdin).
// The returned context carries the input name for logging.
func readExport(ctx context.Context, path string) (context.Context, *rtm.Export, error) {
	name := path
	if name == "" || name == "-" {
		name = "stdin"
	}
	ctx = logging.WithInput(ctx, name)

	r, err := iojson.Open(path)
	if err != nil {
		return ctx, nil, err
	}
	defer func() { _ = r.Close() }()

	export, err := rtm.Decode(r)
	if err != nil {
		return ctx, nil, fmt.Errorf("read export: %w", err)
	}

	log.Info().Ctx(ctx).
		Int("lists", len(export.Lists)).
		Int("tasks", len(export.Tasks)).
		Int("notes", len(export.Notes)).
		Msg("loaded export")

	return ctx, export, nil
}
