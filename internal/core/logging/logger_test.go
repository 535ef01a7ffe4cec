package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Hook(ContextHook{})

	ctx := WithList(WithInput(context.Background(), "export.json"), "Work")
	logger := Component("convert")
	logger.Info().Ctx(ctx).Msg("assembled calendar")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "convert", entry["cmp"])
	assert.Equal(t, "assembled calendar", entry["message"])
	assert.Equal(t, "export.json", entry["input"])
	assert.Equal(t, "Work", entry["list"])
}
