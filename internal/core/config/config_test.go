package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/rtm2ics/internal/core/convert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, string(convert.ModePerList), cfg.Output.Mode)
	assert.Equal(t, convert.DefaultCalendarName, cfg.Output.CalendarName)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
output:
  dir: /tmp/calendars
  mode: single
filters:
  lists: [Work, "Home*"]
  exclude_lists: [Archive]
  incomplete_only: true
  skip_completed_before: "2020-01-01"
timezone: UTC
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/calendars", cfg.Output.Dir)
	assert.Equal(t, "single", cfg.Output.Mode)
	assert.Equal(t, convert.DefaultCalendarName, cfg.Output.CalendarName)
	assert.Equal(t, []string{"Work", "Home*"}, cfg.Filters.Lists)
	assert.Equal(t, []string{"Archive"}, cfg.Filters.ExcludeLists)
	assert.True(t, cfg.Filters.IncompleteOnly)

	opts, err := cfg.FilterOptions()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), opts.CompletedBefore)
	assert.Equal(t, time.UTC, opts.Location)
	assert.True(t, opts.IncompleteOnly)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "output: [not, a, map")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad mode", content: "output:\n  mode: everything\n", wantErr: "output.mode"},
		{name: "bad date", content: "filters:\n  skip_completed_before: 01/02/2020\n", wantErr: "filters.skip_completed_before"},
		{name: "bad timezone", content: "timezone: Mars/Olympus\n", wantErr: "timezone"},
		{name: "bad theme", content: "theme: neon\n", wantErr: "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Not/AZone")
	assert.Error(t, err)
}
