package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/rtm2ics/internal/core/config"
)

const sampleExport = `{
  "lists": [
    {"id": "1", "name": "Work"},
    {"id": 2, "name": "Home/Garden"}
  ],
  "tasks": [
    {"id": "10", "series_id": "s10", "list_id": "1", "name": "Write report", "priority": "P1"},
    {"id": "11", "list_id": "1", "name": "File expenses", "date_completed": 1577836800000},
    {"id": "12", "list_id": 2, "name": "Plant tulips", "tags": ["spring"]},
    {"id": "13", "list_id": "77", "name": "Orphan"}
  ],
  "notes": [
    {"id": "n1", "series_id": "s10", "content": "Q3 numbers"}
  ]
}`

// writeExport stores content as export.json in a fresh directory and returns
// its path.
func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testFlags returns flags carrying the default config.
func testFlags() *Flags {
	cfg := config.DefaultConfig()
	return &Flags{Config: &cfg}
}

// runApp runs a root command with the given registrations and returns what
// was written to its stdout writer.
func runApp(t *testing.T, register func(*cli.Command) *cli.Command, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runAppErr(t, register, args...)
	return stdout, err
}

// runAppErr is runApp that also returns what was written to stderr.
func runAppErr(t *testing.T, register func(*cli.Command) *cli.Command, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := &cli.Command{
		Name:           "rtm2ics",
		Writer:         &stdout,
		ErrWriter:      &stderr,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = register(app)

	err := app.Run(context.Background(), append([]string{"rtm2ics"}, args...))
	return stdout.String(), stderr.String(), err
}
