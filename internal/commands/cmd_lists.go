package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/rtm2ics/internal/core/rtm"
	"github.com/colonyops/rtm2ics/internal/printer"
	"github.com/colonyops/rtm2ics/pkg/iojson"
)

type ListsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewListsCmd creates a new lists command
func NewListsCmd(flags *Flags) *ListsCmd {
	return &ListsCmd{flags: flags}
}

// Register adds the lists command to the application
func (cmd *ListsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "lists",
		Usage:     "Show the lists in an export with task counts",
		UsageText: "rtm2ics lists [--json] <export.json|->",
		Description: `Displays a table of every list that owns at least one task, with total,
incomplete and completed counts, sorted by name.

Tasks whose list id is not in the export are shown under "List-<id>".
Use the names shown here with convert --lists and --exclude-lists.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		ShellComplete: ExportFileCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ListsCmd) run(ctx context.Context, c *cli.Command) error {
	_, export, err := readExport(ctx, c.Args().First())
	if err != nil {
		return err
	}

	summaries := rtm.Summarize(export, rtm.NewIndex(export))

	if len(summaries) == 0 {
		if !cmd.jsonOutput {
			printer.Ctx(ctx).Infof("No tasks found")
		}
		return nil
	}

	out := c.Root().Writer

	// JSON output mode
	if cmd.jsonOutput {
		for _, s := range summaries {
			if err := iojson.WriteLine(out, s); err != nil {
				return fmt.Errorf("encode list: %w", err)
			}
		}
		return nil
	}

	// Table output mode
	var totals rtm.Counts
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "LIST\tTOTAL\tINCOMPLETE\tCOMPLETED")

	for _, s := range summaries {
		name := s.Name
		if !s.Resolved {
			name += " (unknown)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, s.Counts.Total, s.Counts.Incomplete, s.Counts.Completed)
		totals.Merge(s.Counts)
	}

	_, _ = fmt.Fprintf(w, "\t%d\t%d\t%d\n", totals.Total, totals.Incomplete, totals.Completed)
	_ = w.Flush()

	return nil
}
