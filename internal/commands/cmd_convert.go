package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/rtm2ics/internal/core/config"
	"github.com/colonyops/rtm2ics/internal/core/convert"
	"github.com/colonyops/rtm2ics/internal/core/filter"
	"github.com/colonyops/rtm2ics/internal/core/rtm"
	"github.com/colonyops/rtm2ics/internal/core/styles"
	"github.com/colonyops/rtm2ics/internal/picker"
	"github.com/colonyops/rtm2ics/internal/printer"
	"github.com/colonyops/rtm2ics/internal/store/icsfile"
	"github.com/colonyops/rtm2ics/pkg/iojson"
)

const importHint = `## Next steps

Import each file into **Nextcloud Tasks** via
*Calendar → Settings & Import → Import Calendar*.

Import each ` + "`.ics`" + ` file separately to create separate task lists.
`

type ConvertCmd struct {
	flags *Flags

	// flags
	output              string
	mode                string
	calendarName        string
	lists               string
	excludeLists        string
	incompleteOnly      bool
	skipCompletedBefore string
	timezone            string
	interactive         bool
	dryRun              bool
	format              string

	// pick replaces the interactive form in tests.
	pick func([]rtm.ListSummary, filter.Options) (filter.Options, error)
}

// NewConvertCmd creates a new convert command
func NewConvertCmd(flags *Flags) *ConvertCmd {
	return &ConvertCmd{flags: flags, pick: picker.Run}
}

// Register adds the convert command to the application
func (cmd *ConvertCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "convert",
		Usage:     "Convert an RTM export into iCalendar task files",
		UsageText: "rtm2ics convert [options] <export.json|-> [output-dir]",
		Description: `Reads a Remember The Milk JSON export and writes one .ics file per list
(or a single file with --mode single) containing VTODO entries that Nextcloud
Tasks and other CalDAV clients can import.

Filters combine: a task is converted only when it passes every one of them.
Entries given to --lists and --exclude-lists match list names exactly first.
An entry containing any of * ? [ { is also tried as a glob pattern, so
--exclude-lists "Work*" skips "Work Projects" too. A "*" does not cross "/".
Entries that are not valid patterns only match a list with exactly that name.

Flags override values from the config file.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output directory (default: directory of the input file)",
				Destination: &cmd.output,
			},
			&cli.StringFlag{
				Name:        "mode",
				Aliases:     []string{"m"},
				Usage:       "routing mode (per-list, single)",
				Destination: &cmd.mode,
			},
			&cli.StringFlag{
				Name:        "calendar-name",
				Usage:       "calendar and file name in single mode",
				Destination: &cmd.calendarName,
			},
			&cli.StringFlag{
				Name:        "lists",
				Usage:       "only convert these lists (comma-separated; names with * ? [ { also match as globs)",
				Destination: &cmd.lists,
			},
			&cli.StringFlag{
				Name:        "exclude-lists",
				Usage:       "skip these lists (comma-separated; names with * ? [ { also match as globs)",
				Destination: &cmd.excludeLists,
			},
			&cli.BoolFlag{
				Name:        "incomplete-only",
				Usage:       "skip every completed task",
				Destination: &cmd.incompleteOnly,
			},
			&cli.StringFlag{
				Name:        "skip-completed-before",
				Usage:       "skip tasks completed before `DATE` (YYYY-MM-DD)",
				Destination: &cmd.skipCompletedBefore,
			},
			&cli.StringFlag{
				Name:        "tz",
				Usage:       "IANA timezone timestamps are rendered in (default: local)",
				Sources:     cli.EnvVars("RTM2ICS_TZ"),
				Destination: &cmd.timezone,
			},
			&cli.BoolFlag{
				Name:        "interactive",
				Aliases:     []string{"i"},
				Usage:       "choose lists and filters in an interactive form",
				Destination: &cmd.interactive,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "convert and report without writing files",
				Destination: &cmd.dryRun,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "report format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		ShellComplete: ExportFileCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ConvertCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.format != "text" && cmd.format != "json" {
		return fmt.Errorf("invalid format %q (want text or json)", cmd.format)
	}

	err := cmd.convert(ctx, c)
	if err != nil && cmd.format == "json" {
		_ = iojson.WriteError(c.Root().ErrWriter, err.Error(), map[string]any{
			"input": c.Args().First(),
		})
	}
	return err
}

func (cmd *ConvertCmd) convert(ctx context.Context, c *cli.Command) error {

	input := c.Args().Get(0)
	if c.Args().Len() > 2 {
		return fmt.Errorf("too many arguments; usage: %s", c.UsageText)
	}

	if cmd.interactive && (input == "" || input == "-") {
		return errors.New("--interactive needs an export file; stdin is used by the form")
	}

	cfg, err := cmd.resolveConfig(ctx, c)
	if err != nil {
		return err
	}

	opts, err := convertOptions(cfg)
	if err != nil {
		return err
	}

	ctx, export, err := readExport(ctx, input)
	if err != nil {
		return err
	}

	if cmd.interactive {
		summaries := rtm.Summarize(export, rtm.NewIndex(export))
		opts.Filter, err = cmd.pick(summaries, opts.Filter)
		if err != nil {
			return fmt.Errorf("select lists: %w", err)
		}
	}

	res, err := convert.Run(ctx, export, opts)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	outDir := outputDir(cfg.Output.Dir, c.Args().Get(1), input)

	var sink convert.Sink = icsfile.New(outDir)
	if cmd.dryRun {
		sink = convert.Discard
	}

	if err := convert.Write(ctx, res, sink); err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Int("files", len(res.Documents)).
		Int("tasks", res.Totals.Total).
		Bool("dry_run", cmd.dryRun).
		Str("dir", outDir).
		Msg("conversion complete")

	w := c.Root().Writer
	if cmd.format == "json" {
		return iojson.WriteWith(w, c.Root().ErrWriter, newConvertReport(res, opts.Filter, outDir, cmd.dryRun))
	}

	writeConvertReport(printer.New(w), res, opts.Filter, outDir, cmd.dryRun)
	writeImportHint(w, len(res.Documents))
	return nil
}

// resolveConfig applies the command flags on top of the loaded config and
// validates the result.
func (cmd *ConvertCmd) resolveConfig(ctx context.Context, c *cli.Command) (*config.Config, error) {
	cfg := *cmd.flags.config()

	if c.IsSet("output") {
		cfg.Output.Dir = cmd.output
	}
	if c.IsSet("mode") {
		cfg.Output.Mode = cmd.mode
	}
	if c.IsSet("calendar-name") {
		cfg.Output.CalendarName = cmd.calendarName
	}
	if c.IsSet("lists") {
		cfg.Filters.Lists = filter.SplitList(cmd.lists)
	}
	if c.IsSet("exclude-lists") {
		cfg.Filters.ExcludeLists = filter.SplitList(cmd.excludeLists)
	}
	if c.IsSet("incomplete-only") {
		cfg.Filters.IncompleteOnly = cmd.incompleteOnly
	}
	if c.IsSet("skip-completed-before") {
		cfg.Filters.SkipCompletedBefore = cmd.skipCompletedBefore
	}
	if c.IsSet("tz") {
		cfg.Timezone = cmd.timezone
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	p := printer.Ctx(ctx)
	for _, w := range cfg.Warnings() {
		p.Warnf("%s: %s", w.Item, w.Message)
	}

	return &cfg, nil
}

func convertOptions(cfg *config.Config) (convert.Options, error) {
	mode, err := convert.ParseMode(cfg.Output.Mode)
	if err != nil {
		return convert.Options{}, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return convert.Options{}, err
	}

	fopts, err := cfg.FilterOptions()
	if err != nil {
		return convert.Options{}, err
	}

	return convert.Options{
		Mode:         mode,
		Filter:       fopts,
		CalendarName: cfg.Output.CalendarName,
		Location:     loc,
	}, nil
}

// outputDir picks the destination directory: the positional argument, then
// the configured directory, then the directory holding the input file.
func outputDir(configured, positional, input string) string {
	switch {
	case positional != "":
		return positional
	case configured != "":
		return configured
	case input == "" || input == "-":
		return "."
	default:
		return filepath.Dir(input)
	}
}

// convertReport is the JSON output format for rtm2ics convert --format json.
type convertReport struct {
	OutputDir string             `json:"output_dir"`
	DryRun    bool               `json:"dry_run"`
	Filters   []string           `json:"filters,omitempty"`
	Filtered  int                `json:"filtered"`
	Documents []convert.Document `json:"documents"`
	Totals    rtm.Counts         `json:"totals"`
}

func newConvertReport(res *convert.Result, fopts filter.Options, outDir string, dryRun bool) convertReport {
	docs := res.Documents
	if docs == nil {
		docs = []convert.Document{}
	}
	return convertReport{
		OutputDir: outDir,
		DryRun:    dryRun,
		Filters:   fopts.Describe(),
		Filtered:  res.Filtered,
		Documents: docs,
		Totals:    res.Totals,
	}
}

func writeConvertReport(p *printer.Printer, res *convert.Result, fopts filter.Options, outDir string, dryRun bool) {
	if filters := fopts.Describe(); len(filters) > 0 {
		p.Section("Active filters")
		for _, f := range filters {
			p.Printf("  - %s", f)
		}
		p.Printf("")
	}

	if res.Filtered > 0 {
		p.Infof("Filtered out %d tasks", res.Filtered)
	}

	if len(res.Documents) == 0 {
		p.Warnf("No tasks left to convert; nothing written")
		return
	}

	for _, doc := range res.Documents {
		p.Printf("  %s: %d tasks -> %s", styles.TextForegroundBoldStyle.Render(doc.Name), doc.Counts.Total, doc.FileName)
	}
	p.Printf("")

	if dryRun {
		p.Warnf("Dry run: no files written")
	} else {
		p.Successf("Conversion complete!")
	}
	p.Printf("  Total tasks: %d", res.Totals.Total)
	p.Printf("  - Incomplete: %d", res.Totals.Incomplete)
	p.Printf("  - Completed: %d", res.Totals.Completed)
	p.Printf("  Files: %d", len(res.Documents))
	p.Printf("")
	p.Printf("Output directory: %s", outDir)
}

// writeImportHint renders the Nextcloud import instructions, styled when w is
// a terminal.
func writeImportHint(w io.Writer, files int) {
	if files == 0 {
		return
	}

	out := importHint
	if iojson.IsTerminal(w) {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			if rendered, err := r.Render(importHint); err == nil {
				out = rendered
			}
		}
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprint(w, out)
}
