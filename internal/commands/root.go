package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/rtm2ics/internal/core/config"
	"github.com/colonyops/rtm2ics/internal/core/styles"
	"github.com/colonyops/rtm2ics/internal/printer"
	"github.com/colonyops/rtm2ics/pkg/logutils"
)

// NewRoot builds the rtm2ics root command with every sub-command registered.
// The Before hook sets up logging and loads the config into flags.
func NewRoot(flags *Flags, version string) *cli.Command {
	var logCloser func()

	app := &cli.Command{
		Name:      "rtm2ics",
		Usage:     "Convert Remember The Milk exports to iCalendar tasks",
		UsageText: "rtm2ics [global options] command [command options]",
		Description: `rtm2ics turns a Remember The Milk JSON export into iCalendar (RFC 5545)
files with VTODO entries, ready to import into Nextcloud Tasks or any other
CalDAV task client.

Run 'rtm2ics lists export.json' to see what an export contains.
Run 'rtm2ics convert export.json' to write one .ics file per list.`,
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("RTM2ICS_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("RTM2ICS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("RTM2ICS_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			log.Debug().Str("config", flags.ConfigPath).Msg("config loaded")

			return printer.NewContext(ctx, printer.New(c.Root().ErrWriter)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = NewConvertCmd(flags).Register(app)
	app = NewListsCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	return app
}
