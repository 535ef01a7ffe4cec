package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"
)

// ExportFileCompleter returns a ShellCompleteFunc that suggests JSON files in
// the working directory as positional completions. Set this as the
// ShellComplete field on any cli.Command that takes an export path.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func ExportFileCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, name := range exportCandidates(os.DirFS(".")) {
			_, _ = fmt.Fprintln(w, name)
		}
	}
}

// exportCandidates lists *.json files up to two directories deep.
func exportCandidates(fsys fs.FS) []string {
	var out []string
	for _, pattern := range []string{"*.json", "*/*.json", "*/*/*.json"} {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			continue
		}
		out = append(out, matches...)
	}
	return out
}
