package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/rtm2ics/internal/core/filter"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep runs Validate and then checks the filesystem: the config file
// at configPath (skipped when empty) must be a regular file if it exists, and
// output.dir must be a directory if it exists.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		criterio.Run("config_file", configPath, pathKind(false)),
		criterio.Run("output.dir", c.Output.Dir, pathKind(true)),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for _, name := range c.Filters.Lists {
		if slices.Contains(c.Filters.ExcludeLists, name) {
			warnings = append(warnings, ValidationWarning{
				Category: "Filters",
				Item:     name,
				Message:  "list is both included and excluded; it will be skipped",
			})
		}
	}

	for _, name := range filter.LiteralOnly(slices.Concat(c.Filters.Lists, c.Filters.ExcludeLists)) {
		warnings = append(warnings, ValidationWarning{
			Category: "Filters",
			Item:     name,
			Message:  "not a valid glob pattern; matched as a literal list name",
		})
	}

	if c.Filters.IncompleteOnly && c.Filters.SkipCompletedBefore != "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Filters",
			Item:     "skip_completed_before",
			Message:  "has no effect while incomplete_only is set",
		})
	}

	return warnings
}

// pathKind returns a validator accepting empty paths, paths that do not exist
// yet, and existing paths of the wanted kind.
func pathKind(wantDir bool) func(string) error {
	return func(path string) error {
		if path == "" {
			return nil
		}

		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil
		case err != nil:
			return fmt.Errorf("cannot access: %w", err)
		case wantDir && !info.IsDir():
			return fmt.Errorf("%s exists but is not a directory", path)
		case !wantDir && info.IsDir():
			return fmt.Errorf("%s is a directory, not a file", path)
		}
		return nil
	}
}
