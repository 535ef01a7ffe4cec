// Package picker asks the user which lists to convert and which filters to
// apply, using a huh form.
package picker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/rtm2ics/internal/core/filter"
	"github.com/colonyops/rtm2ics/internal/core/rtm"
)

// ErrNoLists is returned when the user deselects every list.
var ErrNoLists = errors.New("no lists selected")

// Selection holds the raw form values.
type Selection struct {
	Lists           []string
	IncompleteOnly  bool
	CompletedBefore string // YYYY-MM-DD or empty
}

// Run shows the form and returns the resulting filter. Only lists that
// resolve to a name and own at least one task are offered; all start
// selected. defaults seeds the two filter fields.
func Run(summaries []rtm.ListSummary, defaults filter.Options) (filter.Options, error) {
	choices := ListOptions(summaries)
	if len(choices) == 0 {
		return filter.Options{}, fmt.Errorf("export has no lists with tasks")
	}

	sel := Selection{IncompleteOnly: defaults.IncompleteOnly}
	if !defaults.CompletedBefore.IsZero() {
		sel.CompletedBefore = defaults.CompletedBefore.Format(filter.DateLayout)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select lists to convert").
				Options(choices...).
				Value(&sel.Lists),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Incomplete tasks only?").
				Value(&sel.IncompleteOnly),
			huh.NewInput().
				Title("Skip completed before").
				Description("YYYY-MM-DD, leave empty to keep all completed tasks").
				Placeholder("YYYY-MM-DD").
				Validate(validateDate).
				Value(&sel.CompletedBefore),
		),
	)

	if err := form.Run(); err != nil {
		return filter.Options{}, err
	}

	return sel.Options(defaults.Location)
}

// ListOptions builds the multi-select entries, labelled with task counts.
func ListOptions(summaries []rtm.ListSummary) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, s := range summaries {
		if !s.Resolved || s.Counts.Total == 0 {
			continue
		}
		label := fmt.Sprintf("%s (%d tasks: %d incomplete, %d completed)",
			s.Name, s.Counts.Total, s.Counts.Incomplete, s.Counts.Completed)
		opts = append(opts, huh.NewOption(label, s.Name).Selected(true))
	}
	return opts
}

// Options converts the form values into filter options.
func (s Selection) Options(loc *time.Location) (filter.Options, error) {
	if len(s.Lists) == 0 {
		return filter.Options{}, ErrNoLists
	}

	opts := filter.Options{
		Lists:          s.Lists,
		IncompleteOnly: s.IncompleteOnly,
		Location:       loc,
	}

	if d := strings.TrimSpace(s.CompletedBefore); d != "" {
		cutoff, err := filter.ParseDate(d, loc)
		if err != nil {
			return filter.Options{}, err
		}
		opts.CompletedBefore = cutoff
	}

	return opts, nil
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := filter.ParseDate(s, time.UTC)
	return err
}
