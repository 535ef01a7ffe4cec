// Package filter decides which tasks are converted and groups the survivors
// by destination list.
package filter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/rtm2ics/internal/core/rtm"
)

// DateLayout is the accepted format for completion cutoff dates.
const DateLayout = "2006-01-02"

// Options holds the filter parameters. The zero value includes every task.
type Options struct {
	// Lists, when non-empty, keeps only tasks whose list name matches an
	// entry. Entries may be doublestar glob patterns.
	Lists []string
	// ExcludeLists drops tasks whose list name matches an entry.
	ExcludeLists []string
	// IncompleteOnly drops every completed task.
	IncompleteOnly bool
	// CompletedBefore, when set, drops completed tasks finished strictly
	// before this instant. Incomplete tasks are never affected.
	CompletedBefore time.Time
	// Location is the zone completion dates are interpreted in. Nil means
	// time.Local.
	Location *time.Location
}

// ParseDate parses a YYYY-MM-DD cutoff as midnight in loc (time.Local when
// nil).
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// SplitList parses a comma separated flag value, trimming blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Active reports whether any clause is configured.
func (o Options) Active() bool {
	return len(o.Lists) > 0 || len(o.ExcludeLists) > 0 || o.IncompleteOnly || !o.CompletedBefore.IsZero()
}

// Describe returns one human readable line per configured clause.
func (o Options) Describe() []string {
	var out []string
	if o.IncompleteOnly {
		out = append(out, "Only incomplete tasks")
	}
	if !o.CompletedBefore.IsZero() {
		out = append(out, "Skip completed tasks before "+o.CompletedBefore.Format(DateLayout))
	}
	if len(o.Lists) > 0 {
		out = append(out, "Only lists: "+strings.Join(o.Lists, ", "))
	}
	if len(o.ExcludeLists) > 0 {
		out = append(out, "Exclude lists: "+strings.Join(o.ExcludeLists, ", "))
	}
	return out
}

// Include reports whether t passes every configured clause. listName is the
// resolved display name of the task's list, or "" when it does not resolve.
func (o Options) Include(t rtm.Task, listName string) bool {
	if len(o.Lists) > 0 && !matchAny(o.Lists, listName) {
		return false
	}

	if len(o.ExcludeLists) > 0 && matchAny(o.ExcludeLists, listName) {
		return false
	}

	if !t.Completed() {
		return true
	}

	if o.IncompleteOnly {
		return false
	}

	if !o.CompletedBefore.IsZero() {
		loc := o.Location
		if loc == nil {
			loc = time.Local
		}
		if time.UnixMilli(t.DateCompleted).In(loc).Before(o.CompletedBefore) {
			return false
		}
	}

	return true
}

// Predicate binds o to a lookup so it can be handed to Partition.
func (o Options) Predicate(idx *rtm.Index) func(rtm.Task) bool {
	return func(t rtm.Task) bool {
		name, _ := idx.ListName(t.ListID)
		return o.Include(t, name)
	}
}

// LiteralOnly returns the entries that look like glob patterns but do not
// parse as one. Such entries still match a list with exactly that name.
func LiteralOnly(entries []string) []string {
	var out []string
	for _, e := range entries {
		if isGlob(e) && !doublestar.ValidatePattern(e) {
			out = append(out, e)
		}
	}
	return out
}

func isGlob(e string) bool {
	return strings.ContainsAny(e, "*?[{")
}

// matchAny matches name against entries. An exact match always wins, so list
// names containing "*" or "[" still work when written out literally. Entries
// with glob metacharacters are then tried as patterns; an entry that does not
// parse as one never matches anything else.
func matchAny(entries []string, name string) bool {
	if slices.Contains(entries, name) {
		return true
	}

	for _, e := range entries {
		if !isGlob(e) {
			continue
		}
		if ok, err := doublestar.Match(e, name); err == nil && ok {
			return true
		}
	}
	return false
}
