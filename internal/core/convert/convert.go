// Package convert runs a full export-to-iCalendar conversion: filter, group,
// encode and assemble. It never touches the filesystem; documents are handed
// to a Sink once every one of them has been built.
package convert

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/colonyops/rtm2ics/internal/core/filter"
	"github.com/colonyops/rtm2ics/internal/core/ical"
	"github.com/colonyops/rtm2ics/internal/core/logging"
	"github.com/colonyops/rtm2ics/internal/core/rtm"
)

// Mode selects how tasks are routed to documents.
type Mode string

const (
	// ModePerList writes one calendar per RTM list.
	ModePerList Mode = "per-list"
	// ModeSingle writes every task into one calendar.
	ModeSingle Mode = "single"
)

// DefaultCalendarName names the calendar in single mode.
const DefaultCalendarName = "RTM Tasks"

// FileExt is appended to every destination name.
const FileExt = ".ics"

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePerList, ModeSingle:
		return Mode(s), nil
	case "":
		return ModePerList, nil
	default:
		return "", fmt.Errorf("invalid mode %q (want %s or %s)", s, ModePerList, ModeSingle)
	}
}

// Options configures a conversion run.
type Options struct {
	Mode   Mode
	Filter filter.Options
	// CalendarName names the document in single mode.
	CalendarName string
	// Location is the zone timestamps are rendered in. Nil means time.Local.
	Location *time.Location
}

// Document is one assembled calendar.
type Document struct {
	ListID   rtm.ID     `json:"list_id,omitempty"`
	Name     string     `json:"name"`
	FileName string     `json:"file"`
	Counts   rtm.Counts `json:"counts"`
	Content  string     `json:"-"`
}

// Result is the outcome of Run.
type Result struct {
	Documents []Document `json:"documents"`
	Filtered  int        `json:"filtered"`
	Totals    rtm.Counts `json:"totals"`
}

// Run converts e according to opts. Any task that cannot be encoded aborts
// the whole run.
func Run(ctx context.Context, e *rtm.Export, opts Options) (*Result, error) {
	if opts.Mode == "" {
		opts.Mode = ModePerList
	}
	if opts.CalendarName == "" {
		opts.CalendarName = DefaultCalendarName
	}
	if opts.Filter.Location == nil {
		opts.Filter.Location = opts.Location
	}

	idx := rtm.NewIndex(e)
	enc := ical.Encoder{Lookup: idx, Location: opts.Location}

	key := filter.ByList
	if opts.Mode == ModeSingle {
		key = filter.Single
	}

	var include func(rtm.Task) bool
	if opts.Filter.Active() {
		include = opts.Filter.Predicate(idx)
	}

	parts := filter.Partition(e.Tasks, include, key)

	logger := logging.Component("convert")
	logger.Debug().Ctx(ctx).
		Str("mode", string(opts.Mode)).
		Int("groups", len(parts.Groups)).
		Int("filtered", parts.Filtered).
		Msg("partitioned tasks")

	res := &Result{Filtered: parts.Filtered}
	names := newNameSet()

	for _, g := range parts.Groups {
		doc := Document{Name: opts.CalendarName}
		if opts.Mode == ModePerList {
			doc.ListID = g.Key
			doc.Name = idx.DisplayName(g.Key)
		}
		doc.FileName = names.claim(SanitizeFileName(doc.Name)) + FileExt

		gctx := logging.WithList(ctx, doc.Name)

		blocks := make([]ical.Block, 0, len(g.Tasks))
		for i, t := range g.Tasks {
			b, err := enc.Task(t)
			if err != nil {
				return nil, fmt.Errorf("encode task %d of %q: %w", i, doc.Name, err)
			}
			blocks = append(blocks, b)
			doc.Counts.Add(t)
		}

		doc.Content = ical.Assemble(doc.Name, blocks)
		res.Totals.Merge(doc.Counts)
		res.Documents = append(res.Documents, doc)

		logger.Debug().Ctx(gctx).
			Int("tasks", doc.Counts.Total).
			Str("file", doc.FileName).
			Msg("assembled calendar")
	}

	return res, nil
}

// SanitizeFileName replaces every rune that is not a letter, digit, space,
// hyphen or underscore with an underscore. The rune count is preserved.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, name)
}

// nameSet hands out unique destination names. Distinct lists can sanitize to
// the same name ("a/b" and "a:b"); later ones get a numeric suffix instead of
// overwriting the earlier file.
type nameSet map[string]bool

func newNameSet() nameSet { return nameSet{} }

func (s nameSet) claim(name string) string {
	if name == "" {
		name = "untitled"
	}

	candidate := name
	for n := 2; s[strings.ToLower(candidate)]; n++ {
		candidate = name + "-" + strconv.Itoa(n)
	}
	s[strings.ToLower(candidate)] = true
	return candidate
}
