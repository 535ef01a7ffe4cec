package ical

import (
	"errors"
	"strings"
	"time"

	"github.com/colonyops/rtm2ics/internal/core/rtm"
)

// UIDPrefix is prepended to RTM task ids to form UID and RELATED-TO values.
const UIDPrefix = "rtm-"

// DefaultSummary is used for tasks without a name.
const DefaultSummary = "Untitled Task"

// ErrMissingID is returned when a task has no id to derive a UID from.
var ErrMissingID = errors.New("task has no id")

// Lookup resolves the cross references of a task. *rtm.Index satisfies it.
type Lookup interface {
	ListName(id rtm.ID) (string, bool)
	Notes(seriesID rtm.ID) []rtm.Note
}

// Block is one serialized component, one content line per element.
type Block []string

// String joins the lines with CRLF.
func (b Block) String() string {
	return strings.Join(b, CRLF)
}

// UID returns the derived identifier for an RTM id.
func UID(id rtm.ID) string {
	return UIDPrefix + string(id)
}

// Encoder turns tasks into VTODO blocks.
type Encoder struct {
	Lookup Lookup
	// Location is the zone timestamps are rendered in. Nil means time.Local.
	Location *time.Location
}

// MapTask encodes t using local time.
func MapTask(t rtm.Task, lookup Lookup) (Block, error) {
	enc := Encoder{Lookup: lookup}
	return enc.Task(t)
}

// Task encodes a single task. Property order is fixed so repeated exports of
// the same data diff cleanly.
func (e Encoder) Task(t rtm.Task) (Block, error) {
	if t.ID == "" {
		return nil, ErrMissingID
	}

	b := Block{"BEGIN:VTODO", "UID:" + UID(t.ID)}

	if t.ParentID != "" {
		b = append(b, "RELATED-TO:"+UID(t.ParentID))
	}

	summary := t.Name
	if summary == "" {
		summary = DefaultSummary
	}
	b = append(b, "SUMMARY:"+Escape(summary))

	if p := Priority(t.Priority); p > 0 {
		b = append(b, "PRIORITY:"+itoa(p))
	}

	// DUE and DTSTART must share a value type, so a time on either date
	// promotes both to DATE-TIME.
	useTime := t.DateDueHasTime || t.DateStartHasTime
	if v, ok := e.format(t.DateDue, useTime); ok {
		b = append(b, dateProp("DUE", v, useTime))
	}
	if v, ok := e.format(t.DateStart, useTime); ok {
		b = append(b, dateProp("DTSTART", v, useTime))
	}

	if t.Completed() {
		b = append(b, "STATUS:COMPLETED")
		if v, ok := e.format(t.DateCompleted, true); ok {
			b = append(b, "COMPLETED:"+v)
		}
	} else {
		b = append(b, "STATUS:NEEDS-ACTION")
	}

	if v, ok := e.format(t.DateCreated, true); ok {
		b = append(b, "CREATED:"+v)
	}
	if v, ok := e.format(t.DateModified, true); ok {
		b = append(b, "LAST-MODIFIED:"+v)
	}

	if rule, ok := Recurrence(t.Repeat); ok {
		b = append(b, "RRULE:"+rule)
	}

	if t.URL != "" {
		b = append(b, "URL:"+Escape(t.URL))
	}

	if cats := e.categories(t); len(cats) > 0 {
		b = append(b, "CATEGORIES:"+strings.Join(cats, ","))
	}

	if desc := e.description(t); desc != "" {
		b = append(b, "DESCRIPTION:"+Escape(desc))
	}

	if n := t.Postpones(); n != 0 {
		b = append(b, "X-RTM-POSTPONE-COUNT:"+itoa(n))
	}
	if t.Source != "" {
		b = append(b, "X-RTM-SOURCE:"+Escape(t.Source))
	}

	return append(b, "END:VTODO"), nil
}

func (e Encoder) format(ms int64, hasTime bool) (string, bool) {
	return FormatTimestampIn(ms, hasTime, e.Location)
}

// categories returns the escaped tags followed by the list name.
func (e Encoder) categories(t rtm.Task) []string {
	cats := make([]string, 0, len(t.Tags)+1)
	for _, tag := range t.Tags {
		cats = append(cats, Escape(tag))
	}
	if e.Lookup != nil {
		if name, ok := e.Lookup.ListName(t.ListID); ok {
			cats = append(cats, Escape(name))
		}
	}
	return cats
}

// description joins the non-empty notes of the task's series.
func (e Encoder) description(t rtm.Task) string {
	if e.Lookup == nil {
		return ""
	}

	var parts []string
	for _, n := range e.Lookup.Notes(t.SeriesID) {
		if n.Content != "" {
			parts = append(parts, n.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}

func dateProp(name, value string, hasTime bool) string {
	if hasTime {
		return name + ":" + value
	}
	return name + ";VALUE=DATE:" + value
}
