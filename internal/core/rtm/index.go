package rtm

import (
	"slices"
	"strings"
)

// Index holds the lookup tables for one conversion run. It is built once from
// an Export and never modified afterwards.
type Index struct {
	lists map[ID]string
	notes map[ID][]Note
}

// NewIndex builds the list-name and notes-by-series tables. Notes without a
// series id are dropped since nothing can reference them.
func NewIndex(e *Export) *Index {
	idx := &Index{
		lists: make(map[ID]string, len(e.Lists)),
		notes: make(map[ID][]Note),
	}

	for _, l := range e.Lists {
		idx.lists[l.ID] = l.Name
	}

	for _, n := range e.Notes {
		if n.SeriesID == "" {
			continue
		}
		idx.notes[n.SeriesID] = append(idx.notes[n.SeriesID], n)
	}

	return idx
}

// ListName returns the display name of the list with the given id.
func (idx *Index) ListName(id ID) (string, bool) {
	if id == "" {
		return "", false
	}
	name, ok := idx.lists[id]
	return name, ok
}

// DisplayName returns the list name, or a synthesized "List-<id>" name when
// the id does not resolve.
func (idx *Index) DisplayName(id ID) string {
	if name, ok := idx.ListName(id); ok {
		return name
	}
	return "List-" + string(id)
}

// Notes returns the notes of a series in export order.
func (idx *Index) Notes(seriesID ID) []Note {
	if seriesID == "" {
		return nil
	}
	return idx.notes[seriesID]
}

// ListSummary is the per-list task tally shown before converting.
type ListSummary struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Resolved bool   `json:"resolved"`
	Counts   Counts `json:"counts"`
}

// Summarize tallies tasks per list. Only lists that own at least one task are
// returned, sorted by display name; tasks referencing unknown lists are
// reported under their synthesized name.
func Summarize(e *Export, idx *Index) []ListSummary {
	byID := make(map[ID]*ListSummary)
	var order []ID

	for _, t := range e.Tasks {
		s, ok := byID[t.ListID]
		if !ok {
			_, resolved := idx.ListName(t.ListID)
			s = &ListSummary{ID: t.ListID, Name: idx.DisplayName(t.ListID), Resolved: resolved}
			byID[t.ListID] = s
			order = append(order, t.ListID)
		}
		s.Counts.Add(t)
	}

	out := make([]ListSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}

	slices.SortStableFunc(out, func(a, b ListSummary) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out
}
