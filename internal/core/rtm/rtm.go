// Package rtm defines the Remember The Milk export data model and the lookup
// tables built from it.
package rtm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an identifier from the export. RTM writes identifiers as JSON strings
// in most exports and as numbers in some older ones; both decode to the same
// string form.
type ID string

// UnmarshalJSON accepts a JSON string, number, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as a plain string.
func (id ID) String() string { return string(id) }

// Priority codes used by RTM. PriorityNone is what RTM writes for tasks
// without a priority.
const (
	PriorityHigh   = "P1"
	PriorityMedium = "P2"
	PriorityLow    = "P3"
	PriorityNone   = "PN"
)

// List is a named task list.
type List struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Note is a free text note attached to a task series.
type Note struct {
	ID       ID     `json:"id"`
	SeriesID ID     `json:"series_id"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
}

// Task is a single task record. Timestamps are epoch milliseconds; zero means
// the date is absent.
type Task struct {
	ID       ID     `json:"id"`
	SeriesID ID     `json:"series_id,omitempty"`
	ListID   ID     `json:"list_id"`
	ParentID ID     `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	Priority string `json:"priority,omitempty"`

	DateDue          int64 `json:"date_due,omitempty"`
	DateDueHasTime   bool  `json:"date_due_has_time,omitempty"`
	DateStart        int64 `json:"date_start,omitempty"`
	DateStartHasTime bool  `json:"date_start_has_time,omitempty"`
	DateCompleted    int64 `json:"date_completed,omitempty"`
	DateCreated      int64 `json:"date_created,omitempty"`
	DateModified     int64 `json:"date_modified,omitempty"`

	Repeat        string   `json:"repeat,omitempty"`
	URL           string   `json:"url,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Postponed     int      `json:"postponed,omitempty"`
	PostponeCount int      `json:"postpone_count,omitempty"`
	Source        string   `json:"source,omitempty"`
}

// Completed reports whether the task carries a completion date.
func (t Task) Completed() bool {
	return t.DateCompleted != 0
}

// Postpones returns the postpone counter, preferring the "postponed" key used
// by current exports over the older "postpone_count".
func (t Task) Postpones() int {
	if t.Postponed != 0 {
		return t.Postponed
	}
	return t.PostponeCount
}

// Export is the root document of an RTM JSON export. Collections missing from
// the document decode as nil and are treated as empty.
type Export struct {
	Lists []List `json:"lists"`
	Tasks []Task `json:"tasks"`
	Notes []Note `json:"notes"`
}

// Counts tallies tasks by completion state.
type Counts struct {
	Total      int `json:"total"`
	Incomplete int `json:"incomplete"`
	Completed  int `json:"completed"`
}

// Add counts a single task.
func (c *Counts) Add(t Task) {
	c.Total++
	if t.Completed() {
		c.Completed++
	} else {
		c.Incomplete++
	}
}

// Merge adds the totals of o to c.
func (c *Counts) Merge(o Counts) {
	c.Total += o.Total
	c.Incomplete += o.Incomplete
	c.Completed += o.Completed
}

// CountTasks tallies a slice of tasks.
func CountTasks(tasks []Task) Counts {
	var c Counts
	for _, t := range tasks {
		c.Add(t)
	}
	return c
}
