// Package ical serializes RTM tasks as iCalendar (RFC 5545) VTODO components
// and wraps them in VCALENDAR documents.
package ical

import (
	"strconv"
	"strings"
	"time"
)

// CRLF is the line terminator required by RFC 5545.
const CRLF = "\r\n"

var (
	escaper   = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)
	unescaper = strings.NewReplacer(`\\`, `\`, `\,`, ",", `\;`, ";", `\n`, "\n", `\N`, "\n")
)

// Escape escapes a TEXT value. The replacement is a single left-to-right pass,
// so a backslash introduced for one character is never escaped again.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return escaper.Replace(s)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

const (
	layoutDateTime = "20060102T150405"
	layoutDate     = "20060102"
)

// FormatTimestamp renders an epoch-millisecond timestamp in the local system
// zone as a floating DATE-TIME (hasTime) or DATE value. A zero timestamp is
// absent.
//
// Local time rather than UTC is intentional: previously exported calendars
// were produced this way and re-imports must match them.
func FormatTimestamp(ms int64, hasTime bool) (string, bool) {
	return FormatTimestampIn(ms, hasTime, time.Local)
}

// FormatTimestampIn is FormatTimestamp with an explicit zone. A nil loc means
// time.Local.
func FormatTimestampIn(ms int64, hasTime bool, loc *time.Location) (string, bool) {
	if ms == 0 {
		return "", false
	}
	if loc == nil {
		loc = time.Local
	}

	t := time.UnixMilli(ms).In(loc)
	if hasTime {
		return t.Format(layoutDateTime), true
	}
	return t.Format(layoutDate), true
}

// Priority maps an RTM priority code onto the RFC 5545 1-9 scale. Zero means
// undefined and the property must be left out.
func Priority(code string) int {
	switch code {
	case "P1":
		return 1
	case "P2":
		return 5
	case "P3":
		return 9
	default:
		return 0
	}
}

// Recurrence returns the RRULE value for an RTM repeat rule. RTM already
// writes rules in RRULE grammar, so any non-empty rule is passed through
// unchanged.
func Recurrence(rule string) (string, bool) {
	if rule == "" {
		return "", false
	}
	return rule, true
}

func itoa(n int) string { return strconv.Itoa(n) }
