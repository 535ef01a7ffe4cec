package ical

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain text", want: "plain text"},
		{in: "a,b", want: `a\,b`},
		{in: "a;b", want: `a\;b`},
		{in: "line1\nline2", want: `line1\nline2`},
		{in: `C:\path`, want: `C:\\path`},
		{in: `\,`, want: `\\\,`},
		{in: `\n`, want: `\\n`},
		{in: "tab\tand: colon", want: "tab\tand: colon"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"no reserved characters",
		`back\slash`,
		"comma, semicolon; newline\nend",
		`\n literal then real` + "\n",
		`\\,,;;\`,
		"unicode ☃, ok",
	}

	for _, in := range inputs {
		assert.Equal(t, in, Unescape(Escape(in)), "input %q", in)
	}
}

func TestEscape_SafeTextUnchanged(t *testing.T) {
	safe := "Buy milk (2 litres) @ store: 10am"
	assert.Equal(t, safe, Escape(safe))
	assert.Equal(t, safe, Escape(Escape(safe)))
}

var (
	dateRe     = regexp.MustCompile(`^\d{8}$`)
	dateTimeRe = regexp.MustCompile(`^\d{8}T\d{6}$`)
)

func TestFormatTimestamp_Shape(t *testing.T) {
	values := []int64{1, 86_399_999, 1_700_000_000_000, 946_684_800_000, 4_102_444_800_000, -1_000}

	for _, ms := range values {
		d, ok := FormatTimestamp(ms, false)
		assert.True(t, ok)
		assert.Len(t, d, 8)
		assert.Regexp(t, dateRe, d)

		dt, ok := FormatTimestamp(ms, true)
		assert.True(t, ok)
		assert.Len(t, dt, 15)
		assert.Regexp(t, dateTimeRe, dt)
	}
}

func TestFormatTimestamp_Zero(t *testing.T) {
	v, ok := FormatTimestamp(0, true)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFormatTimestampIn(t *testing.T) {
	v, ok := FormatTimestampIn(1_700_000_000_000, true, time.UTC)
	assert.True(t, ok)
	assert.Equal(t, "20231114T221320", v)

	v, _ = FormatTimestampIn(1_700_000_000_000, false, time.UTC)
	assert.Equal(t, "20231114", v)

	tokyo := time.FixedZone("JST", 9*60*60)
	v, _ = FormatTimestampIn(1_700_000_000_000, true, tokyo)
	assert.Equal(t, "20231115T071320", v)
}

func TestFormatTimestamp_UsesLocalZone(t *testing.T) {
	want := time.UnixMilli(1_700_000_000_000).Local().Format("20060102T150405")
	got, _ := FormatTimestamp(1_700_000_000_000, true)
	assert.Equal(t, want, got)
}

func TestPriority(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"P1", 1},
		{"P2", 5},
		{"P3", 9},
		{"PN", 0},
		{"", 0},
		{"p1", 0},
		{"P4", 0},
		{"high", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Priority(tt.code), "code %q", tt.code)
	}
}

func TestRecurrence(t *testing.T) {
	rule, ok := Recurrence("FREQ=WEEKLY;INTERVAL=1")
	assert.True(t, ok)
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=1", rule)

	_, ok = Recurrence("")
	assert.False(t, ok)
}

func TestRecurrence_NonEmptyRulesPassThrough(t *testing.T) {
	for _, in := range []string{"RRULE:FREQ=DAILY", "  ", "FREQ=MONTHLY;BYMONTHDAY=-1"} {
		rule, ok := Recurrence(in)
		assert.True(t, ok, "rule %q", in)
		assert.Equal(t, in, rule)
	}
}
