package ical

import "strings"

// ProductID identifies the producer in every generated calendar.
const ProductID = "-//RTM to Nextcloud Converter//EN"

// Assemble wraps blocks in a VCALENDAR named calName. Lines are CRLF
// separated and the document has no trailing terminator.
func Assemble(calName string, blocks []Block) string {
	lines := make([]string, 0, len(blocks)+6)
	lines = append(lines,
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:"+ProductID,
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:"+Escape(calName),
	)

	for _, b := range blocks {
		lines = append(lines, b.String())
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, CRLF)
}
