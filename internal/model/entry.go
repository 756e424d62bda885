package model

import (
	"strings"
	"time"
	"unicode"
)

// TimestampLayout is the header rendering of an entry's capture instant.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one timestamped transcript record.
type Entry struct {
	Timestamp time.Time `json:"timestamp"` // capture instant; also drives the destination filename
	Body      string    `json:"body"`      // transcript text, stored without trailing whitespace
}

// NewEntry strips trailing Unicode whitespace from body. Nothing else about the text
// is touched.
func NewEntry(ts time.Time, body string) Entry {
	return Entry{Timestamp: ts, Body: strings.TrimRightFunc(body, unicode.IsSpace)}
}

// Header returns the bracketed timestamp line without its newline.
func (e Entry) Header() string {
	return "[" + e.Timestamp.Format(TimestampLayout) + "]"
}

// Render returns the entry as it is stored on disk: header line, body line,
// then one blank separator line.
func (e Entry) Render() []byte {
	body := strings.TrimRightFunc(e.Body, unicode.IsSpace)
	var b strings.Builder
	b.Grow(len(TimestampLayout) + len(body) + 5)
	b.WriteString(e.Header())
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteString("\n\n")
	return []byte(b.String())
}

// ParseEntries splits log file content back into entries. A block starts at a
// header line that is either the first line of the data or follows a blank
// line. Headers are parsed in loc; a nil loc means time.Local.
func ParseEntries(data []byte, loc *time.Location) []Entry {
	if loc == nil {
		loc = time.Local
	}
	lines := strings.Split(string(data), "\n")

	var entries []Entry
	var cur *Entry
	var body []string
	flush := func() {
		if cur == nil {
			return
		}
		// Drop the separator (and the empty string Split leaves after the final newline).
		for len(body) > 0 && body[len(body)-1] == "" {
			body = body[:len(body)-1]
		}
		cur.Body = strings.Join(body, "\n")
		entries = append(entries, *cur)
		cur, body = nil, nil
	}

	prevBlank := true
	for _, line := range lines {
		if prevBlank {
			if ts, ok := parseHeader(line, loc); ok {
				flush()
				cur = &Entry{Timestamp: ts}
				prevBlank = false
				continue
			}
		}
		if cur != nil {
			body = append(body, line)
		}
		prevBlank = line == ""
	}
	flush()
	return entries
}

func parseHeader(line string, loc *time.Location) (time.Time, bool) {
	if len(line) != len(TimestampLayout)+2 || line[0] != '[' || line[len(line)-1] != ']' {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(TimestampLayout, line[1:len(line)-1], loc)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
