package model

import (
	"strings"
	"testing"
	"time"
)

var ts = time.Date(2025, 10, 23, 14, 3, 7, 0, time.UTC)

func TestRender(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"Hello world", "[2025-10-23 14:03:07]\nHello world\n\n"},
		{"trailing  \n\n\t", "[2025-10-23 14:03:07]\ntrailing\n\n"},
		{"", "[2025-10-23 14:03:07]\n\n\n"},
		{"  leading kept", "[2025-10-23 14:03:07]\n  leading kept\n\n"},
		{"line one\nline two", "[2025-10-23 14:03:07]\nline one\nline two\n\n"},
	}
	for _, tt := range tests {
		got := string(NewEntry(ts, tt.body).Render())
		if got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestNewEntryStripsUnicodeWhitespace(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"こんにちは\u3000", "こんにちは"},
		{"hello\u00a0", "hello"},
		{"hello\u2028", "hello"},
		{"mixed \u3000\n\u00a0\t", "mixed"},
		{"inner\u3000kept", "inner\u3000kept"},
	}
	for _, tt := range tests {
		e := NewEntry(ts, tt.body)
		if e.Body != tt.want {
			t.Errorf("NewEntry(%q).Body = %q, want %q", tt.body, e.Body, tt.want)
		}
		raw := Entry{Timestamp: ts, Body: tt.body}
		if got, want := string(raw.Render()), "[2025-10-23 14:03:07]\n"+tt.want+"\n\n"; got != want {
			t.Errorf("Render(%q) = %q, want %q", tt.body, got, want)
		}
	}
}

func TestRenderStripsEvenWithoutNewEntry(t *testing.T) {
	e := Entry{Timestamp: ts, Body: "raw\n"}
	if got := string(e.Render()); got != "[2025-10-23 14:03:07]\nraw\n\n" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderSubSecondTruncated(t *testing.T) {
	e := NewEntry(ts.Add(999*time.Millisecond), "x")
	if got := e.Header(); got != "[2025-10-23 14:03:07]" {
		t.Fatalf("Header = %q", got)
	}
}

func TestParseEntriesRoundTrip(t *testing.T) {
	entries := []Entry{
		NewEntry(ts, "first"),
		NewEntry(ts.Add(time.Second), ""),
		NewEntry(ts.Add(2*time.Second), "para one\n\npara two"),
		NewEntry(ts.Add(3*time.Second), "[not a header]"),
	}
	var b strings.Builder
	for _, e := range entries {
		b.Write(e.Render())
	}

	got := ParseEntries([]byte(b.String()), time.UTC)
	if len(got) != len(entries) {
		t.Fatalf("parsed %d entries, want %d: %+v", len(got), len(entries), got)
	}
	for i := range entries {
		if !got[i].Timestamp.Equal(entries[i].Timestamp) {
			t.Errorf("entry %d timestamp = %v, want %v", i, got[i].Timestamp, entries[i].Timestamp)
		}
		if got[i].Body != entries[i].Body {
			t.Errorf("entry %d body = %q, want %q", i, got[i].Body, entries[i].Body)
		}
	}
}

func TestParseEntriesIgnoresLeadingJunk(t *testing.T) {
	data := "stray line\n\n[2025-10-23 14:03:07]\nbody\n\n"
	got := ParseEntries([]byte(data), time.UTC)
	if len(got) != 1 || got[0].Body != "body" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseEntriesEmpty(t *testing.T) {
	if got := ParseEntries(nil, nil); len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}
