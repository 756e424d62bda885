package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/crimson-sun/transcriptlog/internal/model"
)

func testEntry() model.Entry {
	return model.NewEntry(time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC), "hello there\n")
}

// captureStdout redirects os.Stdout to capture output.
func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestOutputTextMatchesFileBlock(t *testing.T) {
	result := captureStdout(func() {
		out := New(nil, false)
		out.Write(context.Background(), testEntry())
	})

	if result != "[2026-02-19 12:00:00]\nhello there\n\n" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, true)
	if err := out.Write(context.Background(), testEntry()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	line := strings.TrimSpace(buf.String())
	if strings.Contains(line, "\n") {
		t.Fatalf("expected a single line, got %q", line)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["body"] != "hello there" {
		t.Errorf("body = %v, want %q", m["body"], "hello there")
	}
	if _, ok := m["timestamp"]; !ok {
		t.Error("missing timestamp key")
	}
}

func TestCloseReturnsNil(t *testing.T) {
	if err := New(&bytes.Buffer{}, false).Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}
