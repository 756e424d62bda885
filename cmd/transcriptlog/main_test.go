package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crimson-sun/transcriptlog/internal/transcribe"
	"github.com/crimson-sun/transcriptlog/pkg/transcriptlog"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out)
	return strings.TrimSpace(out.String()), err
}

func TestRunArgs(t *testing.T) {
	dir := t.TempDir()
	path, err := runCLI(t, "", "-dir", dir, "-log-level", "error", "hello", "from", "args")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("path %q not under %q", path, dir)
	}
	data, _ := os.ReadFile(path)
	if !strings.HasSuffix(string(data), "]\nhello from args\n\n") {
		t.Fatalf("content = %q", data)
	}
}

func TestRunStdin(t *testing.T) {
	dir := t.TempDir()
	path, err := runCLI(t, "piped text\n", "-dir", dir, "-log-level", "error")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.HasSuffix(string(data), "]\npiped text\n\n") {
		t.Fatalf("content = %q", data)
	}
}

func TestRunTextFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "in.txt")
	os.WriteFile(src, []byte("from a file"), 0644)

	path, err := runCLI(t, "", "-dir", dir, "-log-level", "error", "-file", src)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "from a file") {
		t.Fatalf("content = %q", data)
	}
}

func TestRunAudioDemoProvider(t *testing.T) {
	dir := t.TempDir()
	path, err := runCLI(t, "", "-dir", dir, "-log-level", "error", "-providers", "demo", "-audio", "meeting.wav")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), transcribe.DemoText) {
		t.Fatalf("content = %q", data)
	}
}

func TestRunAudioNeedsProviders(t *testing.T) {
	os.Unsetenv("TRANSCRIPTLOG_PROVIDERS")
	dir := filepath.Join(t.TempDir(), "out")
	_, err := runCLI(t, "", "-dir", dir, "-log-level", "error", "-audio", "meeting.wav")
	if !errors.Is(err, transcriptlog.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("nothing should be logged without a provider")
	}
}

func TestRunUnknownProvider(t *testing.T) {
	_, err := runCLI(t, "", "-dir", t.TempDir(), "-log-level", "error", "-providers", "nope", "-audio", "a.wav")
	if !errors.Is(err, transcriptlog.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestRunNewFileMode(t *testing.T) {
	dir := t.TempDir()
	args := []string{"-dir", dir, "-log-level", "error", "-mode", "new", "-pattern", "run.txt"}
	p1, err := runCLI(t, "", append(args, "one")...)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	p2, err := runCLI(t, "", append(args, "two")...)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if filepath.Base(p1) != "run.txt" || filepath.Base(p2) != "run-1.txt" {
		t.Fatalf("paths = %q, %q", p1, p2)
	}
}

func TestRunBadMode(t *testing.T) {
	_, err := runCLI(t, "", "-dir", t.TempDir(), "-log-level", "error", "-mode", "overwrite", "x")
	if !errors.Is(err, transcriptlog.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}
