package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/crimson-sun/transcriptlog/internal/model"
	"github.com/crimson-sun/transcriptlog/internal/output"
)

const (
	DefaultDir = "out"

	dirPerm  = 0o755
	filePerm = 0o644

	// maxSuffix bounds the names tried in ModeNewFile: name.txt, name-1.txt … name-99.txt.
	maxSuffix = 99
)

// Mode selects how entries map onto files.
type Mode int

const (
	// ModeAppend appends every entry to the file the pattern names, creating it
	// on first use. With a daily pattern this gives one growing file per day.
	ModeAppend Mode = iota
	// ModeNewFile writes each entry to a file that did not exist before the call.
	ModeNewFile
)

func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	case ModeNewFile:
		return "new"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "append" or "new" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "append":
		return ModeAppend, nil
	case "new", "newfile", "new-file":
		return ModeNewFile, nil
	}
	return 0, fmt.Errorf("%w: unknown file mode %q", output.ErrInvalidArgument, s)
}

// Option configures a file Output.
type Option func(*Output)

// WithPattern sets the strftime pattern that names the target file.
// Default: DefaultPattern.
func WithPattern(p string) Option {
	return func(o *Output) { o.patternSrc = p }
}

// WithMode sets the file mode. Default: ModeAppend.
func WithMode(m Mode) Option {
	return func(o *Output) { o.mode = m }
}

// WithLocking toggles the advisory lock held around each append. Default: on.
// Only writers that also lock are excluded; O_APPEND still keeps every
// single write contiguous without it.
func WithLocking(on bool) Option {
	return func(o *Output) { o.locking = on }
}

// Output appends rendered transcript entries to pattern-named files under dir.
// It holds no open handles between calls and is safe for concurrent use.
type Output struct {
	dir        string
	patternSrc string
	pattern    *Pattern
	mode       Mode
	locking    bool
}

// New creates a file output rooted at dir. The directory itself is created
// lazily by the first Append.
func New(dir string, opts ...Option) (*Output, error) {
	o := &Output{
		dir:        dir,
		patternSrc: DefaultPattern,
		mode:       ModeAppend,
		locking:    true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.dir == "" {
		o.dir = DefaultDir
	}
	if o.mode != ModeAppend && o.mode != ModeNewFile {
		return nil, fmt.Errorf("file output: %w: unknown mode %v", output.ErrInvalidArgument, o.mode)
	}
	p, err := CompilePattern(o.patternSrc)
	if err != nil {
		return nil, fmt.Errorf("file output: %w", err)
	}
	o.pattern = p
	return o, nil
}

// Dir returns the configured directory.
func (o *Output) Dir() string { return o.dir }

// Mode returns the configured mode.
func (o *Output) Mode() Mode { return o.mode }

// Append writes the entry and returns the path of the file that now holds it.
// Both the file name and the entry header come from entry.Timestamp.
//
// The entry is rendered in full before the file is opened and is written
// with a single Write call. If that write or the following fsync fails, the
// file is cut back to its previous length (append mode, locked) or removed
// (new-file mode) so no partial entry survives.
func (o *Output) Append(ctx context.Context, entry model.Entry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name, err := o.pattern.Name(entry.Timestamp)
	if err != nil {
		return "", fmt.Errorf("file output: %w", err)
	}
	data := entry.Render()

	if err := os.MkdirAll(o.dir, dirPerm); err != nil {
		return "", ioErr("mkdir", o.dir, err)
	}

	if o.mode == ModeNewFile {
		return o.create(name, data)
	}
	path := filepath.Join(o.dir, name)
	if err := o.appendFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// Write implements output.Output.
func (o *Output) Write(ctx context.Context, entry model.Entry) error {
	_, err := o.Append(ctx, entry)
	return err
}

// Close is a no-op; files are opened and closed per entry.
func (o *Output) Close() error {
	return nil
}

// appendFile opens path for appending (never O_TRUNC) and writes data once.
func (o *Output) appendFile(path string, data []byte) (err error) {
	lock := o.locking && lockSupported
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|appendFlag(lock), filePerm)
	if err != nil {
		return ioErr("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErr("close", path, cerr)
		}
	}()

	locked := false
	if lock {
		if err := lockFile(f); err != nil {
			return ioErr("lock", path, err)
		}
		locked = true
		defer func() {
			if uerr := unlockFile(f); uerr != nil {
				slog.Warn("file output: unlock failed", "path", path, "error", uerr)
			}
		}()
	}

	info, err := f.Stat()
	if err != nil {
		return ioErr("stat", path, err)
	}
	before := info.Size()
	// A no-op under O_APPEND; places the offset at EOF where the handle was
	// opened without it.
	if _, err := f.Seek(before, io.SeekStart); err != nil {
		return ioErr("seek", path, err)
	}

	if werr := writeData(f, data); werr != nil {
		// Without the lock another writer may have appended after us, so the
		// tail is not ours to cut.
		if locked {
			if terr := f.Truncate(before); terr != nil {
				slog.Error("file output: rollback failed, partial entry left behind",
					"path", path, "size", before, "error", terr)
			}
		}
		return ioErr("write", path, werr)
	}
	return nil
}

// create writes data to a file that did not exist before, probing numbered
// variants of name when it is taken.
func (o *Output) create(name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i <= maxSuffix; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
		}
		path := filepath.Join(o.dir, candidate)

		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, filePerm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", ioErr("create", path, err)
		}

		werr := writeData(f, data)
		cerr := f.Close()
		if werr == nil && cerr != nil {
			werr = cerr
		}
		if werr != nil {
			if rerr := os.Remove(path); rerr != nil {
				slog.Error("file output: cleanup failed, partial file left behind",
					"path", path, "error", rerr)
			}
			return "", ioErr("write", path, werr)
		}
		return path, nil
	}
	return "", ioErr("create", filepath.Join(o.dir, name),
		fmt.Errorf("%s and %d numbered variants already exist", name, maxSuffix))
}

// writeData is swapped out in tests to simulate a failing disk.
var writeData = writeAll

// writeAll issues one Write for the whole buffer and syncs it to disk.
func writeAll(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

func ioErr(op, path string, err error) error {
	return fmt.Errorf("file output: %s %s: %w: %w", op, path, output.ErrIO, err)
}
