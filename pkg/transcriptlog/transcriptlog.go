package transcriptlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/crimson-sun/transcriptlog/internal/model"
	"github.com/crimson-sun/transcriptlog/internal/output"
	"github.com/crimson-sun/transcriptlog/internal/output/file"
	"github.com/crimson-sun/transcriptlog/internal/output/multi"
	"github.com/crimson-sun/transcriptlog/internal/output/stdout"
	"github.com/crimson-sun/transcriptlog/internal/textenc"
)

var (
	// ErrInvalidArgument is returned for bad input or configuration. Check with errors.Is.
	ErrInvalidArgument = output.ErrInvalidArgument
	// ErrIO is returned when the directory or file cannot be created or written.
	ErrIO = output.ErrIO
)

// Mode selects how entries map onto files.
type Mode = file.Mode

const (
	// ModeAppend appends to the file the pattern names.
	ModeAppend = file.ModeAppend
	// ModeNewFile creates a new file per entry and never reuses an existing name.
	ModeNewFile = file.ModeNewFile
)

const (
	// DefaultPattern gives one file per day.
	DefaultPattern = file.DefaultPattern
	// PerRunPattern gives one file per call when paired with ModeNewFile.
	PerRunPattern = file.PerRunPattern
)

// ParseMode maps "append" or "new" to a Mode.
func ParseMode(s string) (Mode, error) {
	return file.ParseMode(s)
}

// Logger appends transcript entries to log files.
// Safe for concurrent use.
type Logger struct {
	file     *file.Output
	echo     output.Output
	clock    func() time.Time
	encoding string
}

// New creates a Logger. Configuration errors (bad pattern, unknown mode or
// encoding) are reported here, before anything touches the filesystem.
func New(opts ...Option) (*Logger, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = time.Now
	}

	fo, err := file.New(o.dir,
		file.WithPattern(o.pattern),
		file.WithMode(o.mode),
		file.WithLocking(o.locking),
	)
	if err != nil {
		return nil, fmt.Errorf("transcriptlog: %w", err)
	}
	if err := textenc.Check(o.encoding); err != nil {
		return nil, fmt.Errorf("transcriptlog: %w: %w", ErrInvalidArgument, err)
	}

	l := &Logger{file: fo, clock: o.clock, encoding: o.encoding}
	if len(o.echoes) > 0 {
		outs := make([]output.Output, len(o.echoes))
		for i, e := range o.echoes {
			outs[i] = stdout.New(e.w, e.asJSON)
		}
		l.echo = multi.New(outs...)
	}
	return l, nil
}

// Append persists text as one entry and returns the path of the file that
// holds it. The entry is on disk when Append returns nil. Log files are
// UTF-8, so text that is not valid UTF-8 is ErrInvalidArgument; use
// WithEncoding for input in another charset.
func (l *Logger) Append(ctx context.Context, text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("transcriptlog: %w: text is not valid UTF-8", ErrInvalidArgument)
	}
	entry := model.NewEntry(l.clock(), text)

	path, err := l.file.Append(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("transcriptlog: %w", err)
	}
	slog.Debug("transcript entry appended", "path", path, "bytes", len(entry.Body))

	if l.echo != nil {
		// The entry is already persisted; an echo failure does not undo that.
		if err := l.echo.Write(ctx, entry); err != nil {
			slog.Warn("transcript echo failed", "path", path, "error", err)
		}
	}
	return path, nil
}

// AppendFrom reads r to EOF, decodes it from the configured encoding and
// appends the result as one entry. A nil reader is ErrInvalidArgument.
func (l *Logger) AppendFrom(ctx context.Context, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("transcriptlog: %w: nil text reader", ErrInvalidArgument)
	}
	text, err := textenc.Decode(r, l.encoding)
	if err != nil {
		return "", fmt.Errorf("transcriptlog: read text: %w: %w", ErrIO, err)
	}
	return l.Append(ctx, text)
}

// Close releases the echo outputs. The Logger holds no files open.
func (l *Logger) Close() error {
	if l.echo == nil {
		return nil
	}
	return l.echo.Close()
}

// AppendEntry is a one-shot Append with a fresh Logger.
func AppendEntry(text string, opts ...Option) (string, error) {
	l, err := New(opts...)
	if err != nil {
		return "", err
	}
	defer l.Close()
	return l.Append(context.Background(), text)
}
