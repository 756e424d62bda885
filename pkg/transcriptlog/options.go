package transcriptlog

import (
	"io"
	"time"

	"github.com/crimson-sun/transcriptlog/internal/output/file"
)

type options struct {
	dir      string
	pattern  string
	mode     Mode
	locking  bool
	clock    func() time.Time
	echoes   []echoTarget
	encoding string
}

type echoTarget struct {
	w      io.Writer
	asJSON bool
}

// Option configures a Logger.
type Option func(*options)

// WithDir sets the directory that holds the log files. It is created, along
// with any missing parents, on first write. Default: "out".
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithPattern sets the strftime pattern evaluated at each entry's capture
// instant to name its file. Default: DefaultPattern ("%Y-%m-%d.txt").
func WithPattern(p string) Option {
	return func(o *options) {
		o.pattern = p
	}
}

// WithMode chooses between appending to the named file and always creating
// a fresh one. Default: ModeAppend.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithLocking toggles the advisory file lock held around each append.
// Default: true.
func WithLocking(on bool) Option {
	return func(o *options) {
		o.locking = on
	}
}

// WithClock replaces time.Now as the source of capture instants.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithEcho also writes every persisted entry to w, in the same block format
// as the file. May be given more than once.
func WithEcho(w io.Writer) Option {
	return func(o *options) {
		o.echoes = append(o.echoes, echoTarget{w: w})
	}
}

// WithEchoJSON also writes every persisted entry to w as one JSON object per line.
func WithEchoJSON(w io.Writer) Option {
	return func(o *options) {
		o.echoes = append(o.echoes, echoTarget{w: w, asJSON: true})
	}
}

// WithEncoding sets the charset AppendFrom decodes its input from, using
// WHATWG labels such as "shift_jis". Default: UTF-8.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

func defaultOptions() options {
	return options{
		dir:     file.DefaultDir,
		pattern: file.DefaultPattern,
		mode:    ModeAppend,
		locking: true,
		clock:   time.Now,
	}
}
