package file

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/crimson-sun/transcriptlog/internal/output"
)

// DefaultPattern yields one log file per day.
const DefaultPattern = "%Y-%m-%d.txt"

// PerRunPattern yields one file per call, as the per-run mode expects.
const PerRunPattern = "transcription_%Y%m%d_%H%M%S.txt"

// Pattern is a compiled strftime filename pattern.
type Pattern struct {
	src string
	f   *strftime.Strftime
}

// CompilePattern validates a strftime pattern. Unknown directives are rejected
// up front so a typo fails before anything touches the filesystem.
func CompilePattern(p string) (*Pattern, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty filename pattern", output.ErrInvalidArgument)
	}
	f, err := strftime.New(p)
	if err != nil {
		return nil, fmt.Errorf("%w: filename pattern %q: %v", output.ErrInvalidArgument, p, err)
	}
	return &Pattern{src: p, f: f}, nil
}

// String returns the source pattern.
func (p *Pattern) String() string { return p.src }

// Name evaluates the pattern at t. The result must be a single path element.
func (p *Pattern) Name(t time.Time) (string, error) {
	name := p.f.FormatString(t)
	switch {
	case name == "", name == ".", name == "..":
		return "", fmt.Errorf("%w: pattern %q renders to %q", output.ErrInvalidArgument, p.src, name)
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return "", fmt.Errorf("%w: pattern %q renders to a path, not a file name: %q", output.ErrInvalidArgument, p.src, name)
	}
	return name, nil
}
