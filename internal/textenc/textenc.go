// Package textenc converts transcript text from a named charset to UTF-8
// before it reaches the log. Log files are always UTF-8.
package textenc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Reader wraps r so it yields UTF-8. Names follow the WHATWG encoding labels
// ("shift_jis", "euc-jp", "windows-1252", "utf-16le", ...). An empty name or
// any UTF-8 label returns r unchanged, so valid input passes through
// byte for byte.
func Reader(r io.Reader, name string) (io.Reader, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("textenc: unknown encoding %q: %w", name, err)
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Check reports whether name is a known encoding label.
func Check(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if _, err := htmlindex.Get(name); err != nil {
		return fmt.Errorf("textenc: unknown encoding %q: %w", name, err)
	}
	return nil
}

// Decode reads all of r as name-encoded text and returns it as UTF-8.
func Decode(r io.Reader, name string) (string, error) {
	dr, err := Reader(r, name)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(dr)
	if err != nil {
		return "", fmt.Errorf("textenc: read: %w", err)
	}
	return string(b), nil
}
