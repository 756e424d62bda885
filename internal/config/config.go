package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all transcriptlog configuration.
type Config struct {
	Output     OutputConfig
	Transcribe TranscribeConfig
	Encoding   string // charset of incoming text; "" means UTF-8
	LogLevel   string
}

// OutputConfig controls where and how entries are written.
type OutputConfig struct {
	Dir     string
	Pattern string // strftime pattern for the file name
	Mode    string // "append" or "new"
	Lock    bool   // advisory lock around each append
	Echo    bool   // also print each entry to stderr
	JSON    bool   // echo as JSON instead of the file block
}

// TranscribeConfig lists the providers tried, in order, for audio input.
// None are configured by default; "demo" must be asked for explicitly.
type TranscribeConfig struct {
	Providers []string
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Output: OutputConfig{
			Dir:     getenv("TRANSCRIPTLOG_DIR", "out"),
			Pattern: getenv("TRANSCRIPTLOG_PATTERN", "%Y-%m-%d.txt"),
			Mode:    getenv("TRANSCRIPTLOG_MODE", "append"),
			Lock:    getenvBool("TRANSCRIPTLOG_LOCK", true),
			Echo:    getenvBool("TRANSCRIPTLOG_ECHO", false),
			JSON:    getenvBool("TRANSCRIPTLOG_ECHO_JSON", false),
		},
		Transcribe: TranscribeConfig{
			Providers: getenvList("TRANSCRIPTLOG_PROVIDERS", nil),
		},
		Encoding: os.Getenv("TRANSCRIPTLOG_ENCODING"),
		LogLevel: getenv("TRANSCRIPTLOG_LOG_LEVEL", "info"),
	}
}

// Validate checks the config for values that cannot work. All problems are
// reported together.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Output.Dir) == "" {
		errs = append(errs, errors.New("output dir must not be empty"))
	}
	if c.Output.Pattern == "" {
		errs = append(errs, errors.New("filename pattern must not be empty"))
	}
	switch strings.ToLower(strings.TrimSpace(c.Output.Mode)) {
	case "append", "new", "newfile", "new-file":
	default:
		errs = append(errs, fmt.Errorf("output mode must be append or new, got %q", c.Output.Mode))
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level must be debug, info, warn or error, got %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// getenvList splits a comma-separated variable, dropping blanks.
func getenvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
