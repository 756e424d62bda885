package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/crimson-sun/transcriptlog/internal/config"
	"github.com/crimson-sun/transcriptlog/internal/logging"
	"github.com/crimson-sun/transcriptlog/internal/transcribe"
	"github.com/crimson-sun/transcriptlog/pkg/transcriptlog"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "transcriptlog: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("transcriptlog failed", "error", err)
		if errors.Is(err, transcriptlog.ErrInvalidArgument) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run appends one entry built from the arguments, a text file, stdin, or the
// transcription of an audio file, and prints the path it landed in.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("transcriptlog", flag.ContinueOnError)
	fs.StringVar(&cfg.Output.Dir, "dir", cfg.Output.Dir, "directory holding the log files")
	fs.StringVar(&cfg.Output.Pattern, "pattern", cfg.Output.Pattern, "strftime pattern naming the log file")
	fs.StringVar(&cfg.Output.Mode, "mode", cfg.Output.Mode, "append or new")
	fs.BoolVar(&cfg.Output.Lock, "lock", cfg.Output.Lock, "hold an advisory lock while appending")
	fs.BoolVar(&cfg.Output.Echo, "echo", cfg.Output.Echo, "also print the entry to stderr")
	fs.BoolVar(&cfg.Output.JSON, "json", cfg.Output.JSON, "echo as JSON and log as JSON")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "charset of the input text (e.g. shift_jis)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	textFile := fs.String("file", "", "read the text from this file instead of stdin")
	audio := fs.String("audio", "", "transcribe this audio file and log the result")
	providers := fs.String("providers", strings.Join(cfg.Transcribe.Providers, ","), "comma-separated transcription providers, tried in order")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Transcribe.Providers = strings.Split(*providers, ",")

	logging.Init(os.Stderr, cfg.Output.JSON, logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", transcriptlog.ErrInvalidArgument, err)
	}
	mode, err := transcriptlog.ParseMode(cfg.Output.Mode)
	if err != nil {
		return err
	}

	opts := []transcriptlog.Option{
		transcriptlog.WithDir(cfg.Output.Dir),
		transcriptlog.WithPattern(cfg.Output.Pattern),
		transcriptlog.WithMode(mode),
		transcriptlog.WithLocking(cfg.Output.Lock),
		transcriptlog.WithEncoding(cfg.Encoding),
	}
	if cfg.Output.Echo {
		if cfg.Output.JSON {
			opts = append(opts, transcriptlog.WithEchoJSON(os.Stderr))
		} else {
			opts = append(opts, transcriptlog.WithEcho(os.Stderr))
		}
	}
	l, err := transcriptlog.New(opts...)
	if err != nil {
		return err
	}
	defer l.Close()

	var path string
	switch {
	case *audio != "":
		path, err = appendTranscription(ctx, l, cfg.Transcribe.Providers, *audio)
	case fs.NArg() > 0:
		path, err = l.Append(ctx, strings.Join(fs.Args(), " "))
	case *textFile != "":
		path, err = appendFile(ctx, l, *textFile)
	default:
		path, err = l.AppendFrom(ctx, stdin)
	}
	if err != nil {
		return err
	}

	slog.Info("entry appended", "path", path, "mode", mode)
	fmt.Fprintln(stdout, path)
	return nil
}

func appendFile(ctx context.Context, l *transcriptlog.Logger, name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf("open text file: %w", err)
	}
	defer f.Close()
	return l.AppendFrom(ctx, f)
}

func appendTranscription(ctx context.Context, l *transcriptlog.Logger, names []string, audioPath string) (string, error) {
	chain, err := transcribe.FromNames(names)
	if err != nil {
		return "", fmt.Errorf("%w: %w", transcriptlog.ErrInvalidArgument, err)
	}
	if len(chain.Names()) == 0 {
		return "", fmt.Errorf("%w: no transcription providers configured (set -providers or TRANSCRIPTLOG_PROVIDERS; available: %s)",
			transcriptlog.ErrInvalidArgument, strings.Join(transcribe.Providers(), ", "))
	}
	res, err := chain.Transcribe(ctx, audioPath)
	if err != nil {
		return "", err
	}
	slog.Info("transcription complete", "provider", res.Provider, "failed_attempts", len(res.Failed))
	return l.Append(ctx, res.Text)
}
