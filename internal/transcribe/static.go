package transcribe

import (
	"context"
	"log/slog"
)

// DemoText is what the demo provider returns for every file.
const DemoText = "This is a demo transcription."

func init() {
	Register("demo", func() Provider {
		return &staticProvider{name: "demo", text: DemoText, warn: true}
	})
}

// staticProvider answers every request with fixed text. It stands in for a
// real backend when none is installed.
type staticProvider struct {
	name string
	text string
	warn bool // flag every answer as placeholder text
}

// Static returns a Provider that always yields text.
func Static(name, text string) Provider {
	return &staticProvider{name: name, text: text}
}

func (s *staticProvider) Name() string { return s.name }

func (s *staticProvider) Transcribe(_ context.Context, audioPath string) (string, error) {
	if s.warn {
		slog.Warn("demo provider answered; logged text is a placeholder, not a transcription",
			"provider", s.name, "audio", audioPath)
	}
	return s.text, nil
}

// Func adapts a plain function into a Provider.
type Func struct {
	ProviderName string
	Fn           func(ctx context.Context, audioPath string) (string, error)
}

func (f Func) Name() string { return f.ProviderName }

func (f Func) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return f.Fn(ctx, audioPath)
}
