// Package transcribe runs speech-to-text providers in a fixed order until one
// returns text. Providers themselves are opaque; this package only decides
// which one answered and records why the others did not.
package transcribe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnavailable is returned by a provider that cannot run here at all
// (backend not installed, model missing, credentials unset).
var ErrUnavailable = errors.New("provider unavailable")

// ErrNoProviders is returned by a Chain with nothing to try.
var ErrNoProviders = errors.New("transcribe: no providers configured")

// Provider turns an audio file into text.
type Provider interface {
	Name() string
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// AttemptError records one provider's failure inside a Chain.
type AttemptError struct {
	Provider string
	Err      error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *AttemptError) Unwrap() error { return e.Err }

// ChainError is returned when every provider in a Chain failed.
type ChainError struct {
	Attempts []*AttemptError
}

func (e *ChainError) Error() string {
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.Error()
	}
	return "transcribe: all providers failed: " + strings.Join(parts, "; ")
}

func (e *ChainError) Unwrap() []error {
	errs := make([]error, len(e.Attempts))
	for i, a := range e.Attempts {
		errs[i] = a
	}
	return errs
}

// Result is the text a Chain produced and where it came from.
type Result struct {
	Text     string
	Provider string
	// Failed lists the providers tried before the one that answered.
	Failed []*AttemptError
}

// Chain tries providers in order and returns the first success.
type Chain struct {
	providers []Provider
}

// NewChain creates a Chain over providers, tried in the order given.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Names returns the provider names in try order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Transcribe runs each provider until one succeeds. Cancellation stops the
// chain immediately; it is not recorded as a provider failure.
func (c *Chain) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	if len(c.providers) == 0 {
		return Result{}, ErrNoProviders
	}

	var failed []*AttemptError
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		text, err := p.Transcribe(ctx, audioPath)
		if err == nil {
			return Result{Text: text, Provider: p.Name(), Failed: failed}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return Result{}, err
		}
		slog.Warn("transcription provider failed, trying next", "provider", p.Name(), "error", err)
		failed = append(failed, &AttemptError{Provider: p.Name(), Err: err})
	}
	return Result{}, &ChainError{Attempts: failed}
}
