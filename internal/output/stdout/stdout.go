package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/transcriptlog/internal/model"
)

// Output echoes entries to a writer, os.Stdout by default. Text mode prints
// the same block that lands in the log file; JSON mode prints one object
// per line.
type Output struct {
	w      io.Writer
	enc    *json.Encoder
	asJSON bool
}

// New creates an echo output. A nil w means os.Stdout.
func New(w io.Writer, asJSON bool) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{w: w, enc: json.NewEncoder(w), asJSON: asJSON}
}

func (o *Output) Write(_ context.Context, entry model.Entry) error {
	if o.asJSON {
		if err := o.enc.Encode(entry); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	if _, err := o.w.Write(entry.Render()); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
