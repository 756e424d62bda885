package output

import (
	"context"
	"errors"

	"github.com/crimson-sun/transcriptlog/internal/model"
)

var (
	// ErrInvalidArgument marks a caller error: bad input or configuration.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIO marks a filesystem failure while creating or writing the log.
	ErrIO = errors.New("i/o error")
)

// Output defines the interface for transcript entry destinations.
type Output interface {
	Write(ctx context.Context, entry model.Entry) error
	Close() error
}
