package expansion

import (
	"errors"
	"log/slog"

	"github.com/AG-Philipsen/hopping-large-nt/wilson"
)

var (
	// ErrInvalidOrder is returned for an odd order or an order below 2.
	ErrInvalidOrder = errors.New("expansion: order must be even and at least 2")

	// ErrInvalidConfiguration indicates an unbalanced sequence or malformed
	// trace bounds.
	ErrInvalidConfiguration = errors.New("expansion: invalid configuration")

	// ErrOverflow indicates a sub-configuration overlaid past the end of the
	// composite sequence.
	ErrOverflow = errors.New("expansion: sub-configuration overflows the sequence")

	// ErrLinkNotFound indicates a step without a matching link partner.
	ErrLinkNotFound = errors.New("expansion: unable to find matching link")

	// ErrTraceIndex indicates a step index outside every trace bound.
	ErrTraceIndex = errors.New("expansion: index is not within the trace bounds")

	// ErrIndexNotFound indicates a colour index with no contraction partner.
	ErrIndexNotFound = errors.New("expansion: colour index has no contraction partner")

	// ErrTimeIndex indicates a loop time missing from the branch ordering.
	ErrTimeIndex = errors.New("expansion: could not find the time index")

	// ErrBadWorkers is returned when Options.Workers < 1.
	ErrBadWorkers = errors.New("expansion: workers must be at least 1")

	// ErrNilSink is returned when Run is given no term sink.
	ErrNilSink = errors.New("expansion: sink is nil")

	// ErrNotGenerated is returned when a catalog holds no configurations.
	ErrNotGenerated = errors.New("expansion: configurations have not been generated")
)

// Symbol is one step of a configuration.
type Symbol int8

const (
	// Backward is an M step (hop backwards in time).
	Backward Symbol = -1
	// Forward is a P step (hop forwards in time).
	Forward Symbol = 1
)

// String renders Forward as "p" and Backward as "m".
func (s Symbol) String() string {
	if s == Forward {
		return "p"
	}

	return "m"
}

// Sink receives the terms produced by Run.
type Sink interface {
	Submit(w *wilson.String) error
}

// Options configures Run.
type Options struct {
	// Workers is the number of configurations processed concurrently.
	// Terms are always handed to the sink serially, in catalog order.
	Workers int

	// Logger receives debug progress; defaults to slog.Default().
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns serial processing with the default logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  slog.Default(),
	}
}

// WithWorkers sets the number of concurrent configuration workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger installs l; a nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
