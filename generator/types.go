package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/realtransducer/periodic"
	"github.com/katalvlaran/realtransducer/transducer"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("generator: invalid option supplied")

// Outputs lists the edge outputs tried by Decorations, in order.
var Outputs = [3]string{"", "0", "1"}

// Decoration is the (prints, consumes) label of one edge.
type Decoration struct {
	Prints   string
	Consumes bool
}

// Class is a set of machines with Equal initial behavior.
type Class struct {
	// Behavior is the shared fingerprint, from the first member.
	Behavior []periodic.Value

	// Members indexes the machines passed to Classify, ascending.
	Members []int
}

// Sample is a machine together with its initial behavior.
type Sample struct {
	Automaton *transducer.Automaton
	Behavior  []periodic.Value
}

// Option configures enumeration and classification.
type Option func(*Options)

// Options holds the enumeration bounds and collaborators.
type Options struct {
	// MaxStates is the largest machine size enumerated (≥ 1).
	MaxStates int

	// Limit caps the number of results; 0 means no cap.
	Limit int

	// Bits is the input length used for behavior fingerprints.
	Bits int

	// Workers bounds concurrent fingerprint evaluation.
	Workers int

	// Logger receives progress at Debug level.
	Logger *slog.Logger

	// Metrics, if set, counts candidates.
	Metrics *Metrics

	err error
}

// DefaultOptions enumerates sizes 1 and 2 without a cap and fingerprints
// on 5-bit inputs with GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		MaxStates: 2,
		Limit:     0,
		Bits:      5,
		Workers:   runtime.GOMAXPROCS(0),
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithMaxStates sets the largest size; n < 1 → ErrOptionViolation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxStates must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithLimit caps the result count; n < 0 → ErrOptionViolation.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithBits sets the fingerprint input length; n outside 0..transducer.MaxInputBits → ErrOptionViolation.
func WithBits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Bits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		if n > transducer.MaxInputBits {
			o.err = fmt.Errorf("%w: Bits above %d (%d)", ErrOptionViolation, transducer.MaxInputBits, n)
			return
		}
		o.Bits = n
	}
}

// WithWorkers bounds concurrency; n < 1 → ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the progress logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches candidate counters.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
