package flow

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Solver via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewSolver.
type Option func(*Options)

// Options holds the parameters of a max-flow run.
type Options struct {
	// Finder searches for augmenting paths. Defaults to BFS.
	Finder PathFinder

	// Logger receives run summaries at info level and, when Verbose is set,
	// one debug entry per augmentation. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// Verbose enables per-augmentation logging.
	Verbose bool

	// OnAugment is called after each augmentation with the applied path
	// (source → sink) and its bottleneck flow.
	OnAugment func(path []EdgeID, flow int64)

	err error
}

// DefaultOptions returns Options with BFS, a silent logger, no hooks.
func DefaultOptions() Options {
	return Options{
		Finder:    BFS{},
		Logger:    discardLogger(),
		OnAugment: func([]EdgeID, int64) {},
	}
}

// WithPathFinder selects the augmenting-path search strategy.
func WithPathFinder(f PathFinder) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: PathFinder cannot be nil", ErrOptionViolation)
			return
		}
		o.Finder = f
	}
}

// WithLogger routes solver logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVerbose logs every augmentation at debug level.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithOnAugment registers a callback run after each augmentation.
func WithOnAugment(fn func(path []EdgeID, flow int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
