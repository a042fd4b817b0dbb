package jeyson

import "cosmossdk.io/log"

// Options carries cross-cutting knobs for a parse that are not part of the
// grammar itself: currently, optional structural tracing.
type Options struct {
	// Logger receives Debug-level trace lines at structural boundaries
	// (begin/end array or object), for each member name, and for each
	// scalar value recognized, plus an Error-level line whenever Parse
	// invokes the error sink. Defaults to a no-op logger.
	Logger log.Logger
}

// DefaultOptions returns Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Logger: log.NewNopLogger()}
}

func (o Options) logger() log.Logger {
	if o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}
