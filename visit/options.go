// SPDX-License-Identifier: MIT

package visit

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Visitor. An invalid Option is recorded and surfaced
// as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables of a traversal.
type Options struct {
	// Logger receives debug-level lifecycle entries. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// MaxDepth, if > 0, drops pushes deeper than this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnPush is called for every queued item with its key and depth.
	OnPush func(key, depth int)

	// OnPop is called for every popped item, stale ones included.
	OnPop func(key, depth int)

	err error
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns Options with no depth limit, no-op hooks and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: discard,
		OnPush: func(int, int) {},
		OnPop:  func(int, int) {},
	}
}

// WithLogger routes lifecycle entries to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth limits how deep items may be pushed.
//
//	d > 0: pushes beyond depth d are dropped
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnPush registers a hook run for every queued item.
func WithOnPush(fn func(key, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a hook run for every popped item.
func WithOnPop(fn func(key, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}
