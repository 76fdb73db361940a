package looksee

import "github.com/wonderchook/looksee/pkg/style"

// Options is a string-keyed option set for a lookup-path query. The
// recognized keys are the four Visibility values; unrecognized keys are
// carried inertly and never validated.
type Options map[string]bool

// Option is anything that can adjust a query's effective options.
// A Visibility shortcut sets its own key true; an Options map merges
// wholesale, later arguments overriding earlier ones on collision.
type Option interface {
	apply(Options)
}

func (v Visibility) apply(o Options) { o[string(v)] = true }

func (o Options) apply(dst Options) {
	for k, v := range o {
		dst[k] = v
	}
}

// Clone returns an independent copy of o.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// enabled reports whether the visibility's key is set.
func (o Options) enabled(v Visibility) bool { return o[string(v)] }

// merge layers opts over base in order: base first, then each opt,
// later entries winning on key collision.
func merge(base Options, opts ...Option) Options {
	out := base.Clone()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(out)
		}
	}
	return out
}

// Process-wide defaults, read at the start of each query made through
// an Inspector that carries no override of its own. Mutating them
// affects subsequent queries, never a query in flight; callers are
// responsible for not mutating concurrently with queries.
var (
	// DefaultOptions enables every visibility and shadowed-method
	// display.
	DefaultOptions = Options{
		string(Public):     true,
		string(Protected):  true,
		string(Private):    true,
		string(Overridden): true,
	}

	// DefaultWidth is the render width of last resort, used when no
	// explicit width is given and the terminal cannot be probed.
	DefaultWidth = 80

	// DefaultStyles renders unstyled text.
	DefaultStyles = style.Plain()
)
