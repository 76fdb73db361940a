package looksee

import (
	"fmt"

	"github.com/wonderchook/looksee/pkg/style"
)

// Inspector runs lookup-path queries against one Provider with its own
// configuration. Fields left unset fall back to the package-wide
// defaults, read afresh at the start of every query.
type Inspector struct {
	provider Provider
	defaults Options     // nil means DefaultOptions
	styles   style.Table // nil means DefaultStyles
	width    int         // 0 means probe
}

// InspectorOption configures an Inspector at construction.
type InspectorOption func(*Inspector)

// WithDefaults replaces the inspector's default option set.
func WithDefaults(o Options) InspectorOption {
	return func(ins *Inspector) { ins.defaults = o.Clone() }
}

// WithStyles sets the style table used for rendering.
func WithStyles(t style.Table) InspectorOption {
	return func(ins *Inspector) { ins.styles = t }
}

// WithWidth fixes the render width, bypassing the terminal probe.
func WithWidth(n int) InspectorOption {
	return func(ins *Inspector) { ins.width = n }
}

// New creates an Inspector over the given provider.
func New(p Provider, opts ...InspectorOption) *Inspector {
	ins := &Inspector{provider: p}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// LookupPath builds the subject's lookup path. Arguments layer onto
// the inspector's defaults in order: visibility shortcuts enable one
// flag each, an Options map merges key by key, and later arguments win
// on collision.
//
// The path is a snapshot: provider data is read eagerly here, never at
// render time.
func (ins *Inspector) LookupPath(obj any, opts ...Option) (*Path, error) {
	if ins.provider == nil {
		return nil, fmt.Errorf("%w: inspector has no provider", ErrNoLookupPath)
	}
	base := ins.defaults
	if base == nil {
		base = DefaultOptions
	}
	styles := ins.styles
	if styles == nil {
		styles = DefaultStyles
	}
	return buildPath(ins.provider, obj, merge(base, opts...), styles, ins.width)
}
