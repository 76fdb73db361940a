package looksee

import "sort"

// Method is one directly-defined method of an Entry: its raw name and
// its effective classification for this path.
type Method struct {
	Name string
	Tag  Visibility
}

// Entry is one module's contribution to a lookup path: the methods
// defined directly on it, tagged by visibility or Overridden, plus a
// renderable label. Within an entry every name appears once.
type Entry struct {
	node    Node
	module  Module
	label   string
	tags    map[string]Visibility
	names   []string // displayed names, alphabetical
	defined []string // all directly-defined names, unfiltered
}

// newEntry builds the entry for one chain node. seen holds the names
// already emitted by more-derived entries of the same path; a name
// present there is tagged Overridden regardless of its raw visibility,
// and omitted entirely when the overridden option is off. The caller
// merges Defined into seen afterwards.
func newEntry(p Provider, n Node, seen map[string]bool, opts Options) *Entry {
	mod := p.AsModule(n)
	e := &Entry{
		node:   n,
		module: mod,
		label:  p.DisplayLabel(mod),
		tags:   make(map[string]Visibility),
	}
	for _, vis := range visibilities {
		names := p.DirectMethods(mod, vis)
		e.defined = append(e.defined, names...)
		if !opts.enabled(vis) {
			continue
		}
		for _, name := range names {
			tag := vis
			if seen[name] {
				tag = Overridden
			}
			if tag == Overridden && !opts.enabled(Overridden) {
				continue
			}
			if _, dup := e.tags[name]; dup {
				continue
			}
			e.tags[name] = tag
			e.names = append(e.names, name)
		}
	}
	sort.Strings(e.names)
	return e
}

// Label returns the module's display name, bracket-wrapped per
// singleton nesting level.
func (e *Entry) Label() string { return e.label }

// Node returns the chain node this entry was built from.
func (e *Entry) Node() Node { return e.node }

// Methods returns the displayed methods in alphabetical order by raw
// name.
func (e *Entry) Methods() []Method {
	out := make([]Method, len(e.names))
	for i, name := range e.names {
		out[i] = Method{Name: name, Tag: e.tags[name]}
	}
	return out
}

// Tag returns the effective classification of name on this entry.
func (e *Entry) Tag(name string) (Visibility, bool) {
	tag, ok := e.tags[name]
	return tag, ok
}

// Defined returns every name defined directly on the node, independent
// of the visibility filter. Shadowing further down the chain is
// computed over this set: the real runtime resolves by name no matter
// what the report chooses to display.
func (e *Entry) Defined() []string { return e.defined }
