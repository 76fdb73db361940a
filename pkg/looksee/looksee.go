// Package looksee computes and renders method lookup paths.
//
// A lookup path is the ordered sequence of modules a dynamic object
// system consults when resolving a method call on an object: the
// object's singleton class if it has one, its class, mixed-in modules,
// then each ancestor in turn. For every module on the path the package
// reports the methods defined directly on it, classified by visibility
// and by whether a more-derived module already defines a method of the
// same name.
//
// The walk itself is delegated to a Provider, so any object system able
// to answer five reflection queries can be inspected; pkg/registry
// ships a static in-memory provider.
package looksee

import "errors"

// Visibility classifies a method within a lookup-path entry. The three
// raw visibilities double as option shortcuts: passing one to
// LookupPath enables that visibility for the query.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"

	// Overridden tags a method shadowed by an earlier entry on the
	// path. It is a display classification only; providers are never
	// asked for it. As an option shortcut it controls whether shadowed
	// methods are shown at all.
	Overridden Visibility = "overridden"
)

// visibilities is the fixed provider-query order.
var visibilities = []Visibility{Public, Protected, Private}

// Node is one step in an object's method resolution order: an ordinary
// class or module, or a synthetic singleton container. Nodes are
// borrowed handles into the provider's object graph; the core only
// queries them.
type Node any

// Module is a Node viewed as a namespace of directly-defined methods.
type Module any

// Provider enumerates an object system's method resolution order. All
// five queries are synchronous reads over live reflection data.
//
// DirectMethods must return only names defined directly on the module:
// no inherited names, and no names the runtime has explicitly
// undefined. The core performs no additional filtering.
type Provider interface {
	// ClassOf returns the most-derived node of obj's resolution chain:
	// its singleton node when it carries one, else its class.
	ClassOf(obj any) (Node, error)

	// SuperclassOf returns the next node up the chain, or ok=false at
	// the root.
	SuperclassOf(n Node) (next Node, ok bool)

	// AsModule views a chain node as a namespace of methods.
	AsModule(n Node) Module

	// DirectMethods lists names defined directly on m with the given
	// raw visibility.
	DirectMethods(m Module, v Visibility) []string

	// DisplayLabel renders a human name for m. Singleton containers
	// come back bracket-wrapped, one layer per singleton level:
	// a class C's singleton is "[C]", its singleton's singleton "[[C]]".
	DisplayLabel(m Module) string
}

// ErrNoLookupPath reports that no resolution chain is derivable for a
// subject. Query errors from providers are wrapped around it so callers
// can test with errors.Is.
var ErrNoLookupPath = errors.New("no lookup path derivable for object")
