// Package registry is a static, in-memory object system implementing
// the looksee Provider interface.
//
// Hosts with live reflection plug their own Provider into looksee; the
// registry serves everything else. Classes, mixins, per-object
// singleton methods and explicit undefs are declared up front (in code
// or from a YAML snapshot, see snapshot.go) and then inspected exactly
// like a live runtime would be.
package registry

import (
	"fmt"
	"sort"

	"github.com/wonderchook/looksee/pkg/looksee"
)

// Module is a named namespace of directly-defined methods.
type Module struct {
	name      string
	methods   map[looksee.Visibility]map[string]bool
	undefined map[string]bool
}

func newModule(name string) *Module {
	return &Module{
		name: name,
		methods: map[looksee.Visibility]map[string]bool{
			looksee.Public:    {},
			looksee.Protected: {},
			looksee.Private:   {},
		},
		undefined: make(map[string]bool),
	}
}

// Name returns the module's name.
func (m *Module) Name() string { return m.name }

// Define records names under the given raw visibility. Defining a name
// again moves it: a name lives in at most one visibility.
func (m *Module) Define(v looksee.Visibility, names ...string) *Module {
	set, ok := m.methods[v]
	if !ok {
		return m
	}
	for _, name := range names {
		for _, other := range m.methods {
			delete(other, name)
		}
		set[name] = true
		delete(m.undefined, name)
	}
	return m
}

// Undef marks names explicitly undefined: they disappear from every
// visibility and stay hidden until defined again.
func (m *Module) Undef(names ...string) *Module {
	for _, name := range names {
		m.undefined[name] = true
	}
	return m
}

// directMethods lists the module's names under v, minus undefs, sorted.
func (m *Module) directMethods(v looksee.Visibility) []string {
	set := m.methods[v]
	out := make([]string, 0, len(set))
	for name := range set {
		if !m.undefined[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Class is a module with a position in an inheritance hierarchy.
// Mixins are listed in include order; like a live runtime, the most
// recently included module is consulted first.
type Class struct {
	*Module
	super      *Class
	mixins     []*Module
	singletons map[int]*Module // singleton method namespaces by depth
}

// Super returns the superclass, or nil at the root.
func (c *Class) Super() *Class { return c.super }

// SingletonMethods returns the class's singleton namespace at the
// given nesting depth (1 = class-level methods), creating it on first
// use.
func (c *Class) SingletonMethods(depth int) *Module {
	if c.singletons == nil {
		c.singletons = make(map[int]*Module)
	}
	m, ok := c.singletons[depth]
	if !ok {
		m = newModule(bracket(c.name, depth))
		c.singletons[depth] = m
	}
	return m
}

// DefineClassMethod records a depth-1 singleton method.
func (c *Class) DefineClassMethod(v looksee.Visibility, names ...string) *Class {
	c.SingletonMethods(1).Define(v, names...)
	return c
}

// Object is a registered instance. Methods defined on it live in its
// own singleton namespace, consulted before its class.
type Object struct {
	name      string
	class     *Class
	singleton *Module
}

// Name returns the object's registered name.
func (o *Object) Name() string { return o.name }

// Class returns the object's class.
func (o *Object) Class() *Class { return o.class }

// Define records a singleton method directly on the object.
func (o *Object) Define(v looksee.Visibility, names ...string) *Object {
	if o.singleton == nil {
		o.singleton = newModule(bracket(o.name, 1))
	}
	o.singleton.Define(v, names...)
	return o
}

// Singleton designates the singleton class of a class (or of another
// Singleton) as a query subject, for inspecting class-level and
// deeper metaclass chains.
type Singleton struct {
	Of any
}

// Registry holds the declared object system and implements
// looksee.Provider over it.
type Registry struct {
	modules map[string]*Module
	classes map[string]*Class
	objects map[string]*Object
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		modules: make(map[string]*Module),
		classes: make(map[string]*Class),
		objects: make(map[string]*Object),
	}
}

// NewModule declares a mixin module.
func (r *Registry) NewModule(name string) *Module {
	m := newModule(name)
	r.modules[name] = m
	return m
}

// NewClass declares a class under super (nil for a root), mixing in
// the given modules in include order.
func (r *Registry) NewClass(name string, super *Class, mixins ...*Module) *Class {
	c := &Class{Module: newModule(name), super: super, mixins: mixins}
	r.classes[name] = c
	return c
}

// NewObject registers an instance of class under a name.
func (r *Registry) NewObject(name string, class *Class) *Object {
	o := &Object{name: name, class: class}
	r.objects[name] = o
	return o
}

// Class looks up a declared class by name.
func (r *Registry) Class(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Module looks up a declared mixin by name.
func (r *Registry) Module(name string) (*Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Object looks up a registered instance by name.
func (r *Registry) Object(name string) (*Object, bool) {
	o, ok := r.objects[name]
	return o, ok
}

// ObjectNames lists the registered instance names, sorted.
func (r *Registry) ObjectNames() []string {
	out := make([]string, 0, len(r.objects))
	for name := range r.objects {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Subject resolves a snapshot subject name: objects first, then
// classes.
func (r *Registry) Subject(name string) (any, error) {
	if o, ok := r.objects[name]; ok {
		return o, nil
	}
	if c, ok := r.classes[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown subject %q", name)
}

// chainNode is one position in a resolution chain. It serves as both
// looksee.Node and looksee.Module: the namespace view adds nothing
// beyond the label already computed here.
type chainNode struct {
	mod   *Module
	label string
	next  *chainNode
}

// bracket wraps name in depth layers of brackets.
func bracket(name string, depth int) string {
	for ; depth > 0; depth-- {
		name = "[" + name + "]"
	}
	return name
}

// instanceChain links the full instance-method resolution chain of a
// class: the class itself, its mixins most-recent first, then the
// superclass chain.
func (r *Registry) instanceChain(c *Class) *chainNode {
	if c == nil {
		return nil
	}
	tail := r.instanceChain(c.super)
	for _, mixin := range c.mixins {
		tail = &chainNode{mod: mixin, label: mixin.name, next: tail}
	}
	return &chainNode{mod: c.Module, label: c.name, next: tail}
}

// singletonChain links the class-singleton chain at a nesting depth:
// [C] -> [B] -> ... following superclasses at the same depth.
func (r *Registry) singletonChain(c *Class, depth int) *chainNode {
	if c == nil {
		return nil
	}
	return &chainNode{
		mod:   c.SingletonMethods(depth),
		label: bracket(c.name, depth),
		next:  r.singletonChain(c.super, depth),
	}
}

// ClassOf returns the most-derived chain node for a subject: a
// registered object (its singleton first when it has one), a class
// (its class-singleton chain), a Singleton designator, or the name of
// any of these.
func (r *Registry) ClassOf(obj any) (looksee.Node, error) {
	switch subject := obj.(type) {
	case *Object:
		head := r.instanceChain(subject.class)
		if subject.singleton != nil {
			head = &chainNode{mod: subject.singleton, label: subject.singleton.name, next: head}
		}
		if head == nil {
			return nil, fmt.Errorf("object %q has no class", subject.name)
		}
		return head, nil
	case *Class:
		return r.singletonChain(subject, 1), nil
	case Singleton:
		depth := 1
		inner := subject.Of
		for {
			s, ok := inner.(Singleton)
			if !ok {
				break
			}
			depth++
			inner = s.Of
		}
		class, ok := inner.(*Class)
		if !ok {
			return nil, fmt.Errorf("singleton subject must wrap a class, got %T", inner)
		}
		return r.singletonChain(class, depth+1), nil
	case string:
		resolved, err := r.Subject(subject)
		if err != nil {
			return nil, err
		}
		return r.ClassOf(resolved)
	default:
		return nil, fmt.Errorf("unknown subject type %T", obj)
	}
}

// SuperclassOf advances one step up the chain.
func (r *Registry) SuperclassOf(n looksee.Node) (looksee.Node, bool) {
	node := n.(*chainNode)
	if node.next == nil {
		return nil, false
	}
	return node.next, true
}

// AsModule views a chain node as its method namespace.
func (r *Registry) AsModule(n looksee.Node) looksee.Module {
	return n
}

// DirectMethods lists names defined directly on the namespace with the
// given visibility, excluding explicit undefs.
func (r *Registry) DirectMethods(m looksee.Module, v looksee.Visibility) []string {
	return m.(*chainNode).mod.directMethods(v)
}

// DisplayLabel renders the namespace's name, bracket-wrapped per
// singleton nesting level.
func (r *Registry) DisplayLabel(m looksee.Module) string {
	return m.(*chainNode).label
}

var _ looksee.Provider = (*Registry)(nil)
