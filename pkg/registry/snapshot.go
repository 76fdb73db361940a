package registry

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wonderchook/looksee/pkg/looksee"
)

// Snapshot is the YAML wire form of a registry: a reflection dump any
// runtime can emit so its objects can be inspected offline.
type Snapshot struct {
	Modules []SnapshotModule `yaml:"modules"`
	Objects []SnapshotObject `yaml:"objects"`
}

// SnapshotModule describes one module or class.
type SnapshotModule struct {
	Name         string          `yaml:"name"`
	Kind         string          `yaml:"kind"` // "class" or "module"; empty means class
	Superclass   string          `yaml:"superclass,omitempty"`
	Includes     []string        `yaml:"includes,omitempty"`
	Methods      SnapshotMethods `yaml:"methods,omitempty"`
	ClassMethods SnapshotMethods `yaml:"class_methods,omitempty"`
	Undefined    []string        `yaml:"undefined,omitempty"`
}

// SnapshotMethods partitions method names by raw visibility.
type SnapshotMethods struct {
	Public    []string `yaml:"public,omitempty"`
	Protected []string `yaml:"protected,omitempty"`
	Private   []string `yaml:"private,omitempty"`
}

// SnapshotObject describes a registered instance, optionally with
// methods defined directly on it.
type SnapshotObject struct {
	Name             string          `yaml:"name"`
	Class            string          `yaml:"class"`
	SingletonMethods SnapshotMethods `yaml:"singleton_methods,omitempty"`
}

// Load parses a YAML snapshot and builds the registry it describes.
// Modules may reference each other in any order; superclass and
// include links are resolved in a second pass, and dangling references
// are errors.
func Load(r io.Reader) (*Registry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap.Build()
}

// Build materializes the snapshot into a registry.
func (s *Snapshot) Build() (*Registry, error) {
	reg := New()

	// First pass: declare every namespace so links can resolve.
	for _, sm := range s.Modules {
		switch sm.Kind {
		case "", "class":
			reg.NewClass(sm.Name, nil)
		case "module":
			reg.NewModule(sm.Name)
		default:
			return nil, fmt.Errorf("module %q: unknown kind %q", sm.Name, sm.Kind)
		}
	}

	// Second pass: link and populate.
	for _, sm := range s.Modules {
		if sm.Kind == "module" {
			m := reg.modules[sm.Name]
			sm.Methods.defineOn(m)
			m.Undef(sm.Undefined...)
			continue
		}
		c := reg.classes[sm.Name]
		if sm.Superclass != "" {
			super, ok := reg.classes[sm.Superclass]
			if !ok {
				return nil, fmt.Errorf("class %q: unknown superclass %q", sm.Name, sm.Superclass)
			}
			c.super = super
		}
		for _, include := range sm.Includes {
			mixin, ok := reg.modules[include]
			if !ok {
				return nil, fmt.Errorf("class %q: unknown include %q", sm.Name, include)
			}
			c.mixins = append(c.mixins, mixin)
		}
		sm.Methods.defineOn(c.Module)
		sm.ClassMethods.defineOn(c.SingletonMethods(1))
		c.Undef(sm.Undefined...)
	}

	for _, so := range s.Objects {
		class, ok := reg.classes[so.Class]
		if !ok {
			return nil, fmt.Errorf("object %q: unknown class %q", so.Name, so.Class)
		}
		obj := reg.NewObject(so.Name, class)
		if !so.SingletonMethods.empty() {
			obj.Define(looksee.Public, so.SingletonMethods.Public...)
			obj.Define(looksee.Protected, so.SingletonMethods.Protected...)
			obj.Define(looksee.Private, so.SingletonMethods.Private...)
		}
	}
	return reg, nil
}

func (sm SnapshotMethods) defineOn(m *Module) {
	m.Define(looksee.Public, sm.Public...)
	m.Define(looksee.Protected, sm.Protected...)
	m.Define(looksee.Private, sm.Private...)
}

func (sm SnapshotMethods) empty() bool {
	return len(sm.Public) == 0 && len(sm.Protected) == 0 && len(sm.Private) == 0
}
