package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonderchook/looksee/pkg/looksee"
)

const sampleSnapshot = `
modules:
  - name: Kernel
    kind: module
    methods:
      public: [tap]
      private: [puts]
  - name: Object
    kind: class
    includes: [Kernel]
    methods:
      public: [inspect, to_s]
  - name: Greeter
    kind: class
    superclass: Object
    methods:
      public: [greet, to_s]
      protected: [compose]
      private: [audience]
    class_methods:
      public: [polite]
    undefined: [legacy_greet]
objects:
  - name: greeter
    class: Greeter
    singleton_methods:
      public: [shout]
`

func TestLoad_BuildsRegistryFromSnapshot(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)

	got := labels(t, reg, "greeter")
	assert.Equal(t, []string{"[greeter]", "Greeter", "Object", "Kernel"}, got)

	ins := looksee.New(reg)
	path, err := ins.LookupPath("greeter")
	require.NoError(t, err)

	entries := path.Entries()
	require.Len(t, entries, 4)

	tag, ok := entries[1].Tag("greet")
	require.True(t, ok)
	assert.Equal(t, looksee.Public, tag)

	// Greeter redefines to_s, so Object's is shadowed.
	tag, ok = entries[2].Tag("to_s")
	require.True(t, ok)
	assert.Equal(t, looksee.Overridden, tag)

	// Explicitly undefined names never surface.
	_, ok = entries[1].Tag("legacy_greet")
	assert.False(t, ok)
}

func TestLoad_ExposesClassMethodsOnSingletonChain(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)

	ins := looksee.New(reg)
	path, err := ins.LookupPath("Greeter")
	require.NoError(t, err)

	entries := path.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "[Greeter]", entries[0].Label())

	tag, ok := entries[0].Tag("polite")
	require.True(t, ok)
	assert.Equal(t, looksee.Public, tag)
}

func TestLoad_Errors_When_ReferencesDangling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown superclass",
			doc:  "modules:\n  - name: C\n    superclass: Ghost\n",
		},
		{
			name: "unknown include",
			doc:  "modules:\n  - name: C\n    includes: [Ghost]\n",
		},
		{
			name: "unknown object class",
			doc:  "objects:\n  - name: o\n    class: Ghost\n",
		},
		{
			name: "unknown kind",
			doc:  "modules:\n  - name: C\n    kind: metaclass\n",
		},
		{
			name: "malformed yaml",
			doc:  "modules: [\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}
