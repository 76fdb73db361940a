package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonderchook/looksee/pkg/looksee"
)

// labels walks a subject's chain through the provider interface.
func labels(t *testing.T, reg *Registry, subject any) []string {
	t.Helper()
	node, err := reg.ClassOf(subject)
	require.NoError(t, err)
	var out []string
	for {
		out = append(out, reg.DisplayLabel(reg.AsModule(node)))
		next, ok := reg.SuperclassOf(node)
		if !ok {
			return out
		}
		node = next
	}
}

func rubyishHierarchy(reg *Registry) *Object {
	kernel := reg.NewModule("Kernel")
	object := reg.NewClass("Object", nil, kernel)
	b := reg.NewClass("B", object)
	m1 := reg.NewModule("M1")
	m2 := reg.NewModule("M2")
	d := reg.NewClass("D", b, m1, m2)
	return reg.NewObject("subject", d)
}

func TestClassOf_WalksMixinsMostRecentFirst(t *testing.T) {
	t.Parallel()

	reg := New()
	subject := rubyishHierarchy(reg)

	assert.Equal(t,
		[]string{"D", "M2", "M1", "B", "Object", "Kernel"},
		labels(t, reg, subject))
}

func TestClassOf_PutsObjectSingletonFirst_When_ObjectHasOwnMethods(t *testing.T) {
	t.Parallel()

	reg := New()
	subject := rubyishHierarchy(reg)
	subject.Define(looksee.Public, "special")

	got := labels(t, reg, subject)
	assert.Equal(t, "[subject]", got[0])
	assert.Equal(t, "D", got[1])
}

func TestClassOf_BracketsSingletonLabels_When_NestingDeepens(t *testing.T) {
	t.Parallel()

	reg := New()
	object := reg.NewClass("Object", nil)
	c := reg.NewClass("C", object)

	assert.Equal(t, []string{"[C]", "[Object]"}, labels(t, reg, c))
	assert.Equal(t, []string{"[[C]]", "[[Object]]"}, labels(t, reg, Singleton{Of: c}))
	assert.Equal(t, []string{"[[[C]]]", "[[[Object]]]"}, labels(t, reg, Singleton{Of: Singleton{Of: c}}))
}

func TestDirectMethods_ExcludesUndefinedNames_UnderEveryVisibility(t *testing.T) {
	t.Parallel()

	reg := New()
	c := reg.NewClass("C", nil)
	c.Define(looksee.Public, "kept", "gone")
	c.Define(looksee.Private, "hidden_gone")
	c.Undef("gone", "hidden_gone")

	node, err := reg.ClassOf(reg.NewObject("o", c))
	require.NoError(t, err)
	mod := reg.AsModule(node)

	assert.Equal(t, []string{"kept"}, reg.DirectMethods(mod, looksee.Public))
	assert.Empty(t, reg.DirectMethods(mod, looksee.Private))
	assert.Empty(t, reg.DirectMethods(mod, looksee.Protected))
}

func TestDefine_MovesName_When_VisibilityChanges(t *testing.T) {
	t.Parallel()

	reg := New()
	c := reg.NewClass("C", nil)
	c.Define(looksee.Public, "flip")
	c.Define(looksee.Private, "flip")

	node, err := reg.ClassOf(reg.NewObject("o", c))
	require.NoError(t, err)
	mod := reg.AsModule(node)

	assert.Empty(t, reg.DirectMethods(mod, looksee.Public))
	assert.Equal(t, []string{"flip"}, reg.DirectMethods(mod, looksee.Private))
}

func TestClassOf_ResolvesSubjectsByName(t *testing.T) {
	t.Parallel()

	reg := New()
	rubyishHierarchy(reg)

	got := labels(t, reg, "subject")
	assert.Equal(t, "D", got[0])

	got = labels(t, reg, "D")
	assert.Equal(t, "[D]", got[0])
}

func TestClassOf_Errors_When_SubjectIsUnknown(t *testing.T) {
	t.Parallel()

	reg := New()
	tests := []struct {
		name    string
		subject any
	}{
		{name: "unknown name", subject: "nobody"},
		{name: "unsupported type", subject: 42},
		{name: "singleton of non-class", subject: Singleton{Of: 42}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := reg.ClassOf(tc.subject)
			assert.Error(t, err)
		})
	}
}

func TestRegistry_RendersThroughLooksee_When_UsedAsProvider(t *testing.T) {
	t.Parallel()

	reg := New()
	object := reg.NewClass("Object", nil)
	object.Define(looksee.Public, "inspect")
	c := reg.NewClass("C", object)
	c.Define(looksee.Public, "inspect", "call")
	subject := reg.NewObject("o", c)

	ins := looksee.New(reg)
	path, err := ins.LookupPath(subject)
	require.NoError(t, err)

	got := path.Render(looksee.Width(40))
	want := "C\n" +
		"  call  inspect\n" +
		"\n" +
		"Object\n" +
		"  inspect\n" +
		"\n"
	assert.Equal(t, want, got)
}
