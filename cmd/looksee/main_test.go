package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSnapshot = `modules:
  - name: Object
    methods:
      public: [inspect, to_s]
  - name: Greeter
    superclass: Object
    methods:
      public: [greet, to_s]
      private: [audience]
objects:
  - name: greeter
    class: Greeter
`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot), 0o644))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_RendersLookupPath_When_SnapshotComesFromFile(t *testing.T) {
	path := writeSnapshot(t)
	code, stdout, stderr := runCLI(t, "", "-width", "30", path, "greeter")

	assert.Equal(t, 0, code, stderr)
	want := "Greeter\n" +
		"  audience  greet  to_s\n" +
		"\n" +
		"Object\n" +
		"  inspect  to_s\n" +
		"\n"
	assert.Equal(t, want, stdout)
}

func TestRun_RendersLookupPath_When_SnapshotComesFromStdin(t *testing.T) {
	code, stdout, _ := runCLI(t, testSnapshot, "-width", "30", "greeter")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Greeter\n")
	assert.Contains(t, stdout, "  audience  greet  to_s\n")
}

func TestRun_PicksOnlyObject_When_SubjectOmitted(t *testing.T) {
	path := writeSnapshot(t)
	code, stdout, _ := runCLI(t, "", "-width", "30", path)

	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "Greeter\n"))
}

func TestRun_FiltersVisibilities_When_FlagsDisableThem(t *testing.T) {
	path := writeSnapshot(t)

	code, stdout, _ := runCLI(t, "", "-width", "30", "-private=false", path, "greeter")
	require.Equal(t, 0, code)
	assert.NotContains(t, stdout, "audience")
	assert.Contains(t, stdout, "greet")

	code, stdout, _ = runCLI(t, "", "-width", "30", "-overridden=false", path, "greeter")
	require.Equal(t, 0, code)
	assert.Equal(t, "Greeter\n"+
		"  audience  greet  to_s\n"+
		"\n"+
		"Object\n"+
		"  inspect\n"+
		"\n", stdout)
}

func TestRun_InspectsClassSingleton_When_SubjectIsBracketed(t *testing.T) {
	path := writeSnapshot(t)
	code, stdout, _ := runCLI(t, "", "-width", "30", path, "Greeter")

	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "[Greeter]\n"))

	code, stdout, _ = runCLI(t, "", "-width", "30", path, "[Greeter]")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "[[Greeter]]\n"))
}

func TestRun_FailsWithUsageError_When_ArgumentsAreBad(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "too many args", args: []string{"a", "b", "c"}, want: 2},
		{name: "unknown flag", args: []string{"-frobnicate"}, want: 2},
		{name: "missing snapshot file", args: []string{"no/such.yaml", "greeter"}, want: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tc.args...)
			assert.Equal(t, tc.want, code)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestRun_FailsClosed_When_SubjectIsUnknown(t *testing.T) {
	path := writeSnapshot(t)
	code, _, stderr := runCLI(t, "", path, "stranger")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "stranger")
}

func TestRun_RefusesInteractive_When_SnapshotIsStdin(t *testing.T) {
	code, _, stderr := runCLI(t, testSnapshot, "-interactive", "greeter")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "snapshot file")
}
