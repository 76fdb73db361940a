// looksee renders the method lookup path of an object as a
// column-aligned, optionally colorized terminal report.
//
// Usage:
//
//	looksee [flags] snapshot.yaml [subject]
//	some-runtime --dump-reflection | looksee [flags] [subject]
//
// The snapshot is a YAML reflection dump (see pkg/registry); the
// subject is an object, class, or bracket-wrapped singleton name such
// as [Greeter]. With a single object in the snapshot the subject may
// be omitted.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/wonderchook/looksee/internal/config"
	"github.com/wonderchook/looksee/internal/tui"
	"github.com/wonderchook/looksee/pkg/looksee"
	"github.com/wonderchook/looksee/pkg/registry"
	"github.com/wonderchook/looksee/pkg/style"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Load()
	defaults := cfg.Options(looksee.DefaultOptions)

	fs := flag.NewFlagSet("looksee", flag.ContinueOnError)
	fs.SetOutput(stderr)
	widthFlag := fs.Int("width", cfg.Width, "Render width in cells (0 probes the terminal)")
	themeFlag := fs.String("theme", themeOr(cfg.Theme, "auto"), "Theme: auto, default, plain")
	publicFlag := fs.Bool("public", defaults[string(looksee.Public)], "Show public methods")
	protectedFlag := fs.Bool("protected", defaults[string(looksee.Protected)], "Show protected methods")
	privateFlag := fs.Bool("private", defaults[string(looksee.Private)], "Show private methods")
	overriddenFlag := fs.Bool("overridden", defaults[string(looksee.Overridden)], "Show shadowed methods")
	allFlag := fs.Bool("all", false, "Show everything, overriding the visibility flags")
	interactiveFlag := fs.Bool("interactive", false, "Browse the path in a TUI (requires a snapshot file)")
	debugFlag := fs.Bool("debug", false, "Log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.NewWithOptions(stderr, log.Options{Level: log.WarnLevel})
	if *debugFlag {
		logger.SetLevel(log.DebugLevel)
	}

	source, subjectName, fromFile, err := splitArgs(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "looksee: %v\n", err)
		return 2
	}

	var snapshot io.Reader = stdin
	if fromFile {
		f, err := os.Open(source)
		if err != nil {
			fmt.Fprintf(stderr, "looksee: %v\n", err)
			return 2
		}
		defer f.Close()
		snapshot = f
		logger.Debug("loading snapshot", "path", source)
	} else {
		logger.Debug("loading snapshot from stdin")
	}

	reg, err := registry.Load(snapshot)
	if err != nil {
		fmt.Fprintf(stderr, "looksee: %v\n", err)
		return 1
	}

	subject, title, err := resolveSubject(reg, subjectName)
	if err != nil {
		fmt.Fprintf(stderr, "looksee: %v\n", err)
		return 1
	}
	logger.Debug("inspecting", "subject", title)

	opts := looksee.Options{
		string(looksee.Public):     *publicFlag,
		string(looksee.Protected):  *protectedFlag,
		string(looksee.Private):    *privateFlag,
		string(looksee.Overridden): *overriddenFlag,
	}
	if *allFlag {
		for k := range opts {
			opts[k] = true
		}
	}

	styles := resolveTheme(*themeFlag, stdout)
	ins := looksee.New(reg,
		looksee.WithDefaults(opts),
		looksee.WithStyles(styles),
		looksee.WithWidth(*widthFlag),
	)

	if *interactiveFlag {
		if !fromFile {
			fmt.Fprintln(stderr, "looksee: -interactive needs a snapshot file, not stdin")
			return 2
		}
		if err := tui.Run(ins, subject, title, opts, styles); err != nil {
			fmt.Fprintf(stderr, "looksee: %v\n", err)
			return 1
		}
		return 0
	}

	path, err := ins.LookupPath(subject)
	if err != nil {
		fmt.Fprintf(stderr, "looksee: %v\n", err)
		return 1
	}
	fmt.Fprint(stdout, path.Render())
	return 0
}

// splitArgs sorts the positional arguments into snapshot source and
// subject name. A single argument naming an existing file is the
// snapshot; otherwise it is the subject and the snapshot comes from
// stdin.
func splitArgs(args []string) (source, subject string, fromFile bool, err error) {
	switch len(args) {
	case 0:
		return "", "", false, nil
	case 1:
		if _, statErr := os.Stat(args[0]); statErr == nil {
			return args[0], "", true, nil
		}
		return "", args[0], false, nil
	case 2:
		return args[0], args[1], true, nil
	default:
		return "", "", false, fmt.Errorf("too many arguments (want [snapshot.yaml] [subject])")
	}
}

// resolveSubject turns a subject name into a registry subject. Each
// layer of surrounding brackets asks for one more singleton level:
// "[Greeter]" is Greeter's singleton class. An empty name picks the
// snapshot's only object.
func resolveSubject(reg *registry.Registry, name string) (any, string, error) {
	if name == "" {
		names := reg.ObjectNames()
		if len(names) != 1 {
			return nil, "", fmt.Errorf("snapshot has %d objects; name a subject", len(names))
		}
		name = names[0]
	}
	title := name

	depth := 0
	for strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") && len(name) > 1 {
		name = name[1 : len(name)-1]
		depth++
	}
	subject, err := reg.Subject(name)
	if err != nil {
		return nil, "", err
	}
	for ; depth > 0; depth-- {
		subject = registry.Singleton{Of: subject}
	}
	return subject, title, nil
}

// resolveTheme maps the theme flag to a style table; auto means color
// when stdout is a terminal.
func resolveTheme(name string, stdout io.Writer) style.Table {
	if name == "auto" {
		if isTTYWriter(stdout) {
			return style.Default()
		}
		return style.Plain()
	}
	return style.Named(name)
}

// themeOr returns the configured theme name, or fallback when unset.
func themeOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
