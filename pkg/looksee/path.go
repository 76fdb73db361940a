package looksee

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/wonderchook/looksee/pkg/layout"
	"github.com/wonderchook/looksee/pkg/style"
)

// Path is the lookup path of one subject: its entries in resolution
// order, most-derived first. A method name may recur across entries
// when shadowed; within one entry it appears once.
type Path struct {
	entries []*Entry
	styles  style.Table
	width   int // 0 means probe at render time
}

// Entries returns the path's entries in resolution order.
func (p *Path) Entries() []*Entry { return p.entries }

// buildPath walks the chain once, front to back, threading the seen
// set through entry construction so later entries know which names are
// shadowed.
func buildPath(prov Provider, obj any, opts Options, styles style.Table, width int) (*Path, error) {
	node, err := prov.ClassOf(obj)
	if err != nil {
		return nil, fmt.Errorf("%w (%T): %v", ErrNoLookupPath, obj, err)
	}
	if node == nil {
		return nil, fmt.Errorf("%w (%T)", ErrNoLookupPath, obj)
	}

	p := &Path{styles: styles, width: width}
	seen := make(map[string]bool)
	for {
		entry := newEntry(prov, node, seen, opts)
		p.entries = append(p.entries, entry)
		for _, name := range entry.Defined() {
			seen[name] = true
		}
		next, ok := prov.SuperclassOf(node)
		if !ok {
			break
		}
		node = next
	}
	return p, nil
}

// RenderOption adjusts a single Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	width int
}

// Width forces the render width in cells. Non-positive values fall
// back to the usual probe order.
func Width(n int) RenderOption {
	return func(rc *renderConfig) { rc.width = n }
}

// Render formats the path: per entry, the styled module label on its
// own line, then the entry's methods columnized at the resolved width,
// then a blank line. Method labels are styled per tag after alphabetic
// sorting, so styling never disturbs order or column math.
func (p *Path) Render(opts ...RenderOption) string {
	var rc renderConfig
	for _, opt := range opts {
		opt(&rc)
	}
	width := resolveWidth(rc.width, p.width)

	var sb strings.Builder
	for _, entry := range p.entries {
		sb.WriteString(p.styles.Format(style.Module, entry.Label()))
		sb.WriteString("\n")
		labels := make([]string, 0, len(entry.names))
		for _, name := range entry.names {
			labels = append(labels, p.styles.Format(categoryFor(entry.tags[name]), name))
		}
		sb.WriteString(layout.Columnize(labels, width))
		sb.WriteString("\n")
	}
	return sb.String()
}

// String renders with default width resolution.
func (p *Path) String() string { return p.Render() }

// categoryFor maps a method tag onto its style category.
func categoryFor(v Visibility) style.Category {
	return style.Category(v)
}

// resolveWidth picks the render width: explicit option, then the
// inspector's configured width, then the terminal, then the COLUMNS
// variable, then DefaultWidth.
func resolveWidth(explicit, configured int) int {
	if explicit > 0 {
		return explicit
	}
	if configured > 0 {
		return configured
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if s := os.Getenv("COLUMNS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return DefaultWidth
}
