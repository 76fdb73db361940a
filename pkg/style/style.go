// Package style maps report categories to text formatters.
//
// A Table assigns each semantic category of a lookup-path report (the
// module heading plus the four method tags) a one-argument formatter.
// The built-in tables are lipgloss-backed; callers may swap in any
// formatter, including ones emitting non-ANSI markers, since the
// renderer measures printable width through pkg/layout.
package style

import "github.com/charmbracelet/lipgloss"

// Category names one styleable element of a rendered lookup path.
type Category string

const (
	Module     Category = "module"
	Public     Category = "public"
	Protected  Category = "protected"
	Private    Category = "private"
	Overridden Category = "overridden"
)

// Formatter styles a single label.
type Formatter func(string) string

// Table maps every category to its formatter. Missing entries render
// unstyled.
type Table map[Category]Formatter

// Format applies the category's formatter to s, or returns s unchanged
// when the category has none.
func (t Table) Format(c Category, s string) string {
	if t == nil {
		return s
	}
	if f, ok := t[c]; ok && f != nil {
		return f(s)
	}
	return s
}

// Lip adapts a lipgloss style into a Formatter.
func Lip(s lipgloss.Style) Formatter {
	return func(text string) string { return s.Render(text) }
}

// Default returns the colorized table: bold module headings, green
// public, orange protected, red private, gray overridden.
func Default() Table {
	return Table{
		Module:     Lip(lipgloss.NewStyle().Bold(true)),
		Public:     Lip(lipgloss.NewStyle().Foreground(lipgloss.Color("34"))),  // green
		Protected:  Lip(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))), // orange
		Private:    Lip(lipgloss.NewStyle().Foreground(lipgloss.Color("196"))), // red
		Overridden: Lip(lipgloss.NewStyle().Foreground(lipgloss.Color("242"))), // gray
	}
}

// Plain returns the identity table: no styling at all.
func Plain() Table {
	return Table{}
}

// Named looks up a built-in table by name, defaulting to Plain for
// unknown names.
func Named(name string) Table {
	switch name {
	case "default":
		return Default()
	default:
		return Plain()
	}
}
