package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/steps/internal/catalog"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Today, Selected lipgloss.Style
	Border                                                lipgloss.Border

	// Colored is false for the mono theme; item colors are dropped then.
	Colored bool

	BoxUnchecked, BoxChecked string
	Dot, NoDot               string
	SymOK, SymFail           string
}

var current = themeFor("classic")

// SetTheme switches the theme used by every renderer. Unknown names fall
// back to classic.
func SetTheme(name string) { current = themeFor(name) }

// Current exposes what renderers need
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Underline(true),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:   lipgloss.RoundedBorder(),
			Colored:  true,

			BoxUnchecked: "◻", BoxChecked: "◼",
			Dot: "◆", NoDot: "◇",
			SymOK: "✔", SymFail: "✖",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:     "mono",
			Title:    plain.Bold(true),
			Muted:    plain,
			Accent:   plain,
			Success:  plain,
			Error:    plain.Bold(true),
			Today:    plain.Underline(true),
			Selected: plain.Reverse(true),
			Border:   lipgloss.ASCIIBorder(),

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			Dot: "x", NoDot: ".",
			SymOK: "ok", SymFail: "error:",
		}
	default: // classic
		return Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Underline(true),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:   lipgloss.NormalBorder(),
			Colored:  true,

			BoxUnchecked: "☐", BoxChecked: "☑",
			Dot: "●", NoDot: "○",
			SymOK: "✔", SymFail: "✖",
		}
	}
}

// Item renders s in the item's catalog color.
func (t Theme) Item(e catalog.Entry, s string) string {
	if !t.Colored || e.IsZero() {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color())).Render(s)
}

// Mark renders a checked/unchecked dot for e.
func (t Theme) Mark(e catalog.Entry, checked bool) string {
	if checked {
		return t.Item(e, t.Dot)
	}
	return t.Muted.Render(t.NoDot)
}
