// Package tui renders textsign results for people and for machines.
//
// Styled output degrades to plain text when NO_COLOR is set or TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Adaptive colors, light terminal first.
//
//nolint:gochecknoglobals // shared palette
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// marker is the icon and style of one kind of status line.
type marker struct {
	icon  string
	style lipgloss.Style
}

func (m marker) render(msg string) string {
	return m.style.Render(m.icon + " " + msg)
}

// palette groups the styles TTYOutput draws with.
type palette struct {
	success, failure, warning, info marker

	hint    lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
}

func newPalette() palette {
	muted := lipgloss.NewStyle().Foreground(ColorMuted)
	return palette{
		success: marker{"✓", lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)},
		failure: marker{"✗", lipgloss.NewStyle().Foreground(ColorError).Bold(true)},
		warning: marker{"⚠", lipgloss.NewStyle().Foreground(ColorWarning)},
		info:    marker{"ℹ", lipgloss.NewStyle().Foreground(ColorPrimary)},
		hint:    muted,
		heading: lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true),
		label:   muted,
	}
}

// CheckNoColor drops lipgloss to the ASCII profile when color is unwanted.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport is false when NO_COLOR is present, even if empty, or
// TERM is "dumb". See https://no-color.org/
func HasColorSupport() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// Title converts a heading such as "key files" to "Key Files".
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
