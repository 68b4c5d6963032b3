package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/claykit-ui/claykit/pkg/theme"
	"github.com/claykit-ui/claykit/pkg/widget"
)

// TermColor converts a kit color to a lipgloss true-color value.
func TermColor(c theme.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Styles holds the lipgloss styles the gallery derives from the active
// theme once per theme change.
type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Help     lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles derives the gallery chrome styles from a theme.
func NewStyles(th *theme.Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(TermColor(th.Primary)),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(TermColor(th.FG)).MarginTop(1),
		Help:     lipgloss.NewStyle().Foreground(TermColor(th.Muted)),
		Focused:  lipgloss.NewStyle().Foreground(TermColor(th.Primary)).Bold(true),
		Blurred:  lipgloss.NewStyle().Foreground(TermColor(th.FG)),
		Selected: lipgloss.NewStyle().Background(TermColor(th.Primary.WithAlpha(64))).Foreground(TermColor(th.FG)),
		Muted:    lipgloss.NewStyle().Foreground(TermColor(th.Muted)),
	}
}

// BadgeTermStyle converts a resolved badge style to lipgloss.
func BadgeTermStyle(bs widget.BadgeStyle) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(TermColor(bs.Text)).
		Padding(0, int(bs.PadX)/4+1)
	if bs.BG.A > 0 {
		style = style.Background(TermColor(bs.BG))
	}
	return style
}

// ButtonTermStyle builds a button's lipgloss style from the resolved
// widget colors.
func ButtonTermStyle(bg, text theme.Color) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(TermColor(text)).
		Padding(0, 2)
	if bg.A > 0 {
		style = style.Background(TermColor(bg))
	}
	return style
}

// AlertTermStyle converts a resolved alert style to a bordered lipgloss
// block.
func AlertTermStyle(as widget.AlertStyle, width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(TermColor(as.Text)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(TermColor(as.Border)).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	if as.BG.A > 0 {
		style = style.Background(TermColor(as.BG))
	}
	return style
}
