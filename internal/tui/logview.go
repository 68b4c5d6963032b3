package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claykit-ui/claykit/pkg/theme"
	"github.com/claykit-ui/claykit/pkg/widget"
)

// renderHistory draws the commit log page. Each entry shows the short
// hash as a badge, the subject, and the author with relative age.
func (m Model) renderHistory() string {
	if len(m.commits) == 0 {
		return m.styles.Muted.Render("No commits to show. Run inside a git repository.")
	}

	hashStyle := BadgeTermStyle(m.ctx.BadgeStyle(widget.BadgeConfig{
		Variant: widget.BadgeSubtle,
		Scheme:  theme.SchemePrimary,
		Size:    theme.SizeSM,
	}))

	maxSubject := m.width - 30
	if maxSubject < 20 {
		maxSubject = 20
	}

	var lines []string
	for _, c := range m.commits {
		subject := c.Subject
		if len(subject) > maxSubject {
			subject = subject[:maxSubject-1] + "…"
		}
		meta := fmt.Sprintf("%s, %s", c.Author, c.When.Format("2006-01-02"))
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			hashStyle.Render(c.Hash),
			" ",
			m.styles.Blurred.Render(subject),
			"  ",
			m.styles.Muted.Render(meta),
		)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
