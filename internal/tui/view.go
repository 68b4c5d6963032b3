package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claykit-ui/claykit/pkg/theme"
	"github.com/claykit-ui/claykit/pkg/widget"
)

// View renders the gallery.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.styles.Title.Render("claykit gallery"))
	sections = append(sections, m.renderTabs())

	switch m.tab {
	case tabHistory:
		sections = append(sections, m.renderHistory())
	default:
		sections = append(sections, m.renderWidgets())
	}

	help := "tab: focus • space: toggle • ←/→: slider • 1/2: pages • esc: quit"
	sections = append(sections, m.styles.Help.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	ts := m.ctx.TabsStyle(widget.TabsConfig{Variant: widget.TabsLine, Size: theme.SizeMD})
	labels := []string{"Widgets", "History"}

	var parts []string
	for i, label := range labels {
		if i == m.tab {
			active := lipgloss.NewStyle().
				Foreground(TermColor(ts.ActiveText)).
				Bold(true).
				Underline(true)
			parts = append(parts, active.Render(label))
		} else {
			inactive := lipgloss.NewStyle().Foreground(TermColor(ts.InactiveText))
			parts = append(parts, inactive.Render(label))
		}
	}

	return strings.Join(parts, "  ")
}

func (m Model) renderWidgets() string {
	var sections []string

	sections = append(sections, m.styles.Section.Render("Badges"), m.renderBadges())
	sections = append(sections, m.styles.Section.Render("Buttons"), m.renderButtons())
	sections = append(sections, m.styles.Section.Render("Alert"), m.renderAlert())
	sections = append(sections, m.styles.Section.Render("Inputs"))
	sections = append(sections, m.renderInput(m.name, "Name"))
	sections = append(sections, m.renderInput(m.pass, "Password"))
	sections = append(sections, m.styles.Section.Render("Toggles"), m.renderToggles())
	sections = append(sections, m.styles.Section.Render("Slider"), m.renderSlider())
	sections = append(sections, m.styles.Section.Render("Progress"), m.bar.ViewAs(m.percent))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBadges() string {
	variants := []struct {
		name    string
		variant widget.BadgeVariant
	}{
		{"solid", widget.BadgeSolid},
		{"subtle", widget.BadgeSubtle},
		{"outline", widget.BadgeOutline},
	}
	schemes := []theme.Scheme{theme.SchemePrimary, theme.SchemeSuccess, theme.SchemeWarning, theme.SchemeError}

	var parts []string
	for _, v := range variants {
		for _, s := range schemes {
			bs := m.ctx.BadgeStyle(widget.BadgeConfig{Variant: v.variant, Scheme: s, Size: theme.SizeSM})
			parts = append(parts, BadgeTermStyle(bs).Render(v.name))
		}
	}

	return strings.Join(parts, " ")
}

func (m Model) renderButtons() string {
	variants := []struct {
		label   string
		variant widget.ButtonVariant
	}{
		{"Solid", widget.ButtonSolid},
		{"Outline", widget.ButtonOutline},
		{"Ghost", widget.ButtonGhost},
	}

	focused := m.ctx.HasFocus(idButton)
	var parts []string
	for i, v := range variants {
		cfg := widget.ButtonConfig{Variant: v.variant, Scheme: theme.SchemePrimary, Size: theme.SizeMD}
		// The focused button renders in its hover treatment.
		hovered := focused && i == 0
		bg := m.ctx.ButtonBGColor(cfg, hovered)
		text := m.ctx.ButtonTextColor(cfg)
		rendered := ButtonTermStyle(bg, text).Render(v.label)
		if hovered {
			rendered = m.styles.Focused.Render("▸") + rendered
		}
		parts = append(parts, rendered)
	}

	return strings.Join(parts, "  ")
}

func (m Model) renderAlert() string {
	as := m.ctx.AlertStyle(widget.AlertConfig{Variant: widget.AlertSubtle, Scheme: theme.SchemeWarning})
	width := m.width - 8
	if width > 60 {
		width = 60
	}
	return AlertTermStyle(as, width).Render("Theme files are validated before loading.")
}

// renderInput draws a boxed single-line input with cursor and selection
// taken from the editing buffer.
func (m Model) renderInput(in *widget.Input, label string) string {
	focused := m.ctx.HasFocus(in.ID)
	st := m.ctx.InputStyle(in.Config, focused)

	body := m.renderInputText(in, st, focused)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(TermColor(st.Border)).
		Padding(0, 1).
		Width(34)

	labelStyle := m.styles.Muted
	if focused {
		labelStyle = m.styles.Focused
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Width(10).Render(label), box.Render(body))
}

func (m Model) renderInputText(in *widget.Input, st widget.InputStyle, focused bool) string {
	if in.ShowPlaceholder() {
		placeholder := lipgloss.NewStyle().Foreground(TermColor(st.PlaceholderText))
		text := placeholder.Render(in.Config.Placeholder)
		if focused {
			text = cursorGlyph(st) + text
		}
		return text
	}

	display := string(in.DisplayText(nil))
	if !focused {
		return lipgloss.NewStyle().Foreground(TermColor(st.Text)).Render(display)
	}

	textStyle := lipgloss.NewStyle().Foreground(TermColor(st.Text))
	selStyle := lipgloss.NewStyle().Foreground(TermColor(st.Text)).Background(TermColor(st.SelectionBG))
	cursor := in.Buffer.Cursor()
	lo, hi := in.Buffer.Selection()

	var sb strings.Builder
	for i := 0; i <= len(display); i++ {
		if i == cursor {
			sb.WriteString(cursorGlyph(st))
		}
		if i == len(display) {
			break
		}
		ch := string(display[i])
		if in.Buffer.HasSelection() && i >= lo && i < hi {
			sb.WriteString(selStyle.Render(ch))
		} else {
			sb.WriteString(textStyle.Render(ch))
		}
	}

	return sb.String()
}

func cursorGlyph(st widget.InputStyle) string {
	return lipgloss.NewStyle().Foreground(TermColor(st.Cursor)).Render("│")
}

func (m Model) renderToggles() string {
	check := m.ctx.CheckboxBGColor(widget.CheckboxConfig{Scheme: theme.SchemePrimary, Size: theme.SizeMD}, m.checked, false)
	mark := " "
	if m.checked {
		mark = "✓"
	}
	checkbox := lipgloss.NewStyle().
		Foreground(TermColor(m.ctx.CheckboxMarkColor(widget.CheckboxConfig{}))).
		Background(TermColor(check)).
		Render(mark)
	checkbox += " Remember theme"
	if m.ctx.HasFocus(idCheckbox) {
		checkbox = m.styles.Focused.Render("▸") + checkbox
	} else {
		checkbox = " " + checkbox
	}

	swCfg := widget.SwitchConfig{Scheme: theme.SchemeSuccess, Size: theme.SizeMD}
	swBG := m.ctx.SwitchBGColor(swCfg, m.switchOn, false)
	knob := "○"
	track := knob + "  "
	if m.switchOn {
		track = "  " + knob
	}
	sw := lipgloss.NewStyle().Background(TermColor(swBG)).Render(track)
	sw += " Live preview"
	if m.ctx.HasFocus(idSwitch) {
		sw = m.styles.Focused.Render("▸") + sw
	} else {
		sw = " " + sw
	}

	return checkbox + "    " + sw
}

func (m Model) renderSlider() string {
	st := m.ctx.SliderStyle(widget.SliderConfig{Scheme: theme.SchemePrimary, Size: theme.SizeMD}, m.ctx.HasFocus(idSlider))

	const track = 24
	filled := int(m.slider * track)
	if filled > track {
		filled = track
	}

	fillStyle := lipgloss.NewStyle().Foreground(TermColor(st.Fill))
	trackStyle := lipgloss.NewStyle().Foreground(TermColor(st.Track))
	thumbStyle := lipgloss.NewStyle().Foreground(TermColor(st.Thumb))

	bar := fillStyle.Render(strings.Repeat("━", filled)) +
		thumbStyle.Render("●") +
		trackStyle.Render(strings.Repeat("─", track-filled))

	label := fmt.Sprintf(" %3.0f%%", m.slider*100)
	prefix := " "
	if m.ctx.HasFocus(idSlider) {
		prefix = m.styles.Focused.Render("▸")
	}

	return prefix + bar + m.styles.Muted.Render(label)
}
