package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/claykit-ui/claykit/pkg/widget"
)

// Update handles Bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.percent += 0.01
		if m.percent > 1 {
			m.percent = 0
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := msg.Width - 20
		if barWidth > 40 {
			barWidth = 40
		}
		if barWidth < 10 {
			barWidth = 10
		}
		m.bar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab:
		m.ctx.FocusNext()
		return m, nil
	case tea.KeyShiftTab:
		m.ctx.FocusPrev()
		return m, nil
	}

	if in := m.focusedInput(); in != nil {
		if key, mods, ok := TranslateKey(msg); ok {
			in.HandleKey(key, mods)
			return m, nil
		}
		if cp, ok := TranslateRune(msg); ok {
			in.HandleChar(cp)
			return m, nil
		}
		return m, nil
	}

	return m.handleWidgetKey(msg)
}

// handleWidgetKey routes keys to the non-text widgets when no input has
// focus.
func (m Model) handleWidgetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.ctx.Focused()

	switch msg.Type {
	case tea.KeySpace, tea.KeyEnter:
		switch focused {
		case idCheckbox:
			m.checked = !m.checked
		case idSwitch:
			m.switchOn = !m.switchOn
		case idButton:
			m.percent = 0
			m.log.Debug("progress restarted")
		}
		return m, nil

	case tea.KeyLeft:
		if focused == idSlider {
			m.slider = clampUnit(m.slider - 0.05)
			return m, nil
		}
	case tea.KeyRight:
		if focused == idSlider {
			m.slider = clampUnit(m.slider + 0.05)
			return m, nil
		}
	}

	if cp, ok := TranslateRune(msg); ok {
		switch cp {
		case '1':
			m.tab = tabWidgets
		case '2':
			m.tab = tabHistory
		case 'q':
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) focusedInput() *widget.Input {
	switch m.ctx.Focused() {
	case idNameInput:
		return m.name
	case idPassInput:
		return m.pass
	default:
		return nil
	}
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
