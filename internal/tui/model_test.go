package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/claykit-ui/claykit/internal/gitlog"
	"github.com/claykit-ui/claykit/internal/logger"
	"github.com/claykit-ui/claykit/pkg/theme"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	th := theme.Light()
	return NewModel(&th, nil, logger.Nop())
}

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()

	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func TestModelStartsOnNameInput(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, idNameInput, m.ctx.Focused())
}

func TestTypingReachesFocusedInput(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(t, m, "Ada")

	require.Equal(t, "Ada", m.name.Buffer.String())
	require.Equal(t, 3, m.name.Buffer.Cursor())
}

func TestEditingKeysReachFocusedInput(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(t, m, "Hello")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(Model)
	require.Equal(t, "Hell", m.name.Buffer.String())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	m = updated.(Model)
	require.Equal(t, "ell", m.name.Buffer.String())
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	require.Equal(t, idPassInput, m.ctx.Focused())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	require.Equal(t, idNameInput, m.ctx.Focused())
}

func TestSpaceTogglesCheckbox(t *testing.T) {
	m := newTestModel(t)
	m.ctx.SetFocus(idCheckbox)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	require.True(t, m.checked)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	require.False(t, m.checked)
}

func TestArrowsMoveSlider(t *testing.T) {
	m := newTestModel(t)
	m.ctx.SetFocus(idSlider)
	start := m.slider

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.InDelta(t, start+0.05, m.slider, 0.001)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	require.InDelta(t, start, m.slider, 0.001)
}

func TestSliderClampsAtBounds(t *testing.T) {
	m := newTestModel(t)
	m.ctx.SetFocus(idSlider)
	m.slider = 0.99

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.Equal(t, float32(1), m.slider)
}

func TestEscQuits(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	require.True(t, m.Quitting())
	require.NotNil(t, cmd)
}

func TestNumberKeysSwitchPagesWhenNotTyping(t *testing.T) {
	m := newTestModel(t)
	m.ctx.SetFocus(idCheckbox)

	m = typeRunes(t, m, "2")
	require.Equal(t, tabHistory, m.tab)

	m = typeRunes(t, m, "1")
	require.Equal(t, tabWidgets, m.tab)
}

func TestNumberKeysTypeIntoFocusedInput(t *testing.T) {
	m := newTestModel(t)

	m = typeRunes(t, m, "2")
	require.Equal(t, "2", m.name.Buffer.String())
	require.Equal(t, tabWidgets, m.tab)
}

func TestTickAdvancesProgress(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	require.Greater(t, m.percent, 0.0)
	require.NotNil(t, cmd)
}

func TestViewRendersSections(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	require.Contains(t, view, "claykit gallery")
	require.Contains(t, view, "Badges")
	require.Contains(t, view, "Buttons")
	require.Contains(t, view, "Inputs")
	require.Contains(t, view, "Type your name")
	require.Contains(t, view, "Slider")
}

func TestViewRendersHistoryPage(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "abc1234", Author: "Gallery Bot", When: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Subject: "add slider"},
	}
	th := theme.Dark()
	m := NewModel(&th, commits, logger.Nop())
	m.tab = tabHistory

	view := m.View()
	require.Contains(t, view, "abc1234")
	require.Contains(t, view, "add slider")
	require.Contains(t, view, "Gallery Bot")
}

func TestViewRendersEmptyHistory(t *testing.T) {
	m := newTestModel(t)
	m.tab = tabHistory

	view := m.View()
	require.Contains(t, view, "No commits")
}

func TestObscuredInputMasksView(t *testing.T) {
	m := newTestModel(t)
	m.ctx.SetFocus(idPassInput)
	m = typeRunes(t, m, "secret")

	require.Equal(t, "secret", m.pass.Buffer.String())
	view := m.View()
	require.NotContains(t, view, "secret")
}
