// Package tui renders the widget gallery in a terminal. It adapts the
// pixel-space kit onto cells: colors go through lipgloss, text metrics
// come from CellMeasurer, and key events are translated into the
// editing core's vocabulary.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/claykit-ui/claykit/internal/gitlog"
	"github.com/claykit-ui/claykit/internal/logger"
	"github.com/claykit-ui/claykit/pkg/textedit"
	"github.com/claykit-ui/claykit/pkg/theme"
	"github.com/claykit-ui/claykit/pkg/widget"
)

// Element identities for the focusable gallery widgets. Focus cycles
// through them in declaration order.
const (
	idNameInput widget.ElementID = iota + 1
	idPassInput
	idCheckbox
	idSwitch
	idSlider
	idButton
)

const (
	tabWidgets = iota
	tabHistory
	tabCount
)

type tickMsg time.Time

// Model is the Bubbletea state for the gallery.
type Model struct {
	ctx    *widget.Context
	states []widget.State
	styles Styles
	meas   CellMeasurer
	log    *logger.Logger

	name *widget.Input
	pass *widget.Input

	checked  bool
	switchOn bool
	slider   float32
	percent  float64
	tab      int

	bar     progress.Model
	commits []gitlog.Commit

	width    int
	quitting bool
}

// NewModel builds the gallery over the given theme and commit history.
func NewModel(th *theme.Theme, commits []gitlog.Commit, log *logger.Logger) Model {
	states := make([]widget.State, 16)
	ctx := widget.NewContext(th, states)

	name := widget.NewInput(idNameInput, widget.InputConfig{
		Size:        theme.SizeMD,
		Placeholder: "Type your name",
	}, make([]byte, 64))

	pass := widget.NewInput(idPassInput, widget.InputConfig{
		Size:        theme.SizeMD,
		Placeholder: "Password",
	}, make([]byte, 64))
	pass.Buffer.Flags |= textedit.FlagObscured

	// Register every focusable element so focus cycling sees them all
	// in declaration order.
	for _, id := range []widget.ElementID{idNameInput, idPassInput, idCheckbox, idSwitch, idSlider, idButton} {
		ctx.GetOrCreateState(id)
	}
	ctx.SetFocus(idNameInput)

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	return Model{
		ctx:     ctx,
		states:  states,
		styles:  NewStyles(th),
		meas:    CellMeasurer{CellWidth: 1},
		log:     log.Component("tui"),
		name:    name,
		pass:    pass,
		slider:  0.4,
		bar:     bar,
		commits: commits,
		width:   80,
	}
}

// Init starts the progress animation tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// SetTheme swaps the active theme and re-derives the terminal styles.
func (m *Model) SetTheme(th *theme.Theme) {
	m.ctx.SetTheme(th)
	m.styles = NewStyles(th)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
