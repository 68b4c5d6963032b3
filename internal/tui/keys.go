package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/claykit-ui/claykit/pkg/textedit"
)

// TranslateKey maps a Bubbletea key message onto the editing core's key
// vocabulary. The ok result is false for keys the core has no concept
// of, such as function keys or plain runes.
func TranslateKey(msg tea.KeyMsg) (textedit.Key, textedit.Modifier, bool) {
	switch msg.Type {
	case tea.KeyBackspace:
		return textedit.KeyBackspace, textedit.ModNone, true
	case tea.KeyCtrlH:
		return textedit.KeyBackspace, textedit.ModNone, true
	case tea.KeyDelete:
		return textedit.KeyDelete, textedit.ModNone, true
	case tea.KeyLeft:
		return textedit.KeyLeft, textedit.ModNone, true
	case tea.KeyShiftLeft:
		return textedit.KeyLeft, textedit.ModShift, true
	case tea.KeyCtrlLeft:
		return textedit.KeyLeft, textedit.ModCtrl, true
	case tea.KeyCtrlShiftLeft:
		return textedit.KeyLeft, textedit.ModShift | textedit.ModCtrl, true
	case tea.KeyRight:
		return textedit.KeyRight, textedit.ModNone, true
	case tea.KeyShiftRight:
		return textedit.KeyRight, textedit.ModShift, true
	case tea.KeyCtrlRight:
		return textedit.KeyRight, textedit.ModCtrl, true
	case tea.KeyCtrlShiftRight:
		return textedit.KeyRight, textedit.ModShift | textedit.ModCtrl, true
	case tea.KeyHome:
		return textedit.KeyHome, textedit.ModNone, true
	case tea.KeyShiftHome:
		return textedit.KeyHome, textedit.ModShift, true
	case tea.KeyEnd:
		return textedit.KeyEnd, textedit.ModNone, true
	case tea.KeyShiftEnd:
		return textedit.KeyEnd, textedit.ModShift, true
	case tea.KeyEnter:
		return textedit.KeyEnter, textedit.ModNone, true
	default:
		return textedit.KeyNone, textedit.ModNone, false
	}
}

// TranslateRune extracts a typed character from a key message. Space
// arrives as its own key type rather than a rune.
func TranslateRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return msg.Runes[0], true
		}
	}
	return 0, false
}
