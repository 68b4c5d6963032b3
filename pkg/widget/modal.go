package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// ModalSize selects a modal's fixed width tier.
type ModalSize int

const (
	ModalSM ModalSize = iota
	ModalMD
	ModalLG
	ModalXL
	// ModalFull grows to the available width instead of a fixed one.
	ModalFull
)

// ModalConfig describes one modal dialog.
type ModalConfig struct {
	Size   ModalSize
	ZIndex uint16
}

const defaultModalZIndex = 1000

// ModalStyle is the resolved look of a modal and its backdrop. Width
// zero means "grow".
type ModalStyle struct {
	Backdrop     theme.Color
	BG           theme.Color
	Width        uint16
	Padding      uint16
	CornerRadius uint16
	ZIndex       uint16
}

// ModalStyle resolves a modal config against the active theme.
func (c *Context) ModalStyle(cfg ModalConfig) ModalStyle {
	z := cfg.ZIndex
	if z == 0 {
		z = defaultModalZIndex
	}

	var width uint16
	switch cfg.Size {
	case ModalSM:
		width = 400
	case ModalLG:
		width = 600
	case ModalXL:
		width = 800
	case ModalFull:
		width = 0
	default:
		width = 500
	}

	return ModalStyle{
		Backdrop:     theme.Color{A: 128},
		BG:           c.theme.BG,
		Width:        width,
		Padding:      c.theme.Spacing.LG,
		CornerRadius: c.theme.Radius.LG,
		ZIndex:       z,
	}
}
