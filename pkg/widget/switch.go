package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// SwitchConfig describes one toggle switch.
type SwitchConfig struct {
	Scheme   theme.Scheme
	Size     theme.Size
	Disabled bool
}

// SwitchHeight returns the track height in pixels for a size token.
func SwitchHeight(size theme.Size) uint16 {
	switch size {
	case theme.SizeXS:
		return 16
	case theme.SizeSM:
		return 20
	case theme.SizeLG:
		return 28
	case theme.SizeXL:
		return 32
	default:
		return 24
	}
}

// SwitchWidth returns the track width in pixels. The track is 1.75x as
// wide as it is tall.
func SwitchWidth(size theme.Size) uint16 {
	return SwitchHeight(size) * 7 / 4
}

// SwitchKnobSize returns the knob diameter, inset two pixels from each
// edge of the track.
func SwitchKnobSize(size theme.Size) uint16 {
	return SwitchHeight(size) - 4
}

// SwitchBGColor resolves the track fill for the given on and hover
// states.
func (c *Context) SwitchBGColor(cfg SwitchConfig, on, hovered bool) theme.Color {
	if cfg.Disabled {
		return c.theme.Muted
	}

	if on {
		scheme := c.theme.SchemeColor(cfg.Scheme)
		if hovered {
			return theme.Darken(scheme, buttonHoverDarken)
		}
		return scheme
	}

	if hovered {
		return theme.Darken(c.theme.Border, buttonHoverDarken)
	}
	return c.theme.Border
}

// SwitchKnobColor returns the knob color.
func (c *Context) SwitchKnobColor(cfg SwitchConfig) theme.Color {
	if cfg.Disabled {
		return c.theme.Border
	}
	return theme.White
}
