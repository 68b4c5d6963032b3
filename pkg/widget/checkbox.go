package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// CheckboxConfig describes one checkbox.
type CheckboxConfig struct {
	Scheme   theme.Scheme
	Size     theme.Size
	Disabled bool
}

// CheckboxSize returns the box edge length in pixels for a size token.
func CheckboxSize(size theme.Size) uint16 {
	switch size {
	case theme.SizeXS:
		return 14
	case theme.SizeSM:
		return 16
	case theme.SizeLG:
		return 22
	case theme.SizeXL:
		return 26
	default:
		return 18
	}
}

// CheckboxBGColor resolves the box fill for the given checked and
// hover states.
func (c *Context) CheckboxBGColor(cfg CheckboxConfig, checked, hovered bool) theme.Color {
	if cfg.Disabled {
		if checked {
			return c.theme.Muted
		}
		return c.theme.Border
	}

	if checked {
		scheme := c.theme.SchemeColor(cfg.Scheme)
		if hovered {
			return theme.Darken(scheme, buttonHoverDarken)
		}
		return scheme
	}

	if hovered {
		return theme.Lighten(c.theme.Border, 0.5)
	}
	return c.theme.BG
}

// CheckboxBorderColor resolves the box border: scheme colored when
// checked, neutral otherwise.
func (c *Context) CheckboxBorderColor(cfg CheckboxConfig, checked bool) theme.Color {
	if cfg.Disabled {
		return c.theme.Muted
	}
	if checked {
		return c.theme.SchemeColor(cfg.Scheme)
	}
	return c.theme.Border
}

// CheckboxMarkColor returns the check mark color.
func (c *Context) CheckboxMarkColor(cfg CheckboxConfig) theme.Color {
	if cfg.Disabled {
		return c.theme.BG
	}
	return theme.White
}
