package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// ButtonVariant selects the button fill treatment.
type ButtonVariant int

const (
	ButtonSolid ButtonVariant = iota
	ButtonOutline
	ButtonGhost
)

// ButtonConfig describes one button.
type ButtonConfig struct {
	Variant  ButtonVariant
	Scheme   theme.Scheme
	Size     theme.Size
	Disabled bool
	Icon     Icon
}

const buttonHoverDarken = 0.12

// ButtonBGColor resolves the button background for the given hover
// state. Disabled buttons ignore hover.
func (c *Context) ButtonBGColor(cfg ButtonConfig, hovered bool) theme.Color {
	if cfg.Disabled {
		return c.theme.Border
	}

	scheme := c.theme.SchemeColor(cfg.Scheme)
	switch cfg.Variant {
	case ButtonOutline, ButtonGhost:
		if hovered {
			return theme.Lighten(scheme, 0.9)
		}
		return theme.Transparent
	default: // ButtonSolid
		if hovered {
			return theme.Darken(scheme, buttonHoverDarken)
		}
		return scheme
	}
}

// ButtonTextColor resolves the button label color.
func (c *Context) ButtonTextColor(cfg ButtonConfig) theme.Color {
	if cfg.Disabled {
		return c.theme.Muted
	}
	if cfg.Variant == ButtonSolid {
		return theme.White
	}
	return c.theme.SchemeColor(cfg.Scheme)
}

// ButtonBorderWidth returns the border width for a variant; only
// outline buttons carry one.
func ButtonBorderWidth(cfg ButtonConfig) uint16 {
	if cfg.Variant == ButtonOutline {
		return 1
	}
	return 0
}

// ButtonBorderColor resolves the outline border color.
func (c *Context) ButtonBorderColor(cfg ButtonConfig) theme.Color {
	if cfg.Disabled {
		return c.theme.Muted
	}
	return c.theme.SchemeColor(cfg.Scheme)
}

// ButtonPaddingX returns the horizontal label padding for a size.
func (c *Context) ButtonPaddingX(size theme.Size) uint16 {
	return c.theme.SpacingFor(size)
}

// ButtonPaddingY returns the vertical label padding for a size.
func (c *Context) ButtonPaddingY(size theme.Size) uint16 {
	return c.theme.SpacingFor(size) / 2
}

// ButtonCornerRadius returns the corner radius for a size.
func (c *Context) ButtonCornerRadius(size theme.Size) uint16 {
	return c.theme.RadiusFor(size)
}
