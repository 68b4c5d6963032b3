package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// BadgeVariant selects the badge fill treatment.
type BadgeVariant int

const (
	BadgeSolid BadgeVariant = iota
	BadgeSubtle
	BadgeOutline
)

// BadgeConfig describes one badge.
type BadgeConfig struct {
	Variant BadgeVariant
	Scheme  theme.Scheme
	Size    theme.Size
}

// BadgeStyle is the resolved look of a badge.
type BadgeStyle struct {
	BG           theme.Color
	Text         theme.Color
	Border       theme.Color
	BorderWidth  uint16
	PadX         uint16
	PadY         uint16
	FontSize     uint16
	CornerRadius uint16
}

// BadgeStyle resolves a badge config against the active theme. Badges
// are pill shaped (full radius) and run their font one step below the
// size token.
func (c *Context) BadgeStyle(cfg BadgeConfig) BadgeStyle {
	scheme := c.theme.SchemeColor(cfg.Scheme)
	padX := c.theme.SpacingFor(cfg.Size) / 2
	if padX == 0 {
		padX = 2
	}

	style := BadgeStyle{
		PadX:         padX,
		PadY:         padX / 2,
		FontSize:     c.theme.FontSizeFor(smallerSize(cfg.Size)),
		CornerRadius: c.theme.Radius.Full,
	}

	switch cfg.Variant {
	case BadgeSubtle:
		style.BG = theme.Lighten(scheme, 0.85)
		style.Text = scheme
	case BadgeOutline:
		style.BG = theme.Transparent
		style.Text = scheme
		style.Border = scheme
		style.BorderWidth = 1
	default: // BadgeSolid
		style.BG = scheme
		style.Text = theme.White
	}

	return style
}

// smallerSize steps a size token down one notch, flooring at XS.
func smallerSize(size theme.Size) theme.Size {
	if size <= theme.SizeXS {
		return theme.SizeXS
	}
	if size > theme.SizeXL {
		return theme.SizeLG
	}
	return size - 1
}
