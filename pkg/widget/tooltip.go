package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// TooltipPosition selects where a tooltip sits relative to its target.
type TooltipPosition int

const (
	TooltipTop TooltipPosition = iota
	TooltipBottom
	TooltipLeft
	TooltipRight
)

// TooltipConfig describes one tooltip.
type TooltipConfig struct {
	Position TooltipPosition
}

// TooltipStyle is the resolved look of a tooltip. Tooltips intentionally
// ignore the color scheme: they are always dark-on-light-or-dark for
// maximum contrast.
type TooltipStyle struct {
	BG           theme.Color
	Text         theme.Color
	PaddingX     uint16
	PaddingY     uint16
	FontSize     uint16
	CornerRadius uint16
}

// TooltipStyle resolves a tooltip config against the active theme.
func (c *Context) TooltipStyle(cfg TooltipConfig) TooltipStyle {
	_ = cfg.Position // position affects placement, not style
	return TooltipStyle{
		BG:           theme.RGB(31, 41, 55),
		Text:         theme.RGB(249, 250, 251),
		PaddingX:     c.theme.Spacing.SM,
		PaddingY:     c.theme.Spacing.XS,
		FontSize:     c.theme.FontSize.SM,
		CornerRadius: c.theme.Radius.SM,
	}
}
