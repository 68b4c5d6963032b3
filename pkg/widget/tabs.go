package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// TabsVariant selects the tab strip treatment.
type TabsVariant int

const (
	// TabsLine underlines the active tab with an indicator bar.
	TabsLine TabsVariant = iota
	// TabsEnclosed fills the active tab with the scheme color.
	TabsEnclosed
)

// TabsConfig describes one tab strip.
type TabsConfig struct {
	Variant TabsVariant
	Scheme  theme.Scheme
	Size    theme.Size
}

// TabsStyle is the resolved look of a tab strip.
type TabsStyle struct {
	Active          theme.Color
	Inactive        theme.Color
	ActiveText      theme.Color
	InactiveText    theme.Color
	IndicatorHeight uint16
	PaddingX        uint16
	PaddingY        uint16
	FontSize        uint16
	CornerRadius    uint16
}

// TabsStyle resolves a tab strip config against the active theme.
func (c *Context) TabsStyle(cfg TabsConfig) TabsStyle {
	scheme := c.theme.SchemeColor(cfg.Scheme)
	style := TabsStyle{
		Active:       scheme,
		Inactive:     c.theme.Muted,
		InactiveText: c.theme.Muted,
		PaddingX:     c.theme.SpacingFor(cfg.Size),
		PaddingY:     c.theme.SpacingFor(cfg.Size) / 2,
		FontSize:     c.theme.FontSizeFor(cfg.Size),
		CornerRadius: c.theme.Radius.SM,
	}

	if cfg.Variant == TabsEnclosed {
		style.ActiveText = theme.White
	} else {
		style.ActiveText = scheme
		style.IndicatorHeight = 2
	}

	return style
}
