package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// AlertVariant selects the alert fill treatment.
type AlertVariant int

const (
	AlertSubtle AlertVariant = iota
	AlertSolid
	AlertOutline
)

// AlertConfig describes one alert banner.
type AlertConfig struct {
	Variant AlertVariant
	Scheme  theme.Scheme
	Icon    Icon
}

// AlertStyle is the resolved look of an alert banner.
type AlertStyle struct {
	BG           theme.Color
	Text         theme.Color
	Border       theme.Color
	BorderWidth  uint16
	Padding      uint16
	CornerRadius uint16
}

// AlertStyle resolves an alert config against the active theme.
func (c *Context) AlertStyle(cfg AlertConfig) AlertStyle {
	scheme := c.theme.SchemeColor(cfg.Scheme)
	style := AlertStyle{
		Padding:      c.theme.Spacing.MD,
		CornerRadius: c.theme.Radius.MD,
	}

	switch cfg.Variant {
	case AlertSolid:
		style.BG = scheme
		style.Text = theme.White
	case AlertOutline:
		style.BG = theme.Transparent
		style.Text = scheme
		style.Border = scheme
		style.BorderWidth = 1
	default: // AlertSubtle
		style.BG = theme.Lighten(scheme, 0.85)
		style.Text = theme.Darken(scheme, 0.4)
		style.Border = scheme
		style.BorderWidth = 1
	}

	return style
}
