package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// SliderConfig describes one slider.
type SliderConfig struct {
	Scheme   theme.Scheme
	Size     theme.Size
	Disabled bool
}

// SliderStyle is the resolved look of a slider.
type SliderStyle struct {
	Fill        theme.Color
	Track       theme.Color
	Thumb       theme.Color
	TrackHeight uint16
	ThumbSize   uint16
}

// SliderStyle resolves a slider config against the active theme for
// the given hover state. Disabled sliders render muted and ignore
// hover.
func (c *Context) SliderStyle(cfg SliderConfig, hovered bool) SliderStyle {
	style := SliderStyle{
		Track:       c.theme.Border,
		TrackHeight: trackHeight(cfg.Size),
		ThumbSize:   thumbSize(cfg.Size),
	}

	if cfg.Disabled {
		style.Fill = c.theme.Muted
		style.Thumb = c.theme.Muted
		return style
	}

	scheme := c.theme.SchemeColor(cfg.Scheme)
	style.Fill = scheme
	style.Thumb = scheme
	if hovered {
		style.Thumb = theme.Darken(scheme, buttonHoverDarken)
	}
	return style
}

func thumbSize(size theme.Size) uint16 {
	switch size {
	case theme.SizeXS:
		return 12
	case theme.SizeSM:
		return 16
	case theme.SizeLG:
		return 24
	case theme.SizeXL:
		return 28
	default:
		return 20
	}
}
