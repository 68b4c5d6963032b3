package widget

import "github.com/claykit-ui/claykit/pkg/theme"

// ProgressConfig describes one progress bar.
type ProgressConfig struct {
	Scheme theme.Scheme
	Size   theme.Size
}

// ProgressStyle is the resolved look of a progress bar. The radius is
// half the height so the ends are fully rounded.
type ProgressStyle struct {
	Fill         theme.Color
	Track        theme.Color
	Height       uint16
	CornerRadius uint16
}

// ProgressStyle resolves a progress bar config against the active
// theme.
func (c *Context) ProgressStyle(cfg ProgressConfig) ProgressStyle {
	h := trackHeight(cfg.Size)
	return ProgressStyle{
		Fill:         c.theme.SchemeColor(cfg.Scheme),
		Track:        c.theme.Border,
		Height:       h,
		CornerRadius: h / 2,
	}
}

func trackHeight(size theme.Size) uint16 {
	switch size {
	case theme.SizeXS:
		return 4
	case theme.SizeSM:
		return 6
	case theme.SizeLG:
		return 12
	case theme.SizeXL:
		return 16
	default:
		return 8
	}
}
