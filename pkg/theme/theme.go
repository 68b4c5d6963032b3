// Package theme defines the color palettes and sizing scales shared by
// every widget in the kit, plus the lookup helpers that map size and
// color-scheme tokens onto concrete values.
package theme

// Size is the shared size token consumed by spacing, font, and radius
// lookups as well as widget configs.
type Size int

const (
	SizeXS Size = iota
	SizeSM
	SizeMD
	SizeLG
	SizeXL
)

// Scheme selects one of the palette color slots.
type Scheme int

const (
	SchemePrimary Scheme = iota
	SchemeSecondary
	SchemeSuccess
	SchemeWarning
	SchemeError
)

// SpacingScale holds the pixel spacing steps.
type SpacingScale struct {
	XS, SM, MD, LG, XL uint16
}

// RadiusScale holds the corner radius steps. Full is effectively
// unbounded and produces pill shapes.
type RadiusScale struct {
	SM, MD, LG, Full uint16
}

// FontIDs names the host-registered font faces. The kit never loads
// fonts itself; the host assigns real identifiers after registration.
type FontIDs struct {
	Body, Heading uint16
}

// FontSizeScale holds the font pixel sizes.
type FontSizeScale struct {
	XS, SM, MD, LG, XL uint16
}

// Theme is the complete styling table widgets resolve against.
type Theme struct {
	// Palette
	Primary   Color
	Secondary Color
	Success   Color
	Warning   Color
	Error     Color

	// Semantic colors
	BG     Color
	FG     Color
	Border Color
	Muted  Color

	// Scales
	Spacing  SpacingScale
	Radius   RadiusScale
	FontID   FontIDs
	FontSize FontSizeScale
}

// SchemeColor resolves a scheme token, defaulting to the primary color
// for out-of-range values.
func (t *Theme) SchemeColor(scheme Scheme) Color {
	switch scheme {
	case SchemePrimary:
		return t.Primary
	case SchemeSecondary:
		return t.Secondary
	case SchemeSuccess:
		return t.Success
	case SchemeWarning:
		return t.Warning
	case SchemeError:
		return t.Error
	default:
		return t.Primary
	}
}

// SpacingFor resolves a size token against the spacing scale,
// defaulting to MD.
func (t *Theme) SpacingFor(size Size) uint16 {
	switch size {
	case SizeXS:
		return t.Spacing.XS
	case SizeSM:
		return t.Spacing.SM
	case SizeMD:
		return t.Spacing.MD
	case SizeLG:
		return t.Spacing.LG
	case SizeXL:
		return t.Spacing.XL
	default:
		return t.Spacing.MD
	}
}

// FontSizeFor resolves a size token against the font size scale,
// defaulting to MD.
func (t *Theme) FontSizeFor(size Size) uint16 {
	switch size {
	case SizeXS:
		return t.FontSize.XS
	case SizeSM:
		return t.FontSize.SM
	case SizeMD:
		return t.FontSize.MD
	case SizeLG:
		return t.FontSize.LG
	case SizeXL:
		return t.FontSize.XL
	default:
		return t.FontSize.MD
	}
}

// RadiusFor resolves a size token against the radius scale. XS and SM
// share the small radius, LG and XL the large one; out-of-range values
// default to MD.
func (t *Theme) RadiusFor(size Size) uint16 {
	switch size {
	case SizeXS, SizeSM:
		return t.Radius.SM
	case SizeMD:
		return t.Radius.MD
	case SizeLG, SizeXL:
		return t.Radius.LG
	default:
		return t.Radius.MD
	}
}

// Light returns the light theme preset.
func Light() Theme {
	return Theme{
		Primary:   RGB(66, 133, 244),
		Secondary: RGB(156, 163, 175),
		Success:   RGB(34, 197, 94),
		Warning:   RGB(251, 191, 36),
		Error:     RGB(239, 68, 68),

		BG:     RGB(255, 255, 255),
		FG:     RGB(17, 24, 39),
		Border: RGB(229, 231, 235),
		Muted:  RGB(107, 114, 128),

		Spacing:  SpacingScale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32},
		Radius:   RadiusScale{SM: 4, MD: 8, LG: 12, Full: 9999},
		FontID:   FontIDs{},
		FontSize: FontSizeScale{XS: 12, SM: 14, MD: 16, LG: 18, XL: 24},
	}
}

// Dark returns the dark theme preset.
func Dark() Theme {
	return Theme{
		Primary:   RGB(96, 165, 250),
		Secondary: RGB(156, 163, 175),
		Success:   RGB(74, 222, 128),
		Warning:   RGB(251, 191, 36),
		Error:     RGB(248, 113, 113),

		BG:     RGB(17, 24, 39),
		FG:     RGB(249, 250, 251),
		Border: RGB(55, 65, 81),
		Muted:  RGB(156, 163, 175),

		Spacing:  SpacingScale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32},
		Radius:   RadiusScale{SM: 4, MD: 8, LG: 12, Full: 9999},
		FontID:   FontIDs{},
		FontSize: FontSizeScale{XS: 12, SM: 14, MD: 16, LG: 18, XL: 24},
	}
}
