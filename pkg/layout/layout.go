// Package layout carries the configuration vocabulary of the external
// immediate-mode layout engine. Widgets emit these values; the engine
// consumes them when building the frame. Nothing here performs layout
// itself.
package layout

// Direction controls the flow of child elements.
type Direction int

const (
	LeftToRight Direction = iota
	TopToBottom
)

// AlignX positions children on the horizontal axis.
type AlignX int

const (
	AlignXLeft AlignX = iota
	AlignXRight
	AlignXCenter
)

// AlignY positions children on the vertical axis.
type AlignY int

const (
	AlignYTop AlignY = iota
	AlignYBottom
	AlignYCenter
)

// Alignment pairs the two child alignment axes.
type Alignment struct {
	X AlignX
	Y AlignY
}

// Padding is the inner spacing of an element in pixels.
type Padding struct {
	Left, Right, Top, Bottom uint16
}

// PaddingAll returns uniform padding on all four sides.
func PaddingAll(px uint16) Padding {
	return Padding{Left: px, Right: px, Top: px, Bottom: px}
}

// PaddingXY returns symmetric horizontal and vertical padding.
func PaddingXY(x, y uint16) Padding {
	return Padding{Left: x, Right: x, Top: y, Bottom: y}
}

// SizingMode selects how an axis is sized.
type SizingMode int

const (
	SizingFit SizingMode = iota
	SizingGrow
	SizingFixed
	SizingPercent
)

// SizingAxis describes one axis of an element's sizing.
type SizingAxis struct {
	Mode    SizingMode
	Min     float32
	Max     float32
	Percent float32
}

// Fit sizes the axis to its contents.
func Fit() SizingAxis { return SizingAxis{Mode: SizingFit} }

// Grow lets the axis expand into available space.
func Grow() SizingAxis { return SizingAxis{Mode: SizingGrow} }

// GrowCapped lets the axis expand up to max pixels.
func GrowCapped(max float32) SizingAxis {
	return SizingAxis{Mode: SizingGrow, Max: max}
}

// Fixed pins the axis to an exact pixel size.
func Fixed(px float32) SizingAxis {
	return SizingAxis{Mode: SizingFixed, Min: px, Max: px}
}

// Percent sizes the axis as a fraction of the parent.
func Percent(fraction float32) SizingAxis {
	return SizingAxis{Mode: SizingPercent, Percent: fraction}
}

// Sizing pairs the two sizing axes.
type Sizing struct {
	Width  SizingAxis
	Height SizingAxis
}

// Config is the layout configuration a widget hands to the engine for
// one element.
type Config struct {
	Sizing         Sizing
	Padding        Padding
	ChildGap       uint16
	ChildAlignment Alignment
	Direction      Direction
}

// BoundingBox is an element's resolved screen rectangle, reported back
// by the engine after layout.
type BoundingBox struct {
	X, Y, Width, Height float32
}

// BoxConfig parameterizes Box.
type BoxConfig struct {
	Padding uint16
	Gap     uint16
	Sizing  Sizing
}

// Box returns a plain container config with uniform padding. Children
// flow left to right, aligned to the top left.
func Box(cfg BoxConfig) Config {
	return Config{
		Sizing:   cfg.Sizing,
		Padding:  PaddingAll(cfg.Padding),
		ChildGap: cfg.Gap,
	}
}

// FlexConfig parameterizes Flex.
type FlexConfig struct {
	Direction Direction
	Gap       uint16
	Align     Alignment
	Padding   Padding
	Sizing    Sizing
}

// Flex returns a config with explicit direction, gap, and alignment.
func Flex(cfg FlexConfig) Config {
	return Config{
		Sizing:         cfg.Sizing,
		Padding:        cfg.Padding,
		ChildGap:       cfg.Gap,
		ChildAlignment: cfg.Align,
		Direction:      cfg.Direction,
	}
}

// StackDirection selects the axis of a Stack.
type StackDirection int

const (
	StackVertical StackDirection = iota
	StackHorizontal
)

// StackConfig parameterizes Stack.
type StackConfig struct {
	Direction StackDirection
	Gap       uint16
	Sizing    Sizing
}

// Stack returns a config that lays children out along one axis with a
// uniform gap.
func Stack(cfg StackConfig) Config {
	dir := TopToBottom
	if cfg.Direction == StackHorizontal {
		dir = LeftToRight
	}
	return Config{
		Sizing:    cfg.Sizing,
		ChildGap:  cfg.Gap,
		Direction: dir,
	}
}

// Center returns a config that centers its children on both axes.
func Center(sizing Sizing) Config {
	return Config{
		Sizing: sizing,
		ChildAlignment: Alignment{
			X: AlignXCenter,
			Y: AlignYCenter,
		},
	}
}

// DefaultContainerMaxWidth caps Container when no explicit max width
// is given.
const DefaultContainerMaxWidth = 1200

// ContainerConfig parameterizes Container.
type ContainerConfig struct {
	MaxWidth uint16
	Padding  uint16
}

// Container returns a page-level column: full width up to MaxWidth,
// uniform padding, children top to bottom.
func Container(cfg ContainerConfig) Config {
	max := cfg.MaxWidth
	if max == 0 {
		max = DefaultContainerMaxWidth
	}
	return Config{
		Sizing: Sizing{
			Width:  GrowCapped(float32(max)),
			Height: Fit(),
		},
		Padding:   PaddingAll(cfg.Padding),
		Direction: TopToBottom,
	}
}

// Spacer returns a config that absorbs free space on both axes.
func Spacer() Config {
	return Config{
		Sizing: Sizing{
			Width:  Grow(),
			Height: Grow(),
		},
	}
}
