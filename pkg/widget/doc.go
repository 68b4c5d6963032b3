// Package widget maps widget configuration tuples (variant, size,
// color scheme, interaction state) to concrete style values: colors,
// padding, radii, and font sizes resolved against a theme. The host
// feeds the resulting styles to the layout engine each frame.
//
// The package is allocation-free at steady state: widget state lives in
// a caller-owned slab managed by Context, and style computation returns
// plain value structs.
package widget
