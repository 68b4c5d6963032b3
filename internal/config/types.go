// Package config loads and validates theme files: YAML documents that
// pick a preset and override palette colors and scale values.
package config

// ThemeFile is the on-disk theme document. All override sections are
// optional; omitted values keep the preset's defaults.
type ThemeFile struct {
	Name    string         `yaml:"name" validate:"required,min=1,max=64"`
	Base    string         `yaml:"base" validate:"required,oneof=light dark"`
	Palette PaletteSection `yaml:"palette,omitempty"`
	Colors  ColorsSection  `yaml:"colors,omitempty"`
	Scales  ScalesSection  `yaml:"scales,omitempty"`
}

// PaletteSection overrides the scheme colors.
type PaletteSection struct {
	Primary   string `yaml:"primary,omitempty" validate:"omitempty,hexcolor"`
	Secondary string `yaml:"secondary,omitempty" validate:"omitempty,hexcolor"`
	Success   string `yaml:"success,omitempty" validate:"omitempty,hexcolor"`
	Warning   string `yaml:"warning,omitempty" validate:"omitempty,hexcolor"`
	Error     string `yaml:"error,omitempty" validate:"omitempty,hexcolor"`
}

// ColorsSection overrides the semantic colors.
type ColorsSection struct {
	BG     string `yaml:"bg,omitempty" validate:"omitempty,hexcolor"`
	FG     string `yaml:"fg,omitempty" validate:"omitempty,hexcolor"`
	Border string `yaml:"border,omitempty" validate:"omitempty,hexcolor"`
	Muted  string `yaml:"muted,omitempty" validate:"omitempty,hexcolor"`
}

// ScalesSection overrides the sizing scales. Zero values keep the
// preset's steps.
type ScalesSection struct {
	Spacing  ScaleSteps  `yaml:"spacing,omitempty"`
	FontSize ScaleSteps  `yaml:"font_size,omitempty"`
	Radius   RadiusSteps `yaml:"radius,omitempty"`
}

// ScaleSteps is a five-step pixel scale.
type ScaleSteps struct {
	XS uint16 `yaml:"xs,omitempty" validate:"omitempty,min=1,max=128"`
	SM uint16 `yaml:"sm,omitempty" validate:"omitempty,min=1,max=128"`
	MD uint16 `yaml:"md,omitempty" validate:"omitempty,min=1,max=128"`
	LG uint16 `yaml:"lg,omitempty" validate:"omitempty,min=1,max=128"`
	XL uint16 `yaml:"xl,omitempty" validate:"omitempty,min=1,max=128"`
}

// RadiusSteps is the corner radius scale. Full may be any large value;
// it only needs to exceed every element's half extent.
type RadiusSteps struct {
	SM   uint16 `yaml:"sm,omitempty" validate:"omitempty,min=1,max=128"`
	MD   uint16 `yaml:"md,omitempty" validate:"omitempty,min=1,max=128"`
	LG   uint16 `yaml:"lg,omitempty" validate:"omitempty,min=1,max=128"`
	Full uint16 `yaml:"full,omitempty" validate:"omitempty,min=1"`
}
