package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	kiterrors "github.com/claykit-ui/claykit/pkg/errors"
	"github.com/claykit-ui/claykit/pkg/theme"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseThemeFile loads a theme file from disk, validates it, and returns
// the parsed document.
func ParseThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kiterrors.NewParseError(path, 0, err)
	}

	var tf ThemeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, kiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateThemeFile(&tf); err != nil {
		return nil, err
	}

	return &tf, nil
}

// Load parses a theme file and applies its overrides onto the preset it
// names.
func Load(path string) (*theme.Theme, error) {
	tf, err := ParseThemeFile(path)
	if err != nil {
		return nil, err
	}
	return tf.Build(), nil
}

// Build materializes the document into a theme, starting from the base
// preset and applying every override that was set.
func (tf *ThemeFile) Build() *theme.Theme {
	var th theme.Theme
	if tf.Base == "dark" {
		th = theme.Dark()
	} else {
		th = theme.Light()
	}

	applyColor(&th.Primary, tf.Palette.Primary)
	applyColor(&th.Secondary, tf.Palette.Secondary)
	applyColor(&th.Success, tf.Palette.Success)
	applyColor(&th.Warning, tf.Palette.Warning)
	applyColor(&th.Error, tf.Palette.Error)

	applyColor(&th.BG, tf.Colors.BG)
	applyColor(&th.FG, tf.Colors.FG)
	applyColor(&th.Border, tf.Colors.Border)
	applyColor(&th.Muted, tf.Colors.Muted)

	applyStep(&th.Spacing.XS, tf.Scales.Spacing.XS)
	applyStep(&th.Spacing.SM, tf.Scales.Spacing.SM)
	applyStep(&th.Spacing.MD, tf.Scales.Spacing.MD)
	applyStep(&th.Spacing.LG, tf.Scales.Spacing.LG)
	applyStep(&th.Spacing.XL, tf.Scales.Spacing.XL)

	applyStep(&th.FontSize.XS, tf.Scales.FontSize.XS)
	applyStep(&th.FontSize.SM, tf.Scales.FontSize.SM)
	applyStep(&th.FontSize.MD, tf.Scales.FontSize.MD)
	applyStep(&th.FontSize.LG, tf.Scales.FontSize.LG)
	applyStep(&th.FontSize.XL, tf.Scales.FontSize.XL)

	applyStep(&th.Radius.SM, tf.Scales.Radius.SM)
	applyStep(&th.Radius.MD, tf.Scales.Radius.MD)
	applyStep(&th.Radius.LG, tf.Scales.Radius.LG)
	applyStep(&th.Radius.Full, tf.Scales.Radius.Full)

	return &th
}

func applyColor(dst *theme.Color, hex string) {
	if hex == "" {
		return
	}
	if c, ok := parseHexColor(hex); ok {
		*dst = c
	}
}

func applyStep(dst *uint16, value uint16) {
	if value != 0 {
		*dst = value
	}
}

// parseHexColor decodes #rgb and #rrggbb forms. Validation has already
// rejected malformed values; the ok result guards direct callers.
func parseHexColor(s string) (theme.Color, bool) {
	if len(s) == 0 || s[0] != '#' {
		return theme.Color{}, false
	}
	s = s[1:]

	switch len(s) {
	case 3:
		r, okR := hexNibble(s[0])
		g, okG := hexNibble(s[1])
		b, okB := hexNibble(s[2])
		if !okR || !okG || !okB {
			return theme.Color{}, false
		}
		return theme.RGB(r*17, g*17, b*17), true
	case 6:
		r, okR := hexByte(s[0], s[1])
		g, okG := hexByte(s[2], s[3])
		b, okB := hexByte(s[4], s[5])
		if !okR || !okG || !okB {
			return theme.Color{}, false
		}
		return theme.RGB(r, g, b), true
	default:
		return theme.Color{}, false
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, okH := hexNibble(hi)
	l, okL := hexNibble(lo)
	return h<<4 | l, okH && okL
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
