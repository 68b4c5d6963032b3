package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	kiterrors "github.com/claykit-ui/claykit/pkg/errors"
	"github.com/claykit-ui/claykit/pkg/theme"
)

func TestParseThemeFile(t *testing.T) {
	t.Parallel()

	validYAML := `name: "Ocean"
base: light
palette:
  primary: "#0ea5e9"
  error: "#f43f5e"
colors:
  bg: "#f8fafc"
scales:
  spacing:
    md: 20
  radius:
    full: 9999
`

	invalidYAML := `name: [broken
base: light
`

	missingBase := `name: "No Base"
`

	badBase := `name: "Weird"
base: solarized
`

	badColor := `name: "Bad Color"
base: dark
palette:
  primary: "blueish"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, tf *ThemeFile, err error)
	}{
		{
			name:     "valid theme file is parsed",
			contents: validYAML,
			assert: func(t *testing.T, tf *ThemeFile, err error) {
				require.NoError(t, err)
				require.NotNil(t, tf)
				require.Equal(t, "Ocean", tf.Name)
				require.Equal(t, "light", tf.Base)
				require.Equal(t, "#0ea5e9", tf.Palette.Primary)
				require.Equal(t, uint16(20), tf.Scales.Spacing.MD)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, tf *ThemeFile, err error) {
				require.Error(t, err)
				var parseErr *kiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "missing base returns validation error",
			contents: missingBase,
			assert: func(t *testing.T, tf *ThemeFile, err error) {
				require.Error(t, err)
				var validationErr *kiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "base")
			},
		},
		{
			name:     "base must be light or dark",
			contents: badBase,
			assert: func(t *testing.T, tf *ThemeFile, err error) {
				require.Error(t, err)
				var validationErr *kiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "oneof")
			},
		},
		{
			name:     "palette colors must be hex",
			contents: badColor,
			assert: func(t *testing.T, tf *ThemeFile, err error) {
				require.Error(t, err)
				var validationErr *kiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "hexcolor")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempTheme(t, tc.contents)
			tf, err := ParseThemeFile(path)
			tc.assert(t, tf, err)
		})
	}
}

func TestParseThemeFileMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseThemeFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var parseErr *kiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestLoadAppliesOverrides(t *testing.T) {
	t.Parallel()

	contents := `name: "Ocean Dark"
base: dark
palette:
  primary: "#0ea5e9"
colors:
  muted: "#789"
scales:
  spacing:
    md: 20
  font_size:
    xl: 32
`

	th, err := Load(writeTempTheme(t, contents))
	require.NoError(t, err)
	require.NotNil(t, th)

	require.Equal(t, theme.RGB(0x0e, 0xa5, 0xe9), th.Primary)
	require.Equal(t, theme.RGB(0x77, 0x88, 0x99), th.Muted)
	require.Equal(t, uint16(20), th.Spacing.MD)
	require.Equal(t, uint16(32), th.FontSize.XL)

	// Untouched fields keep the dark preset values.
	dark := theme.Dark()
	require.Equal(t, dark.BG, th.BG)
	require.Equal(t, dark.Secondary, th.Secondary)
	require.Equal(t, dark.Spacing.LG, th.Spacing.LG)
}

func TestBuildDefaultsToLight(t *testing.T) {
	t.Parallel()

	tf := &ThemeFile{Name: "Plain", Base: "light"}
	th := tf.Build()

	light := theme.Light()
	require.Equal(t, &light, th)
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  theme.Color
		ok    bool
	}{
		{"#ffffff", theme.RGB(255, 255, 255), true},
		{"#000000", theme.RGB(0, 0, 0), true},
		{"#4285F4", theme.RGB(66, 133, 244), true},
		{"#abc", theme.RGB(0xaa, 0xbb, 0xcc), true},
		{"ffffff", theme.Color{}, false},
		{"#ffff", theme.Color{}, false},
		{"#gggggg", theme.Color{}, false},
		{"", theme.Color{}, false},
	}

	for _, tc := range cases {
		got, ok := parseHexColor(tc.input)
		require.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			require.Equal(t, tc.want, got, "input %q", tc.input)
		}
	}
}

func writeTempTheme(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
