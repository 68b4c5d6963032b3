package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/claykit-ui/claykit/pkg/theme"
)

func writeThemeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestThemesValidateAcceptsGoodFile(t *testing.T) {
	path := writeThemeFile(t, "name: Ocean\nbase: light\npalette:\n  primary: \"#0ea5e9\"\n")

	output, err := runCommand(t, "themes", "validate", path)
	require.NoError(t, err)
	require.Contains(t, output, "Ocean")
	require.Contains(t, output, "valid")
}

func TestThemesValidateRejectsBadFile(t *testing.T) {
	path := writeThemeFile(t, "name: Broken\nbase: sepia\n")

	_, err := runCommand(t, "themes", "validate", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "oneof")
}

func TestThemesShowPrintsResolvedPalette(t *testing.T) {
	path := writeThemeFile(t, "name: Ocean\nbase: dark\npalette:\n  primary: \"#0ea5e9\"\n")

	output, err := runCommand(t, "themes", "show", path)
	require.NoError(t, err)
	require.Contains(t, output, "#0ea5e9")

	dark := theme.Dark()
	require.Contains(t, output, dark.BG.Hex())
}

func TestLoadThemeDefaultsToPresets(t *testing.T) {
	th, err := loadTheme(&rootFlags{})
	require.NoError(t, err)
	light := theme.Light()
	require.Equal(t, &light, th)

	th, err = loadTheme(&rootFlags{dark: true})
	require.NoError(t, err)
	dark := theme.Dark()
	require.Equal(t, &dark, th)
}

func TestLoadThemeReadsFile(t *testing.T) {
	path := writeThemeFile(t, "name: Ocean\nbase: light\ncolors:\n  fg: \"#111111\"\n")

	th, err := loadTheme(&rootFlags{themePath: path})
	require.NoError(t, err)
	require.Equal(t, theme.RGB(0x11, 0x11, 0x11), th.FG)
}
