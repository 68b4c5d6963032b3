package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claykit-ui/claykit/pkg/theme"
)

func TestButtonBGColorSolid(t *testing.T) {
	ctx, th := newTestContext(t, 4)
	cfg := ButtonConfig{Variant: ButtonSolid, Scheme: theme.SchemePrimary}

	normal := ctx.ButtonBGColor(cfg, false)
	assert.Equal(t, th.Primary, normal)

	hovered := ctx.ButtonBGColor(cfg, true)
	assert.True(t,
		hovered.R < normal.R || hovered.G < normal.G || hovered.B < normal.B,
		"hover darkens a solid button")
}

func TestButtonBGColorOutlineAndGhost(t *testing.T) {
	ctx, _ := newTestContext(t, 4)

	for _, variant := range []ButtonVariant{ButtonOutline, ButtonGhost} {
		cfg := ButtonConfig{Variant: variant, Scheme: theme.SchemePrimary}
		assert.Equal(t, uint8(0), ctx.ButtonBGColor(cfg, false).A, "transparent until hover")
		assert.NotEqual(t, uint8(0), ctx.ButtonBGColor(cfg, true).A, "hover tints the background")
	}
}

func TestButtonDisabled(t *testing.T) {
	ctx, th := newTestContext(t, 4)
	cfg := ButtonConfig{Variant: ButtonSolid, Scheme: theme.SchemePrimary, Disabled: true}

	assert.Equal(t, th.Border, ctx.ButtonBGColor(cfg, false))
	assert.Equal(t, th.Border, ctx.ButtonBGColor(cfg, true), "disabled ignores hover")
	assert.Equal(t, th.Muted, ctx.ButtonTextColor(cfg))
}

func TestButtonTextColor(t *testing.T) {
	ctx, th := newTestContext(t, 4)

	assert.Equal(t, theme.White, ctx.ButtonTextColor(ButtonConfig{Variant: ButtonSolid}))
	assert.Equal(t, th.Success, ctx.ButtonTextColor(ButtonConfig{Variant: ButtonOutline, Scheme: theme.SchemeSuccess}))
	assert.Equal(t, th.Error, ctx.ButtonTextColor(ButtonConfig{Variant: ButtonGhost, Scheme: theme.SchemeError}))
}

func TestButtonBorderWidth(t *testing.T) {
	assert.Equal(t, uint16(1), ButtonBorderWidth(ButtonConfig{Variant: ButtonOutline}))
	assert.Equal(t, uint16(0), ButtonBorderWidth(ButtonConfig{Variant: ButtonSolid}))
	assert.Equal(t, uint16(0), ButtonBorderWidth(ButtonConfig{Variant: ButtonGhost}))
}

func TestButtonPaddingScales(t *testing.T) {
	ctx, _ := newTestContext(t, 4)

	assert.Greater(t, ctx.ButtonPaddingX(theme.SizeXL), ctx.ButtonPaddingX(theme.SizeXS))
	assert.Greater(t, ctx.ButtonPaddingY(theme.SizeXL), ctx.ButtonPaddingY(theme.SizeXS))
}
