package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claykit-ui/claykit/pkg/theme"
)

func TestTabsLine(t *testing.T) {
	ctx, th := newTestContext(t, 4)

	style := ctx.TabsStyle(TabsConfig{Variant: TabsLine, Scheme: theme.SchemePrimary, Size: theme.SizeMD})

	assert.Equal(t, th.Primary, style.Active)
	assert.Equal(t, th.Primary, style.ActiveText, "line variant colors the active label")
	assert.Equal(t, th.Muted, style.Inactive)
	assert.Greater(t, style.IndicatorHeight, uint16(0))
}

func TestTabsEnclosed(t *testing.T) {
	ctx, _ := newTestContext(t, 4)

	style := ctx.TabsStyle(TabsConfig{Variant: TabsEnclosed, Scheme: theme.SchemePrimary, Size: theme.SizeMD})

	assert.Equal(t, theme.White, style.ActiveText, "enclosed variant fills the active tab")
	assert.Equal(t, uint16(0), style.IndicatorHeight)
}

func TestTabsSizes(t *testing.T) {
	ctx, _ := newTestContext(t, 4)

	xs := ctx.TabsStyle(TabsConfig{Variant: TabsLine, Size: theme.SizeXS})
	xl := ctx.TabsStyle(TabsConfig{Variant: TabsLine, Size: theme.SizeXL})

	assert.Greater(t, xl.PaddingX, xs.PaddingX)
	assert.Greater(t, xl.FontSize, xs.FontSize)
}

func TestModalDefaults(t *testing.T) {
	ctx, th := newTestContext(t, 4)

	style := ctx.ModalStyle(ModalConfig{Size: ModalMD})

	assert.Equal(t, theme.Color{A: 128}, style.Backdrop, "backdrop is semi-transparent black")
	assert.Equal(t, th.BG, style.BG)
	assert.Equal(t, uint16(500), style.Width)
	assert.Equal(t, uint16(1000), style.ZIndex)
}

func TestModalSizes(t *testing.T) {
	ctx, _ := newTestContext(t, 4)

	tests := []struct {
		size  ModalSize
		width uint16
	}{
		{ModalSM, 400},
		{ModalMD, 500},
		{ModalLG, 600},
		{ModalXL, 800},
		{ModalFull, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.width, ctx.ModalStyle(ModalConfig{Size: tt.size}).Width)
	}
}

func TestModalCustomZIndex(t *testing.T) {
	ctx, _ := newTestContext(t, 4)

	style := ctx.ModalStyle(ModalConfig{Size: ModalMD, ZIndex: 2000})
	assert.Equal(t, uint16(2000), style.ZIndex)
}
