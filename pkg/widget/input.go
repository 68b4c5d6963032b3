package widget

import (
	"github.com/claykit-ui/claykit/pkg/textedit"
	"github.com/claykit-ui/claykit/pkg/theme"
)

// InputConfig describes one single-line text input. Zero-valued color
// fields fall back to the theme.
type InputConfig struct {
	Size        theme.Size
	BG          theme.Color
	Text        theme.Color
	Placeholder string
}

// InputStyle is the resolved look of a text input.
type InputStyle struct {
	BG              theme.Color
	Text            theme.Color
	PlaceholderText theme.Color
	Border          theme.Color
	SelectionBG     theme.Color
	Cursor          theme.Color
	CursorWidth     uint16
	BorderWidth     uint16
	PadX            uint16
	PadY            uint16
	FontID          textedit.FontID
	FontSize        uint16
	CornerRadius    uint16
}

// InputStyle resolves an input config against the active theme for the
// given focus state. Focus switches the border to the primary color.
func (c *Context) InputStyle(cfg InputConfig, focused bool) InputStyle {
	style := InputStyle{
		BG:              c.theme.BG,
		Text:            c.theme.FG,
		PlaceholderText: c.theme.Muted,
		Border:          c.theme.Border,
		SelectionBG:     c.theme.Primary.WithAlpha(64),
		Cursor:          c.theme.Primary,
		CursorWidth:     2,
		BorderWidth:     1,
		PadX:            c.theme.SpacingFor(cfg.Size) / 2,
		PadY:            c.theme.SpacingFor(cfg.Size) / 4,
		FontID:          c.theme.FontID.Body,
		FontSize:        c.theme.FontSizeFor(cfg.Size),
		CornerRadius:    c.theme.Radius.SM,
	}

	if cfg.BG != (theme.Color{}) {
		style.BG = cfg.BG
	}
	if cfg.Text != (theme.Color{}) {
		style.Text = cfg.Text
	}
	if focused {
		style.Border = c.theme.Primary
		style.BorderWidth = 2
	}

	return style
}

// Input binds a text editing buffer to widget identity and config. The
// host routes key, char, and click events through it once per frame.
type Input struct {
	ID     ElementID
	Config InputConfig
	Buffer *textedit.Buffer
}

// NewInput creates an input widget over caller-owned storage.
func NewInput(id ElementID, cfg InputConfig, storage []byte) *Input {
	return &Input{ID: id, Config: cfg, Buffer: textedit.New(storage)}
}

// editable reports whether events should reach the buffer at all.
// Read-only and disabled inputs swallow edits here so the editing core
// stays free of flag checks.
func (in *Input) editable() bool {
	return in.Buffer.Flags&(textedit.FlagReadOnly|textedit.FlagDisabled) == 0
}

// HandleKey forwards a key press to the buffer, gated on the input
// being editable.
func (in *Input) HandleKey(key textedit.Key, mods textedit.Modifier) bool {
	if !in.editable() {
		return false
	}
	return in.Buffer.HandleKey(key, mods)
}

// HandleChar forwards a typed character to the buffer, gated on the
// input being editable.
func (in *Input) HandleChar(cp rune) bool {
	if !in.editable() {
		return false
	}
	return in.Buffer.HandleChar(cp)
}

// Click places the cursor from a horizontal pixel offset relative to
// the text's left edge, using the style's font so placement matches
// rendering.
func (in *Input) Click(c *Context, m textedit.Measurer, x float32) int {
	style := c.InputStyle(in.Config, true)
	idx := in.Buffer.LocateCursor(m, style.FontID, style.FontSize, x)
	in.Buffer.SetCursor(idx)
	return idx
}

// ShowPlaceholder reports whether the placeholder text should render
// instead of the buffer contents.
func (in *Input) ShowPlaceholder() bool {
	return in.Buffer.Len() == 0 && in.Config.Placeholder != ""
}

// DisplayText returns what the renderer should draw: the buffer
// contents, masked when the input is obscured.
func (in *Input) DisplayText(mask []byte) []byte {
	if in.Buffer.Flags&textedit.FlagObscured == 0 {
		return in.Buffer.Text()
	}
	n := in.Buffer.Len()
	if cap(mask) < n {
		mask = make([]byte, n)
	}
	mask = mask[:n]
	for i := range mask {
		mask[i] = '*'
	}
	return mask
}
