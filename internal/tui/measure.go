package tui

import "github.com/claykit-ui/claykit/pkg/textedit"

// CellMeasurer measures text in terminal cells. Every printable ASCII
// byte occupies exactly one cell, so width is length times the cell
// width. Font identity and size are ignored; terminals have one font.
type CellMeasurer struct {
	CellWidth float32
}

// MeasureText implements textedit.Measurer.
func (m CellMeasurer) MeasureText(text []byte, _ textedit.FontID, _ uint16) float32 {
	w := m.CellWidth
	if w <= 0 {
		w = 1
	}
	return float32(len(text)) * w
}
