package textedit

// FontID identifies a host-registered font face.
type FontID = uint16

// Measurer reports the rendered width of a byte run. Implementations
// are supplied by the host; using the same measurer for rendering and
// cursor placement keeps the two visually consistent.
type Measurer interface {
	MeasureText(text []byte, font FontID, size uint16) float32
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(text []byte, font FontID, size uint16) float32

func (f MeasureFunc) MeasureText(text []byte, font FontID, size uint16) float32 {
	return f(text, font, size)
}

// LocateCursor maps a horizontal pixel offset, measured from the text's
// left edge, to the character index whose insertion point is closest
// to x. It is used to place the cursor on mouse click, after layout.
//
// The scan is linear over prefix widths: measurement is assumed cheap
// relative to realistic single-line lengths, and the prefix-width
// function is monotonic, so a binary search could be substituted later
// without changing the contract.
func (b *Buffer) LocateCursor(m Measurer, font FontID, size uint16, x float32) int {
	if x <= 0 || b.length == 0 {
		return 0
	}

	prev := float32(0)
	for i := 1; i <= b.length; i++ {
		width := m.MeasureText(b.storage[:i], font, size)
		mid := (prev + width) / 2
		if x < mid {
			return i - 1
		}
		prev = width
	}
	return b.length
}
