package textedit

const (
	asciiPrintableMin = 0x20
	asciiPrintableMax = 0x7e
)

// HandleKey applies one logical key press to the buffer and reports
// whether the buffer state changed.
//
// Arrow, Home, and End keys always report a change, even when clamped
// at an extreme, so hosts treat them as consumed. Enter and Tab are
// recognized but never modify the buffer; their submit and
// focus-advance semantics belong to the host.
func (b *Buffer) HandleKey(key Key, mods Modifier) bool {
	shift := mods.Has(ModShift)
	ctrl := mods.Has(ModCtrl)

	switch key {
	case KeyBackspace:
		if b.HasSelection() {
			b.deleteSelection()
			return true
		}
		if b.cursor > 0 {
			for i := b.cursor - 1; i < b.length-1; i++ {
				b.storage[i] = b.storage[i+1]
			}
			b.length--
			b.cursor--
			b.anchor = b.cursor
			return true
		}
		return false

	case KeyDelete:
		if b.HasSelection() {
			b.deleteSelection()
			return true
		}
		if b.cursor < b.length {
			for i := b.cursor; i < b.length-1; i++ {
				b.storage[i] = b.storage[i+1]
			}
			b.length--
			return true
		}
		return false

	case KeyLeft:
		if ctrl {
			// Skip trailing spaces, then the previous word.
			for b.cursor > 0 && b.storage[b.cursor-1] == ' ' {
				b.cursor--
			}
			for b.cursor > 0 && b.storage[b.cursor-1] != ' ' {
				b.cursor--
			}
		} else if b.cursor > 0 {
			b.cursor--
		}
		if !shift {
			b.anchor = b.cursor
		}
		return true

	case KeyRight:
		if ctrl {
			// Skip the rest of the current word, then the gap after it.
			for b.cursor < b.length && b.storage[b.cursor] != ' ' {
				b.cursor++
			}
			for b.cursor < b.length && b.storage[b.cursor] == ' ' {
				b.cursor++
			}
		} else if b.cursor < b.length {
			b.cursor++
		}
		if !shift {
			b.anchor = b.cursor
		}
		return true

	case KeyHome:
		b.cursor = 0
		if !shift {
			b.anchor = b.cursor
		}
		return true

	case KeyEnd:
		b.cursor = b.length
		if !shift {
			b.anchor = b.cursor
		}
		return true
	}

	return false
}

// HandleChar inserts one printable ASCII character at the cursor,
// replacing the active selection if there is one. It reports whether
// the character was inserted.
//
// Code points outside [0x20, 0x7E] are rejected outright: control
// characters, DEL, and all multi-byte text. Insertion is also rejected
// once the buffer reaches its reserved capacity.
func (b *Buffer) HandleChar(cp rune) bool {
	if cp < asciiPrintableMin || cp > asciiPrintableMax {
		return false
	}

	if b.HasSelection() {
		b.deleteSelection()
	}

	if b.length >= len(b.storage)-1 {
		return false
	}

	for i := b.length; i > b.cursor; i-- {
		b.storage[i] = b.storage[i-1]
	}
	b.storage[b.cursor] = byte(cp)
	b.length++
	b.cursor++
	b.anchor = b.cursor
	return true
}
