package textedit

import "fmt"

// Flags carries externally managed widget state. The editing core never
// reads these; they live here so a single Buffer value can travel
// between the widget layer and the host.
type Flags uint8

const (
	FlagFocused  Flags = 1 << 0
	FlagObscured Flags = 1 << 1
	FlagReadOnly Flags = 1 << 2
	FlagDisabled Flags = 1 << 3
)

// Buffer is a fixed-capacity single-line edit buffer over caller-owned
// storage. One byte of capacity is always held in reserve so the caller
// can append a terminator after any edit.
//
// The zero value is unusable; construct with New or Attach storage
// before editing.
type Buffer struct {
	storage []byte
	length  int
	cursor  int
	anchor  int

	// Flags is read by widgets to gate rendering and event routing,
	// never by the editing operations themselves.
	Flags Flags
}

// New returns a Buffer backed by storage. The storage must be at least
// two bytes long so at least one character fits alongside the reserved
// terminator byte.
func New(storage []byte) *Buffer {
	b := &Buffer{}
	b.Attach(storage)
	return b
}

// Attach points the buffer at new storage and clears all editing state.
func (b *Buffer) Attach(storage []byte) {
	b.storage = storage
	b.length = 0
	b.cursor = 0
	b.anchor = 0
}

// Reset clears the text, cursor, and selection without touching the
// backing storage.
func (b *Buffer) Reset() {
	b.length = 0
	b.cursor = 0
	b.anchor = 0
}

// Cap returns the total capacity of the backing storage, including the
// reserved terminator byte.
func (b *Buffer) Cap() int { return len(b.storage) }

// Len returns the number of valid bytes currently in the buffer.
func (b *Buffer) Len() int { return b.length }

// Cursor returns the insertion point index.
func (b *Buffer) Cursor() int { return b.cursor }

// Anchor returns the selection anchor index. It equals Cursor when no
// selection is active.
func (b *Buffer) Anchor() int { return b.anchor }

// Text returns the valid byte range of the buffer. The slice aliases
// the backing storage and is invalidated by the next edit.
func (b *Buffer) Text() []byte { return b.storage[:b.length] }

// String returns a copy of the buffer contents.
func (b *Buffer) String() string { return string(b.storage[:b.length]) }

// HasSelection reports whether a selection is active.
func (b *Buffer) HasSelection() bool { return b.cursor != b.anchor }

// Selection returns the selected half-open range [start, end). When no
// selection is active both bounds equal the cursor.
func (b *Buffer) Selection() (start, end int) {
	if b.cursor < b.anchor {
		return b.cursor, b.anchor
	}
	return b.anchor, b.cursor
}

// SetCursor moves the cursor, clamped to the valid range, collapsing
// any selection to the new position.
func (b *Buffer) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > b.length {
		pos = b.length
	}
	b.cursor = pos
	b.anchor = pos
}

// Select places the anchor and cursor explicitly, clamped to the valid
// range.
func (b *Buffer) Select(anchor, cursor int) {
	b.anchor = clamp(anchor, 0, b.length)
	b.cursor = clamp(cursor, 0, b.length)
}

// SetText replaces the buffer contents, positioning the cursor at the
// end. It fails if text does not fit in the storage (one byte is
// reserved) or contains bytes outside printable ASCII.
func (b *Buffer) SetText(text string) error {
	if len(text) > len(b.storage)-1 {
		return fmt.Errorf("textedit: text length %d exceeds capacity %d", len(text), len(b.storage)-1)
	}
	for i := 0; i < len(text); i++ {
		if text[i] < asciiPrintableMin || text[i] > asciiPrintableMax {
			return fmt.Errorf("textedit: byte 0x%02x at index %d is not printable ASCII", text[i], i)
		}
	}
	copy(b.storage, text)
	b.length = len(text)
	b.cursor = b.length
	b.anchor = b.length
	return nil
}

// deleteSelection removes the selected bytes, shifting the tail left
// and parking cursor and anchor at the selection start. Callers must
// only invoke it with an active selection.
func (b *Buffer) deleteSelection() {
	start, end := b.Selection()
	width := end - start
	for i := start; i < b.length-width; i++ {
		b.storage[i] = b.storage[i+width]
	}
	b.length -= width
	b.cursor = start
	b.anchor = start
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
