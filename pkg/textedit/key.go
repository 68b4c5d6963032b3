package textedit

// Key identifies a logical editing key. Hosts map platform key codes to
// these before calling HandleKey.
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyTab
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	default:
		return "unknown"
	}
}

// Modifier is a bit mask of modifier keys held during a key press.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
)

// Has reports whether every modifier in mask is set.
func (m Modifier) Has(mask Modifier) bool {
	return m&mask == mask
}
