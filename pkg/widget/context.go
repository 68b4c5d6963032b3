package widget

import (
	"github.com/claykit-ui/claykit/pkg/layout"
	"github.com/claykit-ui/claykit/pkg/theme"
)

// ElementID identifies a UI element across frames. Zero means "no
// element" and is never a valid identifier.
type ElementID uint32

// State is a per-widget state slot: a flags word and a scalar value
// (slider position, progress ratio, open/closed bits).
type State struct {
	ID    ElementID
	Flags uint32
	Value float32
}

// Icon references a host-registered icon glyph.
type Icon struct {
	ID   uint16
	Size uint16
}

// IconFunc draws an icon into its resolved bounding box. The host
// installs one through SetIconFunc when it renders icons itself.
type IconFunc func(iconID uint16, box layout.BoundingBox)

// Context ties a theme, a caller-owned state slab, and focus tracking
// together for one widget tree. It performs no allocation after
// construction.
type Context struct {
	theme  *theme.Theme
	states []State
	count  int

	focusedID     ElementID
	prevFocusedID ElementID

	iconFn IconFunc
}

// NewContext creates a widget context over the supplied theme and
// state slab. The slab's length bounds how many distinct stateful
// widgets the tree can hold.
func NewContext(th *theme.Theme, states []State) *Context {
	for i := range states {
		states[i] = State{}
	}
	return &Context{theme: th, states: states}
}

// Theme returns the context's active theme.
func (c *Context) Theme() *theme.Theme { return c.theme }

// SetTheme swaps the active theme. Styles computed afterwards resolve
// against the new theme.
func (c *Context) SetTheme(th *theme.Theme) { c.theme = th }

// SetIconFunc installs the host icon renderer.
func (c *Context) SetIconFunc(fn IconFunc) { c.iconFn = fn }

// DrawIcon invokes the host icon renderer, if any.
func (c *Context) DrawIcon(icon Icon, box layout.BoundingBox) {
	if c.iconFn != nil && icon.ID != 0 {
		c.iconFn(icon.ID, box)
	}
}

// GetState returns the state slot for id, or nil if none exists yet.
func (c *Context) GetState(id ElementID) *State {
	for i := 0; i < c.count; i++ {
		if c.states[i].ID == id {
			return &c.states[i]
		}
	}
	return nil
}

// GetOrCreateState returns the state slot for id, allocating one from
// the slab on first use. It returns nil when the slab is exhausted.
func (c *Context) GetOrCreateState(id ElementID) *State {
	if s := c.GetState(id); s != nil {
		return s
	}
	if c.count < len(c.states) {
		s := &c.states[c.count]
		*s = State{ID: id}
		c.count++
		return s
	}
	return nil
}

// BeginFrame snapshots focus so FocusChanged can compare against the
// previous frame. Call once at the top of every frame.
func (c *Context) BeginFrame() {
	c.prevFocusedID = c.focusedID
}

// SetFocus moves keyboard focus to id.
func (c *Context) SetFocus(id ElementID) { c.focusedID = id }

// ClearFocus removes keyboard focus entirely.
func (c *Context) ClearFocus() { c.focusedID = 0 }

// HasFocus reports whether id currently holds keyboard focus.
func (c *Context) HasFocus(id ElementID) bool { return c.focusedID == id }

// Focused returns the focused element, zero when none.
func (c *Context) Focused() ElementID { return c.focusedID }

// FocusChanged reports whether focus moved since BeginFrame.
func (c *Context) FocusChanged() bool { return c.focusedID != c.prevFocusedID }

// FocusNext advances focus through the state slab in creation order,
// wrapping at the end. With no stateful widgets it is a no-op.
func (c *Context) FocusNext() {
	if c.count == 0 {
		return
	}
	idx := c.focusIndex()
	c.focusedID = c.states[(idx+1)%c.count].ID
}

// FocusPrev moves focus backwards through the state slab in creation
// order, wrapping at the start.
func (c *Context) FocusPrev() {
	if c.count == 0 {
		return
	}
	idx := c.focusIndex()
	if idx <= 0 {
		c.focusedID = c.states[c.count-1].ID
		return
	}
	c.focusedID = c.states[idx-1].ID
}

func (c *Context) focusIndex() int {
	for i := 0; i < c.count; i++ {
		if c.states[i].ID == c.focusedID {
			return i
		}
	}
	return -1
}
