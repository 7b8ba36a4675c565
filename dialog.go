package pui

import (
	"image"
)

// Dialog is a container of controls placed in a window. It tracks which of
// its controls has mouse focus and which has key focus.
type Dialog interface {
	Base() *DialogBase
	// Rect returns the dialog's rectangle in window coordinates.
	Rect() image.Rectangle

	// Event handlers return whether the event was consumed.
	HandleKey(w Window, e KeyEvent) bool
	HandleTextInput(w Window, e TextInputEvent) bool
	HandleTextEdit(w Window, e TextEditEvent) bool
	HandleMouseClick(w Window, e MouseButtonEvent) bool
	HandleMouseMove(w Window, e MouseMotionEvent) bool
	HandleMouseWheel(w Window, e MouseWheelEvent) bool

	// HandleLosesMouse and HandleLosesKey are called when another dialog
	// takes focus. newC and newD may be nil.
	HandleLosesMouse(w Window, newC Control, newD Dialog)
	HandleLosesKey(w Window, newC Control, newD Dialog)
	HandleWindowLosesMouse(w Window)
	HandleWindowLosesKey(w Window)

	Render(w Window)
	RespondDefault(w Window)
	GotoFirstControl(w Window)
	StepControl(w Window, c Control, forward bool)
	// FindControlContaining returns the focusable control at p, in window
	// coordinates, and the component of it that is there.
	FindControlContaining(w Window, p image.Point) (Control, Component)

	Parent() Dialog
	Child() Dialog
	ParentControl() Control
	SetChild(child Dialog)

	Resize(w Window, size image.Point)
	NaturalSize(w Window) image.Point
	MinimumSize(w Window) image.Point

	// Cleanup releases the controls. It is called once, when the dialog
	// is popped down.
	Cleanup()
}

// PopFunc is called with up true when a dialog is popped up as a child
// menu, and with up false when it is popped down.
type PopFunc func(d Dialog, w Window, up bool)

// RecreateFunc is called when the host lost its rendering resources. All
// is true if everything is gone, not just render targets.
type RecreateFunc func(d Dialog, w Window, all bool)

// DialogBase holds the state every dialog has. Dialogs embed it; it also
// supplies the behaviour of a dialog without parent or child.
type DialogBase struct {
	R      image.Rectangle // In window coordinates.
	Code   TypeCode
	Tag    int
	Pinned bool // Exempt from closing by focus changes and escape.
	Dirty  bool

	PopCallback      PopFunc
	RecreateTextures RecreateFunc

	cMouse Control
	cKey   Control
}

func (b *DialogBase) Base() *DialogBase {
	return b
}

func (b *DialogBase) Rect() image.Rectangle {
	return b.R
}

// MoveTo places the dialog's upper left corner at p, keeping its size.
func (b *DialogBase) MoveTo(p image.Point) {
	b.R = b.R.Add(p.Sub(b.R.Min))
}

// MouseControl returns the control with mouse focus, or nil.
func (b *DialogBase) MouseControl() Control {
	return b.cMouse
}

// KeyControl returns the control with key focus, or nil.
func (b *DialogBase) KeyControl() Control {
	return b.cKey
}

func (b *DialogBase) Parent() Dialog          { return nil }
func (b *DialogBase) Child() Dialog           { return nil }
func (b *DialogBase) ParentControl() Control  { return nil }
func (b *DialogBase) SetChild(child Dialog)   {}
func (b *DialogBase) RespondDefault(w Window) {}

func (b *DialogBase) StepControl(w Window, c Control, forward bool) {}

// IsInDialog reports whether p, in window coordinates, is in d.
func IsInDialog(d Dialog, p image.Point) bool {
	return p.In(d.Rect())
}

// DialogHandleKey offers e to the control with key focus, then handles
// escape, return and tab for the dialog. It consumes every key.
func DialogHandleKey(d Dialog, w Window, e KeyEvent) bool {
	if c := d.Base().cKey; c != nil && c.HandleKey(d, w, e) {
		return true
	}
	return dialogKeyDefaults(d, w, e)
}

func dialogKeyDefaults(d Dialog, w Window, e KeyEvent) bool {
	if e.Pressed {
		return true
	}
	mods := InterestingMods(e.Mod)
	switch e.Key {
	case KeyEscape:
		if mods == ModNone {
			deepest := deepestChild(d)
			if !deepest.Base().Pinned {
				traceEvent("dialog", "", "popping down", "tag", deepest.Base().Tag)
				PopdownDialog(deepest, w, true)
			}
		}
	case KeyReturn:
		if mods == ModNone {
			traceEvent("dialog", "", "invoking default response", "tag", d.Base().Tag)
			d.RespondDefault(w)
		}
	case KeyTab:
		if mods&^(ModShift|ModCtrl) == ModNone {
			if c := d.Base().cKey; c == nil {
				d.GotoFirstControl(w)
			} else {
				d.StepControl(w, c, mods&ModShift == 0)
			}
		}
	}
	return true
}

// DialogHandleTextInput offers e to the control with key focus and consumes it.
func DialogHandleTextInput(d Dialog, w Window, e TextInputEvent) bool {
	if c := d.Base().cKey; c != nil {
		c.HandleTextInput(d, w, e)
	}
	return true
}

// DialogHandleTextEdit offers e to the control with key focus and consumes it.
func DialogHandleTextEdit(d Dialog, w Window, e TextEditEvent) bool {
	if c := d.Base().cKey; c != nil {
		c.HandleTextEdit(d, w, e)
	}
	return true
}

// DialogHandleMouseClick offers e to the control with mouse focus and consumes it.
func DialogHandleMouseClick(d Dialog, w Window, e MouseButtonEvent) bool {
	if c := d.Base().cMouse; c != nil {
		c.HandleMouseClick(d, w, e)
	}
	return true
}

// DialogHandleMouseWheel offers e to the control with mouse focus and consumes it.
func DialogHandleMouseWheel(d Dialog, w Window, e MouseWheelEvent) bool {
	if c := d.Base().cMouse; c != nil {
		c.HandleMouseWheel(d, w, e)
	}
	return true
}

// DialogHandleMouseMove moves mouse focus, and key focus with it, to the
// control under the pointer. Motion in the dialog gives the dialog mouse
// and key focus. Motion outside is not consumed.
func DialogHandleMouseMove(d Dialog, w Window, e MouseMotionEvent) bool {
	b := d.Base()
	cMouse := b.cMouse
	if cMouse != nil && cMouse.HandleMouseMove(d, w, e) {
		return true
	}
	// Ignore motion while a button is held.
	if e.Buttons != 0 {
		return true
	}

	c, comp := d.FindControlContaining(w, e.Point)
	if c != nil {
		if cMouse != nil {
			traceEvent("control", "", "loses mouse focus")
			cMouse.LoseMouse(d, w, c, d)
		}
		traceEvent("control", "", "gains mouse focus", "component", comp)
		c.GainMouse(d, w, comp)
		b.cMouse = c

		if b.cKey != c {
			if b.cKey != nil {
				traceEvent("control", "", "loses key focus")
				b.cKey.LoseKey(d, w, c, d)
			}
			traceEvent("control", "", "gains key focus", "component", comp)
			c.GainKey(d, w, comp)
			b.cKey = c
		}
	}
	if c == nil && !IsInDialog(d, e.Point) {
		// Keep focus, the window decides whether another dialog takes it.
		return false
	}
	if c == nil {
		if cMouse != nil {
			cMouse.LoseMouse(d, w, nil, d)
			b.cMouse = nil
		}
		if b.cKey != nil {
			b.cKey.LoseKey(d, w, nil, d)
			b.cKey = nil
		}
	}
	traceEvent("dialog", "", "gains mouse and key focus", "tag", b.Tag)
	w.GainMouseFocus(d)
	w.GainKeyFocus(d)
	return true
}

// DismissDialog pops down d and its children. It serves as the default
// action of information dialogs.
func DismissDialog(d Dialog, w Window) {
	traceEvent("dialog", "", "popping down dialog", "tag", d.Base().Tag)
	PopdownDialog(d, w, false)
}

func (b *DialogBase) cleanupFocus() {
	b.cMouse = nil
	b.cKey = nil
}
