package pui

import (
	"image"
)

// Control is an atomic widget in a dialog. Its rectangle is relative to
// the dialog. Every capability is a method; embedding ControlBase gives
// the "declines" behaviour for capabilities a control does not have.
type Control interface {
	// Rect returns the control's rectangle relative to its dialog.
	Rect() image.Rectangle
	// SetRect sets position and size without any layout of its own.
	SetRect(r image.Rectangle)
	TypeCode() TypeCode

	// Event handlers return whether the event was consumed.
	HandleKey(d Dialog, w Window, e KeyEvent) bool
	HandleTextInput(d Dialog, w Window, e TextInputEvent) bool
	HandleTextEdit(d Dialog, w Window, e TextEditEvent) bool
	HandleMouseClick(d Dialog, w Window, e MouseButtonEvent) bool
	HandleMouseMove(d Dialog, w Window, e MouseMotionEvent) bool
	HandleMouseWheel(d Dialog, w Window, e MouseWheelEvent) bool

	ChangeCaption(d Dialog, w Window, caption string)
	Render(d Dialog, w Window)

	// RespondDefault runs the control's default action. It returns
	// false if the control has no default action, in which case the
	// caller may fall back to the dialog's.
	RespondDefault(d Dialog, w Window, hint ActionHint) bool

	GainKey(d Dialog, w Window, comp Component)
	LoseKey(d Dialog, w Window, newC Control, newD Dialog)
	GainMouse(d Dialog, w Window, comp Component)
	LoseMouse(d Dialog, w Window, newC Control, newD Dialog)
	// LoseChild tells a control that opened child that child is gone.
	LoseChild(child Dialog)

	Arm(d Dialog, w Window, hint ActionHint)
	Disarm(d Dialog, w Window, hint ActionHint)

	// InteractableComponent returns the component that takes focus when
	// entering the control going forward (first) or backward. ComponentNone
	// if the control does not take focus.
	InteractableComponent(first bool) Component
	// StepWithin moves key focus between the control's components and
	// reports whether it did.
	StepWithin(forward bool) bool
	// InteractableComponentAt returns the component at p, relative to the
	// dialog. The boolean is false if the control has no positional hit
	// testing, in which case InteractableComponent applies.
	InteractableComponentAt(p image.Point) (Component, bool)

	Resize(d Dialog, w Window, size image.Point)
	NaturalSize(d Dialog, w Window) image.Point

	Disabled() bool
	// SetDisabled returns the previous value.
	SetDisabled(d Dialog, w Window, disabled bool) bool
	Tag() int
	// SetTag returns the previous tag.
	SetTag(tag int) int

	Cleanup()
}

// ControlBase has the position and type of a control and the default,
// declining, implementation of every optional capability.
type ControlBase struct {
	R    image.Rectangle
	Code TypeCode
}

func (b *ControlBase) Rect() image.Rectangle {
	return b.R
}

func (b *ControlBase) SetRect(r image.Rectangle) {
	b.R = r
}

func (b *ControlBase) TypeCode() TypeCode {
	return b.Code
}

func (b *ControlBase) HandleKey(d Dialog, w Window, e KeyEvent) bool {
	return false
}

func (b *ControlBase) HandleTextInput(d Dialog, w Window, e TextInputEvent) bool {
	return false
}

func (b *ControlBase) HandleTextEdit(d Dialog, w Window, e TextEditEvent) bool {
	return false
}

func (b *ControlBase) HandleMouseClick(d Dialog, w Window, e MouseButtonEvent) bool {
	return false
}

func (b *ControlBase) HandleMouseMove(d Dialog, w Window, e MouseMotionEvent) bool {
	return false
}

func (b *ControlBase) HandleMouseWheel(d Dialog, w Window, e MouseWheelEvent) bool {
	return false
}

func (b *ControlBase) ChangeCaption(d Dialog, w Window, caption string) {}

func (b *ControlBase) Render(d Dialog, w Window) {}

func (b *ControlBase) RespondDefault(d Dialog, w Window, hint ActionHint) bool {
	return false
}

func (b *ControlBase) GainKey(d Dialog, w Window, comp Component)              {}
func (b *ControlBase) LoseKey(d Dialog, w Window, newC Control, newD Dialog)   {}
func (b *ControlBase) GainMouse(d Dialog, w Window, comp Component)            {}
func (b *ControlBase) LoseMouse(d Dialog, w Window, newC Control, newD Dialog) {}
func (b *ControlBase) LoseChild(child Dialog)                                  {}
func (b *ControlBase) Arm(d Dialog, w Window, hint ActionHint)                 {}
func (b *ControlBase) Disarm(d Dialog, w Window, hint ActionHint)              {}

func (b *ControlBase) InteractableComponent(first bool) Component {
	return ComponentNone
}

func (b *ControlBase) StepWithin(forward bool) bool {
	return false
}

func (b *ControlBase) InteractableComponentAt(p image.Point) (Component, bool) {
	return ComponentNone, false
}

// Resize keeps the position and takes the size as is.
func (b *ControlBase) Resize(d Dialog, w Window, size image.Point) {
	b.R.Max = b.R.Min.Add(size)
}

func (b *ControlBase) Disabled() bool {
	return false
}

func (b *ControlBase) SetDisabled(d Dialog, w Window, disabled bool) bool {
	return false
}

func (b *ControlBase) Tag() int {
	return 0
}

func (b *ControlBase) SetTag(tag int) int {
	return 0
}

func (b *ControlBase) Cleanup() {}

// windowRect returns r, relative to d, in window coordinates.
func windowRect(d Dialog, r image.Rectangle) image.Rectangle {
	return r.Add(d.Rect().Min)
}

// IsInControl reports whether p, in window coordinates, is in c.
func IsInControl(c Control, d Dialog, p image.Point) bool {
	return p.In(windowRect(d, c.Rect()))
}

// ControlHandleKey arms on a Return press and runs the default action on
// release. Other keys are left to the dialog.
func ControlHandleKey(c Control, d Dialog, w Window, e KeyEvent) bool {
	if e.Key != KeyReturn {
		return false
	}
	mods := InterestingMods(e.Mod)
	if e.Pressed {
		if mods == ModNone {
			c.Arm(d, w, HintKey)
		}
		return true
	}
	// Disarm even with modifiers: they may have changed since the press.
	c.Disarm(d, w, HintKey)
	if mods == ModNone {
		traceEvent("control", "", "invoking default response", "hint", HintKey)
		if !c.RespondDefault(d, w, HintKey) {
			d.RespondDefault(w)
		}
	}
	return true
}

// ControlHandleMouseClick arms on a button 1 press and runs the default
// action on release. It consumes every click.
func ControlHandleMouseClick(c Control, d Dialog, w Window, e MouseButtonEvent) bool {
	if e.Button != Button1 {
		return true
	}
	if e.Pressed {
		c.Arm(d, w, HintMouse)
		return true
	}
	c.Disarm(d, w, HintMouse)
	traceEvent("control", "", "invoking default response", "hint", HintMouse)
	c.RespondDefault(d, w, HintMouse)
	return true
}

// ControlHandleMouseMove consumes motion with a button held or within the
// control, leaving motion elsewhere for the dialog.
func ControlHandleMouseMove(c Control, d Dialog, w Window, e MouseMotionEvent) bool {
	return e.Buttons != 0 || IsInControl(c, d, e.Point)
}

// InvokeDialogDefault runs the default action of d. It is meant as a push
// button callback.
func InvokeDialogDefault(c Control, d Dialog, w Window) {
	traceEvent("control", "", "invoking containing dialog's default action")
	d.RespondDefault(w)
}

// markDirty flags d for rendering and asks the window for a redraw.
func markDirty(d Dialog, w Window) {
	d.Base().Dirty = true
	w.SignalRedraw()
}
