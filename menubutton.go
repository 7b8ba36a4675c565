package pui

import (
	"fmt"
	"image"
)

type menuKind int

const (
	menuPlain menuKind = iota
	menuIndicator
	menuRangedInt
	menuSubmenu
	menuToggle
)

var menuKindNames = []string{
	"menu entry",
	"menu indicator",
	"menu ranged int",
	"menu submenu button",
	"menu toggle",
}

// SubmenuCreator creates, fills and completes the child menu of a submenu
// button. At is where the child's upper left corner goes, in window
// coordinates. For PlaceAbove and PlaceLeft the child is moved up or left
// by its own size after it is created.
type SubmenuCreator func(c Control, d Dialog, w Window, at image.Point) Dialog

// MenuButton is a flat entry of a menu. Depending on how it is made, it
// runs a callback, shows an on/off state, adjusts an integer, or opens a
// child menu.
//
// A ranged-int button has two halves. The left half decrements its value,
// the right half increments it. Each half only takes focus while the
// value can still move in its direction.
type MenuButton struct {
	ControlBase
	Caption  string // For ranged-int buttons, a format with one %d verb.
	Halign   Halign
	Callback Callback

	kind     menuKind
	tag      int
	disabled bool
	hasKey   Component
	hasMouse Component
	armed    Component
	captionR image.Rectangle // Relative to the control.

	curr, min, max, old int // Ranged int.
	toggled             bool
	creator             SubmenuCreator
	child               Dialog
	placement           Placement
}

var _ Control = &MenuButton{}

func newMenuButton(kind menuKind, caption string, halign Halign, callback Callback, tag int, disabled bool) *MenuButton {
	return &MenuButton{
		ControlBase: ControlBase{Code: CodeMenuButton},
		Caption:     caption,
		Halign:      halign,
		Callback:    callback,
		kind:        kind,
		tag:         tag,
		disabled:    disabled,
	}
}

// NewMenuButton returns a plain entry that calls callback on its default action.
func NewMenuButton(caption string, halign Halign, callback Callback, tag int, disabled bool) *MenuButton {
	return newMenuButton(menuPlain, caption, halign, callback, tag, disabled)
}

// NewMenuIndicator returns an entry that shows an on/off state the user
// cannot change. It never takes focus.
func NewMenuIndicator(caption string, halign Halign, toggled bool, tag int) *MenuButton {
	ui := newMenuButton(menuIndicator, caption, halign, nil, tag, false)
	ui.toggled = toggled
	return ui
}

// NewMenuToggle returns an entry whose default action flips its state,
// then calls callback.
func NewMenuToggle(caption string, halign Halign, callback Callback, toggled bool, tag int, disabled bool) *MenuButton {
	ui := newMenuButton(menuToggle, caption, halign, callback, tag, disabled)
	ui.toggled = toggled
	return ui
}

// NewMenuRangedInt returns an entry adjusting an integer in [min, max].
// Format must have one %d verb, filled with the current value.
// Callback is called after every change.
func NewMenuRangedInt(format string, halign Halign, callback Callback, curr, min, max int, tag int, disabled bool) *MenuButton {
	if min > max || curr < min || curr > max {
		panic(fmt.Sprintf("pui: ranged int %d outside [%d, %d]", curr, min, max))
	}
	ui := newMenuButton(menuRangedInt, format, halign, callback, tag, disabled)
	ui.curr = curr
	ui.min = min
	ui.max = max
	ui.old = curr
	return ui
}

// NewSubmenuButton returns an entry that opens a child menu made by creator
// when it gains focus, and closes it when focus leaves this menu and its
// descendants.
func NewSubmenuButton(caption string, halign Halign, creator SubmenuCreator, placement Placement, tag int, disabled bool) *MenuButton {
	if creator == nil {
		panic("pui: nil submenu creator")
	}
	ui := newMenuButton(menuSubmenu, caption, halign, nil, tag, disabled)
	ui.creator = creator
	ui.placement = placement
	return ui
}

func (ui *MenuButton) kindName() string {
	return menuKindNames[ui.kind]
}

// Value returns the current value of a ranged-int button.
func (ui *MenuButton) Value() int {
	return ui.curr
}

// OldValue returns the value of a ranged-int button before its last change.
func (ui *MenuButton) OldValue() int {
	return ui.old
}

// Toggled returns the state of a toggle or indicator.
func (ui *MenuButton) Toggled() bool {
	return ui.toggled
}

// SetToggled sets the state of a toggle or indicator, returning the previous state.
func (ui *MenuButton) SetToggled(d Dialog, w Window, toggled bool) bool {
	old := ui.toggled
	if old != toggled {
		ui.toggled = toggled
		markDirty(d, w)
	}
	return old
}

// Child returns the open child menu of a submenu button, or nil.
func (ui *MenuButton) Child() Dialog {
	return ui.child
}

func (ui *MenuButton) KeyComponent() Component {
	return ui.hasKey
}

func (ui *MenuButton) MouseComponent() Component {
	return ui.hasMouse
}

func (ui *MenuButton) ArmedComponent() Component {
	return ui.armed
}

// text is the caption as displayed.
func (ui *MenuButton) text() string {
	if ui.kind == menuRangedInt {
		return fmt.Sprintf(ui.Caption, ui.curr)
	}
	return ui.Caption
}

// textSize is the room the caption needs. For ranged ints, that is the
// larger of the captions for the minimum and maximum value.
func (ui *MenuButton) textSize(w Window) image.Point {
	if ui.kind != menuRangedInt {
		return TextSize(w, ui.Caption)
	}
	a := TextSize(w, fmt.Sprintf(ui.Caption, ui.min))
	b := TextSize(w, fmt.Sprintf(ui.Caption, ui.max))
	return image.Pt(maximum(a.X, b.X), maximum(a.Y, b.Y))
}

func (ui *MenuButton) hasBox() bool {
	return ui.kind == menuToggle || ui.kind == menuIndicator
}

func (ui *MenuButton) popupSubmenu(d Dialog, w Window) {
	traceEvent(ui.kindName(), ui.Caption, "popping up child menu", "placement", ui.placement)
	// The mouse can go from a sibling's open menu straight to this entry.
	if other := d.Child(); other != nil {
		PopdownDialog(other, w, false)
	}
	at := d.Rect().Min.Add(ui.R.Min)
	switch ui.placement {
	case PlaceBelow:
		at.Y += ui.R.Dy()
	case PlaceRight:
		at.X += ui.R.Dx()
	}
	child := ui.creator(ui, d, w, at)
	if child == nil {
		panic("pui: submenu creator returned nil")
	}
	cb := child.Base()
	switch ui.placement {
	case PlaceAbove:
		cb.MoveTo(at.Sub(image.Pt(0, cb.R.Dy())))
	case PlaceLeft:
		cb.MoveTo(at.Sub(image.Pt(cb.R.Dx(), 0)))
	}
	ui.child = child
	d.SetChild(child)
	if cb.PopCallback != nil {
		cb.PopCallback(child, w, true)
	}
	w.PushDialog(child)
}

// dropChild closes the open child menu unless newD is in this menu's
// chain of descendants.
func (ui *MenuButton) dropChild(d Dialog, w Window, newD Dialog) {
	if ui.kind != menuSubmenu || ui.child == nil {
		return
	}
	if newD != nil && IsDescendantDialog(d, newD) {
		return
	}
	traceEvent(ui.kindName(), ui.Caption, "popping down submenu")
	child := ui.child
	ui.child = nil
	PopdownDialog(child, w, false)
}

func (ui *MenuButton) HandleKey(d Dialog, w Window, e KeyEvent) bool {
	return ControlHandleKey(ui, d, w, e)
}

func (ui *MenuButton) HandleMouseClick(d Dialog, w Window, e MouseButtonEvent) bool {
	return ControlHandleMouseClick(ui, d, w, e)
}

// HandleMouseMove switches between the halves of a ranged int without
// involving the dialog, with key focus following the mouse.
func (ui *MenuButton) HandleMouseMove(d Dialog, w Window, e MouseMotionEvent) bool {
	if e.Buttons != 0 {
		return true
	}
	if !IsInControl(ui, d, e.Point) {
		return false
	}
	if ui.kind != menuRangedInt {
		return true
	}

	old := ui.hasMouse
	if e.Point.X <= d.Rect().Min.X+ui.R.Min.X+ui.R.Dx()/2 {
		ui.hasMouse = ui.decrementable()
	} else {
		ui.hasMouse = ui.incrementable()
	}
	if old == ui.hasMouse {
		return true
	}
	b := d.Base()
	if ui.hasMouse == ComponentNone {
		traceEvent(ui.kindName(), ui.text(), "lost mouse focus")
		b.cMouse = nil
	} else if old == ComponentNone {
		traceEvent(ui.kindName(), ui.text(), "gained mouse focus")
		b.cMouse = ui
	}
	if ui.hasKey != ui.hasMouse {
		if ui.hasMouse == ComponentNone {
			traceEvent(ui.kindName(), ui.text(), "lost key focus")
			b.cKey = nil
		} else if ui.hasKey == ComponentNone {
			traceEvent(ui.kindName(), ui.text(), "gained key focus")
			b.cKey = ui
		}
		ui.hasKey = ui.hasMouse
	}
	markDirty(d, w)
	return true
}

func (ui *MenuButton) decrementable() Component {
	if ui.curr > ui.min {
		return ComponentLeft
	}
	return ComponentNone
}

func (ui *MenuButton) incrementable() Component {
	if ui.curr < ui.max {
		return ComponentRight
	}
	return ComponentNone
}

func (ui *MenuButton) clamp(v int) int {
	return minimum(maximum(v, ui.min), ui.max)
}

// HandleMouseWheel adjusts a ranged int. Other kinds swallow the wheel.
func (ui *MenuButton) HandleMouseWheel(d Dialog, w Window, e MouseWheelEvent) bool {
	if ui.kind != menuRangedInt {
		return true
	}
	change := e.Delta.Y
	if e.Flipped {
		change = -change
	}
	// The left half counts down.
	if ui.hasMouse == ComponentLeft {
		change = -change
	}
	v := ui.clamp(ui.curr + change)
	if v == ui.curr {
		traceEvent(ui.kindName(), ui.text(), "value left as is by mouse wheel")
		return true
	}
	traceEvent(ui.kindName(), ui.text(), "value changed by mouse wheel", "value", v)
	ui.old = ui.curr
	ui.curr = v
	markDirty(d, w)
	if ui.Callback != nil {
		ui.Callback(ui, d, w)
	}
	return true
}

func (ui *MenuButton) ChangeCaption(d Dialog, w Window, caption string) {
	ui.Caption = caption
	ui.Resize(d, w, ui.R.Size())
	markDirty(d, w)
}

func (ui *MenuButton) Render(d Dialog, w Window) {
	traceRender(ui.kindName(), ui.Caption, ui.R)
	r := w.Renderer()
	fg := w.Color(ColorMenuFG)
	cr := windowRect(d, ui.R)
	x, y, width, height := cr.Min.X, cr.Min.Y, cr.Dx(), cr.Dy()

	if !ui.captionR.Empty() {
		RenderText(w, windowRect(d, ui.captionR.Add(ui.R.Min)), fg, ui.text())

		ch := ui.captionR.Dy()
		if ui.hasBox() && ch > 4 && ui.R.Dx() > ui.captionR.Max.X+BorderSize+ch {
			side := ch - 4
			bx := cr.Max.X - BorderSize - (ch - 2)
			by := y + (height-ch+4)/2
			box := image.Rect(bx, by, bx+side, by+side)
			if ui.toggled {
				r.Fill(box, fg)
			} else {
				r.Rect(box, fg)
			}
		}
	}

	if ui.hasKey != ComponentNone || ui.hasMouse != ComponentNone {
		if ui.kind != menuRangedInt || (ui.hasKey != ComponentNone && ui.hasMouse != ComponentNone && ui.hasKey != ui.hasMouse) {
			r.Rect(image.Rect(x, y, x+width-1, y+height-1), fg)
		} else {
			// One half has focus, leave out the line between the halves.
			var p0, p1 image.Point
			if ui.hasKey == ComponentLeft || ui.hasMouse == ComponentLeft {
				p0 = image.Pt(x+width/2, y)
				p1 = image.Pt(p0.X-width/2, y)
			} else {
				p0 = image.Pt(x+width/2+1, y)
				p1 = image.Pt(p0.X+(width+1)/2-2, y)
			}
			p2 := image.Pt(p1.X, p1.Y+height-1)
			p3 := image.Pt(p0.X, p2.Y)
			r.Line([]image.Point{p0, p1, p2, p3}, fg)
		}
	}

	if ui.armed != ComponentNone {
		// Pressed: light the bottom and right edges.
		bottom := y + height - 1
		var pts []image.Point
		switch {
		case ui.kind != menuRangedInt || ui.armed == ComponentBoth:
			pts = []image.Point{{x, bottom}, {x + width - 1, bottom}, {x + width - 1, y}}
		case ui.armed == ComponentLeft:
			pts = []image.Point{{x, bottom}, {x + width/2, bottom}}
		default:
			p0 := image.Pt(x+width/2+1, bottom)
			p1 := image.Pt(p0.X+(width+1)/2-2, bottom)
			pts = []image.Point{p0, p1, {p1.X, p1.Y - height + 1}}
		}
		r.Line(pts, fg)
	}

	if ui.disabled {
		stippleRect(w, cr)
	}
}

func (ui *MenuButton) RespondDefault(d Dialog, w Window, hint ActionHint) bool {
	if ui.disabled {
		return true
	}

	switch ui.kind {
	case menuSubmenu:
		if ui.child == nil {
			ui.popupSubmenu(d, w)
		} else {
			traceEvent(ui.kindName(), ui.Caption, "child menu already displayed")
		}
		ui.child.GotoFirstControl(w)

	case menuRangedInt:
		var from Component
		switch {
		case hint == HintKey || ui.hasKey == ui.hasMouse:
			from = ui.hasKey
		case hint == HintMouse || ui.hasKey == ComponentNone:
			from = ui.hasMouse
		case ui.hasMouse == ComponentNone:
			from = ui.hasKey
		}
		inc := 0
		switch from {
		case ComponentLeft:
			inc = -1
		case ComponentRight:
			inc = 1
		}
		v := ui.clamp(ui.curr + inc)
		if v == ui.curr {
			traceEvent(ui.kindName(), ui.text(), "left unchanged by default response")
			return true
		}
		traceEvent(ui.kindName(), ui.text(), "changed by default response", "value", v)
		ui.old = ui.curr
		ui.curr = v
		markDirty(d, w)

	case menuToggle:
		traceEvent(ui.kindName(), ui.Caption, "changed by default response")
		ui.toggled = !ui.toggled
		markDirty(d, w)
	}

	if ui.Callback != nil {
		ui.Callback(ui, d, w)
	}
	return true
}

// focusComponent is the component that gains focus for comp.
func (ui *MenuButton) focusComponent(comp Component) Component {
	switch ui.kind {
	case menuIndicator:
		panic("pui: menu indicator cannot take focus")
	case menuRangedInt:
		if comp == ComponentRight {
			return ComponentRight
		}
	}
	return ComponentLeft
}

func (ui *MenuButton) GainKey(d Dialog, w Window, comp Component) {
	traceEvent(ui.kindName(), ui.Caption, "gained key focus", "component", comp)
	old := ui.hasKey
	ui.hasKey = ui.focusComponent(comp)
	if old != ui.hasKey {
		markDirty(d, w)
	}
	if ui.kind == menuSubmenu && ui.child == nil {
		ui.popupSubmenu(d, w)
	}
}

func (ui *MenuButton) LoseKey(d Dialog, w Window, newC Control, newD Dialog) {
	if ui.hasKey != ComponentNone {
		traceEvent(ui.kindName(), ui.Caption, "lost key focus")
		ui.hasKey = ComponentNone
		markDirty(d, w)
	}
	ui.dropChild(d, w, newD)
}

func (ui *MenuButton) GainMouse(d Dialog, w Window, comp Component) {
	traceEvent(ui.kindName(), ui.Caption, "gained mouse focus", "component", comp)
	old := ui.hasMouse
	ui.hasMouse = ui.focusComponent(comp)
	if old != ui.hasMouse {
		markDirty(d, w)
	}
	if ui.kind == menuSubmenu && ui.child == nil {
		ui.popupSubmenu(d, w)
	}
}

func (ui *MenuButton) LoseMouse(d Dialog, w Window, newC Control, newD Dialog) {
	if ui.hasMouse != ComponentNone {
		traceEvent(ui.kindName(), ui.Caption, "lost mouse focus")
		ui.hasMouse = ComponentNone
		markDirty(d, w)
	}
	ui.dropChild(d, w, newD)
}

func (ui *MenuButton) LoseChild(child Dialog) {
	if ui.child != nil && ui.child == child {
		ui.child = nil
	}
}

func (ui *MenuButton) Arm(d Dialog, w Window, hint ActionHint) {
	traceEvent(ui.kindName(), ui.Caption, "arming", "hint", hint)
	old := ui.armed
	if ui.kind != menuRangedInt {
		ui.armed = ComponentLeft
	} else {
		if hint == HintKey || hint == HintNone {
			ui.armed = ui.armed.Union(ui.hasKey)
		}
		if hint == HintMouse || hint == HintNone {
			ui.armed = ui.armed.Union(ui.hasMouse)
		}
	}
	if old != ui.armed {
		markDirty(d, w)
	}
}

func (ui *MenuButton) Disarm(d Dialog, w Window, hint ActionHint) {
	traceEvent(ui.kindName(), ui.Caption, "disarming", "hint", hint)
	old := ui.armed
	switch {
	case ui.kind != menuRangedInt || hint == HintNone:
		ui.armed = ComponentNone
	case hint == HintKey:
		ui.armed = ui.armed.Without(ui.hasKey)
	case hint == HintMouse:
		ui.armed = ui.armed.Without(ui.hasMouse)
	}
	if old != ui.armed {
		markDirty(d, w)
	}
}

func (ui *MenuButton) InteractableComponent(first bool) Component {
	if ui.disabled || ui.kind == menuIndicator {
		return ComponentNone
	}
	if ui.kind != menuRangedInt {
		return ComponentLeft
	}
	if first {
		if c := ui.decrementable(); c != ComponentNone {
			return c
		}
		return ui.incrementable()
	}
	if c := ui.incrementable(); c != ComponentNone {
		return c
	}
	return ui.decrementable()
}

func (ui *MenuButton) StepWithin(forward bool) bool {
	if ui.kind != menuRangedInt {
		return false
	}
	if forward {
		if ui.hasKey == ComponentLeft && ui.curr < ui.max {
			ui.hasKey = ComponentRight
			return true
		}
	} else if ui.hasKey == ComponentRight && ui.curr > ui.min {
		ui.hasKey = ComponentLeft
		return true
	}
	return false
}

func (ui *MenuButton) InteractableComponentAt(p image.Point) (Component, bool) {
	if ui.disabled || ui.kind == menuIndicator || !p.In(ui.R) {
		return ComponentNone, true
	}
	if ui.kind == menuRangedInt {
		if p.X <= ui.R.Min.X+ui.R.Dx()/2 {
			return ui.decrementable(), true
		}
		return ui.incrementable(), true
	}
	return ComponentLeft, true
}

func (ui *MenuButton) Resize(d Dialog, w Window, size image.Point) {
	ts := ui.textSize(w)
	extra := 0
	if ui.hasBox() {
		extra = ts.Y
	}
	ui.captionR = placeCaption(ts, size, BorderSize, extra, ui.Halign)
	ui.R.Max = ui.R.Min.Add(size)
}

func (ui *MenuButton) NaturalSize(d Dialog, w Window) image.Point {
	s := ui.textSize(w)
	if ui.hasBox() {
		s.X += 3 * s.Y
	}
	return s.Add(pt(2 * BorderSize))
}

func (ui *MenuButton) Disabled() bool {
	return ui.disabled
}

func (ui *MenuButton) SetDisabled(d Dialog, w Window, disabled bool) bool {
	old := ui.disabled
	if old != disabled {
		ui.disabled = disabled
		markDirty(d, w)
	}
	return old
}

func (ui *MenuButton) Tag() int {
	return ui.tag
}

func (ui *MenuButton) SetTag(tag int) int {
	old := ui.tag
	ui.tag = tag
	return old
}

func (ui *MenuButton) Cleanup() {
	ui.Callback = nil
	ui.creator = nil
	ui.child = nil
}
