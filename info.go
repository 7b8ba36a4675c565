package pui

import (
	"image"
)

// SimpleInfo shows labels and images top to bottom with one push button
// centered at the bottom. The button dismisses the dialog.
type SimpleInfo struct {
	DialogBase

	items  []Control // Labels and images.
	button *PushButton
}

var _ Dialog = &SimpleInfo{}

// StartSimpleInfo starts building an information dialog with a button
// showing buttonCaption. Add labels and images, then lay out with Complete.
func StartSimpleInfo(buttonCaption string, pop PopFunc, recreate RecreateFunc, tag int) *SimpleInfo {
	return &SimpleInfo{
		DialogBase: DialogBase{
			Code:             CodeSimpleInfo,
			Tag:              tag,
			Dirty:            true,
			PopCallback:      pop,
			RecreateTextures: recreate,
		},
		button: NewPushButton(buttonCaption, HalignMiddle, InvokeDialogDefault, 0, false),
	}
}

func (d *SimpleInfo) AddLabel(caption string, halign Halign) *Label {
	l := NewLabel(caption, halign)
	d.items = append(d.items, l)
	return l
}

func (d *SimpleInfo) AddImage(img image.Image, halign Halign, margin Space) *Image {
	ui := NewImage(img, halign, margin)
	d.items = append(d.items, ui)
	return ui
}

// Complete lays the dialog out at its natural size, keeping its position.
func (d *SimpleInfo) Complete(w Window) {
	d.Resize(w, d.NaturalSize(w))
}

// Button returns the dismiss button.
func (d *SimpleInfo) Button() *PushButton {
	return d.button
}

// Items returns the labels and images, in order.
func (d *SimpleInfo) Items() []Control {
	return d.items
}

func (d *SimpleInfo) HandleKey(w Window, e KeyEvent) bool {
	return DialogHandleKey(d, w, e)
}

func (d *SimpleInfo) HandleTextInput(w Window, e TextInputEvent) bool {
	return DialogHandleTextInput(d, w, e)
}

func (d *SimpleInfo) HandleTextEdit(w Window, e TextEditEvent) bool {
	return DialogHandleTextEdit(d, w, e)
}

func (d *SimpleInfo) HandleMouseClick(w Window, e MouseButtonEvent) bool {
	return DialogHandleMouseClick(d, w, e)
}

func (d *SimpleInfo) HandleMouseMove(w Window, e MouseMotionEvent) bool {
	return DialogHandleMouseMove(d, w, e)
}

func (d *SimpleInfo) HandleMouseWheel(w Window, e MouseWheelEvent) bool {
	return DialogHandleMouseWheel(d, w, e)
}

// HandleLosesMouse treats another dialog taking the mouse like the
// mouse leaving the window.
func (d *SimpleInfo) HandleLosesMouse(w Window, newC Control, newD Dialog) {
	d.HandleWindowLosesMouse(w)
}

func (d *SimpleInfo) HandleLosesKey(w Window, newC Control, newD Dialog) {
	d.HandleWindowLosesKey(w)
}

func (d *SimpleInfo) HandleWindowLosesMouse(w Window) {
	dropFocus(d, w, axisMouse, HintNone, nil, nil)
}

func (d *SimpleInfo) HandleWindowLosesKey(w Window) {
	dropFocus(d, w, axisKey, HintKey, nil, nil)
}

func (d *SimpleInfo) Render(w Window) {
	traceRender("simple info", "", d.R)
	r := w.Renderer()
	r.Fill(d.R, w.Color(ColorDialogBG))
	for _, c := range d.items {
		c.Render(d, w)
	}
	d.button.Render(d, w)
	r.Rect(d.R, w.Color(ColorDialogBorder))
	r.Rect(d.R.Inset(1), w.Color(ColorCountersink))
	d.Dirty = false
}

// RespondDefault dismisses the dialog.
func (d *SimpleInfo) RespondDefault(w Window) {
	DismissDialog(d, w)
}

func (d *SimpleInfo) GotoFirstControl(w Window) {
	d.button.GainKey(d, w, ComponentLeft)
	d.cKey = d.button
	w.GainKeyFocus(d)
}

func (d *SimpleInfo) FindControlContaining(w Window, p image.Point) (Control, Component) {
	if IsInControl(d.button, d, p) {
		return d.button, ComponentLeft
	}
	return nil, ComponentNone
}

func (d *SimpleInfo) Resize(w Window, size image.Point) {
	y := 0
	for _, c := range d.items {
		ch := c.NaturalSize(d, w).Y
		c.SetRect(image.Rectangle{image.Pt(0, y), image.Pt(0, y)})
		c.Resize(d, w, image.Pt(size.X, ch))
		y += ch
	}
	bs := d.button.NaturalSize(d, w)
	at := image.Pt((size.X-bs.X)/2, size.Y-bs.Y)
	d.button.SetRect(image.Rectangle{at, at})
	d.button.Resize(d, w, bs)
	d.R.Max = d.R.Min.Add(size)
}

// NaturalSize leaves a button's height of room between the items and the button.
func (d *SimpleInfo) NaturalSize(w Window) image.Point {
	var s image.Point
	for _, c := range d.items {
		cs := c.NaturalSize(d, w)
		s.X = maximum(s.X, cs.X)
		s.Y += cs.Y
	}
	bs := d.button.NaturalSize(d, w)
	s.X = maximum(s.X, bs.X)
	s.Y += 2 * bs.Y
	return s
}

func (d *SimpleInfo) MinimumSize(w Window) image.Point {
	return d.NaturalSize(w)
}

func (d *SimpleInfo) Cleanup() {
	for _, c := range d.items {
		c.Cleanup()
	}
	d.items = nil
	d.button.Cleanup()
	d.cleanupFocus()
}
