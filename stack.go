package pui

import (
	"image"
)

// Stack is a Window: it keeps the dialogs shown over a host, bottom to top,
// and routes input events to them.
//
// Key events go to the dialog with key focus, or the top dialog if none has
// it. Mouse events go to the dialog with mouse focus. Motion without a
// button held is offered to the dialogs top to bottom.
//
// The event methods return whether the toolkit consumed the event; if not,
// the host should hand it to the application.
type Stack struct {
	Host

	dialogs []Dialog // Bottom to top.
	key     Dialog
	mouse   Dialog
}

var _ Window = &Stack{}

func NewStack(h Host) *Stack {
	return &Stack{Host: h}
}

// Dialogs returns the dialogs, bottom to top.
func (s *Stack) Dialogs() []Dialog {
	return s.dialogs
}

func (s *Stack) index(d Dialog) int {
	for i, sd := range s.dialogs {
		if sd == d {
			return i
		}
	}
	return -1
}

// Contains returns whether d is on the stack.
func (s *Stack) Contains(d Dialog) bool {
	return s.index(d) >= 0
}

// Top returns the top dialog, or nil.
func (s *Stack) Top() Dialog {
	if len(s.dialogs) == 0 {
		return nil
	}
	return s.dialogs[len(s.dialogs)-1]
}

func (s *Stack) PushDialog(d Dialog) {
	if i := s.index(d); i >= 0 {
		s.dialogs = append(s.dialogs[:i], s.dialogs[i+1:]...)
	}
	s.dialogs = append(s.dialogs, d)
	d.Base().Dirty = true
	s.SignalRedraw()
}

// PopDialog removes d. Key focus held by d passes to its parent, without
// notifying anyone, and mouse focus held by d is dropped.
func (s *Stack) PopDialog(d Dialog) {
	i := s.index(d)
	if i < 0 {
		return
	}
	s.dialogs = append(s.dialogs[:i], s.dialogs[i+1:]...)
	if s.key == d {
		s.key = nil
		if p := d.Parent(); p != nil && s.Contains(p) {
			s.key = p
		}
	}
	if s.mouse == d {
		s.mouse = nil
	}
	// What was below needs drawing again.
	for _, sd := range s.dialogs {
		sd.Base().Dirty = true
	}
	s.SignalRedraw()
}

// GainKeyFocus gives d key focus. The dialog that had it is told, with the
// control of d that has key focus.
func (s *Stack) GainKeyFocus(d Dialog) {
	old := s.key
	if old == d {
		return
	}
	s.key = d
	if old != nil {
		old.HandleLosesKey(s, d.Base().cKey, d)
	}
}

func (s *Stack) YieldKeyFocus(d Dialog) {
	if s.key == d {
		s.key = nil
	}
}

// GainMouseFocus gives d mouse focus. The dialog that had it is told, with
// the control of d that has mouse focus.
func (s *Stack) GainMouseFocus(d Dialog) {
	old := s.mouse
	if old == d {
		return
	}
	s.mouse = d
	if old != nil {
		old.HandleLosesMouse(s, d.Base().cMouse, d)
	}
}

func (s *Stack) YieldMouseFocus(d Dialog) {
	if s.mouse == d {
		s.mouse = nil
	}
}

func (s *Stack) KeyFocus() Dialog {
	return s.key
}

func (s *Stack) MouseFocus() Dialog {
	return s.mouse
}

func (s *Stack) keyTarget() Dialog {
	if s.key != nil {
		return s.key
	}
	return s.Top()
}

func (s *Stack) Key(e KeyEvent) bool {
	d := s.keyTarget()
	if d == nil {
		return false
	}
	return d.HandleKey(s, e)
}

func (s *Stack) TextInput(e TextInputEvent) bool {
	d := s.keyTarget()
	if d == nil {
		return false
	}
	return d.HandleTextInput(s, e)
}

func (s *Stack) TextEdit(e TextEditEvent) bool {
	d := s.keyTarget()
	if d == nil {
		return false
	}
	return d.HandleTextEdit(s, e)
}

// dialogAt returns the top dialog containing p, or nil.
func (s *Stack) dialogAt(p image.Point) Dialog {
	for i := len(s.dialogs) - 1; i >= 0; i-- {
		if IsInDialog(s.dialogs[i], p) {
			return s.dialogs[i]
		}
	}
	return nil
}

func (s *Stack) MouseMotion(e MouseMotionEvent) bool {
	if e.Buttons != 0 {
		if s.mouse == nil {
			return false
		}
		return s.mouse.HandleMouseMove(s, e)
	}

	// Handlers may pop dialogs, work on a copy.
	l := append([]Dialog(nil), s.dialogs...)
	for i := len(l) - 1; i >= 0; i-- {
		if !s.Contains(l[i]) {
			continue
		}
		if l[i].HandleMouseMove(s, e) {
			return true
		}
	}
	return false
}

// MouseButton delivers a click to the dialog with mouse focus. A press
// outside all dialogs takes mouse focus away from the dialogs, and is left
// to the application.
func (s *Stack) MouseButton(e MouseButtonEvent) bool {
	if e.Pressed {
		s.MouseMotion(MouseMotionEvent{Point: e.Point})
		if s.dialogAt(e.Point) == nil {
			if d := s.mouse; d != nil {
				traceEvent("window", "", "press outside dialogs", "point", e.Point)
				d.HandleLosesMouse(s, nil, nil)
				s.YieldMouseFocus(d)
			}
			return false
		}
	}
	if s.mouse == nil {
		return false
	}
	return s.mouse.HandleMouseClick(s, e)
}

func (s *Stack) MouseWheel(e MouseWheelEvent) bool {
	if s.mouse == nil {
		return false
	}
	return s.mouse.HandleMouseWheel(s, e)
}

// WindowLosesMouse tells all dialogs the pointer left the window.
func (s *Stack) WindowLosesMouse() {
	l := append([]Dialog(nil), s.dialogs...)
	for i := len(l) - 1; i >= 0; i-- {
		if s.Contains(l[i]) {
			l[i].HandleWindowLosesMouse(s)
		}
	}
	s.mouse = nil
}

// WindowLosesKey tells all dialogs the window lost key focus.
func (s *Stack) WindowLosesKey() {
	l := append([]Dialog(nil), s.dialogs...)
	for i := len(l) - 1; i >= 0; i-- {
		if s.Contains(l[i]) {
			l[i].HandleWindowLosesKey(s)
		}
	}
	s.key = nil
}

// Dirty returns whether any dialog needs rendering.
func (s *Stack) Dirty() bool {
	for _, d := range s.dialogs {
		if d.Base().Dirty {
			return true
		}
	}
	return false
}

// Render draws all dialogs, bottom to top.
func (s *Stack) Render() {
	for _, d := range s.dialogs {
		d.Render(s)
	}
}

// RecreateTextures calls the recreate callbacks of the dialogs after the
// host lost its rendering resources, and marks everything for rendering.
func (s *Stack) RecreateTextures(all bool) {
	for _, d := range append([]Dialog(nil), s.dialogs...) {
		b := d.Base()
		if b.RecreateTextures != nil {
			b.RecreateTextures(d, s, all)
		}
		b.Dirty = true
	}
	s.SignalRedraw()
}
