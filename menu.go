package pui

import (
	"fmt"
	"image"
)

// SimpleMenu is a single row or column of controls, typically menu
// buttons. Menus nest: a submenu button opens a child menu, which has the
// button's menu as parent.
//
// When a menu gets less room than its natural size, controls added with
// MenuCanHide are left out, later ones first. Controls added with
// MenuEndGravity are stacked from the end of the menu. They must come
// after all other controls.
type SimpleMenu struct {
	DialogBase

	parent   Dialog
	parentC  Control
	child    Dialog
	controls []Control
	flags    []MenuFlags
	visible  []Control // Subsequence of controls, in order.
	vertical bool
	border   bool
}

var _ Dialog = &SimpleMenu{}

// StartSimpleMenu starts building a menu. Parent and parentC are the menu
// and control that open it, or nil for a top-level menu. Add controls with
// AddControl, then lay out with Complete.
func StartSimpleMenu(parent Dialog, parentC Control, vertical, border bool, pop PopFunc, recreate RecreateFunc, tag int) *SimpleMenu {
	return &SimpleMenu{
		DialogBase: DialogBase{
			Code:             CodeSimpleMenu,
			Tag:              tag,
			Dirty:            true,
			PopCallback:      pop,
			RecreateTextures: recreate,
		},
		parent:   parent,
		parentC:  parentC,
		vertical: vertical,
		border:   border,
	}
}

// AddControl appends c. It panics when a control without MenuEndGravity
// follows one with it.
func (d *SimpleMenu) AddControl(c Control, flags MenuFlags) {
	if flags&MenuEndGravity == 0 {
		for _, f := range d.flags {
			if f&MenuEndGravity != 0 {
				panic(fmt.Sprintf("pui: menu control %d without end gravity after one with", len(d.controls)))
			}
		}
	}
	d.controls = append(d.controls, c)
	d.flags = append(d.flags, flags)
}

// Complete lays the menu out at its natural size, keeping its position.
func (d *SimpleMenu) Complete(w Window) {
	d.Resize(w, d.NaturalSize(w))
}

// Controls returns all controls, in the order they were added.
func (d *SimpleMenu) Controls() []Control {
	return d.controls
}

// Visible returns the controls shown at the current size, in order.
func (d *SimpleMenu) Visible() []Control {
	return d.visible
}

func (d *SimpleMenu) Vertical() bool {
	return d.vertical
}

func (d *SimpleMenu) Parent() Dialog {
	return d.parent
}

func (d *SimpleMenu) Child() Dialog {
	return d.child
}

func (d *SimpleMenu) ParentControl() Control {
	return d.parentC
}

func (d *SimpleMenu) SetChild(child Dialog) {
	d.child = child
}

// menuKeys are the key bindings of a menu, depending on its orientation.
// Forward opens a submenu or activates, back returns to the parent menu,
// next and prev step through the entries.
type menuKeys struct {
	fwd    Key
	fwdAlt [3]Key
	bck    Key
	nxt    Key
	prv    Key

	// Text input bindings, matched against the first code point.
	fwdText [2]rune
	bckText [2]rune
	nxtText [2]rune
	prvText [2]rune
}

var (
	verticalMenuKeys = menuKeys{
		fwd:     KeyRight,
		fwdAlt:  [3]Key{'6', KeyKP6, 'l'},
		bck:     KeyLeft,
		nxt:     KeyDown,
		prv:     KeyUp,
		fwdText: [2]rune{'6', 'l'},
		bckText: [2]rune{'4', 'h'},
		nxtText: [2]rune{'2', 'j'},
		prvText: [2]rune{'8', 'k'},
	}
	horizontalMenuKeys = menuKeys{
		fwd:     KeyDown,
		fwdAlt:  [3]Key{'2', KeyKP2, 'j'},
		bck:     KeyUp,
		nxt:     KeyRight,
		prv:     KeyLeft,
		fwdText: [2]rune{'2', 'j'},
		bckText: [2]rune{'8', 'k'},
		nxtText: [2]rune{'6', 'l'},
		prvText: [2]rune{'4', 'h'},
	}
)

func (d *SimpleMenu) keys() *menuKeys {
	if d.vertical {
		return &verticalMenuKeys
	}
	return &horizontalMenuKeys
}

func (d *SimpleMenu) stepOrFirst(w Window, forward bool) {
	if c := d.cKey; c != nil {
		d.StepControl(w, c, forward)
	} else {
		d.GotoFirstControl(w)
	}
}

func (d *SimpleMenu) HandleKey(w Window, e KeyEvent) bool {
	c := d.cKey
	if c != nil && c.HandleKey(d, w, e) {
		return true
	}

	k := d.keys()
	mods := InterestingMods(e.Mod)
	switch e.Key {
	case k.fwd:
		if c == nil {
			if !e.Pressed {
				d.GotoFirstControl(w)
			}
			return true
		}
		if e.Pressed {
			if mods == ModNone {
				c.Arm(d, w, HintKey)
			}
			return true
		}
		// Always disarm, the modifiers may have changed since the press.
		c.Disarm(d, w, HintKey)
		if mods == ModNone {
			traceEvent("control", "", "invoking default response", "hint", HintKey)
			c.RespondDefault(d, w, HintKey)
		}
		return true

	case k.fwdAlt[0], k.fwdAlt[1], k.fwdAlt[2]:
		// These also arrive as text input, which runs the action.
		if c != nil {
			if e.Pressed {
				if mods == ModNone {
					c.Arm(d, w, HintKey)
				}
			} else {
				c.Disarm(d, w, HintKey)
			}
		}
		return true

	case k.bck:
		if !e.Pressed && mods == ModNone {
			GiveKeyFocusToParent(d, w)
		}
		return true

	case k.nxt, k.prv:
		if !e.Pressed && mods == ModNone {
			d.stepOrFirst(w, e.Key == k.nxt)
		}
		return true
	}
	return dialogKeyDefaults(d, w, e)
}

func (d *SimpleMenu) HandleTextInput(w Window, e TextInputEvent) bool {
	k := d.keys()
	c := d.cKey
	switch FirstCodepoint(e.Text) {
	case k.fwdText[0], k.fwdText[1]:
		if c != nil {
			traceEvent("control", "", "invoking default response", "hint", HintKey)
			c.RespondDefault(d, w, HintKey)
		} else {
			d.GotoFirstControl(w)
		}
		return true
	case k.bckText[0], k.bckText[1]:
		GiveKeyFocusToParent(d, w)
		return true
	case k.nxtText[0], k.nxtText[1]:
		d.stepOrFirst(w, true)
		return true
	case k.prvText[0], k.prvText[1]:
		d.stepOrFirst(w, false)
		return true
	}
	return DialogHandleTextInput(d, w, e)
}

func (d *SimpleMenu) HandleTextEdit(w Window, e TextEditEvent) bool {
	return DialogHandleTextEdit(d, w, e)
}

func (d *SimpleMenu) HandleMouseClick(w Window, e MouseButtonEvent) bool {
	return DialogHandleMouseClick(d, w, e)
}

func (d *SimpleMenu) HandleMouseMove(w Window, e MouseMotionEvent) bool {
	return DialogHandleMouseMove(d, w, e)
}

func (d *SimpleMenu) HandleMouseWheel(w Window, e MouseWheelEvent) bool {
	return DialogHandleMouseWheel(d, w, e)
}

func (d *SimpleMenu) HandleLosesMouse(w Window, newC Control, newD Dialog) {
	focusLeaves(d, w, axisMouse, newC, newD)
}

func (d *SimpleMenu) HandleLosesKey(w Window, newC Control, newD Dialog) {
	focusLeaves(d, w, axisKey, newC, newD)
}

func (d *SimpleMenu) HandleWindowLosesMouse(w Window) {
	menuWindowLosesMouse(d, w)
}

func (d *SimpleMenu) HandleWindowLosesKey(w Window) {
	menuWindowLosesKey(d, w)
}

func (d *SimpleMenu) Render(w Window) {
	traceRender("simple menu", "", d.R)
	r := w.Renderer()
	r.Fill(d.R, w.Color(ColorMenuBG))
	for _, c := range d.visible {
		c.Render(d, w)
	}
	if d.border {
		r.Rect(d.R, w.Color(ColorMenuBorder))
	}
	d.Dirty = false
}

func (d *SimpleMenu) GotoFirstControl(w Window) {
	traceEvent("dialog", "", "gains key focus", "tag", d.Tag)
	for _, c := range d.visible {
		comp := c.InteractableComponent(true)
		if comp == ComponentNone {
			continue
		}
		if d.cKey != nil && d.cKey != c {
			d.cKey.LoseKey(d, w, c, d)
		}
		c.GainKey(d, w, comp)
		d.cKey = c
		w.GainKeyFocus(d)
		return
	}

	// Nothing takes focus, the menu still gets it.
	if d.cKey != nil {
		d.cKey.LoseKey(d, w, nil, d)
	}
	d.cKey = nil
	w.GainKeyFocus(d)
}

func (d *SimpleMenu) StepControl(w Window, c Control, forward bool) {
	if c.StepWithin(forward) {
		markDirty(d, w)
		return
	}

	n := len(d.visible)
	start := -1
	for i, vc := range d.visible {
		if vc == c {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}
	for i := start; ; {
		if forward {
			i = (i + 1) % n
		} else {
			i = (i + n - 1) % n
		}
		if i == start {
			return
		}
		nc := d.visible[i]
		comp := nc.InteractableComponent(forward)
		if comp == ComponentNone {
			continue
		}
		if d.cKey != nil && d.cKey != nc {
			d.cKey.LoseKey(d, w, nc, d)
		}
		nc.GainKey(d, w, comp)
		d.cKey = nc
		return
	}
}

// componentAt returns c and its component at p, relative to the menu, if
// that component takes focus.
func componentAt(c Control, p image.Point) (Control, Component) {
	if comp, ok := c.InteractableComponentAt(p); ok {
		if comp == ComponentNone {
			return nil, ComponentNone
		}
		return c, comp
	}
	if c.InteractableComponent(true) == ComponentNone {
		return nil, ComponentNone
	}
	return c, ComponentLeft
}

func (d *SimpleMenu) FindControlContaining(w Window, p image.Point) (Control, Component) {
	if len(d.visible) == 0 || !IsInDialog(d, p) {
		return nil, ComponentNone
	}
	p = p.Sub(d.R.Min)

	// Binary search along the menu's axis.
	lo, hi := 0, len(d.visible)
	for {
		if lo == hi-1 {
			c := d.visible[lo]
			if !p.In(c.Rect()) {
				return nil, ComponentNone
			}
			return componentAt(c, p)
		}
		mid := (lo + hi) / 2
		c := d.visible[mid]
		r := c.Rect()
		if d.vertical {
			if r.Min.Y > p.Y {
				hi = mid
				continue
			}
			if r.Max.Y <= p.Y {
				lo = mid
				continue
			}
			if p.X < r.Min.X || p.X >= r.Max.X {
				return nil, ComponentNone
			}
		} else {
			if r.Min.X > p.X {
				hi = mid
				continue
			}
			if r.Max.X <= p.X {
				lo = mid
				continue
			}
			if p.Y < r.Min.Y || p.Y >= r.Max.Y {
				return nil, ComponentNone
			}
		}
		return componentAt(c, p)
	}
}

// major returns the extent of s along the menu's axis.
func (d *SimpleMenu) major(s image.Point) int {
	if d.vertical {
		return s.Y
	}
	return s.X
}

// place positions c at offset along the menu's axis, giving it its
// natural extent along the axis and the menu's full extent across it.
func (d *SimpleMenu) place(w Window, c Control, offset int, natural, size image.Point) {
	var pos, csize image.Point
	if d.vertical {
		pos = image.Pt(0, offset)
		csize = image.Pt(size.X, natural.Y)
	} else {
		pos = image.Pt(offset, 0)
		csize = image.Pt(natural.X, size.Y)
	}
	c.SetRect(image.Rectangle{pos, pos})
	c.Resize(d, w, csize)
}

// Resize lays the controls out in size. Controls that cannot hide are
// always shown, even when they do not fit.
func (d *SimpleMenu) Resize(w Window, size image.Point) {
	n := len(d.controls)
	natural := make([]image.Point, n)
	vis := make([]bool, n)
	avail := d.major(size)
	firstEnd := n

	// Controls that cannot hide.
	work := 0
	for i, c := range d.controls {
		if d.flags[i]&MenuEndGravity != 0 && firstEnd == n {
			firstEnd = i
		}
		natural[i] = c.NaturalSize(d, w)
		if d.flags[i]&MenuCanHide != 0 {
			continue
		}
		vis[i] = true
		work += d.major(natural[i])
	}

	// Controls that can hide, while they fit, earlier ones first.
	for i := range d.controls {
		if d.flags[i]&MenuCanHide == 0 {
			continue
		}
		m := d.major(natural[i])
		if work+m > avail {
			break
		}
		work += m
		vis[i] = true
	}

	// Front controls, from the start.
	d.visible = d.visible[:0]
	work = 0
	for i := 0; i < firstEnd; i++ {
		if !vis[i] {
			continue
		}
		d.visible = append(d.visible, d.controls[i])
		d.place(w, d.controls[i], work, natural[i], size)
		work += d.major(natural[i])
	}
	for i := firstEnd; i < n; i++ {
		if vis[i] {
			d.visible = append(d.visible, d.controls[i])
		}
	}

	// End controls, from the end backward.
	work = avail
	for i := n - 1; i >= firstEnd; i-- {
		if !vis[i] {
			continue
		}
		work -= d.major(natural[i])
		d.place(w, d.controls[i], work, natural[i], size)
	}

	d.R.Max = d.R.Min.Add(size)
}

func (d *SimpleMenu) size(w Window, skipHidable bool) image.Point {
	var s image.Point
	for i, c := range d.controls {
		if skipHidable && d.flags[i]&MenuCanHide != 0 {
			continue
		}
		cs := c.NaturalSize(d, w)
		if d.vertical {
			s.X = maximum(s.X, cs.X)
			s.Y += cs.Y
		} else {
			s.X += cs.X
			s.Y = maximum(s.Y, cs.Y)
		}
	}
	return s
}

func (d *SimpleMenu) NaturalSize(w Window) image.Point {
	return d.size(w, false)
}

// MinimumSize is the size with all controls that can hide left out.
func (d *SimpleMenu) MinimumSize(w Window) image.Point {
	return d.size(w, true)
}

func (d *SimpleMenu) Cleanup() {
	for _, c := range d.controls {
		c.Cleanup()
	}
	d.controls = nil
	d.flags = nil
	d.visible = nil
	d.parent = nil
	d.parentC = nil
	d.child = nil
	d.cleanupFocus()
}
