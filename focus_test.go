package pui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuChain struct {
	root, child, grand      *SimpleMenu
	rootButton, childButton *MenuButton
	popped                  []int // Tags of dialogs popped down, in order.
}

// newMenuChain shows a pinned horizontal menu bar with one submenu
// button. Its child menu has a submenu button opening a third menu.
func newMenuChain(s *Stack) *menuChain {
	mc := &menuChain{}
	pop := func(d Dialog, w Window, up bool) {
		if !up {
			mc.popped = append(mc.popped, d.Base().Tag)
		}
	}
	grandCreator := func(c Control, d Dialog, w Window, at image.Point) Dialog {
		mc.grand = StartSimpleMenu(d, c, true, true, pop, nil, 3)
		mc.grand.AddControl(NewMenuButton("leaf", HalignLeft, nil, 0, false), 0)
		mc.grand.Complete(w)
		mc.grand.MoveTo(at)
		return mc.grand
	}
	childCreator := func(c Control, d Dialog, w Window, at image.Point) Dialog {
		mc.child = StartSimpleMenu(d, c, true, true, pop, nil, 2)
		mc.childButton = NewSubmenuButton("more", HalignLeft, grandCreator, PlaceRight, 0, false)
		mc.child.AddControl(mc.childButton, 0)
		mc.child.Complete(w)
		mc.child.MoveTo(at)
		return mc.child
	}
	mc.root = StartSimpleMenu(nil, nil, false, true, pop, nil, 1)
	mc.root.Pinned = true
	mc.rootButton = NewSubmenuButton("file", HalignLeft, childCreator, PlaceBelow, 0, false)
	mc.root.AddControl(mc.rootButton, 0)
	mc.root.Complete(s)
	PopupDialog(mc.root, s, false)
	return mc
}

func pressRelease(t *testing.T, s *Stack, k Key) {
	t.Helper()
	require.True(t, s.Key(KeyEvent{Key: k, Pressed: true}))
	require.True(t, s.Key(KeyEvent{Key: k}))
}

// open hovers over the menu bar button and walks into the child menu
// with the keyboard, opening all three menus.
func (mc *menuChain) open(t *testing.T, s *Stack) {
	t.Helper()
	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(5, 5)}))
	require.NotNil(t, mc.child)
	assert.Equal(t, image.Pt(0, 16), mc.child.Rect().Min)
	assert.Equal(t, Dialog(mc.root), s.MouseFocus())
	assert.Equal(t, Dialog(mc.root), s.KeyFocus())

	pressRelease(t, s, KeyDown)
	require.NotNil(t, mc.grand)
	assert.Equal(t, image.Pt(46, 16), mc.grand.Rect().Min)
	require.Equal(t, []Dialog{mc.root, mc.child, mc.grand}, s.Dialogs())
	assert.Equal(t, Dialog(mc.child), s.KeyFocus())
	assert.Nil(t, mc.root.KeyControl())
	assert.Equal(t, Control(mc.childButton), mc.child.KeyControl())
}

func TestEscapeClosesToPinnedRoot(t *testing.T) {
	s := NewStack(newTestHost())
	mc := newMenuChain(s)
	mc.open(t, s)

	pressRelease(t, s, KeyEscape)
	assert.Equal(t, []Dialog{mc.root}, s.Dialogs())
	assert.Equal(t, Dialog(mc.root), s.KeyFocus())
	assert.Nil(t, mc.root.Child())
	assert.Nil(t, mc.rootButton.Child())
	assert.Equal(t, []int{3, 2}, mc.popped)

	// The pinned root stays.
	pressRelease(t, s, KeyEscape)
	assert.Equal(t, []Dialog{mc.root}, s.Dialogs())
}

func TestTeardownLeavesNoReferences(t *testing.T) {
	s := NewStack(newTestHost())
	mc := newMenuChain(s)
	mc.open(t, s)

	PopdownDialog(mc.child, s, false)
	assert.Equal(t, []Dialog{mc.root}, s.Dialogs())
	for _, d := range []*SimpleMenu{mc.child, mc.grand} {
		assert.Nil(t, d.Parent())
		assert.Nil(t, d.Child())
		assert.Nil(t, d.ParentControl())
		assert.Nil(t, d.Controls())
		assert.Nil(t, d.KeyControl())
		assert.Nil(t, d.MouseControl())
		assert.False(t, s.Contains(d))
	}
	assert.Nil(t, mc.root.Child())
	assert.Nil(t, mc.rootButton.Child())
	assert.NotEqual(t, Dialog(mc.child), s.KeyFocus())
	assert.NotEqual(t, Dialog(mc.grand), s.KeyFocus())
}

func TestBackKeyReturnsToParent(t *testing.T) {
	s := NewStack(newTestHost())
	mc := newMenuChain(s)
	mc.open(t, s)

	// Left in a vertical menu gives key focus back to the parent menu.
	// The entry losing key focus closes its own submenu.
	pressRelease(t, s, KeyLeft)
	assert.Equal(t, Dialog(mc.root), s.KeyFocus())
	assert.Nil(t, mc.child.KeyControl())
	assert.True(t, s.Contains(mc.child))
	assert.False(t, s.Contains(mc.grand))
	assert.Nil(t, mc.childButton.Child())
}

func TestWindowLosesMouseKeepsPinned(t *testing.T) {
	s := NewStack(newTestHost())
	mc := newMenuChain(s)
	mc.open(t, s)

	s.WindowLosesMouse()
	assert.Equal(t, []Dialog{mc.root}, s.Dialogs())
	assert.Nil(t, s.MouseFocus())
	assert.Nil(t, mc.root.MouseControl())
	assert.Equal(t, ComponentNone, mc.rootButton.MouseComponent())
}

func TestFocusMembership(t *testing.T) {
	s := NewStack(newTestHost())
	mc := newMenuChain(s)
	mc.open(t, s)

	check := func() {
		for _, d := range s.Dialogs() {
			sm := d.(*SimpleMenu)
			for _, c := range []Control{sm.KeyControl(), sm.MouseControl()} {
				if c != nil {
					assert.Contains(t, sm.Visible(), c)
				}
			}
		}
		if d := s.KeyFocus(); d != nil {
			assert.True(t, s.Contains(d))
		}
		if d := s.MouseFocus(); d != nil {
			assert.True(t, s.Contains(d))
		}
	}
	check()

	// Hover over the child's entry.
	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(5, 20)}))
	assert.Equal(t, Dialog(mc.child), s.MouseFocus())
	assert.Equal(t, Control(mc.childButton), mc.child.MouseControl())
	check()

	pressRelease(t, s, KeyEscape)
	check()
}

func TestPressOutsideDialogs(t *testing.T) {
	s := NewStack(newTestHost())
	m := StartSimpleMenu(nil, nil, true, false, nil, nil, 1)
	m.Pinned = true
	c := newFixed("a", 100, 20)
	m.AddControl(c, 0)
	m.Complete(s)
	PopupDialog(m, s, false)

	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(5, 5)}))
	assert.Equal(t, Dialog(m), s.MouseFocus())
	assert.True(t, c.hasMouse)
	assert.True(t, c.hasKey)

	assert.False(t, s.MouseButton(MouseButtonEvent{Point: image.Pt(500, 500), Button: Button1, Pressed: true}))
	assert.Nil(t, s.MouseFocus())
	assert.Nil(t, s.KeyFocus())
	assert.False(t, c.hasMouse)
	assert.False(t, c.hasKey)
	assert.True(t, s.Contains(m))

	// A menu that is not pinned closes.
	m.Pinned = false
	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(5, 5)}))
	assert.False(t, s.MouseButton(MouseButtonEvent{Point: image.Pt(500, 500), Button: Button1, Pressed: true}))
	assert.Empty(t, s.Dialogs())
	assert.True(t, c.cleaned)
}

func TestIsDescendantDialog(t *testing.T) {
	s := NewStack(newTestHost())
	mc := newMenuChain(s)
	mc.open(t, s)

	assert.True(t, IsDescendantDialog(mc.root, mc.child))
	assert.True(t, IsDescendantDialog(mc.root, mc.grand))
	assert.False(t, IsDescendantDialog(mc.child, mc.root))
	assert.False(t, IsDescendantDialog(mc.root, mc.root))
	assert.False(t, IsDescendantDialog(mc.root, nil))
}

type menuBar struct {
	root                   *SimpleMenu
	fileButton, editButton *MenuButton
	file, edit             *SimpleMenu
	popped                 []int
}

// newMenuBar shows a pinned horizontal menu bar with two submenu
// buttons, "file" and "edit", each opening a one-entry menu below it.
func newMenuBar(s *Stack) *menuBar {
	mb := &menuBar{}
	pop := func(d Dialog, w Window, up bool) {
		if !up {
			mb.popped = append(mb.popped, d.Base().Tag)
		}
	}
	creator := func(menu **SimpleMenu, tag int) SubmenuCreator {
		return func(c Control, d Dialog, w Window, at image.Point) Dialog {
			m := StartSimpleMenu(d, c, true, true, pop, nil, tag)
			m.AddControl(NewMenuButton("leaf", HalignLeft, nil, 0, false), 0)
			m.Complete(w)
			m.MoveTo(at)
			*menu = m
			return m
		}
	}
	mb.root = StartSimpleMenu(nil, nil, false, true, pop, nil, 1)
	mb.root.Pinned = true
	mb.fileButton = NewSubmenuButton("file", HalignLeft, creator(&mb.file, 2), PlaceBelow, 0, false)
	mb.editButton = NewSubmenuButton("edit", HalignLeft, creator(&mb.edit, 3), PlaceBelow, 0, false)
	mb.root.AddControl(mb.fileButton, 0)
	mb.root.AddControl(mb.editButton, 0)
	mb.root.Complete(s)
	PopupDialog(mb.root, s, false)
	return mb
}

func TestMouseSwitchesSiblingSubmenus(t *testing.T) {
	s := NewStack(newTestHost())
	mb := newMenuBar(s)

	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(5, 5)}))
	require.NotNil(t, mb.file)
	file := mb.file
	assert.Equal(t, image.Pt(0, 16), file.Rect().Min)

	// Into the open menu, then straight onto the other bar entry.
	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(5, 20)}))
	assert.Equal(t, Dialog(file), s.MouseFocus())
	assert.Nil(t, mb.root.MouseControl())

	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(60, 5)}))
	require.NotNil(t, mb.edit)
	edit := mb.edit
	assert.Equal(t, []Dialog{mb.root, edit}, s.Dialogs())
	assert.Equal(t, []int{2}, mb.popped)
	assert.Equal(t, Dialog(edit), mb.root.Child())
	assert.Equal(t, Dialog(mb.root), edit.Parent())
	assert.Equal(t, Control(mb.editButton), edit.ParentControl())
	assert.Equal(t, Dialog(edit), mb.editButton.Child())
	assert.Nil(t, mb.fileButton.Child())
	assert.Nil(t, file.Parent())
	assert.Equal(t, Dialog(mb.root), s.MouseFocus())
	assert.Equal(t, Dialog(mb.root), s.KeyFocus())
	assert.Equal(t, Control(mb.editButton), mb.root.MouseControl())
	assert.Equal(t, Control(mb.editButton), mb.root.KeyControl())

	// And back again.
	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(5, 5)}))
	assert.Equal(t, []Dialog{mb.root, mb.file}, s.Dialogs())
	assert.NotSame(t, file, mb.file)
	assert.Equal(t, []int{2, 3}, mb.popped)
	assert.Equal(t, Dialog(mb.file), mb.root.Child())
	assert.Equal(t, Dialog(mb.file), mb.fileButton.Child())
	assert.Nil(t, mb.editButton.Child())

	// The pinned bar outlives the chain.
	s.WindowLosesMouse()
	assert.Equal(t, []Dialog{mb.root}, s.Dialogs())
	assert.Nil(t, mb.root.Child())
}

func TestPopdownKeepsOtherChildLink(t *testing.T) {
	s := NewStack(newTestHost())
	mb := newMenuBar(s)
	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(5, 5)}))
	file := mb.file
	require.NotNil(t, file)

	// A stale menu that is no longer the child leaves the link alone.
	other := StartSimpleMenu(mb.root, mb.editButton, true, true, nil, nil, 9)
	other.AddControl(NewMenuButton("stale", HalignLeft, nil, 0, false), 0)
	other.Complete(s)
	PopupDialog(other, s, false)
	PopdownDialog(other, s, false)
	assert.Equal(t, Dialog(file), mb.root.Child())
	assert.Equal(t, []Dialog{mb.root, file}, s.Dialogs())
}

func TestWindowLosesKeyClosesUnanchoredChain(t *testing.T) {
	s := NewStack(newTestHost())
	mc := newMenuChain(s)

	// Keyboard only, no dialog has the mouse.
	mc.root.GotoFirstControl(s)
	require.NotNil(t, mc.child)
	mc.child.GotoFirstControl(s)
	require.NotNil(t, mc.grand)
	require.Equal(t, []Dialog{mc.root, mc.child, mc.grand}, s.Dialogs())
	assert.Equal(t, Dialog(mc.child), s.KeyFocus())
	assert.Nil(t, s.MouseFocus())

	s.WindowLosesKey()
	assert.Equal(t, []Dialog{mc.root}, s.Dialogs())
	assert.Equal(t, []int{3, 2}, mc.popped)
	assert.Nil(t, s.KeyFocus())
	assert.Nil(t, mc.root.Child())
	assert.Nil(t, mc.root.KeyControl())
	assert.Nil(t, mc.rootButton.Child())
	assert.Nil(t, mc.child.Parent())
	assert.Nil(t, mc.grand.Parent())
}

func TestMenuLosesKeyStaysUnderMouse(t *testing.T) {
	s := NewStack(newTestHost())
	mc := newMenuChain(s)
	mc.open(t, s)
	require.Equal(t, Control(mc.rootButton), mc.root.MouseControl())

	// The mouse on the entry that opened the child keeps the child open,
	// its own child closes.
	mc.child.HandleWindowLosesKey(s)
	assert.Equal(t, []Dialog{mc.root, mc.child}, s.Dialogs())
	assert.Equal(t, []int{3}, mc.popped)
	assert.Nil(t, s.KeyFocus())
	assert.Nil(t, mc.child.KeyControl())
	assert.Nil(t, mc.child.Child())
	assert.Nil(t, mc.childButton.Child())
	assert.Equal(t, Dialog(mc.child), mc.root.Child())
	assert.Equal(t, Dialog(mc.root), mc.child.Parent())
}

func TestPinnedStaysOpenPerAxis(t *testing.T) {
	s := NewStack(newTestHost())
	a := StartSimpleMenu(nil, nil, true, false, nil, nil, 1)
	a.Pinned = true
	a.AddControl(newFixed("a", 100, 20), 0)
	a.Complete(s)
	PopupDialog(a, s, false)
	b := StartSimpleMenu(nil, nil, true, false, nil, nil, 2)
	bc := newFixed("b", 100, 20)
	b.AddControl(bc, 0)
	b.Complete(s)
	b.MoveTo(image.Pt(200, 0))
	PopupDialog(b, s, false)

	// The mouse going to a control of an unrelated dialog does not look
	// at the pinned flag, key focus going there does.
	assert.False(t, menuStaysOpen(a, s, axisMouse, bc, b))
	assert.True(t, menuStaysOpen(a, s, axisKey, bc, b))
	assert.True(t, menuStaysOpen(a, s, axisMouse, nil, nil))

	a.Pinned = false
	assert.False(t, menuStaysOpen(a, s, axisKey, bc, b))
	assert.False(t, menuStaysOpen(a, s, axisMouse, nil, nil))
	assert.Equal(t, []Dialog{a, b}, s.Dialogs())
}
