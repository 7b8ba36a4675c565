package pui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	h := newTestHost()
	s := NewStack(h)
	a := StartSimpleMenu(nil, nil, true, false, nil, nil, 1)
	b := StartSimpleMenu(nil, nil, true, false, nil, nil, 2)
	assert.Nil(t, s.Top())

	s.PushDialog(a)
	s.PushDialog(b)
	assert.Equal(t, []Dialog{a, b}, s.Dialogs())
	assert.Equal(t, Dialog(b), s.Top())

	s.PushDialog(a)
	assert.Equal(t, []Dialog{b, a}, s.Dialogs(), "pushing again moves to the top")
	assert.Equal(t, 3, h.redraws)

	s.GainKeyFocus(a)
	s.PopDialog(a)
	assert.Equal(t, []Dialog{b}, s.Dialogs())
	assert.Nil(t, s.KeyFocus())
	assert.True(t, b.Dirty)

	s.PopDialog(a)
	assert.Len(t, s.Dialogs(), 1)
}

func TestStackYieldOnlyByHolder(t *testing.T) {
	s := NewStack(newTestHost())
	a := StartSimpleMenu(nil, nil, true, false, nil, nil, 1)
	b := StartSimpleMenu(nil, nil, true, false, nil, nil, 2)
	s.PushDialog(a)
	s.PushDialog(b)

	s.GainMouseFocus(a)
	s.YieldMouseFocus(b)
	assert.Equal(t, Dialog(a), s.MouseFocus())
	s.YieldMouseFocus(a)
	assert.Nil(t, s.MouseFocus())
}

func TestStackKeyGoesToTop(t *testing.T) {
	s := NewStack(newTestHost())
	assert.False(t, s.Key(KeyEvent{Key: KeyReturn}))
	assert.False(t, s.TextInput(TextInputEvent{Text: "x"}))
	assert.False(t, s.MouseWheel(MouseWheelEvent{Delta: image.Pt(0, 1)}))

	var responded int
	info := StartSimpleInfo("OK", nil, nil, 0)
	info.Complete(s)
	s.PushDialog(info)
	info.button.Click = func(c Control, d Dialog, w Window) { responded++ }

	// No key focus: the top dialog gets the key. Tab focuses the button,
	// return clicks it.
	pressRelease(t, s, KeyTab)
	pressRelease(t, s, KeyReturn)
	assert.Equal(t, 1, responded)
	assert.True(t, s.Contains(info))
}

func TestStackHeldMotionGoesToMouseFocus(t *testing.T) {
	s := NewStack(newTestHost())
	assert.False(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(1, 1), Buttons: Button1}))

	m := StartSimpleMenu(nil, nil, true, false, nil, nil, 1)
	c := newFixed("a", 20, 20)
	m.AddControl(c, 0)
	m.Complete(s)
	s.PushDialog(m)
	require.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(1, 1)}))

	// Dragging outside keeps focus where it is.
	assert.True(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(100, 100), Buttons: Button1}))
	assert.Equal(t, Dialog(m), s.MouseFocus())
	assert.True(t, c.hasMouse)

	// Moving outside without a button held is not consumed, and focus stays.
	assert.False(t, s.MouseMotion(MouseMotionEvent{Point: image.Pt(100, 100)}))
	assert.Equal(t, Dialog(m), s.MouseFocus())
}

func TestStackRecreateTextures(t *testing.T) {
	s := NewStack(newTestHost())
	var got []bool
	m := StartSimpleMenu(nil, nil, true, false, nil, func(d Dialog, w Window, all bool) {
		got = append(got, all)
	}, 1)
	m.Complete(s)
	s.PushDialog(m)
	s.Render()
	require.False(t, s.Dirty())

	s.RecreateTextures(true)
	assert.Equal(t, []bool{true}, got)
	assert.True(t, s.Dirty())
}
