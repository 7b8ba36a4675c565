package pui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAbout(s *Stack, popped *[]bool) *SimpleInfo {
	pop := func(d Dialog, w Window, up bool) { *popped = append(*popped, up) }
	info := StartSimpleInfo("OK", pop, nil, 5)
	info.AddLabel("hello", HalignMiddle)
	info.Complete(s)
	return info
}

func TestSimpleInfoLayout(t *testing.T) {
	s := NewStack(newTestHost())
	var popped []bool
	info := newAbout(s, &popped)

	// Label 56x16, button 30x20 with a button's height of room above it.
	assert.Equal(t, image.Pt(56, 56), info.NaturalSize(s))
	assert.Equal(t, info.NaturalSize(s), info.MinimumSize(s))
	assert.Equal(t, image.Rect(0, 0, 56, 56), info.Rect())
	require.Len(t, info.Items(), 1)
	assert.Equal(t, image.Rect(0, 0, 56, 16), info.Items()[0].Rect())
	assert.Equal(t, image.Rect(13, 36, 43, 56), info.Button().Rect())
}

func TestSimpleInfoReturnDismisses(t *testing.T) {
	s := NewStack(newTestHost())
	var popped []bool
	info := newAbout(s, &popped)
	PopupDialog(info, s, true)
	require.Equal(t, Dialog(info), s.KeyFocus())

	pressRelease(t, s, KeyReturn)
	assert.Empty(t, s.Dialogs())
	assert.Nil(t, s.KeyFocus())
	assert.Equal(t, []bool{false}, popped)
	assert.Nil(t, info.Items())
}

func TestSimpleInfoButtonClick(t *testing.T) {
	s := NewStack(newTestHost())
	var popped []bool
	info := newAbout(s, &popped)
	info.MoveTo(image.Pt(100, 100))
	PopupDialog(info, s, false)

	p := image.Pt(120, 145)
	require.True(t, s.MouseMotion(MouseMotionEvent{Point: p}))
	key, mouse := info.Button().Focus()
	assert.True(t, key)
	assert.True(t, mouse)
	require.True(t, s.MouseButton(MouseButtonEvent{Point: p, Button: Button1, Pressed: true}))
	assert.True(t, info.Button().Armed())
	require.True(t, s.MouseButton(MouseButtonEvent{Point: p, Button: Button1}))
	assert.Empty(t, s.Dialogs())
}

func TestSimpleInfoTabFocusesButton(t *testing.T) {
	s := NewStack(newTestHost())
	var popped []bool
	info := newAbout(s, &popped)
	PopupDialog(info, s, true)

	pressRelease(t, s, KeyTab)
	assert.Equal(t, Control(info.Button()), info.KeyControl())
	key, _ := info.Button().Focus()
	assert.True(t, key)

	s.WindowLosesKey()
	assert.Nil(t, info.KeyControl())
	key, _ = info.Button().Focus()
	assert.False(t, key)
	assert.Nil(t, s.KeyFocus())
	assert.True(t, s.Contains(info))
}
