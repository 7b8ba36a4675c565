package pui

import (
	"image"
)

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key     Key
	Mod     KeyMod
	Pressed bool // False for a release.
}

// TextInputEvent carries committed text, typically one character.
type TextInputEvent struct {
	Text string
}

// TextEditEvent carries uncommitted text from an input method.
type TextEditEvent struct {
	Text   string
	Start  int
	Length int
}

// MouseButtonEvent is a mouse button press or release. Point is relative to the window.
type MouseButtonEvent struct {
	Point   image.Point
	Button  int // One of Button1 through Button5.
	Pressed bool
}

// MouseMotionEvent is a mouse move. Buttons has the masks of buttons held.
type MouseMotionEvent struct {
	Point   image.Point
	Buttons int
}

// MouseWheelEvent is a wheel movement. Positive Delta.Y is away from the user,
// unless Flipped is set.
type MouseWheelEvent struct {
	Delta   image.Point
	Flipped bool
}
