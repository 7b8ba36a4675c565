package pui

import (
	"fmt"
	"image"

	"github.com/go-logr/logr"
)

// BorderSize is the blank space between a control's edge and its caption.
const BorderSize = 3

// Mouse button masks, as used in MouseButtonEvent.Button and MouseMotionEvent.Buttons.
const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4
	Button5
)

// Halign is the horizontal alignment of a caption or image within its control.
type Halign int

const (
	HalignMiddle = Halign(iota)
	HalignLeft
	HalignRight
)

// ActionHint tells arm, disarm and default handlers which input axis caused the action.
type ActionHint int

const (
	HintNone = ActionHint(iota)
	HintKey
	HintMouse
)

func (h ActionHint) String() string {
	switch h {
	case HintKey:
		return "key"
	case HintMouse:
		return "mouse"
	}
	return "none"
}

// Placement is where a submenu pops up relative to the button that opens it.
type Placement int

const (
	PlaceBelow = Placement(iota)
	PlaceAbove
	PlaceLeft
	PlaceRight
)

// MenuFlags are per-control layout flags for a SimpleMenu.
type MenuFlags int

const (
	MenuEndGravity MenuFlags = 1 << iota // Stack from the end of the menu instead of the front.
	MenuCanHide                          // May be left out if the menu is smaller than its natural size.
)

var tracer = logr.Discard()

// SetLogger sets the logger used for event and render tracing.
// Event tracing is logged at V(1), render tracing at V(2).
func SetLogger(l logr.Logger) {
	tracer = l.WithName("pui")
}

func traceEvent(kind string, caption string, what string, kv ...interface{}) {
	tracer.V(1).Info(what, append([]interface{}{"kind", kind, "caption", caption}, kv...)...)
}

func traceRender(kind string, caption string, r image.Rectangle) {
	tracer.V(2).Info("render", "kind", kind, "caption", caption, "rect", r)
}

// forceQuit logs err and hands it to the host, which is expected not to return.
func forceQuit(h Host, err error, msg string) {
	err = fmt.Errorf("%s: %w", msg, err)
	tracer.Error(err, "unrecoverable")
	h.ForceQuit(err)
}

func check(h Host, err error, msg string) {
	if err != nil {
		forceQuit(h, err, msg)
	}
}

func minimum(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maximum(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func pt(v int) image.Point {
	return image.Point{v, v}
}

func rect(p image.Point) image.Rectangle {
	return image.Rectangle{image.ZP, p}
}
