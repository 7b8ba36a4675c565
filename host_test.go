package pui

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"
)

// testFont is 10 pixels wide per rune and 10 pixels high.
type testFont struct{}

func (testFont) StringSize(s string) (image.Point, error) {
	return image.Pt(10*utf8.RuneCountInString(s), 10), nil
}

type drawOp struct {
	op   string
	r    image.Rectangle
	text string
}

type testRenderer struct {
	ops []drawOp
}

func (r *testRenderer) Fill(rr image.Rectangle, c color.Color) {
	r.ops = append(r.ops, drawOp{op: "fill", r: rr})
}

func (r *testRenderer) Rect(rr image.Rectangle, c color.Color) {
	r.ops = append(r.ops, drawOp{op: "rect", r: rr})
}

func (r *testRenderer) Line(pts []image.Point, c color.Color) {
	r.ops = append(r.ops, drawOp{op: "line"})
}

func (r *testRenderer) Text(rr image.Rectangle, c color.Color, font Font, s string) error {
	r.ops = append(r.ops, drawOp{op: "text", r: rr, text: s})
	return nil
}

func (r *testRenderer) Image(dst image.Rectangle, src image.Image, sr image.Rectangle) error {
	r.ops = append(r.ops, drawOp{op: "image", r: dst})
	return nil
}

func (r *testRenderer) texts() []string {
	var l []string
	for _, op := range r.ops {
		if op.op == "text" {
			l = append(l, op.text)
		}
	}
	return l
}

type testHost struct {
	renderer *testRenderer
	stipple  image.Image
	redraws  int
}

func newTestHost() *testHost {
	return &testHost{renderer: &testRenderer{}, stipple: NewStipple()}
}

func (h *testHost) Renderer() Renderer              { return h.renderer }
func (h *testHost) Font() Font                      { return testFont{} }
func (h *testHost) Stipple() image.Image            { return h.stipple }
func (h *testHost) Color(role ColorRole) color.RGBA { return DefaultPalette.Color(role) }
func (h *testHost) SignalRedraw()                   { h.redraws++ }

func (h *testHost) ForceQuit(err error) {
	panic(fmt.Sprintf("force quit: %v", err))
}

// recordingWindow is a Stack that logs the focus calls dialogs make on it.
type recordingWindow struct {
	*Stack
	calls []string
}

func newRecordingWindow() *recordingWindow {
	return &recordingWindow{Stack: NewStack(newTestHost())}
}

func (w *recordingWindow) GainKeyFocus(d Dialog) {
	w.calls = append(w.calls, fmt.Sprintf("gain key %d", d.Base().Tag))
	w.Stack.GainKeyFocus(d)
}

func (w *recordingWindow) YieldKeyFocus(d Dialog) {
	w.calls = append(w.calls, fmt.Sprintf("yield key %d", d.Base().Tag))
	w.Stack.YieldKeyFocus(d)
}

func (w *recordingWindow) GainMouseFocus(d Dialog) {
	w.calls = append(w.calls, fmt.Sprintf("gain mouse %d", d.Base().Tag))
	w.Stack.GainMouseFocus(d)
}

func (w *recordingWindow) YieldMouseFocus(d Dialog) {
	w.calls = append(w.calls, fmt.Sprintf("yield mouse %d", d.Base().Tag))
	w.Stack.YieldMouseFocus(d)
}

// fixedControl has a fixed natural size and takes focus.
type fixedControl struct {
	ControlBase
	name     string
	natural  image.Point
	hasKey   bool
	hasMouse bool
	cleaned  bool
}

func newFixed(name string, x, y int) *fixedControl {
	return &fixedControl{name: name, natural: image.Pt(x, y)}
}

func (c *fixedControl) NaturalSize(d Dialog, w Window) image.Point {
	return c.natural
}

func (c *fixedControl) InteractableComponent(first bool) Component {
	return ComponentLeft
}

func (c *fixedControl) GainKey(d Dialog, w Window, comp Component)            { c.hasKey = true }
func (c *fixedControl) LoseKey(d Dialog, w Window, newC Control, newD Dialog) { c.hasKey = false }
func (c *fixedControl) GainMouse(d Dialog, w Window, comp Component)          { c.hasMouse = true }
func (c *fixedControl) LoseMouse(d Dialog, w Window, newC Control, newD Dialog) {
	c.hasMouse = false
}
func (c *fixedControl) Cleanup() { c.cleaned = true }
