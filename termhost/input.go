package termhost

import (
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/mjl-/pui"
)

var keyMap = map[rune]pui.Key{
	tea.KeyUp:        pui.KeyUp,
	tea.KeyDown:      pui.KeyDown,
	tea.KeyLeft:      pui.KeyLeft,
	tea.KeyRight:     pui.KeyRight,
	tea.KeyHome:      pui.KeyHome,
	tea.KeyEnd:       pui.KeyEnd,
	tea.KeyPgUp:      pui.KeyPageUp,
	tea.KeyPgDown:    pui.KeyPageDown,
	tea.KeyInsert:    pui.KeyInsert,
	tea.KeyDelete:    pui.KeyDelete,
	tea.KeyBackspace: pui.KeyBackspace,
	tea.KeyTab:       pui.KeyTab,
	tea.KeyEnter:     pui.KeyReturn,
	tea.KeyEscape:    pui.KeyEscape,
	tea.KeyKpEnter:   pui.KeyKPEnter,
	tea.KeyKpUp:      pui.KeyKP8,
	tea.KeyKpDown:    pui.KeyKP2,
	tea.KeyKpLeft:    pui.KeyKP4,
	tea.KeyKpRight:   pui.KeyKP6,
}

var modMap = []struct {
	tea tea.KeyMod
	pui pui.KeyMod
}{
	{tea.ModShift, pui.ModShift},
	{tea.ModCtrl, pui.ModCtrl},
	{tea.ModAlt, pui.ModAlt},
	{tea.ModMeta, pui.ModGUI},
	{tea.ModSuper, pui.ModGUI},
	{tea.ModCapsLock, pui.ModCaps},
	{tea.ModNumLock, pui.ModNum},
	{tea.ModScrollLock, pui.ModScroll},
}

// translateKey returns the pui key and modifiers for k, and the text it
// types, if any.
func translateKey(k tea.Key) (pui.Key, pui.KeyMod, string) {
	var mod pui.KeyMod
	for _, m := range modMap {
		if k.Mod&m.tea != 0 {
			mod |= m.pui
		}
	}
	if pk, ok := keyMap[k.Code]; ok {
		return pk, mod, ""
	}
	if k.Code >= tea.KeyF1 && k.Code <= tea.KeyF63 {
		return pui.KeyFn, mod, ""
	}
	text := k.Text
	if mod&(pui.ModCtrl|pui.ModAlt|pui.ModGUI) != 0 {
		text = ""
	}
	return pui.Key(k.Code), mod, text
}

// keyInput delivers a press, the typed text, and a release. Terminals
// only report key releases when asked for keyboard enhancements, which
// not all support.
func (h *Host) keyInput(k tea.Key) {
	key, mod, text := translateKey(k)
	press := pui.KeyEvent{Key: key, Mod: mod, Pressed: true}
	consumed := h.Stack.Key(press)
	if text != "" {
		consumed = h.Stack.TextInput(pui.TextInputEvent{Text: text}) || consumed
	}
	consumed = h.Stack.Key(pui.KeyEvent{Key: key, Mod: mod}) || consumed
	if consumed {
		return
	}
	if mod&pui.ModCtrl != 0 && (key == 'c' || key == 'q') {
		h.log.Info("quit by user")
		h.quit(ErrQuit)
		return
	}
	h.unhandled(press)
}

func mouseButton(b tea.MouseButton) int {
	switch b {
	case tea.MouseLeft:
		return pui.Button1
	case tea.MouseMiddle:
		return pui.Button2
	case tea.MouseRight:
		return pui.Button3
	}
	return 0
}

// mousePoint returns the pixel at the center of the cell m is in.
func mousePoint(m tea.Mouse) image.Point {
	return cellCenter(image.Pt(m.X, m.Y))
}

func (h *Host) mouseMotion(m tea.Mouse) {
	p := mousePoint(m)
	if p == h.mouse {
		return
	}
	h.mouse = p
	e := pui.MouseMotionEvent{Point: p, Buttons: h.buttons}
	if !h.Stack.MouseMotion(e) {
		h.unhandled(e)
	}
}

func (h *Host) mouseButton(m tea.Mouse, pressed bool) {
	h.mouseMotion(m)

	var buttons []int
	if b := mouseButton(m.Button); b != 0 {
		buttons = []int{b}
	} else if !pressed {
		// Some terminals do not say which button was released.
		for _, b := range []int{pui.Button1, pui.Button2, pui.Button3} {
			if h.buttons&b != 0 {
				buttons = append(buttons, b)
			}
		}
	}
	for _, b := range buttons {
		if pressed == (h.buttons&b != 0) {
			continue
		}
		if pressed {
			h.buttons |= b
		} else {
			h.buttons &^= b
		}
		e := pui.MouseButtonEvent{Point: h.mouse, Button: b, Pressed: pressed}
		if !h.Stack.MouseButton(e) {
			h.unhandled(e)
		}
	}
}

func (h *Host) mouseWheel(m tea.Mouse) {
	var d image.Point
	switch m.Button {
	case tea.MouseWheelUp:
		d.Y = 1
	case tea.MouseWheelDown:
		d.Y = -1
	case tea.MouseWheelLeft:
		d.X = -1
	case tea.MouseWheelRight:
		d.X = 1
	default:
		return
	}
	e := pui.MouseWheelEvent{Delta: d}
	if !h.Stack.MouseWheel(e) {
		h.unhandled(e)
	}
}
