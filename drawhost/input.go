package drawhost

import (
	"image"

	"9fans.net/go/draw"

	"github.com/mjl-/pui"
)

const (
	wheelUp   = pui.Button4
	wheelDown = pui.Button5
)

// mouseInput turns a devdraw mouse state into pui motion, button and
// wheel events. Devdraw reports the wheel as buttons 4 and 5.
func (h *Host) mouseInput(m draw.Mouse) {
	prev := h.mouse
	h.mouse = m
	p := m.Point.Sub(h.Display.ScreenImage.R.Min)

	wheel := m.Buttons & (wheelUp | wheelDown)
	if wheel != 0 && prev.Buttons&wheel == 0 {
		dy := 1
		if wheel&wheelDown != 0 {
			dy = -1
		}
		e := pui.MouseWheelEvent{Delta: image.Pt(0, dy)}
		if !h.Stack.MouseWheel(e) {
			h.unhandled(e)
		}
	}

	buttons := m.Buttons &^ (wheelUp | wheelDown)
	old := prev.Buttons &^ (wheelUp | wheelDown)
	if m.Point != prev.Point {
		e := pui.MouseMotionEvent{Point: p, Buttons: buttons}
		if !h.Stack.MouseMotion(e) {
			h.unhandled(e)
		}
	}
	for _, b := range []int{pui.Button1, pui.Button2, pui.Button3} {
		if (buttons^old)&b == 0 {
			continue
		}
		e := pui.MouseButtonEvent{Point: p, Button: b, Pressed: buttons&b != 0}
		if !h.Stack.MouseButton(e) {
			h.unhandled(e)
		}
	}
}

var keyMap = map[rune]pui.Key{
	draw.KeyUp:       pui.KeyUp,
	draw.KeyDown:     pui.KeyDown,
	draw.KeyLeft:     pui.KeyLeft,
	draw.KeyRight:    pui.KeyRight,
	draw.KeyHome:     pui.KeyHome,
	draw.KeyEnd:      pui.KeyEnd,
	draw.KeyPageUp:   pui.KeyPageUp,
	draw.KeyPageDown: pui.KeyPageDown,
	draw.KeyEscape:   pui.KeyEscape,
	draw.KeyDelete:   pui.KeyDelete,
	'\b':             pui.KeyBackspace,
	'\t':             pui.KeyTab,
	'\n':             pui.KeyReturn,
	'\r':             pui.KeyReturn,
}

// translateKey returns the key and modifiers for a devdraw rune, and
// whether the rune is text.
func translateKey(k rune) (pui.Key, pui.KeyMod, bool) {
	if pk, ok := keyMap[k]; ok {
		return pk, pui.ModNone, false
	}
	switch {
	case k >= draw.KeyCmd && k < draw.KeyCmd+0x80:
		return pui.Key(k - draw.KeyCmd), pui.ModGUI, false
	case k >= draw.KeyFn && k < draw.KeyFn+0x100:
		// Function keys have no binding in dialogs.
		return pui.KeyFn, pui.ModNone, false
	case k > 0 && k < 0x20:
		return pui.Key('a' + k - 1), pui.ModCtrl, false
	}
	return pui.Key(k), pui.ModNone, true
}

// keyInput delivers a press, the text for printable keys, and a release:
// devdraw only reports that a key was typed.
func (h *Host) keyInput(k rune) {
	key, mod, text := translateKey(k)
	press := pui.KeyEvent{Key: key, Mod: mod, Pressed: true}
	consumed := h.Stack.Key(press)
	if text {
		consumed = h.Stack.TextInput(pui.TextInputEvent{Text: string(k)}) || consumed
	}
	consumed = h.Stack.Key(pui.KeyEvent{Key: key, Mod: mod}) || consumed
	if consumed {
		return
	}
	if mod == pui.ModGUI && (key == 'q' || key == 'w') {
		h.log.Info("closing window")
		h.quit(ErrClosed)
		return
	}
	h.unhandled(press)
}
