package pui

import (
	"image"
)

// Callback is called for a control's default action.
type Callback func(c Control, d Dialog, w Window)

// PushButton is a raised, outlined button with a centered caption.
type PushButton struct {
	ControlBase
	Caption string
	Halign  Halign
	Click   Callback // Called on the default action, unless disabled.

	tag      int
	disabled bool
	hasKey   bool
	hasMouse bool
	armed    bool
	captionR image.Rectangle // Relative to the control.
}

var _ Control = &PushButton{}

const pushButtonBorder = BorderSize + 2

func NewPushButton(caption string, halign Halign, click Callback, tag int, disabled bool) *PushButton {
	return &PushButton{
		ControlBase: ControlBase{Code: CodePushButton},
		Caption:     caption,
		Halign:      halign,
		Click:       click,
		tag:         tag,
		disabled:    disabled,
	}
}

func (ui *PushButton) HandleKey(d Dialog, w Window, e KeyEvent) bool {
	return ControlHandleKey(ui, d, w, e)
}

func (ui *PushButton) HandleMouseClick(d Dialog, w Window, e MouseButtonEvent) bool {
	return ControlHandleMouseClick(ui, d, w, e)
}

func (ui *PushButton) HandleMouseMove(d Dialog, w Window, e MouseMotionEvent) bool {
	return ControlHandleMouseMove(ui, d, w, e)
}

func (ui *PushButton) ChangeCaption(d Dialog, w Window, caption string) {
	ui.Caption = caption
	ui.Resize(d, w, ui.R.Size())
	markDirty(d, w)
}

func (ui *PushButton) Render(d Dialog, w Window) {
	traceRender("push button", ui.Caption, ui.R)
	r := w.Renderer()
	fg := w.Color(ColorDialogFG)
	cr := windowRect(d, ui.R)

	// Outer countersink, then the button's own outline one pixel in.
	r.Rect(cr, w.Color(ColorCountersink))
	r.Rect(cr.Inset(2), fg)
	if ui.hasKey || ui.hasMouse {
		r.Rect(cr.Inset(3), fg)
	}
	if !ui.armed {
		// Raised: light the left and top edges.
		r.Line([]image.Point{
			{cr.Min.X + 1, cr.Max.Y - 2},
			{cr.Min.X + 1, cr.Min.Y + 1},
			{cr.Max.X - 2, cr.Min.Y + 1},
		}, fg)
	}
	if !ui.captionR.Empty() {
		RenderText(w, windowRect(d, ui.captionR.Add(ui.R.Min)), fg, ui.Caption)
	}
	if ui.disabled {
		stippleRect(w, cr.Inset(2))
	}
}

func (ui *PushButton) RespondDefault(d Dialog, w Window, hint ActionHint) bool {
	if ui.disabled || ui.Click == nil {
		traceEvent("push button", ui.Caption, "default action suppressed", "disabled", ui.disabled, "callback", ui.Click != nil)
		return true
	}
	traceEvent("push button", ui.Caption, "default action invoked", "hint", hint)
	ui.Click(ui, d, w)
	return true
}

func (ui *PushButton) GainKey(d Dialog, w Window, comp Component) {
	if !ui.hasKey {
		traceEvent("push button", ui.Caption, "gained key focus")
		ui.hasKey = true
		markDirty(d, w)
	}
}

func (ui *PushButton) LoseKey(d Dialog, w Window, newC Control, newD Dialog) {
	if ui.hasKey {
		traceEvent("push button", ui.Caption, "lost key focus")
		ui.hasKey = false
		markDirty(d, w)
	}
}

func (ui *PushButton) GainMouse(d Dialog, w Window, comp Component) {
	if !ui.hasMouse {
		traceEvent("push button", ui.Caption, "gained mouse focus")
		ui.hasMouse = true
		markDirty(d, w)
	}
}

func (ui *PushButton) LoseMouse(d Dialog, w Window, newC Control, newD Dialog) {
	if ui.hasMouse {
		traceEvent("push button", ui.Caption, "lost mouse focus")
		ui.hasMouse = false
		markDirty(d, w)
	}
}

func (ui *PushButton) Arm(d Dialog, w Window, hint ActionHint) {
	if !ui.armed {
		ui.armed = true
		markDirty(d, w)
	}
}

func (ui *PushButton) Disarm(d Dialog, w Window, hint ActionHint) {
	if ui.armed {
		ui.armed = false
		markDirty(d, w)
	}
}

func (ui *PushButton) InteractableComponent(first bool) Component {
	if ui.disabled {
		return ComponentNone
	}
	return ComponentLeft
}

func (ui *PushButton) Resize(d Dialog, w Window, size image.Point) {
	ui.captionR = placeCaption(TextSize(w, ui.Caption), size, pushButtonBorder, 0, ui.Halign)
	ui.R.Max = ui.R.Min.Add(size)
}

func (ui *PushButton) NaturalSize(d Dialog, w Window) image.Point {
	return TextSize(w, ui.Caption).Add(pt(2 * pushButtonBorder))
}

func (ui *PushButton) Disabled() bool {
	return ui.disabled
}

func (ui *PushButton) SetDisabled(d Dialog, w Window, disabled bool) bool {
	old := ui.disabled
	if old != disabled {
		ui.disabled = disabled
		markDirty(d, w)
	}
	return old
}

func (ui *PushButton) Tag() int {
	return ui.tag
}

func (ui *PushButton) SetTag(tag int) int {
	old := ui.tag
	ui.tag = tag
	return old
}

// Focus returns whether the button has key and mouse focus.
func (ui *PushButton) Focus() (key, mouse bool) {
	return ui.hasKey, ui.hasMouse
}

// Armed returns whether the button is pressed.
func (ui *PushButton) Armed() bool {
	return ui.armed
}
