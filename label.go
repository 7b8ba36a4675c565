package pui

import (
	"image"
)

// Label is a single line of non-interactive text.
type Label struct {
	ControlBase
	Caption string
	Halign  Halign

	captionR image.Rectangle // Relative to the control.
}

var _ Control = &Label{}

func NewLabel(caption string, halign Halign) *Label {
	return &Label{
		ControlBase: ControlBase{Code: CodeLabel},
		Caption:     caption,
		Halign:      halign,
	}
}

// placeCaption returns where a caption of size text goes in a control of
// size size, keeping border free on every side and extra free to the right
// of the caption. The caption is truncated if it does not fit, and empty
// if nothing fits.
func placeCaption(text, size image.Point, border, extra int, halign Halign) image.Rectangle {
	b2 := 2 * border
	if size.X <= extra+b2 || size.Y <= b2 {
		return image.ZR
	}
	cw := minimum(text.X, size.X-b2-extra)
	ch := minimum(text.Y, size.Y-b2)
	var x int
	switch halign {
	case HalignLeft:
		x = border
	case HalignRight:
		x = size.X - cw - extra - border
	default:
		x = (size.X-cw-extra-b2)/2 + border
	}
	y := (size.Y-ch-b2)/2 + border
	return image.Rect(x, y, x+cw, y+ch)
}

func (ui *Label) ChangeCaption(d Dialog, w Window, caption string) {
	ui.Caption = caption
	ui.Resize(d, w, ui.R.Size())
	markDirty(d, w)
}

func (ui *Label) Render(d Dialog, w Window) {
	traceRender("label", ui.Caption, ui.R)
	if ui.captionR.Empty() {
		return
	}
	RenderText(w, windowRect(d, ui.captionR.Add(ui.R.Min)), w.Color(ColorDialogFG), ui.Caption)
}

func (ui *Label) Resize(d Dialog, w Window, size image.Point) {
	ui.captionR = placeCaption(TextSize(w, ui.Caption), size, BorderSize, 0, ui.Halign)
	ui.R.Max = ui.R.Min.Add(size)
}

func (ui *Label) NaturalSize(d Dialog, w Window) image.Point {
	return TextSize(w, ui.Caption).Add(pt(2 * BorderSize))
}
