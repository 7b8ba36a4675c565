package pui

import (
	"image"
)

// Image shows a picture, scaled down to fit when its control is smaller
// than the picture plus margins.
type Image struct {
	ControlBase
	Image  image.Image
	Halign Halign
	Margin Space

	imageR image.Rectangle // Relative to the control.
}

var _ Control = &Image{}

// NewImage returns an image control. Negative margins are taken as zero.
func NewImage(img image.Image, halign Halign, margin Space) *Image {
	if img == nil {
		panic("pui: nil image")
	}
	return &Image{
		ControlBase: ControlBase{Code: CodeImage},
		Image:       img,
		Halign:      halign,
		Margin:      margin.NonNegative(),
	}
}

func (ui *Image) Render(d Dialog, w Window) {
	traceRender("image", "", ui.R)
	if ui.imageR.Empty() {
		return
	}
	err := w.Renderer().Image(windowRect(d, ui.imageR.Add(ui.R.Min)), ui.Image, ui.Image.Bounds())
	check(w, err, "rendering image")
}

func (ui *Image) Resize(d Dialog, w Window, size image.Point) {
	ui.R.Max = ui.R.Min.Add(size)
	isize := ui.Image.Bounds().Size()
	m := ui.Margin
	if size.X <= m.Dx() || size.Y <= m.Dy() {
		ui.imageR = image.ZR
		return
	}

	r := isize
	if size.X < isize.X+m.Dx() || size.Y < isize.Y+m.Dy() {
		// Scale by whole percents, keeping the aspect ratio.
		scale := func(have, need int) int {
			if have >= need {
				return 100
			}
			return 100 * have / need
		}
		sx := scale(size.X-m.Dx(), isize.X)
		sy := scale(size.Y-m.Dy(), isize.Y)
		s := minimum(sx, sy)
		r.X = minimum(maximum((isize.X*s+50)/100, 1), size.X-m.Dx())
		r.Y = minimum(maximum((isize.Y*s+50)/100, 1), size.Y-m.Dy())
	}

	var x int
	switch ui.Halign {
	case HalignLeft:
		x = m.Left
	case HalignRight:
		x = size.X - r.X - m.Right
	default:
		x = (size.X-r.X-m.Dx())/2 + m.Left
	}
	y := (size.Y-r.Y-m.Dy())/2 + m.Top
	ui.imageR = image.Rectangle{image.Pt(x, y), image.Pt(x, y).Add(r)}
}

func (ui *Image) NaturalSize(d Dialog, w Window) image.Point {
	return ui.Image.Bounds().Size().Add(ui.Margin.Size())
}

func (ui *Image) Cleanup() {
	ui.Image = nil
}
