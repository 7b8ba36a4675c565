package pui

import (
	"image"
	"image/color"
)

// StippleSize is the width and height of the pattern made by NewStipple.
const StippleSize = 16

var (
	stippleOn  = color.NRGBA{0, 0, 0, 0}
	stippleOff = color.NRGBA{0x40, 0x40, 0x40, 0x40}
)

// NewStipple returns the checkerboard drawn over disabled controls:
// transparent pixels alternating with faint gray ones.
func NewStipple() *image.NRGBA {
	img := image.NewNRGBA(rect(pt(StippleSize)))
	for y := 0; y < StippleSize; y++ {
		for x := 0; x < StippleSize; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, stippleOn)
			} else {
				img.SetNRGBA(x, y, stippleOff)
			}
		}
	}
	return img
}

// stippleRect tiles the host's stipple over dst without scaling.
func stippleRect(h Host, dst image.Rectangle) {
	st := h.Stipple()
	if st == nil || dst.Empty() {
		return
	}
	size := st.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	r := h.Renderer()
	for y := dst.Min.Y; y < dst.Max.Y; y += size.Y {
		for x := dst.Min.X; x < dst.Max.X; x += size.X {
			tile := image.Rect(x, y, minimum(x+size.X, dst.Max.X), minimum(y+size.Y, dst.Max.Y))
			sr := image.Rectangle{st.Bounds().Min, st.Bounds().Min.Add(tile.Size())}
			check(h, r.Image(tile, st, sr), "stippling")
		}
	}
}
