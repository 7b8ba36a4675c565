package drawhost

import (
	"image"
	"image/color"

	"9fans.net/go/draw"

	"github.com/mjl-/pui"
)

type imageKey struct {
	src  image.Image
	sr   image.Rectangle
	size image.Point
}

// renderer draws on the screen image. Dialog coordinates are relative to
// the window, the screen image may be anywhere on the display.
type renderer struct {
	h *Host
}

var _ pui.Renderer = renderer{}

func (r renderer) origin() image.Point {
	return r.h.Display.ScreenImage.R.Min
}

func (r renderer) Fill(rr image.Rectangle, c color.Color) {
	screen := r.h.Display.ScreenImage
	screen.Draw(rr.Add(r.origin()), r.h.colorImage(c), nil, image.ZP)
}

func (r renderer) Rect(rr image.Rectangle, c color.Color) {
	screen := r.h.Display.ScreenImage
	screen.Border(rr.Add(r.origin()), 1, r.h.colorImage(c), image.ZP)
}

func (r renderer) Line(pts []image.Point, c color.Color) {
	screen := r.h.Display.ScreenImage
	col := r.h.colorImage(c)
	o := r.origin()
	for i := 1; i < len(pts); i++ {
		screen.Line(pts[i-1].Add(o), pts[i].Add(o), 0, 0, 0, col, image.ZP)
	}
}

func (r renderer) Text(rr image.Rectangle, c color.Color, font pui.Font, s string) error {
	f := r.h.font
	// Truncate to the width, devdraw clips nothing for us.
	runes := []rune(s)
	for len(runes) > 0 && f.StringSize(string(runes)).X > rr.Dx() {
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 0 {
		return nil
	}
	screen := r.h.Display.ScreenImage
	screen.String(rr.Min.Add(r.origin()), r.h.colorImage(c), image.ZP, f, string(runes))
	return nil
}

func (r renderer) Image(dst image.Rectangle, src image.Image, sr image.Rectangle) error {
	img, err := r.h.loadImage(src, sr, dst.Size())
	if err != nil || img == nil {
		return err
	}
	screen := r.h.Display.ScreenImage
	screen.Draw(dst.Add(r.origin()), img, nil, image.ZP)
	return nil
}

// colorImage returns a replicated 1x1 image of c, allocating it the first time.
func (h *Host) colorImage(c color.Color) *draw.Image {
	cr, cg, cb, ca := c.RGBA()
	key := color.RGBA{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)}
	if img, ok := h.colors[key]; ok {
		return img
	}
	v := draw.Color(uint32(key.R)<<24 | uint32(key.G)<<16 | uint32(key.B)<<8 | uint32(key.A))
	img, err := h.Display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, v)
	h.check(err, "allocimage")
	h.colors[key] = img
	return img
}

// loadImage returns sr of src scaled to size as a server-side image,
// converting it the first time.
func (h *Host) loadImage(src image.Image, sr image.Rectangle, size image.Point) (*draw.Image, error) {
	key := imageKey{src, sr, size}
	if img, ok := h.images[key]; ok {
		return img, nil
	}
	if size.X <= 0 || size.Y <= 0 || sr.Empty() {
		return nil, nil
	}

	// Nearest neighbour scaling into premultiplied BGRA, the byte order of ARGB32.
	r := image.Rectangle{image.ZP, size}
	buf := make([]byte, 4*size.X*size.Y)
	ss := sr.Size()
	o := 0
	for y := 0; y < size.Y; y++ {
		sy := sr.Min.Y + y*ss.Y/size.Y
		for x := 0; x < size.X; x++ {
			sx := sr.Min.X + x*ss.X/size.X
			cr, cg, cb, ca := src.At(sx, sy).RGBA()
			buf[o+0] = uint8(cb >> 8)
			buf[o+1] = uint8(cg >> 8)
			buf[o+2] = uint8(cr >> 8)
			buf[o+3] = uint8(ca >> 8)
			o += 4
		}
	}

	img, err := h.Display.AllocImage(r, draw.ARGB32, false, draw.Transparent)
	if err != nil {
		return nil, err
	}
	if _, err := img.Load(r, buf); err != nil {
		img.Free()
		return nil, err
	}
	h.images[key] = img
	return img, nil
}

// freeImages releases the server-side copies of images.
func (h *Host) freeImages() {
	for k, img := range h.images {
		img.Free()
		delete(h.images, k)
	}
}

type drawFont struct {
	f *draw.Font
}

func (f drawFont) StringSize(s string) (image.Point, error) {
	return f.f.StringSize(s), nil
}
