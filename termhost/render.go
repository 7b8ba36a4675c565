package termhost

import (
	"image"
	"image/color"

	"github.com/mattn/go-runewidth"

	"github.com/mjl-/pui"
)

// renderer draws into the host's cell grid. Fills and images set cell
// backgrounds, outlines and lines use box drawing runes but do not
// overwrite text.
type renderer struct {
	h *Host
}

var _ pui.Renderer = renderer{}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (r renderer) Fill(rr image.Rectangle, c color.Color) {
	g := r.h.grid
	col := rgba(c)
	cr := cellsCovering(rr)
	for y := cr.Min.Y; y < cr.Max.Y; y++ {
		for x := cr.Min.X; x < cr.Max.X; x++ {
			if gc := g.at(x, y); gc != nil {
				*gc = cell{r: ' ', fg: gc.fg, bg: col}
			}
		}
	}
}

func (r renderer) Rect(rr image.Rectangle, c color.Color) {
	if rr.Empty() {
		return
	}
	g := r.h.grid
	col := rgba(c)
	min := cellOf(rr.Min)
	max := cellOf(rr.Max.Sub(image.Pt(1, 1)))
	for x := min.X + 1; x < max.X; x++ {
		g.stroke(x, min.Y, '─', col)
		g.stroke(x, max.Y, '─', col)
	}
	for y := min.Y + 1; y < max.Y; y++ {
		g.stroke(min.X, y, '│', col)
		g.stroke(max.X, y, '│', col)
	}
	switch {
	case min == max:
		g.stroke(min.X, min.Y, '□', col)
	case min.Y == max.Y:
		g.stroke(min.X, min.Y, '[', col)
		g.stroke(max.X, min.Y, ']', col)
	case min.X == max.X:
		g.stroke(min.X, min.Y, '┬', col)
		g.stroke(min.X, max.Y, '┴', col)
	default:
		g.stroke(min.X, min.Y, '┌', col)
		g.stroke(max.X, min.Y, '┐', col)
		g.stroke(min.X, max.Y, '└', col)
		g.stroke(max.X, max.Y, '┘', col)
	}
}

func (r renderer) Line(pts []image.Point, c color.Color) {
	col := rgba(c)
	for i := 0; i+1 < len(pts); i++ {
		r.segment(cellOf(pts[i]), cellOf(pts[i+1]), col)
	}
	if len(pts) == 1 {
		p := cellOf(pts[0])
		r.h.grid.stroke(p.X, p.Y, '·', col)
	}
}

func (r renderer) segment(a, b image.Point, col color.RGBA) {
	g := r.h.grid
	d := b.Sub(a)
	var ch rune
	switch {
	case d.Y == 0:
		ch = '─'
	case d.X == 0:
		ch = '│'
	case (d.X > 0) == (d.Y > 0):
		ch = '╲'
	default:
		ch = '╱'
	}
	n := maxInt(absInt(d.X), absInt(d.Y))
	if n == 0 {
		g.stroke(a.X, a.Y, '·', col)
		return
	}
	for i := 0; i <= n; i++ {
		g.stroke(a.X+d.X*i/n, a.Y+d.Y*i/n, ch, col)
	}
}

func (r renderer) Text(rr image.Rectangle, c color.Color, font pui.Font, s string) error {
	g := r.h.grid
	col := rgba(c)
	// Text starts in the nearest cell and may run half a cell past r.
	p := cellOf(rr.Min.Add(image.Pt(CellWidth/2, CellHeight/2)))
	x := p.X
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if (x+w)*CellWidth > rr.Max.X+CellWidth/2 {
			break
		}
		for i := 0; i < w; i++ {
			tr := ch
			if i > 0 {
				tr = 0
			}
			g.put(x+i, p.Y, tr, col)
			if c := g.at(x+i, p.Y); c != nil {
				c.text = true
			}
		}
		x += w
	}
	return nil
}

// Image blends the sampled colors of src into the backgrounds and
// foregrounds of the cells covering dst.
func (r renderer) Image(dst image.Rectangle, src image.Image, sr image.Rectangle) error {
	if dst.Empty() || sr.Empty() {
		return nil
	}
	g := r.h.grid
	cr := cellsCovering(dst)
	samples := [...]image.Point{{1, 4}, {6, 4}, {2, 11}, {5, 11}}
	for y := cr.Min.Y; y < cr.Max.Y; y++ {
		for x := cr.Min.X; x < cr.Max.X; x++ {
			gc := g.at(x, y)
			if gc == nil {
				continue
			}
			var sum [4]uint32
			for _, o := range samples {
				p := image.Pt(x*CellWidth, y*CellHeight).Add(o)
				if !p.In(dst) {
					p = cellCenter(image.Pt(x, y))
				}
				sp := image.Pt(
					sr.Min.X+(p.X-dst.Min.X)*sr.Dx()/dst.Dx(),
					sr.Min.Y+(p.Y-dst.Min.Y)*sr.Dy()/dst.Dy(),
				)
				pr, pg, pb, pa := src.At(sp.X, sp.Y).RGBA()
				sum[0] += pr
				sum[1] += pg
				sum[2] += pb
				sum[3] += pa
			}
			n := uint32(len(samples))
			over := [4]uint32{sum[0] / n, sum[1] / n, sum[2] / n, sum[3] / n}
			gc.bg = blend(gc.bg, over)
			gc.fg = blend(gc.fg, over)
		}
	}
	return nil
}

// blend composes premultiplied 16-bit color over onto c.
func blend(c color.RGBA, over [4]uint32) color.RGBA {
	inv := 0xffff - over[3]
	mix := func(dst uint8, src uint32) uint8 {
		return uint8((uint32(dst)*0x101*inv/0xffff + src) >> 8)
	}
	return color.RGBA{mix(c.R, over[0]), mix(c.G, over[1]), mix(c.B, over[2]), 0xff}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// cellFont measures text in cells of CellWidth by CellHeight pixels.
type cellFont struct{}

func (cellFont) StringSize(s string) (image.Point, error) {
	return image.Pt(runewidth.StringWidth(s)*CellWidth, CellHeight), nil
}
