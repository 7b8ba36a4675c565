package termhost

import (
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Pixel size of a terminal cell. Dialogs lay out in pixels, the host maps
// them onto cells.
const (
	CellWidth  = 8
	CellHeight = 16
)

type cell struct {
	r    rune // 0 for the right half of a wide rune.
	fg   color.RGBA
	bg   color.RGBA
	text bool // Holds text, outlines leave it alone.
}

type grid struct {
	size  image.Point // In cells.
	cells []cell
}

func newGrid(size image.Point, bg color.RGBA) *grid {
	g := &grid{size: size, cells: make([]cell, size.X*size.Y)}
	g.clear(bg)
	return g
}

func (g *grid) clear(bg color.RGBA) {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', fg: bg, bg: bg}
	}
}

func (g *grid) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= g.size.X || y >= g.size.Y {
		return nil
	}
	return &g.cells[y*g.size.X+x]
}

// cellsCovering returns the cells whose center lies in r.
func cellsCovering(r image.Rectangle) image.Rectangle {
	return image.Rect(
		(r.Min.X+CellWidth/2-1)/CellWidth,
		(r.Min.Y+CellHeight/2-1)/CellHeight,
		(r.Max.X+CellWidth/2-1)/CellWidth,
		(r.Max.Y+CellHeight/2-1)/CellHeight,
	)
}

// cellOf returns the cell holding pixel p.
func cellOf(p image.Point) image.Point {
	return image.Pt(floorDiv(p.X, CellWidth), floorDiv(p.Y, CellHeight))
}

// cellCenter returns the pixel at the middle of cell c.
func cellCenter(c image.Point) image.Point {
	return image.Pt(c.X*CellWidth+CellWidth/2, c.Y*CellHeight+CellHeight/2)
}

func floorDiv(a, b int) int {
	if a < 0 {
		return (a - b + 1) / b
	}
	return a / b
}

// put writes r with foreground fg at cell (x, y), keeping the background.
func (g *grid) put(x, y int, r rune, fg color.RGBA) {
	c := g.at(x, y)
	if c == nil {
		return
	}
	c.r = r
	c.fg = fg
	c.text = false
}

// stroke is put for outlines. A cell of text keeps its rune: in a cell
// grid, a border and the first line of text inside it can fall in the same
// row of cells.
func (g *grid) stroke(x, y int, r rune, fg color.RGBA) {
	if c := g.at(x, y); c != nil && !c.text {
		c.r = r
		c.fg = fg
	}
}

type stylePair struct {
	fg, bg color.RGBA
}

// String renders the grid as lines of styled runs.
func (g *grid) String() string {
	styles := map[stylePair]lipgloss.Style{}
	style := func(p stylePair) lipgloss.Style {
		st, ok := styles[p]
		if !ok {
			st = lipgloss.NewStyle().Foreground(p.fg).Background(p.bg)
			styles[p] = st
		}
		return st
	}

	var b, run strings.Builder
	for y := 0; y < g.size.Y; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var cur stylePair
		width := 0
		for x := 0; x < g.size.X; x++ {
			c := g.cells[y*g.size.X+x]
			if c.r == 0 {
				continue
			}
			p := stylePair{c.fg, c.bg}
			if run.Len() > 0 && p != cur {
				b.WriteString(style(cur).Render(run.String()))
				run.Reset()
			}
			cur = p
			w := runewidth.RuneWidth(c.r)
			if w == 0 || width+w > g.size.X {
				run.WriteByte(' ')
				width++
				continue
			}
			run.WriteRune(c.r)
			width += w
		}
		if run.Len() > 0 {
			b.WriteString(style(cur).Render(run.String()))
			run.Reset()
		}
	}
	return b.String()
}
