package pui

import (
	"image"
)

// Space is blank space around something, such as the margins of an Image.
type Space struct {
	Top, Right, Bottom, Left int
}

func (s Space) Dx() int {
	return s.Left + s.Right
}

func (s Space) Dy() int {
	return s.Top + s.Bottom
}

func (s Space) Size() image.Point {
	return image.Pt(s.Dx(), s.Dy())
}

// NonNegative returns s with negative sides replaced by zero.
func (s Space) NonNegative() Space {
	return Space{maximum(s.Top, 0), maximum(s.Right, 0), maximum(s.Bottom, 0), maximum(s.Left, 0)}
}

// SpaceXY returns a Space with x on the left and right, and y on top and bottom.
func SpaceXY(x, y int) Space {
	return Space{y, x, y, x}
}
