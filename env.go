package pui

import (
	"fmt"
	"image"
	"image/color"
)

// ColorRole names one of the fixed colors a host supplies.
type ColorRole int

const (
	ColorMenuBG = ColorRole(iota)
	ColorMenuFG
	ColorMenuBorder
	ColorDialogBG
	ColorDialogFG
	ColorDialogBorder
	ColorCountersink

	NColorRoles int = iota
)

var colorRoleNames = [NColorRoles]string{
	"menu-bg",
	"menu-fg",
	"menu-border",
	"dialog-bg",
	"dialog-fg",
	"dialog-border",
	"countersink",
}

func (r ColorRole) String() string {
	if r < 0 || int(r) >= NColorRoles {
		return fmt.Sprintf("ColorRole(%d)", int(r))
	}
	return colorRoleNames[r]
}

// ParseColorRole returns the role for a name as returned by ColorRole.String.
func ParseColorRole(s string) (ColorRole, error) {
	for i, name := range colorRoleNames {
		if name == s {
			return ColorRole(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color role %q", s)
}

// Palette holds a color for every role.
type Palette [NColorRoles]color.RGBA

// Color returns the color for role r.
func (p *Palette) Color(r ColorRole) color.RGBA {
	return p[r]
}

// DefaultPalette is a neutral light palette.
var DefaultPalette = Palette{
	ColorMenuBG:       {0xf0, 0xf0, 0xf0, 0xff},
	ColorMenuFG:       {0x22, 0x22, 0x22, 0xff},
	ColorMenuBorder:   {0x88, 0x88, 0x88, 0xff},
	ColorDialogBG:     {0xfc, 0xfc, 0xfc, 0xff},
	ColorDialogFG:     {0x33, 0x33, 0x33, 0xff},
	ColorDialogBorder: {0x66, 0x66, 0x66, 0xff},
	ColorCountersink:  {0xbb, 0xbb, 0xbb, 0xff},
}

// Font measures text.
type Font interface {
	StringSize(s string) (image.Point, error)
}

// Renderer draws into the window's surface. All coordinates are window coordinates.
type Renderer interface {
	Fill(r image.Rectangle, c color.Color)
	Rect(r image.Rectangle, c color.Color) // One pixel outline just inside r.
	Line(pts []image.Point, c color.Color) // Polyline through pts, endpoints inclusive.

	// Text draws s with its upper left at r.Min, clipped to r.
	Text(r image.Rectangle, c color.Color, font Font, s string) error

	// Image draws sr of src, scaled to fill dst.
	Image(dst image.Rectangle, src image.Image, sr image.Rectangle) error
}

// Host is what the toolkit needs from the application's window.
type Host interface {
	Renderer() Renderer
	Font() Font
	Stipple() image.Image
	Color(role ColorRole) color.RGBA
	SignalRedraw()

	// ForceQuit aborts the application after an unrecoverable
	// rendering failure. It should not return.
	ForceQuit(err error)
}

// Window is a Host with an ordered stack of dialogs and independent key and
// mouse focus.
type Window interface {
	Host

	PushDialog(d Dialog) // Put d on top, pushing it if not already present.
	PopDialog(d Dialog)  // Remove d from the stack.

	GainKeyFocus(d Dialog)
	YieldKeyFocus(d Dialog)
	GainMouseFocus(d Dialog)
	YieldMouseFocus(d Dialog)
	KeyFocus() Dialog
	MouseFocus() Dialog
}
