package pui

import (
	"image"
	"image/color"
	"unicode/utf8"
)

// TextSize returns the size of s in the host's font. A font failure is fatal.
func TextSize(h Host, s string) image.Point {
	size, err := h.Font().StringSize(s)
	if err != nil {
		forceQuit(h, err, "measuring text")
	}
	return size
}

// RenderText draws a single line of s into r, truncating rather than
// compressing when s does not fit. A renderer failure is fatal.
func RenderText(h Host, r image.Rectangle, c color.Color, s string) {
	if r.Empty() {
		return
	}
	err := h.Renderer().Text(r, c, h.Font(), s)
	check(h, err, "rendering text")
}

// FirstCodepoint decodes the first code point of s, returning 0 for an
// empty string and utf8.RuneError for an invalid leading sequence.
func FirstCodepoint(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
