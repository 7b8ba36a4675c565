package pui

import (
	"fmt"
	"image"
	imagedraw "image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
)

// ReadImage decodes a PNG, GIF or JPEG image from f, for use in an Image
// control. The result has its origin at (0, 0).
func ReadImage(f io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == image.ZP {
		return rgba, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(rect(b.Size()))
	imagedraw.Draw(rgba, rgba.Bounds(), img, b.Min, imagedraw.Src)
	return rgba, nil
}

// ReadImagePath is a convenience function that opens path and calls ReadImage.
func ReadImagePath(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadImage(f)
}
