// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
)

// Bitmap is a 1-bit-per-pixel raster with a white background and black
// foreground. It implements draw.Image; colors written through Set are
// thresholded so no intermediate gray level is ever materialized.
type Bitmap struct {
	width  int
	height int
	stride int
	pix    []byte
}

// NewBitmap returns an all-background bitmap of the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	stride := (width + 7) / 8
	return &Bitmap{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]byte, stride*height),
	}
}

// ColorModel satisfies image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds satisfies image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At satisfies image.Image. Pixels are either pure white or pure black.
func (b *Bitmap) At(x, y int) color.Color {
	if b.Pixel(x, y) {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 255}
}

// Set satisfies draw.Image. The color is collapsed to a luminance threshold.
func (b *Bitmap) Set(x, y int, c color.Color) {
	gray := color.GrayModel.Convert(c).(color.Gray)
	b.SetPixel(x, y, gray.Y < 128)
}

// Pixel reports whether the pixel at (x, y) is foreground. Out-of-bounds
// coordinates are background.
func (b *Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.pix[y*b.stride+x/8]&(0x80>>uint(x%8)) != 0
}

// SetPixel sets or clears the foreground bit at (x, y). Out-of-bounds
// coordinates are ignored.
func (b *Bitmap) SetPixel(x, y int, foreground bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.stride + x/8
	mask := byte(0x80 >> uint(x%8))
	if foreground {
		b.pix[idx] |= mask
		return
	}
	b.pix[idx] &^= mask
}

// PackedBuffer serializes the bitmap into the packed-bit format expected by
// the panel driver: row-major, MSB first, a set bit meaning white.
func (b *Bitmap) PackedBuffer() []byte {
	buf := make([]byte, len(b.pix))
	for i, octet := range b.pix {
		buf[i] = ^octet
	}
	return buf
}
