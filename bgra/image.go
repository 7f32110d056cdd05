// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bgra provides a borrowed view over an 8-bit-per-channel BGRA
// pixel buffer: the destination the rasterizer compositor blends into.
package bgra

import (
	"encoding/binary"
	"image"
)

// Image is a mutable view over a BGRA8 pixel buffer. It does not own
// Pix; callers are responsible for the backing array's lifetime.
type Image struct {
	// Pix holds the image's pixels, in B, G, R, A order. The pixel at
	// (x, y) starts at Pix[PixOffset(x, y)].
	Pix []byte

	// Stride is the number of bytes between vertically adjacent pixels.
	Stride int

	// Rect bounds the image: Min is inclusive, Max is exclusive.
	Rect image.Rectangle
}

// New allocates a fresh BGRA image of the given size, fully transparent.
func New(w, h int) *Image {
	return &Image{
		Pix:    make([]byte, 4*w*h),
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// FromUint32 wraps an existing little-endian 0xAARRGGBB framebuffer
// (such as the one a windowing facade hands a presenter) as a BGRA
// byte view. Little-endian packing of 0xAARRGGBB already lays out
// bytes as B, G, R, A, so this is the "reinterpreted 32-bit
// framebuffer" case an image view may be constructed over.
func FromUint32(buf []uint32, w, h int) *Image {
	pix := make([]byte, 4*len(buf))
	for i, px := range buf {
		binary.LittleEndian.PutUint32(pix[4*i:], px)
	}
	return &Image{
		Pix:    pix,
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// Bounds returns the image's rectangle.
func (im *Image) Bounds() image.Rectangle { return im.Rect }

// PixOffset returns the index of the first byte of pixel (x, y) in
// im.Pix.
func (im *Image) PixOffset(x, y int) int {
	return (y-im.Rect.Min.Y)*im.Stride + (x-im.Rect.Min.X)*4
}

// At returns the B, G, R, A bytes at (x, y), or the zero pixel if
// (x, y) lies outside im.Rect.
func (im *Image) At(x, y int) (b, g, r, a byte) {
	if !(image.Point{X: x, Y: y}.In(im.Rect)) {
		return 0, 0, 0, 0
	}
	i := im.PixOffset(x, y)
	p := im.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// Set writes the B, G, R, A bytes at (x, y). It is a no-op outside
// im.Rect.
func (im *Image) Set(x, y int, b, g, r, a byte) {
	if !(image.Point{X: x, Y: y}.In(im.Rect)) {
		return
	}
	i := im.PixOffset(x, y)
	p := im.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = b, g, r, a
}
