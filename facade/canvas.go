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

// Package facade bundles the raster package's external collaborators:
// a presentable canvas, an anti-aliased line drawer for debug overlays,
// and an FPS meter. None of these touch the coverage engines; they
// exist so a caller can see the rasterizer's output without pulling in
// a platform windowing toolkit.
package facade

import (
	"image"

	"github.com/kiss2d/raster/bgra"
)

// Canvas bundles a BGRA framebuffer with the size a window-backed
// presenter would need. It owns its pixel buffer.
type Canvas struct {
	im *bgra.Image
}

// NewCanvas allocates a Canvas of the given size, fully transparent.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{im: bgra.New(w, h)}
}

// Image returns the canvas's backing BGRA view, for the rasterizer's
// compositor to draw into.
func (c *Canvas) Image() *bgra.Image { return c.im }

// Size returns the canvas's width and height.
func (c *Canvas) Size() (w, h int) {
	r := c.im.Bounds()
	return r.Dx(), r.Dy()
}

// Clear fills the canvas with a single BGRA color.
func (c *Canvas) Clear(b, g, r, a byte) {
	rect := c.im.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c.im.Set(x, y, b, g, r, a)
		}
	}
}

// Present hands the canvas's current pixels to a window or other
// display sink.
//
// This package does not depend on any platform windowing toolkit:
// wiring a real window (event pump, swap chain, and so on) is the
// documented interface boundary a caller crosses by implementing
// Presenter. Present calls p.Show with the canvas's image; with a nil
// p it is a no-op, so that headless callers (tests, batch rendering,
// the demo CLI's file-output mode) never pay for a window they did not
// ask for.
func (c *Canvas) Present(p Presenter) {
	if p == nil {
		return
	}
	p.Show(c.im)
}

// Presenter is the boundary a real window backend implements.
type Presenter interface {
	Show(im *bgra.Image)
}

// Bounds returns the canvas's pixel rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.im.Bounds() }
