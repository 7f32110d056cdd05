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

package raster

import (
	"testing"

	"github.com/kiss2d/raster/bgra"
)

// glyphCmd is one command of a flattened outline fixture.
type glyphCmd struct {
	op     byte // 'm', 'l', or 'q'
	x, y   float32
	qx, qy float32 // only used for 'q'
}

// lowercaseAGlyph is the outline of the 'a' glyph from the Roboto
// Regular font, translated so its top-left corner sits at (0, 0).
// Bounding box is 893x1122.
var lowercaseAGlyph = []glyphCmd{
	{op: 'm', x: 699, y: 1102},
	{op: 'q', x: 683, y: 1070, qx: 673, qy: 988},
	{op: 'q', x: 544, y: 1122, qx: 365, qy: 1122},
	{op: 'q', x: 205, y: 1122, qx: 102.5, qy: 1031.5},
	{op: 'q', x: 0, y: 941, qx: 0, qy: 802},
	{op: 'q', x: 0, y: 633, qx: 128.5, qy: 539.5},
	{op: 'q', x: 257, y: 446, qx: 490, qy: 446},
	{op: 'l', x: 670, y: 446},
	{op: 'l', x: 670, y: 361},
	{op: 'q', x: 670, y: 264, qx: 612, qy: 206.5},
	{op: 'q', x: 554, y: 149, qx: 441, qy: 149},
	{op: 'q', x: 342, y: 149, qx: 275, qy: 199},
	{op: 'q', x: 208, y: 249, qx: 208, qy: 320},
	{op: 'l', x: 22, y: 320},
	{op: 'q', x: 22, y: 239, qx: 79.5, qy: 163.5},
	{op: 'q', x: 137, y: 88, qx: 235.5, qy: 44},
	{op: 'q', x: 334, y: 0, qx: 452, qy: 0},
	{op: 'q', x: 639, y: 0, qx: 745, qy: 93.5},
	{op: 'q', x: 851, y: 187, qx: 855, qy: 351},
	{op: 'l', x: 855, y: 849},
	{op: 'q', x: 855, y: 998, qx: 893, qy: 1086},
	{op: 'l', x: 893, y: 1102},
	{op: 'l', x: 699, y: 1102},
	{op: 'm', x: 392, y: 961},
	{op: 'q', x: 479, y: 961, qx: 557, qy: 916},
	{op: 'q', x: 635, y: 871, qx: 670, qy: 799},
	{op: 'l', x: 670, y: 577},
	{op: 'l', x: 525, y: 577},
	{op: 'q', x: 185, y: 577, qx: 185, qy: 776},
	{op: 'q', x: 185, y: 863, qx: 243, qy: 912},
	{op: 'q', x: 301, y: 961, qx: 392, qy: 961},
}

func drawGlyph(z *Rasterizer, cmds []glyphCmd) {
	for _, c := range cmds {
		switch c.op {
		case 'm':
			z.MoveTo(c.x, c.y)
		case 'l':
			z.LineTo(c.x, c.y)
		case 'q':
			z.QuadTo(c.x, c.y, c.qx, c.qy)
		}
	}
}

func TestGlyphRoundTripSaturatesAndClears(t *testing.T) {
	const w, h = 893, 1122
	z := New(w, h)
	drawGlyph(z, lowercaseAGlyph)

	dst := bgra.New(w, h)
	z.RGBAUniformSrc(dst, dst.Bounds(), [4]uint16{0xffff, 0xffff, 0xffff, 0xffff})

	var sawSaturated, sawZero bool
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b, g, r, a := dst.At(x, y)
			if b == 0xff && g == 0xff && r == 0xff && a == 0xff {
				sawSaturated = true
			}
			if b == 0 && g == 0 && r == 0 && a == 0 {
				sawZero = true
			}
		}
	}
	if !sawSaturated {
		t.Error("no fully saturated pixel found in glyph fill")
	}
	if !sawZero {
		t.Error("no fully transparent pixel found in glyph fill")
	}
}

func TestGlyphPenEndsAtLastPoint(t *testing.T) {
	z := New(893, 1122)
	drawGlyph(z, lowercaseAGlyph)
	x, y := z.Pen()
	if x != 392 || y != 961 {
		t.Errorf("Pen() after the last outline command = (%v,%v), want (392,961)", x, y)
	}
}
