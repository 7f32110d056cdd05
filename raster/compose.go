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
	"image"

	"github.com/kiss2d/raster/bgra"
)

// RGBAUniformOver composites a uniform premultiplied 16-bit-per-channel
// color, in B,G,R,A order, over dst within r using the Porter-Duff OVER
// operator, weighted by the rasterizer's mask. AccumulateMask is called
// first.
//
// r is in dst's coordinate space, and mask cell (0, 0) maps to r.Min.
// r's width and height are clipped to the rasterizer's own
// [0,width)x[0,height) extent, and pixels of r outside dst's bounds are
// skipped. An empty r is a no-op.
func (z *Rasterizer) RGBAUniformOver(dst *bgra.Image, r image.Rectangle, src [4]uint16) {
	z.AccumulateMask()

	sb, sg, sr, sa := uint32(src[0]), uint32(src[1]), uint32(src[2]), uint32(src[3])
	width, height := z.size[0], z.size[1]
	mask := z.buf

	dx, dy := r.Dx(), r.Dy()
	if dx > width {
		dx = width
	}
	if dy > height {
		dy = height
	}

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			ma := mask[y*width+x]

			// This formula is the standard library image/draw OVER
			// formula, simplified for a uniform premultiplied source.
			a := 0xffff - (sa * ma / 0xffff)

			px, py := r.Min.X+x, r.Min.Y+y
			b, g, rr, aa := dst.At(px, py)
			nb := uint8(((uint32(b)*0x101*a + sb*ma) / 0xffff) >> 8)
			ng := uint8(((uint32(g)*0x101*a + sg*ma) / 0xffff) >> 8)
			nr := uint8(((uint32(rr)*0x101*a + sr*ma) / 0xffff) >> 8)
			na := uint8(((uint32(aa)*0x101*a + sa*ma) / 0xffff) >> 8)
			dst.Set(px, py, nb, ng, nr, na)
		}
	}
}

// RGBAUniformSrc replaces dst within r with a uniform premultiplied
// 16-bit-per-channel color, in B,G,R,A order, weighted by the
// rasterizer's mask, using the Porter-Duff SRC operator.
// AccumulateMask is called first. See RGBAUniformOver for r's bounds
// contract.
func (z *Rasterizer) RGBAUniformSrc(dst *bgra.Image, r image.Rectangle, src [4]uint16) {
	z.AccumulateMask()

	sb, sg, sr, sa := uint32(src[0]), uint32(src[1]), uint32(src[2]), uint32(src[3])
	width, height := z.size[0], z.size[1]
	mask := z.buf

	dx, dy := r.Dx(), r.Dy()
	if dx > width {
		dx = width
	}
	if dy > height {
		dy = height
	}

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			ma := mask[y*width+x]
			px, py := r.Min.X+x, r.Min.Y+y
			nb := uint8((sb * ma / 0xffff) >> 8)
			ng := uint8((sg * ma / 0xffff) >> 8)
			nr := uint8((sr * ma / 0xffff) >> 8)
			na := uint8((sa * ma / 0xffff) >> 8)
			dst.Set(px, py, nb, ng, nr, na)
		}
	}
}
