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

import "math"

// This file implements the floating-point line-to-coverage engine: the
// same algorithm as engine_fixed.go, in f32 throughout, used once
// either dimension of the mask exceeds fpmThreshold.

// almost256 scales a value in [0, 1] to a uint8 value in [0x00, 0xff].
//
// 255 is too small: floating point math accumulates rounding error, so
// a fully covered value that would in ideal math be float32(1) might
// be float32(1-epsilon), and uint8(255*(1-epsilon)) would round down
// to 0xfe instead of 0xff. 256 is too big: a fully covered value of
// float32(1) would translate to uint8(256), which wraps to 0x00.
//
// math.Float32bits(almost256) is 0x437fffff.
const almost256 float32 = 255.99998

// almost65536 scales a value in [0, 1] to a uint16 value in
// [0x0000, 0xffff], for the same reason almost256 exists at 8 bits.
//
// math.Float32bits(almost65536) is 0x477fffff.
const almost65536 float32 = almost256 * 256.0

func clampAlpha(a float32) float32 {
	if a < 0 {
		a = -a
	}
	if a > 1 {
		a = 1
	}
	return a
}

// floatingAccumulateMask turns the per-cell signed area deltas in
// z.buf (read as float32 bit patterns) into saturated 16-bit coverage
// values, folding negative winding by absolute value.
func (z *Rasterizer) floatingAccumulateMask() {
	var acc float32
	for i, v := range z.buf {
		acc += math.Float32frombits(v)
		a := clampAlpha(acc)
		z.buf[i] = uint32(almost65536 * a)
	}
}

// floatingLineTo adds the signed area contribution of the line
// segment from the pen to (bx, by) into z.buf, in f32 throughout.
//
// The float32(...) conversions on expressions that already have type
// float32 are not redundant: they disable the compiler's fused
// multiply-add instruction selection, which can change rounding
// behavior across architectures. This package aims for masks that are
// bit-identical across architectures, so FMA must stay off in these
// inner expressions.
func (z *Rasterizer) floatingLineTo(bx, by float32) {
	ax, ay := z.pen[0], z.pen[1]
	z.pen = [2]float32{bx, by}

	dir := float32(1)
	if ay > by {
		dir = -1
		ax, ay, bx, by = bx, by, ax, ay
	}

	if by-ay <= 0.000001 {
		return
	}
	dxdy := (bx - ax) / (by - ay)

	x := ax
	y := int32(math.Floor(float64(ay)))
	yMax := int32(math.Ceil(float64(by)))
	height := int32(z.size[1])
	if yMax > height {
		yMax = height
	}
	width := int32(z.size[0])

	for y < yMax {
		dy := fmin32(float32(y+1), by) - fmax32(float32(y), ay)
		xNext := x + float32(dy*dxdy)
		if y < 0 {
			x = xNext
			y++
			continue
		}

		row := z.buf[y*width:]
		d := float32(dy * dir)

		x0, x1 := x, xNext
		if x0 > x1 {
			x0, x1 = x1, x0
		}

		x0i := int32(math.Floor(float64(x0)))
		x0floor := float32(x0i)
		x1i := int32(math.Ceil(float64(x1)))
		x1ceil := float32(x1i)

		if x1i <= x0i+1 {
			xmf := float32(0.5*(x+xNext)) - x0floor
			if i := clampIndex(x0i+0, width); i < len(row) {
				addF32(row, i, d-float32(d*xmf))
			}
			if i := clampIndex(x0i+1, width); i < len(row) {
				addF32(row, i, float32(d*xmf))
			}
		} else {
			s := 1.0 / (x1 - x0)
			x0f := x0 - x0floor
			oneMinusX0f := float32(1) - x0f
			a0 := float32(0.5 * s * oneMinusX0f * oneMinusX0f)
			x1f := x1 - x1ceil + 1
			am := float32(0.5 * s * x1f * x1f)

			if i := clampIndex(x0i, width); i < len(row) {
				addF32(row, i, float32(d*a0))
			}

			if x1i == x0i+2 {
				if i := clampIndex(x0i+1, width); i < len(row) {
					addF32(row, i, float32(d*(1-a0-am)))
				}
			} else {
				a1 := float32(s * (1.5 - x0f))
				if i := clampIndex(x0i+1, width); i < len(row) {
					addF32(row, i, float32(d*(a1-a0)))
				}

				dTimesS := float32(d * s)
				for xi := x0i + 2; xi < x1i-1; xi++ {
					if i := clampIndex(xi, width); i < len(row) {
						addF32(row, i, dTimesS)
					}
				}

				a2 := a1 + float32(s*float32(x1i-x0i-3))
				if i := clampIndex(x1i-1, width); i < len(row) {
					addF32(row, i, float32(d*(1-a2-am)))
				}
			}

			if i := clampIndex(x1i, width); i < len(row) {
				addF32(row, i, float32(d*am))
			}
		}

		x = xNext
		y++
	}
}

func addF32(buf []uint32, i int, delta float32) {
	buf[i] = math.Float32bits(math.Float32frombits(buf[i]) + delta)
}

func fmin32(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

func fmax32(x, y float32) float32 {
	if x > y {
		return x
	}
	return y
}
