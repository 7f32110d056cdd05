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

// This file implements the fixed-point line-to-coverage engine.
//
// phi is the number of binary digits after the fixed point: with
// phi == 9 and int1phi based on int32, this is 23.9 fixed-point math.

// int1phi is a signed fixed-point number with phi binary digits after
// the point.
type int1phi = int32

// int2phi is a signed fixed-point number with 2*phi binary digits
// after the point. z.buf, nominally []uint32, is reinterpreted as
// []int2phi during fixedLineTo: buf[i] += uint32(v) is read as
// buf[i] += int2phi(v).
type int2phi = int32

const phi int1phi = 9

const (
	fxOne          int1phi = 1 << phi
	fxOneAndAHalf  int1phi = 1<<phi + 1<<(phi-1)
	fxOneMinusIota int1phi = 1<<phi - 1 // used for rounding up
)

func fixedFloor(x int1phi) int32 { return x >> phi }
func fixedCeil(x int1phi) int32  { return (x + fxOneMinusIota) >> phi }

func imax32(x, y int1phi) int1phi {
	if x > y {
		return x
	}
	return y
}

func imin32(x, y int1phi) int1phi {
	if x < y {
		return x
	}
	return y
}

// fixedAccumulateMask turns the per-cell signed area deltas in z.buf
// into saturated 16-bit coverage values, folding negative winding by
// absolute value (the non-zero rule).
func (z *Rasterizer) fixedAccumulateMask() {
	var acc int32
	for i, v := range z.buf {
		acc += int32(v)
		a := acc
		if a < 0 {
			a = -a
		}
		a >>= 2*phi - 16
		if a > 0xffff {
			a = 0xffff
		}
		z.buf[i] = uint32(a)
	}
}

// fixedLineTo adds the signed area contribution of the line segment
// from the pen to (bx, by) into z.buf, using phi=9 fixed-point
// arithmetic. The bounds on intermediate products are noted inline,
// beside each D computation below.
func (z *Rasterizer) fixedLineTo(bx, by float32) {
	ax, ay := z.pen[0], z.pen[1]
	z.pen = [2]float32{bx, by}

	dir := int1phi(1)
	if ay > by {
		dir = -1
		ax, ay, bx, by = bx, by, ax, ay
	}

	// Horizontal line segments yield no change in coverage. Almost
	// horizontal segments would yield some change in ideal math, but
	// the computation below, involving 1/(by-ay), is unstable in
	// fixed-point math, so a near-horizontal segment is treated as if
	// it was perfectly horizontal.
	if by-ay <= 0.000001 {
		return
	}
	dxdy := (bx - ax) / (by - ay)

	ayPhi := int1phi(ay * float32(fxOne))
	byPhi := int1phi(by * float32(fxOne))

	x := int1phi(ax * float32(fxOne))
	// xf tracks the same x in float32, so that converting each row's end
	// point to int1phi does not accumulate truncation error down the
	// segment.
	xf := ax
	y := fixedFloor(ayPhi)
	yMax := fixedCeil(byPhi)
	height := int32(z.size[1])
	if yMax > height {
		yMax = height
	}
	width := int32(z.size[0])

	for y < yMax {
		dy := imin32((1+y)<<phi, byPhi) - imax32(y<<phi, ayPhi)
		xfNext := xf + float32(float32(dy)/float32(fxOne)*dxdy)
		xNext := int1phi(xfNext * float32(fxOne))
		if y < 0 {
			x, xf = xNext, xfNext
			y++
			continue
		}

		row := z.buf[y*width:]
		d := dy * dir // d ranges up to +-1<<phi.

		x0, x1 := x, xNext
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		x0i := fixedFloor(x0)
		x0floor := x0i << phi
		x1i := fixedCeil(x1)
		x1ceil := x1i << phi

		if x1i <= x0i+1 {
			xmf := (x+xNext)>>1 - x0floor
			if i := clampIndex(x0i+0, width); i < len(row) {
				row[i] += uint32(d * (fxOne - xmf))
			}
			if i := clampIndex(x0i+1, width); i < len(row) {
				row[i] += uint32(d * xmf)
			}
		} else {
			oneOverS := x1 - x0
			twoOverS := 2 * oneOverS
			x0f := x0 - x0floor
			oneMinusX0f := fxOne - x0f
			oneMinusX0fSquared := oneMinusX0f * oneMinusX0f
			x1f := x1 - x1ceil + fxOne
			x1fSquared := x1f * x1f

			if i := clampIndex(x0i, width); i < len(row) {
				D := oneMinusX0fSquared // D ranges up to +-1<<(2*phi).
				D *= d                  // D ranges up to +-1<<(3*phi).
				D /= twoOverS
				row[i] += uint32(D)
			}

			if x1i == x0i+2 {
				if i := clampIndex(x0i+1, width); i < len(row) {
					D := twoOverS<<phi - oneMinusX0fSquared - x1fSquared // +-1<<(2*phi+2)
					D *= d                                               // +-1<<(3*phi+2)
					D /= twoOverS
					row[i] += uint32(D)
				}
			} else {
				if i := clampIndex(x0i+1, width); i < len(row) {
					D := (fxOneAndAHalf-x0f)<<(phi+1) - oneMinusX0fSquared // +-1<<(2*phi+2)
					D *= d                                                  // +-1<<(3*phi+2)
					D /= twoOverS
					row[i] += uint32(D)
				}

				dTimesS := uint32((d << (2 * phi)) / oneOverS)
				for xi := x0i + 2; xi < x1i-1; xi++ {
					if i := clampIndex(xi, width); i < len(row) {
						row[i] += dTimesS
					}
				}

				if i := clampIndex(x1i-1, width); i < len(row) {
					// The parenthesized reading of this expression is
					// the correct one; see the package design notes on
					// the operator-precedence pitfall in the original
					// derivation.
					D := x1f<<1 + ((1 << (phi + 2)) - (fxOneAndAHalf << 1)) // +-1<<(phi+2)
					D <<= phi                                              // +-1<<(2*phi+2)
					D -= x1fSquared                                        // +-1<<(2*phi+3)
					D *= d                                                 // +-1<<(3*phi+3)
					D /= twoOverS
					row[i] += uint32(D)
				}
			}
			if i := clampIndex(x1i, width); i < len(row) {
				D := x1fSquared // +-1<<(2*phi)
				D *= d          // +-1<<(3*phi)
				D /= twoOverS
				row[i] += uint32(D)
			}
		}

		x, xf = xNext, xfNext
		y++
	}
}
