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

// tol is the constant in the n = 1 + floor((tol*devsq)^(1/4)) chord
// count heuristic.
const tol = 3.0

// ClosePath closes the current path by issuing a line to the start of
// the current subpath.
func (z *Rasterizer) ClosePath() {
	z.LineTo(z.first[0], z.first[1])
}

// MoveTo starts a new subpath and moves the pen to (ax, ay).
//
// The coordinates are allowed to be out of the Rasterizer's bounds.
func (z *Rasterizer) MoveTo(ax, ay float32) {
	z.first = [2]float32{ax, ay}
	z.pen = [2]float32{ax, ay}
}

// LineTo adds a line segment from the pen to (bx, by), and moves the
// pen to (bx, by).
//
// The coordinates are allowed to be out of the Rasterizer's bounds.
func (z *Rasterizer) LineTo(bx, by float32) {
	if z.useFPM {
		z.floatingLineTo(bx, by)
	} else {
		z.fixedLineTo(bx, by)
	}
}

// QuadTo adds a quadratic Bézier segment, from the pen via (bx, by) to
// (cx, cy), and moves the pen to (cx, cy).
//
// The curve is flattened into an evenly-spaced sequence of chords
// rather than by recursive subdivision: measuring flatness is
// comparatively expensive when done per subdivision, and a uniform
// chord count is empirically about 33% lower than the nearest
// power-of-two a recursive approach would pick, for typical glyph
// curves.
func (z *Rasterizer) QuadTo(bx, by, cx, cy float32) {
	ax, ay := z.pen[0], z.pen[1]
	devsq := devSquared(ax, ay, bx, by, cx, cy)

	if devsq >= 0.333 {
		n := chordCount(devsq)
		t, nInv := float32(0), 1/float32(n)
		for i := 1; i < n; i++ {
			t += nInv
			abx, aby := lerp(t, ax, ay, bx, by)
			bcx, bcy := lerp(t, bx, by, cx, cy)
			x, y := lerp(t, abx, aby, bcx, bcy)
			z.LineTo(x, y)
		}
	}

	z.LineTo(cx, cy)
}

// CubeTo adds a cubic Bézier segment, from the pen via (bx, by) and
// (cx, cy) to (dx, dy), and moves the pen to (dx, dy).
func (z *Rasterizer) CubeTo(bx, by, cx, cy, dx, dy float32) {
	ax, ay := z.pen[0], z.pen[1]
	devsq := devSquared(ax, ay, bx, by, dx, dy)
	if alt := devSquared(ax, ay, cx, cy, dx, dy); alt > devsq {
		devsq = alt
	}

	if devsq >= 0.333 {
		n := chordCount(devsq)
		t, nInv := float32(0), 1/float32(n)
		for i := 1; i < n; i++ {
			t += nInv
			abx, aby := lerp(t, ax, ay, bx, by)
			bcx, bcy := lerp(t, bx, by, cx, cy)
			cdx, cdy := lerp(t, cx, cy, dx, dy)
			abcx, abcy := lerp(t, abx, aby, bcx, bcy)
			bcdx, bcdy := lerp(t, bcx, bcy, cdx, cdy)
			x, y := lerp(t, abcx, abcy, bcdx, bcdy)
			z.LineTo(x, y)
		}
	}
	z.LineTo(dx, dy)
}

// chordCount returns n = 1 + floor((tol*devsq)^(1/4)), the number of
// equal-parameter chords devSquared's heuristic picks for a curve
// segment.
func chordCount(devsq float32) int {
	return 1 + int(math.Sqrt(math.Sqrt(tol*float64(devsq))))
}

// lerp returns the point a fraction t of the way from (px, py) to
// (qx, qy).
func lerp(t, px, py, qx, qy float32) (float32, float32) {
	return px + t*(qx-px), py + t*(qy-py)
}

// devSquared returns a measure of how curvy the sequence (ax, ay) to
// (bx, by) to (cx, cy) is; it determines how many line segments will
// approximate a Bézier curve segment.
//
// http://lists.nongnu.org/archive/html/freetype-devel/2016-08/msg00080.html
// gives the rationale for this evenly-spaced heuristic over a
// recursive de Casteljau approach.
func devSquared(ax, ay, bx, by, cx, cy float32) float32 {
	devx := ax - 2*bx + cx
	devy := ay - 2*by + cy
	return devx*devx + devy*devy
}

// clampIndex clamps i into [0, width].
func clampIndex(i, width int32) int {
	if i < 0 {
		return 0
	}
	if i < width {
		return int(i)
	}
	return int(width)
}
