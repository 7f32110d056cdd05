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

package facade

import (
	"math"

	"github.com/kiss2d/raster/bgra"
)

// AALine draws a Xiaolin Wu anti-aliased line from (x1, y1) to
// (x2, y2) into dst, blending the given BGR color at each touched
// pixel by its coverage. This is a debug/overlay primitive: the
// rasterizer's own path engines are the supported way to draw
// anti-aliased shapes; AALine exists for single-pixel-wide diagnostic
// lines (grid overlays, bounding boxes) where building a full path is
// overkill.
//
// The line is clipped to dst's bounds with a Cohen-Sutherland test
// before drawing.
func AALine(dst *bgra.Image, x1, y1, x2, y2 int, b, g, r byte) {
	rect := dst.Bounds()
	w, h := rect.Dx()-1, rect.Dy()-1
	cx1, cy1, cx2, cy2, ok := clipLine(x1, y1, x2, y2, w, h)
	if !ok {
		return
	}
	aaline(cx1, cy1, cx2, cy2, func(x, y int, coverage float64) {
		if x < rect.Min.X || x >= rect.Max.X || y < rect.Min.Y || y >= rect.Max.Y {
			return
		}
		blend(dst, x, y, b, g, r, coverage)
	})
}

// outcode reports which edges of [0,w]x[0,h] a point lies beyond, as a
// bit set: 1 left, 2 right, 4 top, 8 bottom. Zero means inside.
func outcode(x, y, w, h int) int {
	code := 0
	if x < 0 {
		code |= 1
	} else if x > w {
		code |= 2
	}
	if y < 0 {
		code |= 4
	} else if y > h {
		code |= 8
	}
	return code
}

// clipLine clips the segment (x1,y1)-(x2,y2) to [0,w]x[0,h] using the
// Cohen-Sutherland line-clipping algorithm.
func clipLine(x1, y1, x2, y2, w, h int) (int, int, int, int, bool) {
	p1, p2 := outcode(x1, y1, w, h), outcode(x2, y2, w, h)
	if p1|p2 == 0 {
		return x1, y1, x2, y2, true
	}
	if p1&p2 != 0 {
		return 0, 0, 0, 0, false
	}

	clipPoint := func(ax, ay, bx, by int) (int, int) {
		if ay > h {
			ax += (bx - ax) * (h - ay) / (by - ay)
			ay = h
		} else if ay < 0 {
			ax += (bx - ax) * (0 - ay) / (by - ay)
			ay = 0
		}
		if ax > w {
			ay += (by - ay) * (w - ax) / (bx - ax)
			ax = w
		} else if ax < 0 {
			ay += (by - ay) * (0 - ax) / (bx - ax)
			ax = 0
		}
		return ax, ay
	}

	x1, y1 = clipPoint(x1, y1, x2, y2)
	x2, y2 = clipPoint(x2, y2, x1, y1)
	if outcode(x1, y1, w, h) != 0 || outcode(x2, y2, w, h) != 0 {
		return 0, 0, 0, 0, false
	}
	return x1, y1, x2, y2, true
}

func ipart(x float64) float64 { return math.Floor(x) }
func round(x float64) float64 { return ipart(x + 0.5) }
func fpart(x float64) float64 { return x - ipart(x) }
func rfpart(x float64) float64 { return 1 - fpart(x) }

// aaline implements Xiaolin Wu's line-drawing algorithm, calling plot
// once per touched pixel with its fractional coverage in [0, 1].
func aaline(x1, y1, x2, y2 int, plot func(x, y int, coverage float64)) {
	fx1, fy1 := float64(x1), float64(y1)
	fx2, fy2 := float64(x2), float64(y2)
	dx := fx2 - fx1
	dy := fy2 - fy1

	if math.Abs(dx) > math.Abs(dy) {
		if fx2 < fx1 {
			fx1, fx2 = fx2, fx1
			fy1, fy2 = fy2, fy1
		}

		gradient := dy / dx
		xend := round(fx1)
		yend := fy1 + gradient*(xend-fx1)
		xgap := rfpart(fx1 + 0.5)

		xpxl1 := int(xend)
		ypxl1 := int(ipart(yend))
		plot(xpxl1, ypxl1, rfpart(yend)*xgap)
		plot(xpxl1, ypxl1+1, fpart(yend)*xgap)

		intery := yend + gradient

		xend = round(fx2)
		yend = fy2 + gradient*(xend-fx2)
		xgap = fpart(fx2 + 0.5)

		xpxl2 := int(xend)
		ypxl2 := int(ipart(yend))
		plot(xpxl2, ypxl2, rfpart(yend)*xgap)
		plot(xpxl2, ypxl2+1, fpart(yend)*xgap)

		for x := xpxl1 + 1; x <= xpxl2-1; x++ {
			y := int(ipart(intery))
			plot(x, y, rfpart(intery))
			plot(x, y+1, fpart(intery))
			intery += gradient
		}
	} else {
		if fy2 < fy1 {
			fx1, fx2 = fx2, fx1
			fy1, fy2 = fy2, fy1
		}

		gradient := dx / dy
		yend := round(fy1)
		xend := fx1 + gradient*(yend-fy1)
		ygap := rfpart(fy1 + 0.5)

		ypxl1 := int(yend)
		xpxl1 := int(ipart(xend))
		plot(xpxl1, ypxl1, rfpart(xend)*ygap)
		plot(xpxl1+1, ypxl1, fpart(xend)*ygap)

		interx := xend + gradient

		yend = round(fy2)
		xend = fx2 + gradient*(yend-fy2)
		ygap = fpart(fy2 + 0.5)

		ypxl2 := int(yend)
		xpxl2 := int(ipart(xend))
		plot(xpxl2, ypxl2, rfpart(xend)*ygap)
		plot(xpxl2+1, ypxl2, fpart(xend)*ygap)

		for y := ypxl1 + 1; y <= ypxl2-1; y++ {
			x := int(ipart(interx))
			plot(x, y, rfpart(interx))
			plot(x+1, y, fpart(interx))
			interx += gradient
		}
	}
}

// blend composites a BGR color into dst at (x, y) with the given
// coverage in [0, 1], preserving dst's existing alpha.
func blend(dst *bgra.Image, x, y int, sb, sg, sr byte, coverage float64) {
	if coverage <= 0 {
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	db, dg, dr, da := dst.At(x, y)
	inv := 1 - coverage
	nb := byte(float64(sb)*coverage + float64(db)*inv)
	ng := byte(float64(sg)*coverage + float64(dg)*inv)
	nr := byte(float64(sr)*coverage + float64(dr)*inv)
	dst.Set(x, y, nb, ng, nr, da)
}
