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

// Package raster implements a 2-D vector graphics anti-aliasing
// rasterizer: a path accumulator, two interchangeable line-to-coverage
// engines (fixed-point and floating-point), a coverage-to-alpha
// accumulator, and a Porter-Duff compositor for a uniform source color.
//
// The rasterizer's design follows
// https://medium.com/@raphlinus/inside-the-fastest-font-renderer-in-the-world-75ae5270c445
package raster

import "math"

// Op is a Porter-Duff compositing operator.
type Op int

const (
	// Over composites the source over the destination.
	Over Op = iota
	// Src replaces the destination with the source.
	Src
)

// fpmThreshold is the width or height above which the rasterizer
// chooses the floating-point engine over the fixed-point engine.
//
// Both engines (see engine_fixed.go and engine_floating.go) implement
// the same algorithm, in ideal infinite-precision math, but differ in
// practice. The fixed-point engine is faster but overflows at large
// scales; the floating-point engine is slower but scale-stable.
//
// 512 is empirical. Treat it as tunable, not a correctness boundary.
const fpmThreshold = 512

// Rasterizer converts a path (moves, lines, quadratic and cubic Bézier
// curves) into a per-pixel coverage mask, then composites a uniform
// source color into a BGRA destination image.
//
// The zero value is usable, in that it is a Rasterizer whose rendered
// mask has zero width and zero height; call Reset to give it bounds.
// A Rasterizer is single-threaded and owned by one caller at a time:
// path operations mutate internal state in issue order, and the
// buffer must not be read concurrently with a draw.
type Rasterizer struct {
	// buf holds either the individual signed area deltas (written by
	// the coverage engines) or, after AccumulateMask, the cumulative
	// 16-bit coverage values -- the same backing storage reinterpreted
	// in place. Cells are uint32-sized so that the fixed engine's
	// wrap-around int32 arithmetic and the floating engine's
	// math.Float32bits/Float32frombits view share one representation.
	//
	// len(buf) is sized up to a multiple of four cells, leaving room
	// for a future four-lane SIMD accumulation pass without resizing.
	buf []uint32

	useFPM bool

	size       [2]int
	first, pen [2]float32

	// DrawOp records the operator passed to Reset. RGBAUniformOver and
	// RGBAUniformSrc each apply their own fixed operator and do not
	// read it.
	//
	// The zero value is Over.
	DrawOp Op
}

// New returns a new Rasterizer whose rendered mask is bounded by the
// given width and height.
func New(w, h int) *Rasterizer {
	z := &Rasterizer{}
	z.Reset(w, h, Over)
	return z
}

// Reset resets a Rasterizer as if it was just returned by New.
func (z *Rasterizer) Reset(w, h int, op Op) {
	z.size = [2]int{w, h}
	z.first = [2]float32{}
	z.pen = [2]float32{}
	z.DrawOp = op
	z.useFPM = w > fpmThreshold || h > fpmThreshold
	z.buf = recycle(z.buf, w*h)
}

// Clear resets the Rasterizer with its existing size and Over.
func (z *Rasterizer) Clear() {
	w, h := z.Size()
	z.Reset(w, h, Over)
}

// Size returns the width and height passed to New or Reset.
func (z *Rasterizer) Size() (w, h int) { return z.size[0], z.size[1] }

// Pen returns the location of the path-drawing pen: the last argument
// to the most recent XxxTo call.
func (z *Rasterizer) Pen() (x, y float32) { return z.pen[0], z.pen[1] }

// AsMaskU32 returns the mask buffer after AccumulateMask, as 16-bit
// coverage values stored in the low bits of each uint32 cell.
func (z *Rasterizer) AsMaskU32() []uint32 { return z.buf }

// AsMaskF32 returns the mask buffer's bit pattern reinterpreted as
// float32, matching the floating engine's view of the same memory.
// This is only meaningful before AccumulateMask has run.
func (z *Rasterizer) AsMaskF32() []float32 {
	out := make([]float32, len(z.buf))
	for i, v := range z.buf {
		out[i] = math.Float32frombits(v)
	}
	return out
}

// recycle returns a []uint32 of length ceil(n/4)*4, reusing buf's
// backing array when it is large enough, and zeroing every cell.
func recycle(buf []uint32, n int) []uint32 {
	lanes := n/4 + boolToInt(n%4 != 0)
	size := lanes * 4
	if cap(buf) >= size {
		buf = buf[:size]
	} else {
		buf = make([]uint32, size)
	}
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
