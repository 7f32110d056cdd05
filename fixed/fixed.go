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

// Package fixed provides fixed-point scalar, point, and rectangle types
// at two precisions: 22.10 (32-bit) and 52.12 (64-bit).
//
// These are the geometry primitives that sit below the path accumulator:
// exact integer arithmetic with no rounding drift across repeated
// translation or comparison, at the cost of a bounded coordinate range.
package fixed

import (
	"math/bits"
	"strconv"
)

// Int22_10 is a signed 32-bit fixed-point number with 10 fractional
// bits. Its range is approximately ±2097151.999.
type Int22_10 int32

// I22_10 converts an integer to an Int22_10, rounding towards zero.
func I22_10(i int) Int22_10 {
	return Int22_10(i << 10)
}

// Floor returns the greatest integer value <= x, as a whole Int22_10.
func (x Int22_10) Floor() Int22_10 {
	return x &^ (1<<10 - 1)
}

// Round returns the nearest whole Int22_10 to x, rounding half up.
func (x Int22_10) Round() Int22_10 {
	return (x + 1<<9) &^ (1<<10 - 1)
}

// Ceil returns the least integer value >= x, as a whole Int22_10.
func (x Int22_10) Ceil() Int22_10 {
	return (x + 1<<10 - 1) &^ (1<<10 - 1)
}

// Mul returns x*y, rounded down (towards negative infinity).
func (x Int22_10) Mul(y Int22_10) Int22_10 {
	return Int22_10((int64(x) * int64(y)) >> 10)
}

func (x Int22_10) String() string {
	return fixedString(int64(x), 10)
}

// Point22_10 is a point in 22.10 fixed-point coordinates.
type Point22_10 struct {
	X, Y Int22_10
}

// Add returns p+q.
func (p Point22_10) Add(q Point22_10) Point22_10 {
	return Point22_10{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point22_10) Sub(q Point22_10) Point22_10 {
	return Point22_10{p.X - q.X, p.Y - q.Y}
}

// Rectangle22_10 is an axis-aligned rectangle in 22.10 fixed-point
// coordinates, with Min inclusive and Max exclusive.
type Rectangle22_10 struct {
	Min, Max Point22_10
}

// Dx returns the width of r.
func (r Rectangle22_10) Dx() Int22_10 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rectangle22_10) Dy() Int22_10 {
	return r.Max.Y - r.Min.Y
}

// In reports whether p lies inside r (min inclusive, max exclusive).
func (r Rectangle22_10) In(p Point22_10) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Int52_12 is a signed 64-bit fixed-point number with 12 fractional
// bits, used where the 22.10 range is insufficient (large canvases,
// accumulated transform matrices).
type Int52_12 int64

// I52_12 converts an integer to an Int52_12, rounding towards zero.
func I52_12(i int) Int52_12 {
	return Int52_12(i << 12)
}

// Floor returns the greatest integer value <= x, as a whole Int52_12.
func (x Int52_12) Floor() Int52_12 {
	return x &^ (1<<12 - 1)
}

// Round returns the nearest whole Int52_12 to x, rounding half up.
func (x Int52_12) Round() Int52_12 {
	return (x + 1<<11) &^ (1<<12 - 1)
}

// Ceil returns the least integer value >= x, as a whole Int52_12.
func (x Int52_12) Ceil() Int52_12 {
	return (x + 1<<12 - 1) &^ (1<<12 - 1)
}

// Mul returns x*y, rounded down (towards negative infinity). Go has no
// native int128, so the full 128-bit signed product is formed from
// math/bits.Mul64's high and low halves and then shifted down, the
// same widen-then-shift pattern used by Int22_10.Mul. Bits of the
// result above the low 64 are discarded.
func (x Int52_12) Mul(y Int52_12) Int52_12 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if x < 0 {
		hi -= uint64(y)
	}
	if y < 0 {
		hi -= uint64(x)
	}
	return Int52_12(hi<<52 | lo>>12)
}

func (x Int52_12) String() string {
	return fixedString(int64(x), 12)
}

// Point52_12 is a point in 52.12 fixed-point coordinates.
type Point52_12 struct {
	X, Y Int52_12
}

// Add returns p+q.
func (p Point52_12) Add(q Point52_12) Point52_12 {
	return Point52_12{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point52_12) Sub(q Point52_12) Point52_12 {
	return Point52_12{p.X - q.X, p.Y - q.Y}
}

// Rectangle52_12 is an axis-aligned rectangle in 52.12 fixed-point
// coordinates, with Min inclusive and Max exclusive.
type Rectangle52_12 struct {
	Min, Max Point52_12
}

// Dx returns the width of r.
func (r Rectangle52_12) Dx() Int52_12 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rectangle52_12) Dy() Int52_12 {
	return r.Max.Y - r.Min.Y
}

// In reports whether p lies inside r (min inclusive, max exclusive).
func (r Rectangle52_12) In(p Point52_12) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// fixedString formats a raw fixed-point value with shift fractional
// bits as "integer:fraction", matching the conventional
// golang.org/x/image/math/fixed rendering.
func fixedString(x int64, shift uint) string {
	neg := x < 0
	if neg {
		x = -x
	}
	i := x >> shift
	f := x & (1<<shift - 1)
	s := strconv.FormatInt(i, 10) + ":" + strconv.FormatInt(f, 10)
	if neg {
		s = "-" + s
	}
	return s
}
