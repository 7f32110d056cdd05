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

// AccumulateMask turns the signed area deltas written by the path
// engines into saturated 16-bit winding coverage, in place. It is not
// idempotent: a second call accumulates the already-accumulated
// values again. Callers call it once, right before compositing, or let
// RGBAUniformOver/RGBAUniformSrc call it.
func (z *Rasterizer) AccumulateMask() {
	if z.useFPM {
		z.floatingAccumulateMask()
	} else {
		z.fixedAccumulateMask()
	}
}
