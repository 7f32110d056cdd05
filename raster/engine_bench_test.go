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

import "testing"

func BenchmarkFixedEnginePolygonFill(b *testing.B) {
	z := New(256, 256)
	b.ReportAllocs()
	for b.Loop() {
		z.Clear()
		drawPolygon(z, 128, 128, 100, 16)
		z.AccumulateMask()
	}
}

func BenchmarkFloatingEnginePolygonFill(b *testing.B) {
	z := New(1024, 1024)
	b.ReportAllocs()
	for b.Loop() {
		z.Clear()
		drawPolygon(z, 512, 512, 400, 16)
		z.AccumulateMask()
	}
}

func BenchmarkGlyphOutlineFill(b *testing.B) {
	z := New(893, 1122)
	b.ReportAllocs()
	for b.Loop() {
		z.Clear()
		drawGlyph(z, lowercaseAGlyph)
		z.AccumulateMask()
	}
}
