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
	"testing"

	"github.com/kiss2d/raster/bgra"
)

func TestAALineHorizontalTouchesEndpoints(t *testing.T) {
	dst := bgra.New(16, 16)
	AALine(dst, 2, 8, 12, 8, 0xff, 0xff, 0xff)

	b, _, _, _ := dst.At(2, 8)
	if b == 0 {
		t.Error("start pixel was not touched")
	}
	b, _, _, _ = dst.At(12, 8)
	if b == 0 {
		t.Error("end pixel was not touched")
	}
}

func TestAALineOutsideBoundsIsNoop(t *testing.T) {
	dst := bgra.New(4, 4)
	AALine(dst, -10, -10, -20, -20, 0xff, 0xff, 0xff)
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0 for a fully out-of-bounds line", i, v)
		}
	}
}

func TestAALineDiagonalCrossesBounds(t *testing.T) {
	dst := bgra.New(8, 8)
	AALine(dst, -4, -4, 12, 12, 0x80, 0x80, 0x80)

	var touched int
	for _, v := range dst.Pix {
		if v != 0 {
			touched++
		}
	}
	if touched == 0 {
		t.Error("clipped diagonal line touched no pixels inside bounds")
	}
}

func TestClipLineRejectsFullyOutsideSegment(t *testing.T) {
	if _, _, _, _, ok := clipLine(100, 100, 200, 200, 15, 15); ok {
		t.Error("clipLine accepted a segment entirely outside bounds")
	}
}
