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

package bgra

import "testing"

func TestPixOffset(t *testing.T) {
	im := New(4, 3)
	if got, want := im.PixOffset(0, 0), 0; got != want {
		t.Errorf("PixOffset(0,0): got %d, want %d", got, want)
	}
	if got, want := im.PixOffset(1, 1), im.Stride+4; got != want {
		t.Errorf("PixOffset(1,1): got %d, want %d", got, want)
	}
}

func TestAtOutsideRectIsZero(t *testing.T) {
	im := New(4, 3)
	im.Set(1, 1, 9, 8, 7, 6)
	if b, g, r, a := im.At(-1, 0); b != 0 || g != 0 || r != 0 || a != 0 {
		t.Errorf("At(-1,0): got (%d,%d,%d,%d), want zero pixel", b, g, r, a)
	}
	if b, g, r, a := im.At(1, 1); b != 9 || g != 8 || r != 7 || a != 6 {
		t.Errorf("At(1,1): got (%d,%d,%d,%d), want (9,8,7,6)", b, g, r, a)
	}
}

func TestSetOutsideRectIsNoop(t *testing.T) {
	im := New(2, 2)
	im.Set(5, 5, 1, 2, 3, 4)
	for i, v := range im.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0 (out-of-bounds Set must be a no-op)", i, v)
		}
	}
}

func TestFromUint32BGRAOrder(t *testing.T) {
	// 0xAARRGGBB = 0x12345678 little-endian in memory is
	// [0x78, 0x56, 0x34, 0x12] = [B, G, R, A] = [0x78, 0x56, 0x34, 0x12].
	im := FromUint32([]uint32{0x12345678}, 1, 1)
	b, g, r, a := im.At(0, 0)
	if b != 0x78 || g != 0x56 || r != 0x34 || a != 0x12 {
		t.Errorf("At(0,0): got (%#x,%#x,%#x,%#x), want (0x78,0x56,0x34,0x12)", b, g, r, a)
	}
}
