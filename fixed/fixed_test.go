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

package fixed

import "testing"

func TestInt22_10(t *testing.T) {
	x := Int22_10(1<<10 + 1<<8)
	if got, want := x.String(), "1:256"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if got, want := x.Floor(), Int22_10(1<<10); got != want {
		t.Errorf("Floor: got %v, want %v", got, want)
	}
	if got, want := x.Round(), Int22_10(1<<10); got != want {
		t.Errorf("Round: got %v, want %v", got, want)
	}
	if got, want := x.Ceil(), Int22_10(2<<10); got != want {
		t.Errorf("Ceil: got %v, want %v", got, want)
	}
}

func TestInt22_10Mul(t *testing.T) {
	half := Int22_10(1 << 9)
	two := I22_10(2)
	if got, want := half.Mul(two), Int22_10(1<<10); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestInt52_12(t *testing.T) {
	x := Int52_12(1<<12 + 1<<10)
	if got, want := x.String(), "1:1024"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if got, want := x.Floor(), Int52_12(1<<12); got != want {
		t.Errorf("Floor: got %v, want %v", got, want)
	}
	if got, want := x.Round(), Int52_12(1<<12); got != want {
		t.Errorf("Round: got %v, want %v", got, want)
	}
	if got, want := x.Ceil(), Int52_12(2<<12); got != want {
		t.Errorf("Ceil: got %v, want %v", got, want)
	}
}

func TestRectangle22_10In(t *testing.T) {
	r := Rectangle22_10{Min: Point22_10{0, 0}, Max: Point22_10{I22_10(4), I22_10(4)}}
	if !r.In(Point22_10{I22_10(2), I22_10(2)}) {
		t.Errorf("expected (2,2) to be inside %v", r)
	}
	if r.In(Point22_10{I22_10(4), I22_10(4)}) {
		t.Errorf("expected (4,4) to be outside %v (max is exclusive)", r)
	}
}
