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
	"time"

	"github.com/kiss2d/raster/bgra"
)

func TestMeterTickShiftsHistory(t *testing.T) {
	m := NewMeter()
	time.Sleep(time.Millisecond)
	m.Tick()

	if m.history[meterHistoryLen-1] <= 0 {
		t.Error("most recent history slot was not populated after Tick")
	}
	for _, v := range m.history[:meterHistoryLen-1] {
		if v != 0 {
			t.Errorf("stale history slot = %v, want 0 before a second Tick", v)
		}
	}
}

func TestMeterFPSMatchesLastSample(t *testing.T) {
	m := NewMeter()
	m.history[meterHistoryLen-1] = 10 // 10ms frame -> 100fps
	if got, want := m.FPS(), float32(100); got != want {
		t.Errorf("FPS() = %v, want %v", got, want)
	}
}

func TestMeterRenderTouchesCanvas(t *testing.T) {
	m := NewMeter()
	m.history[meterHistoryLen-1] = 5
	dst := bgra.New(meterHistoryLen+4, 16)
	m.Render(dst, 2, 15, 0, 0xff, 0)

	var touched bool
	for _, v := range dst.Pix {
		if v != 0 {
			touched = true
			break
		}
	}
	if !touched {
		t.Error("Render did not touch any pixel")
	}
}
