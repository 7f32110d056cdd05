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
	"time"

	"github.com/kiss2d/raster/bgra"
)

// meterHistoryLen is the number of past frame times the Meter keeps.
const meterHistoryLen = 64

// Meter tracks recent frame times and renders them as a scrolling bar
// graph, in milliseconds per frame.
type Meter struct {
	lastTick time.Time
	history  [meterHistoryLen]float32
}

// NewMeter returns a Meter whose clock starts now.
func NewMeter() *Meter {
	return &Meter{lastTick: time.Now()}
}

// Tick records the time elapsed since the previous Tick (or since
// NewMeter, for the first call) as one frame's worth of history.
func (m *Meter) Tick() {
	now := time.Now()
	elapsed := now.Sub(m.lastTick)
	m.lastTick = now

	copy(m.history[:], m.history[1:])
	m.history[meterHistoryLen-1] = float32(elapsed.Seconds() * 1000)
}

// FPS returns the instantaneous frame rate implied by the most recent
// Tick, or 0 if Tick has not yet been called for a non-zero duration.
func (m *Meter) FPS() float32 {
	last := m.history[meterHistoryLen-1]
	if last <= 0 {
		return 0
	}
	return 1000 / last
}

// Render draws the frame-time history as a column of vertical bars
// with their feet at (x0, y0), one column per sample, growing upward.
// Each bar's height in pixels equals its recorded frame time in
// milliseconds.
func (m *Meter) Render(dst *bgra.Image, x0, y0 int, b, g, r byte) {
	for i, v := range m.history {
		x := x0 + i
		y1 := y0 - int(v)
		AALine(dst, x, y0, x, y1, b, g, r)
	}
}
