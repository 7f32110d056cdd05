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

// Command demo drives the rasterizer over a handful of built-in scenes
// and writes the composited result to a PNG file. It exists so the
// rasterizer's output can be inspected without a windowing toolkit.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	ifixed "golang.org/x/image/math/fixed"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/kiss2d/raster"
	"github.com/kiss2d/raster/bgra"
	"github.com/kiss2d/raster/facade"
)

func main() {
	width := flag.Int("w", 256, "canvas width in pixels")
	height := flag.Int("h", 256, "canvas height in pixels")
	scene := flag.String("scene", "star", "scene to render: square, triangle, star, glyph")
	out := flag.String("o", "demo.png", "output PNG path")
	flag.Parse()

	p, ctm := buildScene(*scene, *width, *height)

	canvas := facade.NewCanvas(*width, *height)
	canvas.Clear(colornames.Navy.B, colornames.Navy.G, colornames.Navy.R, 0xff)

	z := raster.New(*width, *height)
	walkPath(z, p, ctm)

	src := premultiplied(colornames.Magenta)
	z.RGBAUniformOver(canvas.Image(), canvas.Bounds(), src)

	meter := facade.NewMeter()
	meter.Tick()
	meter.Render(canvas.Image(), 4, *height-4, 0, 0xff, 0x80)

	drawLabel(canvas.Image(), meter.FPS())

	if err := writePNG(*out, canvas.Image()); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("wrote %s (%dx%d, scene %q)", *out, *width, *height, *scene)
}

// premultiplied converts an 8-bit-per-channel color.RGBA, which is
// already alpha-premultiplied, into the 16-bit premultiplied B,G,R,A
// quadruple the compositor expects.
func premultiplied(c color.RGBA) [4]uint16 {
	r, g, b, a := c.RGBA() // image/color.RGBA.RGBA widens each channel to 16 bits.
	return [4]uint16{uint16(b), uint16(g), uint16(r), uint16(a)}
}

// buildScene constructs one of the demo's built-in paths together with
// the matrix that maps it from the shape's own local coordinates to
// device space.
func buildScene(name string, w, h int) (*path.Data, matrix.Matrix) {
	cx, cy := float64(w)/2, float64(h)/2

	switch name {
	case "square":
		return rectanglePath(-60, -60, 60, 60), matrix.Identity.Translate(cx, cy)
	case "triangle":
		p := (&path.Data{}).
			MoveTo(vec.Vec2{X: 0, Y: -70}).
			LineTo(vec.Vec2{X: 65, Y: 55}).
			LineTo(vec.Vec2{X: -65, Y: 55}).
			Close()
		return p, matrix.Identity.Translate(cx, cy)
	case "glyph":
		return glyphPath(), matrix.Scale(float64(w)/1000, float64(h)/1200)
	default: // "star"
		return starPath(cx, cy), matrix.Identity
	}
}

func rectanglePath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// starPath builds a five-pointed star centered at (cx, cy), connecting
// every second vertex of a regular pentagon.
func starPath(cx, cy float64) *path.Data {
	const r = 90.0
	var pts [5]vec.Vec2
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	order := [5]int{0, 2, 4, 1, 3}
	p := (&path.Data{}).MoveTo(pts[order[0]])
	for _, i := range order[1:] {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}

// glyphCmd is one command of a flattened outline fixture.
type glyphCmd struct {
	op     byte // 'm', 'l', or 'q'
	x, y   float64
	qx, qy float64 // only used for 'q'
}

// lowercaseAGlyph is the outline of the 'a' glyph from the Roboto
// Regular font, translated so its top-left corner sits at (0, 0).
// Bounding box is 893x1122.
var lowercaseAGlyph = []glyphCmd{
	{op: 'm', x: 699, y: 1102},
	{op: 'q', x: 683, y: 1070, qx: 673, qy: 988},
	{op: 'q', x: 544, y: 1122, qx: 365, qy: 1122},
	{op: 'q', x: 205, y: 1122, qx: 102.5, qy: 1031.5},
	{op: 'q', x: 0, y: 941, qx: 0, qy: 802},
	{op: 'q', x: 0, y: 633, qx: 128.5, qy: 539.5},
	{op: 'q', x: 257, y: 446, qx: 490, qy: 446},
	{op: 'l', x: 670, y: 446},
	{op: 'l', x: 670, y: 361},
	{op: 'q', x: 670, y: 264, qx: 612, qy: 206.5},
	{op: 'q', x: 554, y: 149, qx: 441, qy: 149},
	{op: 'q', x: 342, y: 149, qx: 275, qy: 199},
	{op: 'q', x: 208, y: 249, qx: 208, qy: 320},
	{op: 'l', x: 22, y: 320},
	{op: 'q', x: 22, y: 239, qx: 79.5, qy: 163.5},
	{op: 'q', x: 137, y: 88, qx: 235.5, qy: 44},
	{op: 'q', x: 334, y: 0, qx: 452, qy: 0},
	{op: 'q', x: 639, y: 0, qx: 745, qy: 93.5},
	{op: 'q', x: 851, y: 187, qx: 855, qy: 351},
	{op: 'l', x: 855, y: 849},
	{op: 'q', x: 855, y: 998, qx: 893, qy: 1086},
	{op: 'l', x: 893, y: 1102},
	{op: 'l', x: 699, y: 1102},
	{op: 'm', x: 392, y: 961},
	{op: 'q', x: 479, y: 961, qx: 557, qy: 916},
	{op: 'q', x: 635, y: 871, qx: 670, qy: 799},
	{op: 'l', x: 670, y: 577},
	{op: 'l', x: 525, y: 577},
	{op: 'q', x: 185, y: 577, qx: 185, qy: 776},
	{op: 'q', x: 185, y: 863, qx: 243, qy: 912},
	{op: 'q', x: 301, y: 961, qx: 392, qy: 961},
}

func glyphPath() *path.Data {
	p := &path.Data{}
	for _, c := range lowercaseAGlyph {
		switch c.op {
		case 'm':
			p = p.MoveTo(vec.Vec2{X: c.x, Y: c.y})
		case 'l':
			p = p.LineTo(vec.Vec2{X: c.x, Y: c.y})
		case 'q':
			p = p.QuadTo(vec.Vec2{X: c.x, Y: c.y}, vec.Vec2{X: c.qx, Y: c.qy})
		}
	}
	return p
}

// walkPath feeds a path.Data's commands into a Rasterizer, applying
// ctm to map the path's local coordinates to device space.
func walkPath(z *raster.Rasterizer, p *path.Data, ctm matrix.Matrix) {
	apply := func(v vec.Vec2) (float32, float32) {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
		return float32(x), float32(y)
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			x, y := apply(p.Coords[coordIdx])
			z.MoveTo(x, y)
			coordIdx++
		case path.CmdLineTo:
			x, y := apply(p.Coords[coordIdx])
			z.LineTo(x, y)
			coordIdx++
		case path.CmdQuadTo:
			bx, by := apply(p.Coords[coordIdx])
			cx, cy := apply(p.Coords[coordIdx+1])
			z.QuadTo(bx, by, cx, cy)
			coordIdx += 2
		case path.CmdCubeTo:
			bx, by := apply(p.Coords[coordIdx])
			cx, cy := apply(p.Coords[coordIdx+1])
			dx, dy := apply(p.Coords[coordIdx+2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
			coordIdx += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
}

// drawLabel renders an FPS readout in the top-left corner of dst. The
// label is rasterized into a small RGBA staging image with
// golang.org/x/image/font's Drawer and the basicfont face, then scaled
// 2x with golang.org/x/image/draw before its pixels are copied onto
// dst, skipping fully transparent ones -- the scaling step is the
// reason a staging image is used instead of drawing the label at
// native size.
func drawLabel(dst *bgra.Image, fps float32) {
	small := image.NewRGBA(image.Rect(0, 0, 90, 16))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(colornames.White),
		Face: basicfont.Face7x13,
		Dot:  ifixed.P(2, 12),
	}
	d.DrawString(fpsLabel(fps))

	scaled := image.NewRGBA(image.Rect(0, 0, 180, 32))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), small, small.Bounds(), draw.Over, nil)

	bounds := dst.Bounds()
	for y := scaled.Bounds().Min.Y; y < scaled.Bounds().Max.Y; y++ {
		for x := scaled.Bounds().Min.X; x < scaled.Bounds().Max.X; x++ {
			r, g, b, a := scaled.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			px, py := bounds.Min.X+x+4, bounds.Min.Y+y+4
			if px >= bounds.Max.X || py >= bounds.Max.Y {
				continue
			}
			dst.Set(px, py, byte(b>>8), byte(g>>8), byte(r>>8), byte(a>>8))
		}
	}
}

func writePNG(outPath string, im *bgra.Image) error {
	bounds := im.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b, g, r, a := im.At(x, y)
			out.SetNRGBA(x, y, color.NRGBA{R: unpremultiply(r, a), G: unpremultiply(g, a), B: unpremultiply(b, a), A: a})
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}

// unpremultiply reverses the compositor's premultiplied-alpha
// convention so the PNG encoder, which expects straight alpha, gets
// correct colors.
func unpremultiply(c, a byte) byte {
	if a == 0 {
		return 0
	}
	return byte(uint16(c) * 255 / uint16(a))
}

func fpsLabel(fps float32) string {
	return fmt.Sprintf("fps %.1f", fps)
}
