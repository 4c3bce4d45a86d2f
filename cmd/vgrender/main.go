// seehuhn.de/go/vecraster - a 2D vector graphics rasterizer
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

// Command vgrender renders a single SVG path-data string to a PNG file,
// exercising the parse/flatten/stroke/fill pipeline from the command line.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/vecraster"
)

func main() {
	var (
		width       = flag.Int("width", 256, "canvas width in pixels")
		height      = flag.Int("height", 256, "canvas height in pixels")
		pathData    = flag.String("d", "", "SVG path-data string (the \"d\" attribute)")
		colorName   = flag.String("color", "black", "fill color, an X11 color name from golang.org/x/image/colornames")
		evenOdd     = flag.Bool("evenodd", false, "use the even-odd fill rule instead of non-zero")
		strokeWidth = flag.Float64("stroke-width", 0, "if > 0, stroke the path with this width instead of filling it")
		quality     = flag.Int("quality", vecraster.DefaultQuality, "supersample count")
		out         = flag.String("o", "out.png", "output PNG path")
	)
	flag.Parse()

	if *pathData == "" {
		log.Fatal("vgrender: -d is required")
	}

	col, ok := colornames.Map[*colorName]
	if !ok {
		log.Fatalf("vgrender: unknown color %q", *colorName)
	}

	p, err := vecraster.Parse(*pathData)
	if err != nil {
		log.Fatalf("vgrender: parse: %v", err)
	}
	contours, err := vecraster.Flatten(p.Commands)
	if err != nil {
		log.Fatalf("vgrender: flatten: %v", err)
	}
	if *strokeWidth > 0 {
		contours = vecraster.Stroke(contours, float32(*strokeWidth))
	}

	rule := vecraster.NonZero
	if *evenOdd {
		rule = vecraster.EvenOdd
	}

	img := vecraster.NewRGBAImage(*width, *height)
	size := vecraster.Vec2{X: float32(*width), Y: float32(*height)}
	fillColor := vecraster.ColorRGBA{R: col.R, G: col.G, B: col.B, A: col.A}
	vecraster.FillPolygons(img, size, contours, fillColor, rule, vecraster.MixNormal, *quality)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("vgrender: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img.ToStdlib()); err != nil {
		log.Fatalf("vgrender: encode: %v", err)
	}
}
