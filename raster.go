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

package vecraster

import (
	"math"
	"sort"
)

// WindingRule selects how overlapping contours combine into a fill.
type WindingRule int

const (
	NonZero WindingRule = iota
	EvenOdd
)

// DefaultQuality is the supersample count used by FillPolygons when the
// caller passes quality <= 0.
const DefaultQuality = 4

// scanEps offsets each supersample's scanline away from an integer row, so
// that scanlines do not land exactly on a contour vertex.
const scanEps = 0.0001 * math.Pi

// scanHit is one contour-segment crossing of a horizontal scanline.
type scanHit struct {
	x       float32
	winding bool // true if the crossed segment points upward (at.Y > to.Y)
}

// FillPolygons rasterizes contours into dst using a supersampled scanline
// fill, compositing color through mixer at each covered pixel. size gives
// the logical canvas extent in the same coordinate space as the contours;
// dst's own Width/Height bound the pixels actually touched. quality <= 0
// is replaced by DefaultQuality.
func FillPolygons(dst Image, size Vec2, contours ContourSet, color ColorRGBA, rule WindingRule, mixer Mixer, quality int) {
	if quality <= 0 {
		quality = DefaultQuality
	}
	width := dst.Width()
	height := dst.Height()
	if width <= 0 || height <= 0 || len(contours) == 0 {
		return
	}

	bounds := make([]Rect, len(contours))
	for i, c := range contours {
		bounds[i] = contourBounds(c)
	}

	alphas := make([]float32, width)
	var hits []scanHit

	for y := 0; y < height; y++ {
		for i := range alphas {
			alphas[i] = 0
		}

		for m := 0; m < quality; m++ {
			yLine := float32(y) + scanEps + float32(m)/float32(quality)

			hits = hits[:0]
			for ci, c := range contours {
				b := bounds[ci]
				// Strict comparisons, preserved from the source this was
				// ported from: a row exactly on either bound is not culled.
				if b.XY.Y > float32(y) || b.XY.Y+b.WH.Y < float32(y) {
					continue
				}
				hits = collectScanHits(hits, c, yLine, float32(size.X))
			}
			sort.Slice(hits, func(i, j int) bool { return hits[i].x < hits[j].x })

			accumulateScanline(alphas, hits, rule, width)
		}

		for x := 0; x < width; x++ {
			a := Clamp(float32(math.Abs(float64(alphas[x])))/float32(quality), 0, 1)
			if a <= 0 {
				continue
			}
			colorA := color
			colorA.A = uint8(math.Round(float64(a) * 255))
			dst.SetPixel(x, y, mixer(dst.GetPixel(x, y), colorA))
		}
	}
}

// contourBounds computes the axis-aligned bounding rectangle of c as
// floor(min), ceil(max-min).
func contourBounds(c Contour) Rect {
	if len(c) == 0 {
		return Rect{}
	}
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for _, p := range c[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{
		XY: Vec2{X: float32(math.Floor(float64(minX))), Y: float32(math.Floor(float64(minY)))},
		WH: Vec2{X: float32(math.Ceil(float64(maxX - minX))), Y: float32(math.Ceil(float64(maxY - minY)))},
	}
}

// collectScanHits appends the crossings of c's segments with the
// horizontal line y = yLine to hits, skipping horizontal segments and
// treating each segment as half-open on its "to" endpoint.
func collectScanHits(hits []scanHit, c Contour, yLine float32, maxX float32) []scanHit {
	for i := 0; i+1 < len(c); i++ {
		at, to := c[i], c[i+1]
		if at.Y == to.Y {
			continue
		}

		if at.Y < to.Y {
			if yLine < at.Y || yLine >= to.Y {
				continue
			}
		} else {
			if yLine <= to.Y || yLine > at.Y {
				continue
			}
		}

		t := (yLine - at.Y) / (to.Y - at.Y)
		x := at.X + t*(to.X-at.X)
		if x < 0 {
			x = 0
		}
		if x > maxX {
			x = maxX
		}
		hits = append(hits, scanHit{x: x, winding: at.Y > to.Y})
	}
	return hits
}

// accumulateScanline walks sorted hits left to right, adding fractional
// pixel coverage to alphas for one supersample row.
func accumulateScanline(alphas []float32, hits []scanHit, rule WindingRule, width int) {
	hi := 0
	penFill := 0
	for x := 0; x < width; x++ {
		var penEdge float32
		if rule == NonZero {
			penEdge = float32(penFill)
		} else if ((penFill % 2) + 2) % 2 != 0 {
			penEdge = 1
		}

		for hi < len(hits) && int(hits[hi].x) == x {
			hit := hits[hi]
			cover := hit.x - float32(x)
			if !hit.winding {
				penEdge += 1 - cover
				penFill++
			} else {
				penEdge -= 1 - cover
				penFill--
			}
			hi++
		}

		alphas[x] += penEdge
	}
}
