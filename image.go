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
	"image"
	"image/color"
)

// Image is the minimal surface the rasterizer needs from a destination
// buffer. The hot loop in FillPolygons never bounds-checks x/y: it only ever
// calls GetPixel/SetPixel with indices it has already clamped into
// [0, Width())x[0, Height()).
type Image interface {
	Width() int
	Height() int
	GetPixel(x, y int) ColorRGBA
	SetPixel(x, y int, c ColorRGBA)
}

// RGBAImage is a straightforward Image backed by a flat, row-major pixel
// slice. It is not required by the core pipeline — callers may use any type
// satisfying Image — but it is convenient for tests, benchmarks, and the
// cmd/vgrender demo.
type RGBAImage struct {
	W, H int
	Pix  []ColorRGBA
}

// NewRGBAImage returns a zeroed (fully transparent) image of the given size.
func NewRGBAImage(w, h int) *RGBAImage {
	return &RGBAImage{W: w, H: h, Pix: make([]ColorRGBA, w*h)}
}

// Width implements Image.
func (im *RGBAImage) Width() int { return im.W }

// Height implements Image.
func (im *RGBAImage) Height() int { return im.H }

// GetPixel implements Image.
func (im *RGBAImage) GetPixel(x, y int) ColorRGBA {
	return im.Pix[y*im.W+x]
}

// SetPixel implements Image.
func (im *RGBAImage) SetPixel(x, y int, c ColorRGBA) {
	im.Pix[y*im.W+x] = c
}

// ToStdlib converts im to a standard library *image.RGBA, for use with
// image/png or other collaborators outside this package's scope.
func (im *RGBAImage) ToStdlib() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, im.W, im.H))
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			c := im.GetPixel(x, y)
			// image.RGBA is alpha-premultiplied; NRGBA carries the
			// straight-alpha values and Set premultiplies them.
			dst.Set(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return dst
}

// ImageFromStdlib converts a standard library image.Image into an
// *RGBAImage, straight-alpha, dropping any color model conversion beyond
// what image/color already performs.
func ImageFromStdlib(src image.Image) *RGBAImage {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	im := NewRGBAImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA() returns alpha-premultiplied 16-bit values; convert back
			// to straight 8-bit alpha.
			var c ColorRGBA
			if a == 0 {
				c = ColorRGBA{}
			} else {
				c = ColorRGBA{
					R: uint8(r * 255 / a),
					G: uint8(g * 255 / a),
					B: uint8(bl * 255 / a),
					A: uint8(a >> 8),
				}
			}
			im.SetPixel(x, y, c)
		}
	}
	return im
}
