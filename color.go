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

// ColorRGBA is a straight-alpha sRGB color, one byte per channel.
type ColorRGBA struct {
	R, G, B, A uint8
}

// Mixer combines a destination pixel with an incoming source pixel. The
// rasterizer never interprets BlendMode itself; it only ever calls a Mixer
// produced from one.
type Mixer func(dst, src ColorRGBA) ColorRGBA

// BlendMode selects one of a small, fixed set of pixel combinators. It is
// opaque to the rasterizer core, which consumes it only via Mixer.
type BlendMode int

const (
	// BlendNormal is straight-alpha Porter-Duff source-over.
	BlendNormal BlendMode = iota
	// BlendMultiply darkens the destination by the source.
	BlendMultiply
	// BlendScreen lightens the destination by the source.
	BlendScreen
	// BlendAdd adds channel values, saturating at 255.
	BlendAdd
)

// Mixer returns the pixel combinator implementing m.
func (m BlendMode) Mixer() Mixer {
	switch m {
	case BlendMultiply:
		return MixMultiply
	case BlendScreen:
		return MixScreen
	case BlendAdd:
		return MixAdd
	default:
		return MixNormal
	}
}

// MixNormal is standard Porter-Duff source-over with straight alpha.
func MixNormal(dst, src ColorRGBA) ColorRGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}

	sa := float32(src.A) / 255
	da := float32(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return ColorRGBA{}
	}

	mix := func(s, d uint8) uint8 {
		sc := float32(s) / 255
		dc := float32(d) / 255
		oc := (sc*sa + dc*da*(1-sa)) / oa
		return toByte(oc)
	}

	return ColorRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: toByte(oa),
	}
}

// MixMultiply blends channel-wise by multiplication, then composites with
// source-over.
func MixMultiply(dst, src ColorRGBA) ColorRGBA {
	return compositeSeparable(dst, src, func(s, d float32) float32 { return s * d })
}

// MixScreen blends channel-wise by the screen formula, then composites with
// source-over.
func MixScreen(dst, src ColorRGBA) ColorRGBA {
	return compositeSeparable(dst, src, func(s, d float32) float32 { return s + d - s*d })
}

// MixAdd adds channel values (clamped to 1 before compositing).
func MixAdd(dst, src ColorRGBA) ColorRGBA {
	return compositeSeparable(dst, src, func(s, d float32) float32 { return Clamp(s+d, 0, 1) })
}

// compositeSeparable applies a separable blend function to each color
// channel and then composites the result over dst using src's alpha, the
// way a small blend-mode table is normally layered on top of source-over.
func compositeSeparable(dst, src ColorRGBA, blend func(s, d float32) float32) ColorRGBA {
	sa := float32(src.A) / 255
	if sa == 0 {
		return dst
	}

	chan_ := func(s, d uint8) uint8 {
		sc, dc := float32(s)/255, float32(d)/255
		blended := blend(sc, dc)
		oc := blended*sa + dc*(1-sa)
		return toByte(oc)
	}

	da := float32(dst.A) / 255
	oa := sa + da*(1-sa)

	return ColorRGBA{
		R: chan_(src.R, dst.R),
		G: chan_(src.G, dst.G),
		B: chan_(src.B, dst.B),
		A: toByte(oa),
	}
}

func toByte(x float32) uint8 {
	x = Clamp(x, 0, 1)
	v := x*255 + 0.5
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
