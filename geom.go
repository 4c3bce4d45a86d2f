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

import "math"

// Vec2 is a 2D vector with 32-bit float components.
type Vec2 struct {
	X, Y float32
}

// Add returns a+b.
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Mul returns a scaled by s.
func (a Vec2) Mul(s float32) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Dot returns the dot product of a and b.
func (a Vec2) Dot(b Vec2) float32 { return a.X*b.X + a.Y*b.Y }

// Length returns the Euclidean length of a.
func (a Vec2) Length() float32 {
	return float32(math.Sqrt(float64(a.Dot(a))))
}

// Normalize returns a unit vector in the direction of a. The zero vector is
// returned unchanged if a has zero length.
func (a Vec2) Normalize() Vec2 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Mul(1 / l)
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Vec2, t float32) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Mat3 is a 3x3 matrix representing an affine transform acting on Vec2. The
// bottom row is implicitly (0, 0, 1); only the six entries that can change
// are stored, in row-major order for the top two rows: [a, b, c, d, e, f]
// maps (x, y) to (a*x + b*y + e, c*x + d*y + f).
type Mat3 struct {
	A, B, C, D, E, F float32
}

// Identity3 is the identity transform.
var Identity3 = Mat3{A: 1, D: 1}

// Apply transforms v by m.
func (m Mat3) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y + m.E,
		Y: m.C*v.X + m.D*v.Y + m.F,
	}
}

// ApplyLinear applies only the linear (2x2) part of m, ignoring translation.
// This is useful for transforming vectors (such as tolerances or tangents)
// rather than points.
func (m Mat3) ApplyLinear(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Mul returns the matrix product m*n (n is applied first).
func (m Mat3) Mul(n Mat3) Mat3 {
	return Mat3{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.A*n.E + m.B*n.F + m.E,
		F: m.C*n.E + m.D*n.F + m.F,
	}
}

// RotationMat3 returns the matrix that rotates by angle radians
// counter-clockwise around the origin.
func RotationMat3(angle float32) Mat3 {
	s, c := math.Sincos(float64(angle))
	return Mat3{A: float32(c), B: float32(-s), C: float32(s), D: float32(c)}
}

// TranslationMat3 returns the matrix that translates by v.
func TranslationMat3(v Vec2) Mat3 {
	return Mat3{A: 1, D: 1, E: v.X, F: v.Y}
}

// Rect is an axis-aligned rectangle given by its lower-left corner and its
// width/height.
type Rect struct {
	XY Vec2 // lower-left corner
	WH Vec2 // width and height
}

// Segment is a line segment between two points.
type Segment struct {
	At, To Vec2
}

// Intersects reports whether s and other cross as infinite lines extended
// from their segments, and if so writes the crossing point to *at.
func (s Segment) Intersects(other Segment, at *Vec2) bool {
	d1 := s.To.Sub(s.At)
	d2 := other.To.Sub(other.At)

	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom > -1e-9 && denom < 1e-9 {
		return false // parallel or nearly so
	}

	diff := other.At.Sub(s.At)
	tNum := diff.X*d2.Y - diff.Y*d2.X
	t := tNum / denom

	if at != nil {
		*at = s.At.Add(d1.Mul(t))
	}
	return true
}

// Clamp returns x restricted to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Arccos returns the arc cosine of x, clamping x into [-1, 1] first to guard
// against floating-point rounding pushing an argument just outside the
// domain of acos.
func Arccos(x float32) float32 {
	return float32(math.Acos(float64(Clamp(x, -1, 1))))
}
