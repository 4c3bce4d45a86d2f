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

// PathCommandKind identifies the kind of an SVG path-data command, keeping
// the absolute and relative forms as distinct variants.
type PathCommandKind int

const (
	Close PathCommandKind = iota
	Move
	RMove
	Line
	RLine
	HLine
	RHLine
	VLine
	RVLine
	Cubic
	RCubic
	SCubic
	RSCubic
	Quad
	RQuad
	TQuad
	RTQuad
	Arc
	RArc
)

// Arity returns the number of float32 parameters a command of this kind
// takes.
func (k PathCommandKind) Arity() int {
	switch k {
	case Close:
		return 0
	case HLine, RHLine, VLine, RVLine:
		return 1
	case Move, RMove, Line, RLine, TQuad, RTQuad:
		return 2
	case SCubic, RSCubic, Quad, RQuad:
		return 4
	case Cubic, RCubic:
		return 6
	case Arc, RArc:
		return 7
	default:
		return 0
	}
}

// letter returns the SVG command letter for k, used by stringification.
func (k PathCommandKind) letter() byte {
	switch k {
	case Close:
		return 'Z'
	case Move:
		return 'M'
	case RMove:
		return 'm'
	case Line:
		return 'L'
	case RLine:
		return 'l'
	case HLine:
		return 'H'
	case RHLine:
		return 'h'
	case VLine:
		return 'V'
	case RVLine:
		return 'v'
	case Cubic:
		return 'C'
	case RCubic:
		return 'c'
	case SCubic:
		return 'S'
	case RSCubic:
		return 's'
	case Quad:
		return 'Q'
	case RQuad:
		return 'q'
	case TQuad:
		return 'T'
	case RTQuad:
		return 't'
	case Arc:
		return 'A'
	case RArc:
		return 'a'
	default:
		return '?'
	}
}

// PathCommand is one parsed or built path-data instruction. len(Numbers)
// always equals Kind.Arity().
type PathCommand struct {
	Kind    PathCommandKind
	Numbers []float32
}

// Path is a mutable sequence of path commands plus the builder's notion of
// the current pen position. The flattener recomputes position from
// Commands; At only matters to the builder methods below.
type Path struct {
	At       Vec2
	Commands []PathCommand
}

// NewPath returns an empty path with the pen at the origin.
func NewPath() *Path {
	return &Path{}
}

func (p *Path) push(kind PathCommandKind, numbers ...float32) {
	p.Commands = append(p.Commands, PathCommand{Kind: kind, Numbers: numbers})
}

// MoveTo moves the pen to (x, y) without drawing, emitting an absolute Move.
func (p *Path) MoveTo(x, y float32) {
	p.push(Move, x, y)
	p.At = Vec2{X: x, Y: y}
}

// LineTo draws a straight line to (x, y), emitting an absolute Line.
func (p *Path) LineTo(x, y float32) {
	p.push(Line, x, y)
	p.At = Vec2{X: x, Y: y}
}

// ClosePath closes the current subpath, emitting Close.
func (p *Path) ClosePath() {
	p.push(Close)
}

// BezierCurveTo appends an absolute cubic Bézier with the two given control
// points and the end point (x3, y3).
func (p *Path) BezierCurveTo(x1, y1, x2, y2, x3, y3 float32) {
	p.push(Cubic, x1, y1, x2, y2, x3, y3)
	p.At = Vec2{X: x3, Y: y3}
}

// QuadraticCurveTo is documented but not implemented by this package.
func (p *Path) QuadraticCurveTo(x1, y1, x2, y2 float32) error {
	return notImplementedf("QuadraticCurveTo")
}

// Arc is documented but not implemented by this package.
func (p *Path) Arc(x, y, r, startAngle, endAngle float32, counterclockwise bool) error {
	return notImplementedf("Arc")
}

// Ellipse is documented but not implemented by this package.
func (p *Path) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float32, counterclockwise bool) error {
	return notImplementedf("Ellipse")
}

// Rect traces the rectangle (x, y, w, h) clockwise: Move, Line, Line, Line,
// Line, Close.
func (p *Path) Rect(x, y, w, h float32) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.LineTo(x, y)
	p.ClosePath()
	p.At = Vec2{X: x, Y: y}
}

// Polygon is documented as an n-sided regular polygon at (x, y) with the
// given size, but the arguments are ignored: this reproduces a known bug in
// the source this package was ported from. size=80, x=100, y=100, sides=6
// are hard-coded regardless of the arguments passed in.
func (p *Path) Polygon(x, y, size float32, sides int) {
	const (
		bugX     = 100
		bugY     = 100
		bugSize  = 80
		bugSides = 6
	)
	cx, cy, r := float32(bugX), float32(bugY), float32(bugSize)
	for i := 0; i < bugSides; i++ {
		angle := float32(2*math.Pi) * float32(i) / float32(bugSides)
		px := cx + r*float32(math.Cos(float64(angle)))
		py := cy + r*float32(math.Sin(float64(angle)))
		if i == 0 {
			p.MoveTo(px, py)
		} else {
			p.LineTo(px, py)
		}
	}
	p.ClosePath()
}

// AddPath appends other's commands to p, leaving other unchanged.
func (p *Path) AddPath(other *Path) {
	p.Commands = append(p.Commands, other.Commands...)
	p.At = other.At
}

// ArcTo draws a circular arc of radius r tangent to the rays (pen -> (x1,
// y1)) and ((x1, y1) -> (x2, y2)), in the style of the HTML Canvas
// arcTo operation.
func (p *Path) ArcTo(x1, y1, x2, y2, r float32) {
	const eps = 1e-6

	p0 := p.At
	p1 := Vec2{X: x1, Y: y1}
	p2 := Vec2{X: x2, Y: y2}

	if p0.Sub(p1).Length() < eps {
		p.MoveTo(x1, y1)
		return
	}

	v01 := p0.Sub(p1)
	v21 := p2.Sub(p1)

	cross := v01.X*v21.Y - v01.Y*v21.X
	if r == 0 || (cross > -eps && cross < eps) {
		p.LineTo(x1, y1)
		return
	}

	len01 := v01.Length()
	len21 := v21.Length()

	cosTheta := v01.Dot(v21) / (len01 * len21)
	theta := Arccos(cosTheta)

	// distance from p1 to each tangent point
	distTangent := r / float32(math.Tan(float64(theta)/2))

	u01 := v01.Mul(1 / len01)
	u21 := v21.Mul(1 / len21)

	t1 := p1.Add(u01.Mul(distTangent)) // tangent point on ray pen->p1
	t2 := p1.Add(u21.Mul(distTangent)) // tangent point on ray p1->p2

	if t1.Sub(p0).Length() > eps {
		p.LineTo(t1.X, t1.Y)
	}

	v20 := p2.Sub(p0)
	sweep := float32(0)
	if v01.Y*v20.X > v01.X*v20.Y {
		sweep = 1
	}

	p.push(Arc, r, r, 0, 0, sweep, t2.X, t2.Y)
	p.At = t2
}
