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

// Contour is a polyline produced by flattening one subpath. It is closed
// implicitly by pipeline semantics, not by an explicit flag.
type Contour []Vec2

// ContourSet is an ordered sequence of contours, one per subpath.
type ContourSet []Contour

// maxCurveSubdivisionDepth bounds the recursive adaptive subdivision of
// cubics and arcs so that a degenerate curve (e.g. zero length) cannot
// recurse forever; it is well above anything a 0.25px tolerance needs in
// practice.
const maxCurveSubdivisionDepth = 24

// flattenState carries the information that must survive across commands
// during flattening, in place of the captured mutable state a closure-based
// implementation would use.
type flattenState struct {
	start, at, to, ctr, ctr2 Vec2
	havePrev     bool
	prevCommand  PathCommandKind
	polygon      Contour
	out          ContourSet
}

func (s *flattenState) emit(a, b Vec2) {
	if a == b {
		return
	}
	if len(s.polygon) == 0 || s.polygon[len(s.polygon)-1] != a {
		s.polygon = append(s.polygon, a)
	}
	s.polygon = append(s.polygon, b)
}

// Flatten converts a parsed or built command sequence into a ContourSet,
// flattening quadratic Béziers with a uniform step count, and cubic Béziers
// and elliptic arcs with adaptive subdivision bounded by a 0.25-pixel
// geometric error tolerance.
func Flatten(commands []PathCommand) (ContourSet, error) {
	s := &flattenState{}

	for _, cmd := range commands {
		switch cmd.Kind {
		case Move:
			s.at = Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]}
			s.start = s.at
		case RMove:
			s.at = s.at.Add(Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]})
			s.start = s.at

		case Line:
			to := Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]}
			s.emit(s.at, to)
			s.at = to
		case RLine:
			to := s.at.Add(Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]})
			s.emit(s.at, to)
			s.at = to
		case HLine:
			to := Vec2{X: cmd.Numbers[0], Y: s.at.Y}
			s.emit(s.at, to)
			s.at = to
		case RHLine:
			to := Vec2{X: s.at.X + cmd.Numbers[0], Y: s.at.Y}
			s.emit(s.at, to)
			s.at = to
		case VLine:
			to := Vec2{X: s.at.X, Y: cmd.Numbers[0]}
			s.emit(s.at, to)
			s.at = to
		case RVLine:
			to := Vec2{X: s.at.X, Y: s.at.Y + cmd.Numbers[0]}
			s.emit(s.at, to)
			s.at = to

		case Quad:
			ctrl := Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]}
			end := Vec2{X: cmd.Numbers[2], Y: cmd.Numbers[3]}
			s.flattenQuad(ctrl, end)
		case RQuad:
			ctrl := s.at.Add(Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]})
			end := s.at.Add(Vec2{X: cmd.Numbers[2], Y: cmd.Numbers[3]})
			s.flattenQuad(ctrl, end)
		case TQuad:
			ctrl := s.reflectedQuadControl()
			end := Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]}
			s.flattenQuad(ctrl, end)
		case RTQuad:
			ctrl := s.reflectedQuadControl()
			end := s.at.Add(Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]})
			s.flattenQuad(ctrl, end)

		case Cubic:
			c1 := Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]}
			c2 := Vec2{X: cmd.Numbers[2], Y: cmd.Numbers[3]}
			end := Vec2{X: cmd.Numbers[4], Y: cmd.Numbers[5]}
			s.flattenCubic(c1, c2, end)
		case RCubic:
			c1 := s.at.Add(Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]})
			c2 := s.at.Add(Vec2{X: cmd.Numbers[2], Y: cmd.Numbers[3]})
			end := s.at.Add(Vec2{X: cmd.Numbers[4], Y: cmd.Numbers[5]})
			s.flattenCubic(c1, c2, end)
		case SCubic:
			// Only the relative form is handled; the source this package
			// follows falls through to an unsupported-command error for
			// the absolute form. Preserved deliberately (see open question
			// in the design notes).
			return nil, unsupportedCommandf("absolute SCubic is not supported")
		case RSCubic:
			c1 := s.reflectedCubicControl()
			c2 := s.at.Add(Vec2{X: cmd.Numbers[0], Y: cmd.Numbers[1]})
			end := s.at.Add(Vec2{X: cmd.Numbers[2], Y: cmd.Numbers[3]})
			s.flattenCubic(c1, c2, end)

		case Arc:
			s.flattenArc(cmd.Numbers, false)
		case RArc:
			s.flattenArc(cmd.Numbers, true)

		case Close:
			s.close()

		default:
			return nil, unsupportedCommandf("unknown command kind %v", cmd.Kind)
		}

		s.prevCommand = cmd.Kind
		s.havePrev = true
	}

	if len(s.polygon) > 0 {
		s.out = append(s.out, s.polygon)
	}
	return s.out, nil
}

func (s *flattenState) reflectedQuadControl() Vec2 {
	if s.havePrev && isQuadKind(s.prevCommand) {
		return s.at.Mul(2).Sub(s.ctr)
	}
	return s.at
}

func (s *flattenState) reflectedCubicControl() Vec2 {
	if s.havePrev && isCubicKind(s.prevCommand) {
		return s.at.Mul(2).Sub(s.ctr2)
	}
	return s.at
}

func isQuadKind(k PathCommandKind) bool {
	switch k {
	case Quad, RQuad, TQuad, RTQuad:
		return true
	}
	return false
}

func isCubicKind(k PathCommandKind) bool {
	switch k {
	case Cubic, RCubic, SCubic, RSCubic:
		return true
	}
	return false
}

// flattenQuad flattens a quadratic Bézier with uniform subdivision step
// count n = 1 + floor(sqrt(sqrt(3*D))), where D is the squared second
// difference of the three control points.
func (s *flattenState) flattenQuad(ctrl, end Vec2) {
	p0, p1, p2 := s.at, ctrl, end

	dx := float64(p0.X - 2*p1.X + p2.X)
	dy := float64(p0.Y - 2*p1.Y + p2.Y)
	d := dx*dx + dy*dy

	if d < 1.0/3.0 {
		s.emit(p0, p2)
	} else {
		n := 1 + int(math.Floor(math.Sqrt(math.Sqrt(3*d))))
		prev := p0
		for k := 1; k <= n; k++ {
			t := float32(k) / float32(n)
			var pt Vec2
			if k == n {
				pt = p2
			} else {
				pt = quadAt(p0, p1, p2, t)
			}
			s.emit(prev, pt)
			prev = pt
		}
	}

	s.at = end
	s.ctr = ctrl
}

func quadAt(p0, p1, p2 Vec2, t float32) Vec2 {
	a := Lerp(p0, p1, t)
	b := Lerp(p1, p2, t)
	return Lerp(a, b, t)
}

// flattenCubic flattens a cubic Bézier by adaptive recursive midpoint
// refinement: a step is subdivided whenever the midpoint of the chord
// deviates from the curve's true midpoint by at least 0.25 pixels.
func (s *flattenState) flattenCubic(c1, c2, end Vec2) {
	p0 := s.at
	s.subdivideCubic(p0, c1, c2, end, 0, 1, maxCurveSubdivisionDepth)
	s.at = end
	s.ctr2 = c2
}

func (s *flattenState) subdivideCubic(p0, c1, c2, p3 Vec2, tPrev, t float32, depthLeft int) {
	from := cubicAt(p0, c1, c2, p3, tPrev)
	to := cubicAt(p0, c1, c2, p3, t)

	if depthLeft <= 0 {
		s.emit(from, to)
		return
	}

	tMid := (tPrev + t) / 2
	mid := cubicAt(p0, c1, c2, p3, tMid)
	lineMid := Lerp(from, to, 0.5)

	errDist := float64(mid.Sub(lineMid).Length())
	if errDist >= 0.25 {
		s.subdivideCubic(p0, c1, c2, p3, tPrev, tMid, depthLeft-1)
		s.subdivideCubic(p0, c1, c2, p3, tMid, t, depthLeft-1)
	} else {
		s.emit(from, to)
	}
}

func cubicAt(p0, c1, c2, p3 Vec2, t float32) Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).
		Add(c1.Mul(3 * omt2 * t)).
		Add(c2.Mul(3 * omt * t2)).
		Add(p3.Mul(t2 * t))
}

// flattenArc converts the SVG endpoint parameterization to center form
// (Appendix F.6) and flattens using the same adaptive subdivision scheme as
// flattenCubic.
func (s *flattenState) flattenArc(numbers []float32, relative bool) {
	rx0, ry0 := float64(numbers[0]), float64(numbers[1])
	rotDeg := float64(numbers[2])
	large := numbers[3] != 0
	sweep := numbers[4] != 0
	end := Vec2{X: numbers[5], Y: numbers[6]}
	if relative {
		end = s.at.Add(end)
	}

	p0 := s.at
	p1 := end

	if p0 == p1 {
		s.at = end
		return
	}

	rx, ry := math.Abs(rx0), math.Abs(ry0)
	if rx == 0 || ry == 0 {
		s.emit(p0, p1)
		s.at = end
		return
	}

	phi := rotDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	dx2 := float64(p0.X-p1.X) / 2
	dy2 := float64(p0.Y-p1.Y) / 2
	px := cosPhi*dx2 + sinPhi*dy2
	py := -sinPhi*dx2 + cosPhi*dy2

	lambda := px*px/(rx*rx) + py*py/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*py*py - ry2*px*px
	den := rx2*py*py + ry2*px*px
	q := 0.0
	if den != 0 {
		q = math.Sqrt(math.Max(0, num/den))
	}
	if large == sweep {
		q = -q
	}

	cx1 := q * rx * py / ry
	cy1 := -q * ry * px / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + float64(p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + float64(p0.Y+p1.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clampF64(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta := angle(1, 0, (px-cx1)/rx, (py-cy1)/ry)
	delta := angle((px-cx1)/rx, (py-cy1)/ry, (-px-cx1)/rx, (-py-cy1)/ry)
	delta = math.Mod(delta, 2*math.Pi)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	center := Vec2{X: float32(cx), Y: float32(cy)}
	rotMat := RotationMat3(float32(phi))

	arcAt := func(t float32) Vec2 {
		a := theta + float64(t)*delta
		local := Vec2{X: float32(rx * math.Cos(a)), Y: float32(ry * math.Sin(a))}
		return center.Add(rotMat.ApplyLinear(local))
	}

	s.subdivideArc(arcAt, 0, 1, maxCurveSubdivisionDepth)

	s.at = end
}

func (s *flattenState) subdivideArc(f func(float32) Vec2, tPrev, t float32, depthLeft int) {
	from := f(tPrev)
	to := f(t)

	if depthLeft <= 0 {
		s.emit(from, to)
		return
	}

	tMid := (tPrev + t) / 2
	mid := f(tMid)
	lineMid := Lerp(from, to, 0.5)

	errDist := float64(mid.Sub(lineMid).Length())
	if errDist >= 0.25 {
		s.subdivideArc(f, tPrev, tMid, depthLeft-1)
		s.subdivideArc(f, tMid, t, depthLeft-1)
	} else {
		s.emit(from, to)
	}
}

func clampF64(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// close implements the Close command: draw a closing segment (straight, or
// quadratic if the previous command was a quad form, using ctr as control,
// a deliberately non-standard behavior preserved from this package's
// source), append the finished polygon, and start a new one.
func (s *flattenState) close() {
	if s.at != s.start {
		if s.havePrev && isQuadKind(s.prevCommand) {
			s.flattenQuad(s.ctr, s.start)
		} else {
			s.emit(s.at, s.start)
		}
	}
	if len(s.polygon) > 0 {
		s.out = append(s.out, s.polygon)
	}
	s.polygon = nil
	s.at = s.start
}
