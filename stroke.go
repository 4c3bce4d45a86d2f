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

// offsetSegment is one segment of an offset polyline. Consecutive offset
// segments are intersected to merge the corner between them.
type offsetSegment struct {
	at, to Vec2
}

// Stroke expands contours into offset outline contours using a single
// uniform width, split evenly to each side of the original polyline. It is
// a thin wrapper around StrokeWidths for the common case.
//
// The stroker does not emit caps or miters: open contours get butt-like
// ends where the forward and reverse passes meet, and joins that do not
// intersect leave a notch rather than filling it in. Both are known
// limitations carried over unchanged from this package's source (see the
// design notes).
func Stroke(contours ContourSet, strokeWidth float32) ContourSet {
	w := strokeWidth / 2
	return StrokeWidths(contours, w, w)
}

// StrokeWidths expands contours into offset outline contours, offsetting
// by wR to the right of each segment's direction of travel and wL to the
// left.
func StrokeWidths(contours ContourSet, wR, wL float32) ContourSet {
	out := make(ContourSet, 0, len(contours))
	for _, c := range contours {
		sc := strokeContour(c, wR, wL)
		if len(sc) > 0 {
			out = append(out, sc)
		}
	}
	return out
}

// strokeContour builds the offset outline for a single contour. Segments
// are consecutive pairs (c[i], c[i+1]); as in the rasterizer, this does not
// wrap around to join the last point back to the first — a closed subpath
// relies on Close having already appended the closing segment during
// flattening.
func strokeContour(c Contour, wR, wL float32) Contour {
	n := len(c) - 1
	if n < 1 {
		return nil
	}

	right := make([]offsetSegment, n)
	left := make([]offsetSegment, n)
	for i := 0; i < n; i++ {
		a, b := c[i], c[i+1]
		t := a.Sub(b).Normalize()
		normal := Vec2{X: -t.Y, Y: t.X}
		right[i] = offsetSegment{at: a.Add(normal.Mul(wR)), to: b.Add(normal.Mul(wR))}
		left[i] = offsetSegment{at: a.Sub(normal.Mul(wL)), to: b.Sub(normal.Mul(wL))}
	}

	rightSide := joinOffsetSide(right)
	leftSide := joinOffsetSide(left)

	out := make(Contour, 0, len(rightSide)+len(leftSide)+1)
	out = append(out, rightSide...)
	for i := len(leftSide) - 1; i >= 0; i-- {
		out = append(out, leftSide[i])
	}
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// joinOffsetSide walks one side's offset segments in order, intersecting
// each with the previous one to merge corners. When two consecutive offset
// segments do not intersect, the gap between them is left as-is (a notch),
// per the design notes.
func joinOffsetSide(segs []offsetSegment) Contour {
	poly := make(Contour, 0, 2*len(segs))
	for i, seg := range segs {
		if i == 0 {
			poly = append(poly, seg.at)
		} else {
			prev := segs[i-1]
			var at Vec2
			prevSeg := Segment{At: prev.at, To: prev.to}
			curSeg := Segment{At: seg.at, To: seg.to}
			if prevSeg.Intersects(curSeg, &at) {
				poly[len(poly)-1] = at
			} else {
				poly = append(poly, seg.at)
			}
		}
		poly = append(poly, seg.to)
	}
	return poly
}
