package vecraster

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -1}

	if got, want := a.Add(b), (Vec2{X: 4, Y: 1}); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec2{X: -2, Y: 3}); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := a.Mul(2), (Vec2{X: 2, Y: 4}); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
	if got, want := a.Dot(b), float32(1); got != want {
		t.Errorf("Dot: got %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Normalize()
	if math.Abs(float64(n.Length()-1)) > 1e-6 {
		t.Errorf("Normalize: length = %v, want 1", n.Length())
	}

	zero := Vec2{}.Normalize()
	if zero != (Vec2{}) {
		t.Errorf("Normalize of zero vector: got %v, want zero", zero)
	}
}

func TestLerp(t *testing.T) {
	a, b := Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 20}
	if got, want := Lerp(a, b, 0.5), (Vec2{X: 5, Y: 10}); got != want {
		t.Errorf("Lerp(0.5): got %v, want %v", got, want)
	}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(0): got %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(1): got %v, want %v", got, b)
	}
}

func TestMat3Apply(t *testing.T) {
	m := TranslationMat3(Vec2{X: 5, Y: -3})
	v := Vec2{X: 1, Y: 1}
	if got, want := m.Apply(v), (Vec2{X: 6, Y: -2}); got != want {
		t.Errorf("translate: got %v, want %v", got, want)
	}

	r := RotationMat3(float32(math.Pi / 2))
	got := r.Apply(Vec2{X: 1, Y: 0})
	if math.Abs(float64(got.X)) > 1e-6 || math.Abs(float64(got.Y-1)) > 1e-6 {
		t.Errorf("rotate 90deg: got %v, want (0,1)", got)
	}
}

func TestMat3Mul(t *testing.T) {
	t1 := TranslationMat3(Vec2{X: 1, Y: 0})
	t2 := TranslationMat3(Vec2{X: 0, Y: 1})
	combined := t1.Mul(t2)
	got := combined.Apply(Vec2{})
	if got != (Vec2{X: 1, Y: 1}) {
		t.Errorf("Mul: got %v, want (1,1)", got)
	}
}

func TestSegmentIntersects(t *testing.T) {
	a := Segment{At: Vec2{X: 0, Y: 0}, To: Vec2{X: 10, Y: 10}}
	b := Segment{At: Vec2{X: 0, Y: 10}, To: Vec2{X: 10, Y: 0}}

	var at Vec2
	if !a.Intersects(b, &at) {
		t.Fatal("expected segments to intersect")
	}
	if math.Abs(float64(at.X-5)) > 1e-4 || math.Abs(float64(at.Y-5)) > 1e-4 {
		t.Errorf("intersection point: got %v, want (5,5)", at)
	}

	parallel := Segment{At: Vec2{X: 0, Y: 1}, To: Vec2{X: 10, Y: 11}}
	if a.Intersects(parallel, &at) {
		t.Error("parallel segments should not intersect")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ x, lo, hi, want float32 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.x, c.lo, c.hi, got, c.want)
		}
	}
}

func TestArccos(t *testing.T) {
	if got := Arccos(1.0000001); got != 0 {
		t.Errorf("Arccos(slightly > 1) = %v, want 0", got)
	}
	want := float32(math.Pi)
	if got := Arccos(-1.0000001); math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("Arccos(slightly < -1) = %v, want %v", got, want)
	}
}
