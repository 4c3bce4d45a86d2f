package vecraster

import (
	"image"
	"testing"

	"golang.org/x/image/vector"
)

// TestFillPolygonsAgainstXImageVector cross-checks the overall silhouette of
// a filled axis-aligned rectangle against golang.org/x/image/vector, the
// same library this package's source uses in its own benchmarks. The two
// rasterizers use unrelated coverage algorithms, so this only checks that
// both agree on which pixels are "clearly inside" versus "clearly outside"
// a simple, edge-free shape, not on anti-aliased boundary values.
func TestFillPolygonsAgainstXImageVector(t *testing.T) {
	const size = 32

	contours := flattenPath(t, "M4 4 L28 4 L28 28 L4 28 Z")
	got := NewRGBAImage(size, size)
	FillPolygons(got, Vec2{X: size, Y: size}, contours, ColorRGBA{A: 255}, NonZero, MixNormal, 4)

	ref := vector.NewRasterizer(size, size)
	ref.MoveTo(4, 4)
	ref.LineTo(28, 4)
	ref.LineTo(28, 28)
	ref.LineTo(4, 28)
	ref.ClosePath()
	refImg := image.NewAlpha(image.Rect(0, 0, size, size))
	ref.Draw(refImg, refImg.Bounds(), image.Opaque, image.Point{})

	for y := 8; y < 24; y++ {
		for x := 8; x < 24; x++ {
			gotA := got.GetPixel(x, y).A
			refA := refImg.AlphaAt(x, y).A
			if gotA == 0 || refA == 0 {
				t.Errorf("interior pixel (%d,%d) disagreement: vecraster alpha=%d, x/image/vector alpha=%d", x, y, gotA, refA)
			}
		}
	}

	for _, p := range [][2]int{{0, 0}, {31, 31}, {1, 1}} {
		gotA := got.GetPixel(p[0], p[1]).A
		refA := refImg.AlphaAt(p[0], p[1]).A
		if gotA != 0 || refA != 0 {
			t.Errorf("exterior pixel %v disagreement: vecraster alpha=%d, x/image/vector alpha=%d", p, gotA, refA)
		}
	}
}
