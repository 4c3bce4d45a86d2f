package vecraster

import "testing"

func TestRGBAImageSetGetPixel(t *testing.T) {
	im := NewRGBAImage(4, 3)
	if im.Width() != 4 || im.Height() != 3 {
		t.Fatalf("size: got (%d,%d), want (4,3)", im.Width(), im.Height())
	}

	c := ColorRGBA{R: 1, G: 2, B: 3, A: 4}
	im.SetPixel(2, 1, c)
	if got := im.GetPixel(2, 1); got != c {
		t.Errorf("GetPixel: got %v, want %v", got, c)
	}
	if got := im.GetPixel(0, 0); got != (ColorRGBA{}) {
		t.Errorf("untouched pixel: got %v, want zero value", got)
	}
}

func TestRoundTripStdlib(t *testing.T) {
	im := NewRGBAImage(2, 2)
	im.SetPixel(0, 0, ColorRGBA{R: 255, G: 0, B: 0, A: 255})
	im.SetPixel(1, 1, ColorRGBA{R: 0, G: 255, B: 0, A: 128})

	std := im.ToStdlib()
	back := ImageFromStdlib(std)

	if got := back.GetPixel(0, 0); got != (ColorRGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("opaque pixel round-trip: got %v", got)
	}
	got := back.GetPixel(1, 1)
	if got.A != 128 {
		t.Errorf("alpha round-trip: got %d, want 128", got.A)
	}
}
