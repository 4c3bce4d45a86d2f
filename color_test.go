package vecraster

import "testing"

func TestMixNormalOpaqueSource(t *testing.T) {
	dst := ColorRGBA{R: 10, G: 20, B: 30, A: 255}
	src := ColorRGBA{R: 200, G: 0, B: 0, A: 255}
	if got := MixNormal(dst, src); got != src {
		t.Errorf("opaque source-over: got %v, want %v", got, src)
	}
}

func TestMixNormalTransparentSource(t *testing.T) {
	dst := ColorRGBA{R: 10, G: 20, B: 30, A: 255}
	src := ColorRGBA{A: 0}
	if got := MixNormal(dst, src); got != dst {
		t.Errorf("fully transparent source: got %v, want %v", got, dst)
	}
}

func TestMixNormalHalfAlpha(t *testing.T) {
	dst := ColorRGBA{R: 0, G: 0, B: 0, A: 255}
	src := ColorRGBA{R: 255, G: 255, B: 255, A: 128}
	got := MixNormal(dst, src)
	if got.A != 255 {
		t.Errorf("compositing over opaque dst should stay opaque, got alpha %d", got.A)
	}
	if got.R < 120 || got.R > 135 {
		t.Errorf("R channel = %d, want roughly half-mixed", got.R)
	}
}

func TestMixMultiplyBlack(t *testing.T) {
	dst := ColorRGBA{R: 200, G: 100, B: 50, A: 255}
	src := ColorRGBA{R: 0, G: 0, B: 0, A: 255}
	got := MixMultiply(dst, src)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("multiply by black: got %v, want all-zero channels", got)
	}
}

func TestMixScreenWhite(t *testing.T) {
	dst := ColorRGBA{R: 10, G: 20, B: 30, A: 255}
	src := ColorRGBA{R: 255, G: 255, B: 255, A: 255}
	got := MixScreen(dst, src)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("screen with white: got %v, want all-255 channels", got)
	}
}

func TestMixAddSaturates(t *testing.T) {
	dst := ColorRGBA{R: 200, G: 200, B: 200, A: 255}
	src := ColorRGBA{R: 200, G: 0, B: 0, A: 255}
	got := MixAdd(dst, src)
	if got.R != 255 {
		t.Errorf("add should saturate red at 255, got %d", got.R)
	}
}

func TestBlendModeMixer(t *testing.T) {
	modes := []BlendMode{BlendNormal, BlendMultiply, BlendScreen, BlendAdd}
	for _, m := range modes {
		if m.Mixer() == nil {
			t.Errorf("BlendMode(%d).Mixer() returned nil", m)
		}
	}
}
