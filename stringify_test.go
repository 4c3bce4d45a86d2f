package vecraster

import "testing"

func TestStringifyIntegers(t *testing.T) {
	commands := []PathCommand{
		{Kind: Move, Numbers: []float32{0, 0}},
		{Kind: Line, Numbers: []float32{10, 0}},
		{Kind: Close},
	}
	got := Stringify(commands)
	want := "M 0 0 L 10 0 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringifyNonIntegerFloat(t *testing.T) {
	commands := []PathCommand{
		{Kind: Move, Numbers: []float32{1.5, -0.25}},
	}
	got := Stringify(commands)
	want := "M 1.5 -0.25"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseStringifyRoundTrip(t *testing.T) {
	s := "M 0 0 L 10 0 L 10 10 L 0 10 Z"
	p, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := p.String()
	if got != s {
		t.Errorf("round trip: got %q, want %q", got, s)
	}

	p2, err := Parse(got)
	if err != nil {
		t.Fatalf("Parse of stringified output: %v", err)
	}
	if p2.String() != got {
		t.Errorf("second round trip: got %q, want %q", p2.String(), got)
	}
}
