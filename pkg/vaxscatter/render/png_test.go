package render

import (
	"bytes"
	"image/png"
	"math"
	"testing"
)

func TestPNG(t *testing.T) {
	s := testState()
	s.Records[1].PeopleFullyVaccinatedPerHundred = math.NaN()

	var buf bytes.Buffer
	if err := PNG(&buf, s); err != nil {
		t.Fatalf("PNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 960 || b.Dy() != 500 {
		t.Errorf("Expected 960x500, got %dx%d", b.Dx(), b.Dy())
	}
}
