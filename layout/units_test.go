package layout

import (
	"math"
	"testing"
)

// TestMMPixelRoundTrip verifies that converting mm to px and back stays
// within one pixel's worth of quantization error (25.4/dpi mm).
func TestMMPixelRoundTrip(t *testing.T) {
	samples := []float64{0.5, 1, 3, 12.7, 25.4, 39, 45, 90, 445, 1000}
	dpis := []int{100, 150, 200, 300, 450, 600}
	for _, mm := range samples {
		for _, dpi := range dpis {
			px := MMToPixels(mm, dpi)
			back := PixelsToMM(px, dpi)
			limit := MmPerInch / float64(dpi)
			if diff := math.Abs(back - mm); diff >= limit {
				t.Fatalf("round trip drift too large: in=%gmm dpi=%d px=%d back=%g diff=%g limit=%g",
					mm, dpi, px, back, diff, limit)
			}
		}
	}
}

// TestMMToPixelsKnownValues checks a few anchor conversions, tolerating one
// pixel of rounding drift.
func TestMMToPixelsKnownValues(t *testing.T) {
	cases := []struct {
		mm   float64
		dpi  int
		want int
	}{
		{25.4, 300, 300},
		{25.4, 600, 600},
		{45, 300, 531},
		{45, 600, 1063},
		{0, 600, 0},
	}
	for _, c := range cases {
		got := MMToPixels(c.mm, c.dpi)
		if diff := got - c.want; diff < -1 || diff > 1 {
			t.Fatalf("MMToPixels(%g, %d) = %d, want %d (±1)", c.mm, c.dpi, got, c.want)
		}
	}
}

func TestMMToPoints(t *testing.T) {
	// 25.4 mm = 1 in = 72 pt
	if got := MMToPoints(25.4); math.Abs(got-72) > 1e-9 {
		t.Fatalf("25.4mm should be 72pt, got %g", got)
	}
	// 3.9 mm (7.8mm line height / factor 2) ≈ 11.055 pt
	if got := MMToPoints(3.9); math.Abs(got-11.0551) > 1e-3 {
		t.Fatalf("3.9mm should be ~11.055pt, got %g", got)
	}
}

// TestLengthConversions covers Length on the common units (to mm/pt).
func TestLengthConversions(t *testing.T) {
	in := Length{Value: 1, Unit: UnitIN}
	if got := in.ToMM(); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("1in to mm expected 25.4, got %g", got)
	}
	cm := Length{Value: 2.54, Unit: UnitCM}
	if got := cm.ToMM(); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("2.54cm to mm expected 25.4, got %g", got)
	}
	pt := Length{Value: 12, Unit: UnitPT}
	if got := pt.ToMM(); math.Abs(got-12*PtToMm) > 1e-9 {
		t.Fatalf("12pt to mm expected %g, got %g", 12*PtToMm, got)
	}
	mm := Length{Value: 10, Unit: UnitMM}
	if got := mm.ToPT(); math.Abs(got-10*MmToPt) > 1e-9 {
		t.Fatalf("10mm to pt expected %g, got %g", 10*MmToPt, got)
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"45mm", Length{Value: 45, Unit: UnitMM}},
		{"4.5cm", Length{Value: 4.5, Unit: UnitCM}},
		{"10pt", Length{Value: 10, Unit: UnitPT}},
		{"1.5in", Length{Value: 1.5, Unit: UnitIN}},
		{" 3 mm ", Length{Value: 3, Unit: UnitMM}},
		{"42", Length{Value: 42, Unit: UnitNone}},
		{"", Length{}},
		{"abc", Length{}},
	}
	for _, c := range cases {
		if got := ParseLength(c.in); got != c.want {
			t.Fatalf("ParseLength(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
