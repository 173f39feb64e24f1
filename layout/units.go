package layout

import (
	"math"
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for length, pixel and
// point conversions. All geometry in this package is carried in
// millimeters; pixels only appear at the DPI boundary.

// Unit represents the original unit of a length value as written by the user.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers like factors or counts
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
)

// Conversion constants between pt, mm and inches.
const (
	PtToMm      = 0.352777
	MmToPt      = 1.0 / PtToMm
	MmPerInch   = 25.4
	PointsPerIn = 72.0
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// MMToPixels converts millimeters to whole pixels at the given resolution.
// Rounds to the nearest integer.
func MMToPixels(mm float64, dpi int) int {
	return int(math.Round(mm / MmPerInch * float64(dpi)))
}

// PixelsToMM is the inverse of MMToPixels, without rounding. Round-tripping
// through MMToPixels loses at most one pixel's worth (25.4/dpi mm).
func PixelsToMM(px int, dpi int) float64 {
	return float64(px) / float64(dpi) * MmPerInch
}

// MMToPoints converts millimeters to typographic points (1 pt = 1/72 in).
func MMToPoints(mm float64) float64 {
	return mm * PointsPerIn / MmPerInch
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to target unit. Supported targets: UnitMM, UnitPT.
func (l Length) To(target Unit) float64 {
	mm := l.Value
	switch l.Unit {
	case UnitCM:
		mm = l.Value * 10
	case UnitIN:
		mm = l.Value * MmPerInch
	case UnitPT:
		if target == UnitPT {
			return l.Value
		}
		mm = l.Value * PtToMm
	case UnitMM, UnitNone:
		// already mm (or unit-less, treated as mm by convention here)
	}
	if target == UnitPT {
		return mm * MmToPt
	}
	return mm
}

func (l Length) ToMM() float64 { return l.To(UnitMM) }
func (l Length) ToPT() float64 { return l.To(UnitPT) }

// ParseLength parses a length string preserving its unit, e.g. "45mm",
// "4.5cm", "10pt". A bare number keeps UnitNone so callers can decide on a
// default. Malformed input yields a zero Length.
func ParseLength(value string) Length {
	v := strings.TrimSpace(value)
	if v == "" {
		return Length{}
	}
	lower := strings.ToLower(v)
	unit := UnitNone
	num := lower
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(lower, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(lower, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}
	}
	return Length{Value: f, Unit: unit}
}
