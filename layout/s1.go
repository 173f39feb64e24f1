package layout

import "math"

// S1 cards split into a left graphic/text region and a right region of
// writing lines. S2 cards are a single square-ish region. Both share the
// font size recommendation below.

// LineHeightFactor is the line height as a multiple of the font size
// (200%). Shared between S1 writing lines and S2 text blocks.
const LineHeightFactor = 2.0

// Recommended font size bounds in points.
const (
	MinFontSizePT = 6
	MaxFontSizePT = 200
)

// S1Split describes the left/right partition of an S1 card. Widths are
// computed from the available width after the safety margin, never from the
// raw symbol width.
type S1Split struct {
	LeftPercent  int
	RightPercent int
	LeftWidthMM  float64
	RightWidthMM float64
}

// SplitS1 partitions the post-margin width of an S1 card. leftPercent is
// expected in [20,80]; out-of-range values are the caller's problem and are
// passed through arithmetically.
func SplitS1(symbolWidthMM, safetyMarginMM float64, leftPercent int) S1Split {
	available := symbolWidthMM - 2*safetyMarginMM
	left := available * float64(leftPercent) / 100.0
	return S1Split{
		LeftPercent:  leftPercent,
		RightPercent: 100 - leftPercent,
		LeftWidthMM:  left,
		RightWidthMM: available - left,
	}
}

// LineMetrics describes the writing-line grid of an S1 card.
type LineMetrics struct {
	LineCount    int
	LineHeightMM float64
	FontSizePT   float64
}

// CalculateLineMetrics derives line height and font size from a requested
// line count (expected in [3,10], not enforced here):
//
//	lineHeight = available height / line count
//	fontSize   = lineHeight / LineHeightFactor, expressed in pt
//
// Example: 45 mm symbol, 3 mm margin, 5 lines -> 7.8 mm lines, ~11.06 pt.
func CalculateLineMetrics(symbolHeightMM, safetyMarginMM float64, lineCount int) LineMetrics {
	available := symbolHeightMM - 2*safetyMarginMM
	lineHeight := available / float64(lineCount)
	fontMM := lineHeight / LineHeightFactor
	return LineMetrics{
		LineCount:    lineCount,
		LineHeightMM: lineHeight,
		FontSizePT:   MMToPoints(fontMM),
	}
}

// RecommendedFontSizePT scales the font size linearly with the symbol
// height, anchored at 10 pt for the 45 mm reference size, clamped to
// [MinFontSizePT, MaxFontSizePT].
//
//	45mm -> 10pt, 90mm -> 20pt, 600mm -> 133pt, 900mm -> 200pt (clamped)
func RecommendedFontSizePT(symbolHeightMM float64) int {
	recommended := int(math.Round(symbolHeightMM / 45.0 * 10))
	if recommended < MinFontSizePT {
		return MinFontSizePT
	}
	if recommended > MaxFontSizePT {
		return MaxFontSizePT
	}
	return recommended
}

// S1WidthForHeight enforces the 2:1 aspect of S1 cards when the aspect lock
// is active. The height is authoritative; the width is always recomputed
// from it, never the other way around.
func S1WidthForHeight(heightMM float64) float64 { return heightMM * 2.0 }

// S2WidthForHeight enforces the 1:1 aspect of S2 cards (same one-directional
// rule as S1).
func S2WidthForHeight(heightMM float64) float64 { return heightMM }
