// Package renderer defines the narrow contracts between the numeric layout
// engine and the drawing backend. The engine only computes millimeters and
// pixels; everything that touches fonts, vector graphics or file bytes sits
// behind these interfaces.
package renderer

import (
	"image"

	"github.com/tzdruck/tzdruck/layout"
)

// CardRenderer turns a computed card into output bytes.
type CardRenderer interface {
	// RenderPDF renders one card per page into a single PDF.
	RenderPDF(cards []layout.Card) ([]byte, error)
	// Rasterize renders one card into a pixel image at the given DPI,
	// oversampled by scale (the render profile's RenderScale).
	Rasterize(card layout.Card, dpi int, scale float64) (image.Image, error)
}

// TextShaper measures rendered text height. The engine consumes the result
// as an opaque number; callers add the graphic-text gap and bottom offset
// before feeding it into the placement calculation.
type TextShaper interface {
	TextHeightMM(lineCount int, fontSizePT float64) (float64, error)
}
