package layout

// Position places the graphic block vertically inside the canvas, relative
// to the text block below it.
type Position string

const (
	PositionTop    Position = "top"
	PositionCenter Position = "center"
	PositionBottom Position = "bottom"
)

// GraphicYOffsetMM computes the vertical offset of the graphic inside the
// canvas. textHeightMM must already include the graphic-text gap and the
// bottom offset (caller contract; the text shaper reports it that way).
//
// An unrecognized position falls back to PositionTop. That fallback is
// deliberate and observable, not an error: the decision table stays total
// and input validation lives with the GUI layer.
func GraphicYOffsetMM(textHeightMM, graphicHeightMM, canvasHeightMM float64, pos Position) float64 {
	available := canvasHeightMM - textHeightMM
	switch pos {
	case PositionCenter:
		return (available - graphicHeightMM) / 2.0
	case PositionBottom:
		return available - graphicHeightMM
	case PositionTop:
		return 0.0
	default:
		return 0.0
	}
}

// MaxGraphicSizeMM returns the largest graphic that fits the safe area, per
// axis. Used by the graphics-only mode, where no text block competes for
// space and the graphic may use the whole canvas.
func MaxGraphicSizeMM(symbolHeightMM, symbolWidthMM, safetyMarginMM float64) (maxHeightMM, maxWidthMM float64) {
	return symbolHeightMM - 2*safetyMarginMM, symbolWidthMM - 2*safetyMarginMM
}
