package layout

// Parameters are the tunable millimeter inputs for one symbol. Callers are
// expected to keep SymbolHeightMM > 2*SafetyMarginMM (and the same for the
// width); this package returns the resulting negative canvas unchanged so
// the GUI layer can detect and report it.
type Parameters struct {
	SymbolHeightMM     float64
	SymbolWidthMM      float64
	BleedMM            float64
	SafetyMarginMM     float64
	GraphicTextGapMM   float64
	TextBottomOffsetMM float64
}

// PrintDimensions holds every derived size for one symbol at one resolution.
// Height and width are kept separate throughout; S1 cards are 2:1 and a
// single scalar would be wrong for them.
//
// Canvas is the usable area inside the safety margin, Final the as-designed
// symbol size, File the exported size including bleed on all sides.
type PrintDimensions struct {
	CanvasHeightMM float64
	CanvasWidthMM  float64
	FinalHeightMM  float64
	FinalWidthMM   float64
	FileHeightMM   float64
	FileWidthMM    float64

	BleedMM            float64
	SafetyMarginMM     float64
	GraphicTextGapMM   float64
	TextBottomOffsetMM float64

	CanvasHeightPX int
	CanvasWidthPX  int
	FinalHeightPX  int
	FinalWidthPX   int
	FileHeightPX   int
	FileWidthPX    int

	BleedPX            int
	SafetyMarginPX     int
	GraphicTextGapPX   int
	TextBottomOffsetPX int

	DPI int
}

// CalculatePrintDimensions derives all print sizes from the base parameters.
// Pure arithmetic, no validation:
//
//	canvas = symbol - 2*safety margin
//	final  = symbol
//	file   = symbol + 2*bleed
//
// Example: 45x45 mm symbol, 3 mm safety, 3 mm bleed -> canvas 39x39 mm,
// final 45x45 mm, file 51x51 mm.
func CalculatePrintDimensions(p Parameters, dpi int) PrintDimensions {
	canvasH := p.SymbolHeightMM - 2*p.SafetyMarginMM
	canvasW := p.SymbolWidthMM - 2*p.SafetyMarginMM
	fileH := p.SymbolHeightMM + 2*p.BleedMM
	fileW := p.SymbolWidthMM + 2*p.BleedMM

	return PrintDimensions{
		CanvasHeightMM: canvasH,
		CanvasWidthMM:  canvasW,
		FinalHeightMM:  p.SymbolHeightMM,
		FinalWidthMM:   p.SymbolWidthMM,
		FileHeightMM:   fileH,
		FileWidthMM:    fileW,

		BleedMM:            p.BleedMM,
		SafetyMarginMM:     p.SafetyMarginMM,
		GraphicTextGapMM:   p.GraphicTextGapMM,
		TextBottomOffsetMM: p.TextBottomOffsetMM,

		CanvasHeightPX: MMToPixels(canvasH, dpi),
		CanvasWidthPX:  MMToPixels(canvasW, dpi),
		FinalHeightPX:  MMToPixels(p.SymbolHeightMM, dpi),
		FinalWidthPX:   MMToPixels(p.SymbolWidthMM, dpi),
		FileHeightPX:   MMToPixels(fileH, dpi),
		FileWidthPX:    MMToPixels(fileW, dpi),

		BleedPX:            MMToPixels(p.BleedMM, dpi),
		SafetyMarginPX:     MMToPixels(p.SafetyMarginMM, dpi),
		GraphicTextGapPX:   MMToPixels(p.GraphicTextGapMM, dpi),
		TextBottomOffsetPX: MMToPixels(p.TextBottomOffsetMM, dpi),

		DPI: dpi,
	}
}
