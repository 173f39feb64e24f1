package layout

// CardLayout names the two supported card templates.
type CardLayout string

const (
	LayoutS1 CardLayout = "S1" // two regions: graphic/text left, writing lines right
	LayoutS2 CardLayout = "S2" // single region
)

// Card ties the computed geometry of one symbol together for rendering.
// It is assembled fresh from the current configuration for every render;
// nothing in it is cached across parameter changes.
type Card struct {
	Layout     CardLayout
	Dimensions PrintDimensions

	// Text lines drawn into the text block (placeholders or user text).
	TextLines  []string
	FontSizePT float64

	// Graphic block, placed via GraphicYOffsetMM.
	GraphicHeightMM float64
	GraphicWidthMM  float64
	GraphicPosition Position

	// S1 only.
	Split       S1Split
	WritingGrid LineMetrics

	// Draw bleed/cut/safety frames for test prints.
	CutLines bool
}
