// Package config carries the runtime configuration of the print engine as
// an explicit immutable value. The engine packages never reach into ambient
// state; callers load a Config once at the boundary and pass it (or single
// values from it) into every calculation.
package config

import (
	"github.com/tzdruck/tzdruck/layout"
	"github.com/tzdruck/tzdruck/logging"
)

// Documented fallback defaults. These apply whenever a provider is missing
// or fails to load; configuration lookup failures never escape this package.
const (
	DefaultSymbolHeightMM     = 45.0
	DefaultSymbolWidthMM      = 45.0
	DefaultBleedMM            = 3.0
	DefaultSafetyMarginMM     = 3.0
	DefaultGraphicTextGapMM   = 2.0
	DefaultTextBottomOffsetMM = 0.0

	DefaultFontSizePT      = 10
	DefaultDPI             = 600
	DefaultExportDPI       = 300
	DefaultMinimumPrintDPI = 300
	DefaultMaxThreads      = 6

	DefaultS1HeightMM    = 45.0
	DefaultS1WidthMM     = 90.0 // 2:1 aspect
	DefaultS1LeftPercent = 40
	DefaultS1LineCount   = 5

	DefaultPDFChunkSize      = 100
	DefaultPDFChunkSizeSheet = 20
	DefaultMinLastChunkSize  = 5
)

// Config is the full tunable parameter set. A zero Config is not useful;
// start from Default() and overlay.
type Config struct {
	SymbolHeightMM     float64
	SymbolWidthMM      float64
	BleedMM            float64
	SafetyMarginMM     float64
	GraphicTextGapMM   float64
	TextBottomOffsetMM float64

	FontSizePT      int
	DPI             int
	ExportDPI       int
	MinimumPrintDPI int
	MaxThreads      int

	S1HeightMM    float64
	S1WidthMM     float64
	S1LeftPercent int
	S1LineCount   int
	S1AspectLock  bool
	S2AspectLock  bool

	PDFChunkSize      int
	PDFChunkSizeSheet int
	MinLastChunkSize  int
}

// Default returns the documented fallback configuration.
func Default() Config {
	return Config{
		SymbolHeightMM:     DefaultSymbolHeightMM,
		SymbolWidthMM:      DefaultSymbolWidthMM,
		BleedMM:            DefaultBleedMM,
		SafetyMarginMM:     DefaultSafetyMarginMM,
		GraphicTextGapMM:   DefaultGraphicTextGapMM,
		TextBottomOffsetMM: DefaultTextBottomOffsetMM,

		FontSizePT:      DefaultFontSizePT,
		DPI:             DefaultDPI,
		ExportDPI:       DefaultExportDPI,
		MinimumPrintDPI: DefaultMinimumPrintDPI,
		MaxThreads:      DefaultMaxThreads,

		S1HeightMM:    DefaultS1HeightMM,
		S1WidthMM:     DefaultS1WidthMM,
		S1LeftPercent: DefaultS1LeftPercent,
		S1LineCount:   DefaultS1LineCount,
		S1AspectLock:  true,
		S2AspectLock:  true,

		PDFChunkSize:      DefaultPDFChunkSize,
		PDFChunkSizeSheet: DefaultPDFChunkSizeSheet,
		MinLastChunkSize:  DefaultMinLastChunkSize,
	}
}

// LayoutParameters projects the config onto the engine's parameter type.
func (c Config) LayoutParameters() layout.Parameters {
	return layout.Parameters{
		SymbolHeightMM:     c.SymbolHeightMM,
		SymbolWidthMM:      c.SymbolWidthMM,
		BleedMM:            c.BleedMM,
		SafetyMarginMM:     c.SafetyMarginMM,
		GraphicTextGapMM:   c.GraphicTextGapMM,
		TextBottomOffsetMM: c.TextBottomOffsetMM,
	}
}

// Provider supplies a Config, typically from a settings file. Load errors
// are reported explicitly; they are handled (not swallowed) by
// LoadOrDefault at the boundary.
type Provider interface {
	Load() (Config, error)
}

// LoadOrDefault resolves the configuration from p, falling back to
// Default() when p is nil or fails. The failure is logged and degraded
// gracefully; it is never surfaced to the caller.
func LoadOrDefault(p Provider) Config {
	if p == nil {
		return Default()
	}
	cfg, err := p.Load()
	if err != nil {
		logging.Logger().Warn("configuration unavailable, using defaults", "error", err)
		return Default()
	}
	return cfg
}
