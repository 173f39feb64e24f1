package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverlaysDefaults(t *testing.T) {
	in := `
# printer profile for the A3 plotter
symbol_height = 60mm
symbol_width  = 6cm
bleed         = 5mm
font_size     = 12pt
dpi           = 300
s1_left_percent = 50
s1_aspect_lock  = false
`
	cfg, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.SymbolHeightMM)
	assert.Equal(t, 60.0, cfg.SymbolWidthMM) // 6cm normalized to mm
	assert.Equal(t, 5.0, cfg.BleedMM)
	assert.Equal(t, 12, cfg.FontSizePT)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, 50, cfg.S1LeftPercent)
	assert.False(t, cfg.S1AspectLock)

	// untouched keys keep their defaults
	assert.Equal(t, DefaultSafetyMarginMM, cfg.SafetyMarginMM)
	assert.Equal(t, DefaultMinimumPrintDPI, cfg.MinimumPrintDPI)
	assert.Equal(t, DefaultPDFChunkSize, cfg.PDFChunkSize)
}

func TestParseBareNumbersAreMM(t *testing.T) {
	cfg, err := Parse(strings.NewReader("safety_margin = 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.SafetyMarginMM)
}

func TestParseUnknownKeysIgnored(t *testing.T) {
	cfg, err := Parse(strings.NewReader("window_geometry = 1024\nsymbol_height = 50mm\n"))
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.SymbolHeightMM)
}

func TestParseEmptyFileIsDefault(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseMalformedInput(t *testing.T) {
	_, err := Parse(strings.NewReader("symbol_height ==== ???\n"))
	assert.Error(t, err)
}

type failingProvider struct{}

func (failingProvider) Load() (Config, error) {
	return Config{}, errors.New("settings backend gone")
}

type fixedProvider struct{ cfg Config }

func (p fixedProvider) Load() (Config, error) { return p.cfg, nil }

// LoadOrDefault must map every provider failure to the documented defaults
// instead of surfacing an error.
func TestLoadOrDefault(t *testing.T) {
	assert.Equal(t, Default(), LoadOrDefault(nil))
	assert.Equal(t, Default(), LoadOrDefault(failingProvider{}))
	assert.Equal(t, Default(), LoadOrDefault(FileProvider{Path: "does/not/exist.conf"}))

	custom := Default()
	custom.DPI = 150
	assert.Equal(t, custom, LoadOrDefault(fixedProvider{cfg: custom}))
}

func TestDefaultInvariants(t *testing.T) {
	cfg := Default()
	require.Greater(t, cfg.SymbolHeightMM, 2*cfg.SafetyMarginMM)
	require.Greater(t, cfg.SymbolWidthMM, 2*cfg.SafetyMarginMM)
	assert.Equal(t, 2*cfg.S1HeightMM, cfg.S1WidthMM) // S1 ships at 2:1
	assert.GreaterOrEqual(t, cfg.S1LeftPercent, 20)
	assert.LessOrEqual(t, cfg.S1LeftPercent, 80)
	assert.GreaterOrEqual(t, cfg.S1LineCount, 3)
	assert.LessOrEqual(t, cfg.S1LineCount, 10)
}
