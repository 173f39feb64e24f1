package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tzdruck/tzdruck/layout"
	"github.com/tzdruck/tzdruck/logging"
)

// The settings file is a flat key = value list. Numeric values may carry a
// unit suffix ("45mm", "10pt"); bare numbers are taken as mm for lengths
// and as plain integers elsewhere.
//
//	# Taktische Zeichen Druckgenerator
//	symbol_height = 45mm
//	bleed         = 3mm
//	font_size     = 10pt
//	s1_left_percent = 40
//	s1_aspect_lock  = true

var (
	cfgLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Assign", Pattern: `=`},
	})

	fileParser = participle.MustBuild[configFile](
		participle.Lexer(cfgLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

type configFile struct {
	Entries []*configEntry `parser:"Newline* ( @@ Newline* )*"`
}

type configEntry struct {
	Key   string       `parser:"@Ident '='"`
	Value *configValue `parser:"@@"`
}

type configValue struct {
	Number *string `parser:"  @Number"`
	Word   *string `parser:"| @Ident"`
}

// length interprets a numeric value as a layout.Length; bare numbers
// default to mm.
func (v configValue) length() (layout.Length, bool) {
	if v.Number == nil {
		return layout.Length{}, false
	}
	l := layout.ParseLength(*v.Number)
	if l.Unit == layout.UnitNone {
		l.Unit = layout.UnitMM
	}
	return l, true
}

func (v configValue) integer() (int, bool) {
	if v.Number == nil {
		return 0, false
	}
	l := layout.ParseLength(*v.Number)
	return int(l.Value), true
}

func (v configValue) boolean() (bool, bool) {
	if v.Word == nil {
		return false, false
	}
	switch strings.ToLower(*v.Word) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	}
	return false, false
}

// Parse reads a settings file and overlays it onto the defaults. Unknown
// keys are skipped (forward compatibility with newer GUI versions writing
// extra keys); malformed syntax is an error.
func Parse(r io.Reader) (Config, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}
	file, err := fileParser.ParseBytes("", src)
	if err != nil {
		return Config{}, fmt.Errorf("parse settings: %w", err)
	}

	cfg := Default()
	for _, e := range file.Entries {
		if !applyEntry(&cfg, e) {
			logging.Logger().Debug("ignoring unknown settings key", "key", e.Key)
		}
	}
	return cfg, nil
}

func applyEntry(cfg *Config, e *configEntry) bool {
	setMM := func(dst *float64) bool {
		if l, ok := e.Value.length(); ok {
			*dst = l.ToMM()
			return true
		}
		return false
	}
	setInt := func(dst *int) bool {
		if n, ok := e.Value.integer(); ok {
			*dst = n
			return true
		}
		return false
	}
	setBool := func(dst *bool) bool {
		if b, ok := e.Value.boolean(); ok {
			*dst = b
			return true
		}
		return false
	}

	switch e.Key {
	case "symbol_height":
		return setMM(&cfg.SymbolHeightMM)
	case "symbol_width":
		return setMM(&cfg.SymbolWidthMM)
	case "bleed":
		return setMM(&cfg.BleedMM)
	case "safety_margin":
		return setMM(&cfg.SafetyMarginMM)
	case "graphic_text_gap":
		return setMM(&cfg.GraphicTextGapMM)
	case "text_bottom_offset":
		return setMM(&cfg.TextBottomOffsetMM)
	case "font_size":
		// font sizes are pt; accept "10pt" or a bare number
		if l, ok := e.Value.length(); ok {
			if l.Unit == layout.UnitMM && !strings.HasSuffix(*e.Value.Number, "mm") {
				cfg.FontSizePT = int(l.Value)
			} else {
				cfg.FontSizePT = int(l.ToPT())
			}
			return true
		}
		return false
	case "dpi":
		return setInt(&cfg.DPI)
	case "export_dpi":
		return setInt(&cfg.ExportDPI)
	case "minimum_print_dpi":
		return setInt(&cfg.MinimumPrintDPI)
	case "max_threads":
		return setInt(&cfg.MaxThreads)
	case "s1_height":
		return setMM(&cfg.S1HeightMM)
	case "s1_width":
		return setMM(&cfg.S1WidthMM)
	case "s1_left_percent":
		return setInt(&cfg.S1LeftPercent)
	case "s1_line_count":
		return setInt(&cfg.S1LineCount)
	case "s1_aspect_lock":
		return setBool(&cfg.S1AspectLock)
	case "s2_aspect_lock":
		return setBool(&cfg.S2AspectLock)
	case "pdf_chunk_size":
		return setInt(&cfg.PDFChunkSize)
	case "pdf_chunk_size_sheet":
		return setInt(&cfg.PDFChunkSizeSheet)
	case "min_last_chunk":
		return setInt(&cfg.MinLastChunkSize)
	}
	return false
}

// FileProvider loads the configuration from a settings file on disk.
type FileProvider struct {
	Path string
}

func (p FileProvider) Load() (Config, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return Config{}, fmt.Errorf("open settings %s: %w", p.Path, err)
	}
	defer f.Close()
	return Parse(f)
}
