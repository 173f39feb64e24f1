package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tzdruck/tzdruck/config"
	"github.com/tzdruck/tzdruck/export"
	"github.com/tzdruck/tzdruck/layout"
	"github.com/tzdruck/tzdruck/logging"
	"github.com/tzdruck/tzdruck/renderer"
	canvasrenderer "github.com/tzdruck/tzdruck/renderer/canvas"
)

func main() {
	cfgPath := flag.String("config", "", "settings file (key = value, units allowed)")
	cardLayout := flag.String("layout", "S2", "card layout: S1 or S2")
	height := flag.Float64("height", 0, "symbol height in mm (0 = from settings)")
	count := flag.Int("count", 1, "number of symbols in the batch")
	dpi := flag.Int("dpi", 0, "export DPI (0 = from settings)")
	threads := flag.Int("threads", 0, "thread ceiling (0 = from settings)")
	fontPath := flag.String("font", "", "TTF font for text fields")
	out := flag.String("out", "", "write a sample batch to this directory")
	cutLines := flag.Bool("cut-lines", false, "draw bleed/cut/safety frames")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var provider config.Provider
	if *cfgPath != "" {
		provider = config.FileProvider{Path: *cfgPath}
	}
	cfg := config.LoadOrDefault(provider)
	if *height > 0 {
		// height is authoritative; the aspect locks recompute the widths
		cfg.SymbolHeightMM = *height
		cfg.SymbolWidthMM = *height
		cfg.S1HeightMM = *height
		cfg.FontSizePT = layout.RecommendedFontSizePT(*height)
	}
	if *dpi > 0 {
		cfg.ExportDPI = *dpi
	}
	if *threads > 0 {
		cfg.MaxThreads = *threads
	}

	var r renderer.CardRenderer = canvasrenderer.NewRenderer(canvasrenderer.Options{FontPath: *fontPath})
	if err := run(cfg, *cardLayout, *count, *cutLines, *out, r); err != nil {
		log.Fatalf("export failed: %v", err)
	}
}

// run computes the print plan for the requested batch and, when an output
// directory is given, renders it.
func run(cfg config.Config, cardLayout string, count int, cutLines bool, outDir string, r renderer.CardRenderer) error {
	card := buildCard(cfg, cardLayout, cutLines)
	d := card.Dimensions

	profile := layout.CalculateRenderProfile(d.FinalHeightMM, d.FinalWidthMM, cfg.ExportDPI, cfg.MaxThreads)
	profile = layout.ApplyMinimumDPIFloor(profile, cfg.MinimumPrintDPI, cfg.ExportDPI)

	fmt.Printf("Zeichen:  %.1f x %.1f mm (%s)\n", d.FinalHeightMM, d.FinalWidthMM, card.Layout)
	fmt.Printf("Canvas:   %.1f x %.1f mm\n", d.CanvasHeightMM, d.CanvasWidthMM)
	fmt.Printf("Datei:    %.1f x %.1f mm (%d x %d px @ %d dpi)\n",
		d.FileHeightMM, d.FileWidthMM, d.FileHeightPX, d.FileWidthPX, d.DPI)
	fmt.Printf("Profil:   %s – %d dpi, %d Threads, Scale %.1f\n",
		profile.Name, profile.DPI, profile.Threads, profile.RenderScale)
	fmt.Printf("          %s\n", profile.Description)

	plan := export.ChunkPlan{
		TotalItems:   count,
		ChunkSize:    cfg.PDFChunkSize,
		MinLastChunk: cfg.MinLastChunkSize,
	}
	ranges := plan.Ranges()
	fmt.Printf("Batch:    %d Zeichen in %d PDF-Datei(en)\n", count, len(ranges))

	if outDir == "" {
		return nil
	}

	now := time.Now()
	folder := filepath.Join(outDir, export.FolderName(now, export.FileFormatPDF, export.FormatSingle, count, profile.DPI))
	writer := export.ChunkWriter{
		Dir:          folder,
		Timestamp:    export.Timestamp(now),
		ExportFormat: export.FormatSingle,
		Threads:      profile.Threads,
	}
	err := writer.WriteAll(ranges, func(cr export.ChunkRange) ([]byte, error) {
		cards := make([]layout.Card, 0, cr.Count())
		for i := 0; i < cr.Count(); i++ {
			cards = append(cards, card)
		}
		return r.RenderPDF(cards)
	})
	if err != nil {
		return err
	}
	fmt.Printf("Ausgabe:  %s\n", folder)
	return nil
}

// buildCard assembles the card geometry from the configuration. Everything
// is recomputed from scratch; no state survives between runs.
func buildCard(cfg config.Config, cardLayout string, cutLines bool) layout.Card {
	if cardLayout == string(layout.LayoutS1) {
		height := cfg.S1HeightMM
		width := cfg.S1WidthMM
		if cfg.S1AspectLock {
			width = layout.S1WidthForHeight(height)
		}
		params := cfg.LayoutParameters()
		params.SymbolHeightMM = height
		params.SymbolWidthMM = width

		return layout.Card{
			Layout:          layout.LayoutS1,
			Dimensions:      layout.CalculatePrintDimensions(params, cfg.ExportDPI),
			Split:           layout.SplitS1(width, cfg.SafetyMarginMM, cfg.S1LeftPercent),
			WritingGrid:     layout.CalculateLineMetrics(height, cfg.SafetyMarginMM, cfg.S1LineCount),
			TextLines:       []string{layout.StrengthPlaceholder(layout.DefaultStrengthDigits)},
			GraphicHeightMM: cfg.S1HeightMM - 2*cfg.SafetyMarginMM,
			GraphicWidthMM:  cfg.S1HeightMM - 2*cfg.SafetyMarginMM,
			GraphicPosition: layout.PositionTop,
			CutLines:        cutLines,
		}
	}

	params := cfg.LayoutParameters()
	if cfg.S2AspectLock {
		params.SymbolWidthMM = layout.S2WidthForHeight(params.SymbolHeightMM)
	}
	maxGraphicH, maxGraphicW := layout.MaxGraphicSizeMM(params.SymbolHeightMM, params.SymbolWidthMM, params.SafetyMarginMM)

	return layout.Card{
		Layout:     layout.LayoutS2,
		Dimensions: layout.CalculatePrintDimensions(params, cfg.ExportDPI),
		TextLines: []string{
			layout.PlaceholderText(layout.DefaultOVLength, layout.PlaceholderChar),
			layout.StrengthPlaceholder(layout.DefaultStrengthDigits),
		},
		FontSizePT:      float64(cfg.FontSizePT),
		GraphicHeightMM: maxGraphicH * 0.6, // leave room for the text block
		GraphicWidthMM:  maxGraphicW * 0.6,
		GraphicPosition: layout.PositionTop,
		CutLines:        cutLines,
	}
}
