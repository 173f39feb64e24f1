// Package canvasrenderer draws computed cards via github.com/tdewolff/canvas.
// The drawing context works in millimeters throughout; font sizes cross the
// mm/pt boundary exactly once, when a face is created.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/tzdruck/tzdruck/layout"
	"github.com/tzdruck/tzdruck/renderer"
)

// Frame and line styling, matching the printed test sheets: red marks the
// bleed edge, blue the cut edge, green the safety area, orange the S1
// divider.
var (
	bleedFrameColor   = canvas.RGBA(1, 0, 0, 1)
	cutFrameColor     = canvas.RGBA(0, 0, 1, 1)
	safetyFrameColor  = canvas.RGBA(0, 1, 0, 1)
	dividerColor      = canvas.RGBA(1, 140.0/255.0, 0, 1)
	writingLineColor  = canvas.RGBA(80.0/255.0, 80.0/255.0, 80.0/255.0, 1)
	graphicFrameColor = canvas.RGBA(0.7, 0.7, 0.7, 1)
)

const (
	frameWidthMM       = 0.3
	writingLineWidthMM = 0.25
	lineSideMarginMM   = 2.0 // left/right inset of S1 writing lines
)

// Renderer implements renderer.CardRenderer and renderer.TextShaper on top
// of tdewolff/canvas.
type Renderer struct {
	fontBytes []byte

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var (
	_ renderer.CardRenderer = (*Renderer)(nil)
	_ renderer.TextShaper   = (*Renderer)(nil)
)

// Options configures the canvas renderer. The font can be provided either
// by Bytes or by Path; text-free cards render without any font.
type Options struct {
	FontBytes []byte
	FontPath  string
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{fontBytes: opts.FontBytes}
	if len(r.fontBytes) == 0 && opts.FontPath != "" {
		data, _ := os.ReadFile(opts.FontPath) // error surfaces when the font is actually needed
		r.fontBytes = data
	}
	return r
}

// RenderPDF renders one card per page into a single PDF.
func (r *Renderer) RenderPDF(cards []layout.Card) ([]byte, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("no cards to render")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, cards[0].Dimensions.FileWidthMM, cards[0].Dimensions.FileHeightMM, nil)
	for i, card := range cards {
		if i > 0 {
			writer.NewPage(card.Dimensions.FileWidthMM, card.Dimensions.FileHeightMM)
		}
		c := canvas.New(card.Dimensions.FileWidthMM, card.Dimensions.FileHeightMM)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, same as the layout math
		if err := r.drawCard(ctx, card); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Rasterize renders one card into a pixel image at dpi, oversampled by the
// profile's render scale.
func (r *Renderer) Rasterize(card layout.Card, dpi int, scale float64) (image.Image, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("rasterize: invalid dpi %d", dpi)
	}
	if scale <= 0 {
		scale = 1.0
	}
	c := canvas.New(card.Dimensions.FileWidthMM, card.Dimensions.FileHeightMM)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	if err := r.drawCard(ctx, card); err != nil {
		return nil, err
	}
	res := canvas.DPMM(float64(dpi) / layout.MmPerInch * scale)
	return rasterizer.Draw(c, res, canvas.DefaultColorSpace), nil
}

// TextHeightMM implements renderer.TextShaper using the loaded font's
// metrics. Callers add the graphic-text gap and bottom offset themselves.
func (r *Renderer) TextHeightMM(lineCount int, fontSizePT float64) (float64, error) {
	if lineCount <= 0 {
		return 0, nil
	}
	face, err := r.fontFace(fontSizePT, canvas.Black)
	if err != nil {
		return 0, err
	}
	return float64(lineCount) * face.Metrics().LineHeight, nil
}

func (r *Renderer) drawCard(ctx *canvas.Context, card layout.Card) error {
	d := card.Dimensions
	bleed := d.BleedMM
	safety := d.SafetyMarginMM

	// white background over the whole file area
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(0, 0, canvas.Rectangle(d.FileWidthMM, d.FileHeightMM))

	if card.CutLines {
		r.drawFrame(ctx, 0, 0, d.FileWidthMM, d.FileHeightMM, bleedFrameColor)
		r.drawFrame(ctx, bleed, bleed, d.FinalWidthMM, d.FinalHeightMM, cutFrameColor)
		r.drawFrame(ctx, bleed+safety, bleed+safety, d.CanvasWidthMM, d.CanvasHeightMM, safetyFrameColor)
	}

	canvasX := bleed + safety
	canvasY := bleed + safety

	switch card.Layout {
	case layout.LayoutS1:
		return r.drawS1(ctx, card, canvasX, canvasY)
	default:
		return r.drawS2(ctx, card, canvasX, canvasY)
	}
}

// drawS2 draws the single-region card: graphic placeholder on top, text
// block anchored at the bottom of the canvas.
func (r *Renderer) drawS2(ctx *canvas.Context, card layout.Card, canvasX, canvasY float64) error {
	d := card.Dimensions

	var textBlockMM float64
	if len(card.TextLines) > 0 {
		lineHeight := card.FontSizePT * layout.PtToMm * layout.LineHeightFactor
		textBlockMM = float64(len(card.TextLines))*lineHeight + d.GraphicTextGapMM + d.TextBottomOffsetMM

		if err := r.drawTextLines(ctx, card.TextLines, card.FontSizePT,
			canvasX, canvasY+d.CanvasHeightMM-textBlockMM+d.GraphicTextGapMM,
			d.CanvasWidthMM, lineHeight); err != nil {
			return err
		}
	}

	if card.GraphicHeightMM > 0 {
		yOff := layout.GraphicYOffsetMM(textBlockMM, card.GraphicHeightMM, d.CanvasHeightMM, card.GraphicPosition)
		gx := canvasX + (d.CanvasWidthMM-card.GraphicWidthMM)/2
		r.drawFrame(ctx, gx, canvasY+yOff, card.GraphicWidthMM, card.GraphicHeightMM, graphicFrameColor)
	}
	return nil
}

// drawS1 draws the two-region card: graphic placeholder left, writing lines
// right, separated by the divider.
func (r *Renderer) drawS1(ctx *canvas.Context, card layout.Card, canvasX, canvasY float64) error {
	d := card.Dimensions
	split := card.Split
	grid := card.WritingGrid

	dividerX := canvasX + split.LeftWidthMM
	if card.CutLines {
		r.strokeLine(ctx, dividerX, canvasY, dividerX, canvasY+d.CanvasHeightMM, dividerColor, frameWidthMM)
	}

	// writing lines fill the right region, one per grid row, drawn at the
	// bottom of each row
	lineX := dividerX + lineSideMarginMM
	lineW := split.RightWidthMM - 2*lineSideMarginMM
	if lineW > 0 {
		for i := 1; i <= grid.LineCount; i++ {
			y := canvasY + float64(i)*grid.LineHeightMM
			r.strokeLine(ctx, lineX, y, lineX+lineW, y, writingLineColor, writingLineWidthMM)
		}
	}

	if card.GraphicHeightMM > 0 {
		gx := canvasX + (split.LeftWidthMM-card.GraphicWidthMM)/2
		yOff := layout.GraphicYOffsetMM(0, card.GraphicHeightMM, d.CanvasHeightMM, card.GraphicPosition)
		r.drawFrame(ctx, gx, canvasY+yOff, card.GraphicWidthMM, card.GraphicHeightMM, graphicFrameColor)
	}

	if len(card.TextLines) > 0 {
		lineHeight := grid.LineHeightMM
		blockH := float64(len(card.TextLines)) * lineHeight
		if err := r.drawTextLines(ctx, card.TextLines, grid.FontSizePT,
			canvasX, canvasY+d.CanvasHeightMM-blockH,
			split.LeftWidthMM, lineHeight); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawTextLines(ctx *canvas.Context, lines []string, fontSizePT, x, y, width, lineHeightMM float64) error {
	face, err := r.fontFace(fontSizePT, canvas.Black)
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	cursorY := y
	for _, line := range lines {
		textLine := canvas.NewTextLine(face, line, canvas.Left)
		ctx.DrawText(x, cursorY+metrics.Ascent, textLine)
		cursorY += lineHeightMM
	}
	_ = width // lines are pre-fitted by the caller; no wrapping here
	return nil
}

func (r *Renderer) drawFrame(ctx *canvas.Context, x, y, w, h float64, col color.Color) {
	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(col)
	ctx.SetStrokeWidth(frameWidthMM)
	ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

func (r *Renderer) strokeLine(ctx *canvas.Context, x1, y1, x2, y2 float64, col color.Color, width float64) {
	ctx.SetStrokeColor(col)
	ctx.SetStrokeWidth(width)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(x2-x1, y2-y1)
	ctx.DrawPath(x1, y1, p)
}

func (r *Renderer) fontFace(sizePT float64, col color.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(sizePT, col, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if r.family != nil {
		return r.family, nil
	}
	if len(r.fontBytes) == 0 {
		return nil, fmt.Errorf("no font configured (set Options.FontBytes or Options.FontPath)")
	}
	family := canvas.NewFontFamily("zeichen")
	if err := family.LoadFont(r.fontBytes, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	r.family = family
	return family, nil
}
