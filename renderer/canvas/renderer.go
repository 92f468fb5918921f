package canvasrenderer

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/billboard/fonts"
	"github.com/ByLCY/billboard/layout"
	"github.com/ByLCY/billboard/renderer"
)

const (
	outlineWidth = 0.3
	wordGapRatio = 0.12 // vertical inset of a word box, relative to the line height
)

var (
	boardFill   = canvas.Hex("#f8f8f8")
	boardStroke = canvas.Hex("#333333")
	wordFill    = canvas.Hex("#0F62FE")
	labelColor  = canvas.White
)

// Renderer draws solved billboards via github.com/tdewolff/canvas, one PDF page per case.
type Renderer struct {
	cell   float64 // mm per billboard unit
	margin float64 // mm

	fontPath string
	fontBlob []byte

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Cell   layout.Length // paper length of one billboard unit, defaults to 1mm
	Margin layout.Length
	// Word labels are drawn only when a font is provided, either as bytes or a path.
	FontBytes []byte
	FontPath  string
}

// NewRenderer creates a renderer from opts.
func NewRenderer(opts Options) *Renderer {
	cell := opts.Cell.ToMM()
	if cell <= 0 {
		cell = 1
	}
	return &Renderer{
		cell:     cell,
		margin:   opts.Margin.ToMM(),
		fontPath: opts.FontPath,
		fontBlob: opts.FontBytes,
	}
}

// Render renders every solved case with a positive font size into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	var cases []layout.CaseResult
	for _, c := range result.Cases {
		if renderable(c) {
			cases = append(cases, c)
		}
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("缺少可渲染的广告牌")
	}

	var buf bytes.Buffer
	w, h := r.pageSize(cases[0].Billboard)
	writer := pdf.New(&buf, w, h, nil)
	writer.SetInfo("Billboard preview", fmt.Sprintf("%d cases", len(cases)), "", "", "billboard")
	for i, c := range cases {
		w, h := r.pageSize(c.Billboard)
		if i > 0 {
			writer.NewPage(w, h)
		}
		cv := canvas.New(w, h)
		ctx := canvas.NewContext(cv)
		ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与排版保持左上角为原点

		if err := r.drawCase(ctx, c); err != nil {
			return nil, fmt.Errorf("case %d: %w", c.Case, err)
		}
		cv.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func renderable(c layout.CaseResult) bool {
	return c.OK() && c.FontSize > 0 && c.Billboard.Width > 0 && c.Billboard.Height > 0 && len(c.Lines) > 0
}

func (r *Renderer) pageSize(b layout.Billboard) (float64, float64) {
	return float64(b.Width)*r.cell + 2*r.margin, float64(b.Height)*r.cell + 2*r.margin
}

func (r *Renderer) drawCase(ctx *canvas.Context, c layout.CaseResult) error {
	b := c.Billboard
	ctx.SetFillColor(boardFill)
	ctx.SetStrokeColor(boardStroke)
	ctx.SetStrokeWidth(outlineWidth)
	ctx.DrawPath(r.margin, r.margin, canvas.Rectangle(float64(b.Width)*r.cell, float64(b.Height)*r.cell))

	face, err := r.labelFace(float64(c.FontSize) * r.cell)
	if err != nil {
		return err
	}

	lineHeight := float64(c.FontSize) * r.cell
	inset := lineHeight * wordGapRatio
	for i, line := range c.Lines {
		y := r.margin + float64(i)*lineHeight
		x := r.margin
		for idx := line.Start; idx < line.End; idx++ {
			n := b.WordLengths[idx]
			width := float64(c.FontSize*n) * r.cell

			ctx.SetFillColor(wordFill)
			ctx.SetStrokeWidth(0)
			ctx.DrawPath(x, y+inset, canvas.Rectangle(width, lineHeight-2*inset))

			if face != nil && idx < len(b.Words) {
				textLine := canvas.NewTextLine(face, b.Words[idx], canvas.Left)
				// 基线位置：行顶部加上字体上升部
				ctx.DrawText(x, y+face.Metrics().Ascent, textLine)
			}
			x += float64(c.FontSize*(n+1)) * r.cell
		}
	}
	return nil
}

// labelFace returns nil when no font was configured.
func (r *Renderer) labelFace(sizeMM float64) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily()
	if err != nil || family == nil {
		return nil, err
	}
	return family.Face(toPt(sizeMM), labelColor, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	data := r.fontBlob
	if len(data) == 0 {
		if r.fontPath == "" {
			return nil, nil
		}
		var err error
		if data, err = fonts.Load(r.fontPath); err != nil {
			return nil, err
		}
	}
	family := canvas.NewFontFamily("billboard")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}
	r.family = family
	return family, nil
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }
