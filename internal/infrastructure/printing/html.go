package printing

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/erp/labeler/internal/domain/labeling"
)

// Helvetica/Arial baseline sits about 0.85em below the top of a line box
// when line-height is 1.
const baselineRatio = 0.85

var sheetTemplate = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><title>{{.Title}}</title>
<style>
@page { size: {{.Width}}pt {{.Height}}pt; margin: 0; }
html, body { margin: 0; padding: 0; }
body { -webkit-print-color-adjust: exact; print-color-adjust: exact; font-family: Helvetica, Arial, sans-serif; }
.page { position: relative; width: {{.Width}}pt; height: {{.Height}}pt; overflow: hidden; page-break-after: always; }
.page:last-child { page-break-after: auto; }
.box { position: absolute; box-sizing: border-box; }
.text { position: absolute; white-space: pre; line-height: 1; }
</style></head><body>
{{- range .Pages}}
<div class="page">
{{- range .Boxes}}
<div class="box" style="left:{{.Left}}pt;top:{{.Top}}pt;width:{{.Width}}pt;height:{{.Height}}pt;{{.Paint}}"></div>
{{- end}}
{{- range .Texts}}
<div class="text" style="left:{{.Left}}pt;top:{{.Top}}pt;font-size:{{.Size}}pt;font-weight:{{.Weight}};color:{{.Color}};">{{.Text}}</div>
{{- end}}
</div>
{{- end}}
</body></html>
`))

type htmlSheet struct {
	Title  string
	Width  string
	Height string
	Pages  []htmlPage
}

type htmlPage struct {
	Boxes []htmlBox
	Texts []htmlText
}

type htmlBox struct {
	Left, Top, Width, Height string
	Paint                    template.CSS
}

type htmlText struct {
	Left, Top, Size string
	Weight          string
	Color           template.CSS
	Text            string
}

// SheetHTML turns a laid-out sheet into absolutely positioned HTML with one
// block per page. An empty sheet produces one blank page.
func SheetHTML(sheet labeling.Sheet, title string) (string, error) {
	g := sheet.Geometry
	doc := htmlSheet{
		Title:  title,
		Width:  pt(g.PageWidth),
		Height: pt(g.PageHeight),
	}

	for _, page := range sheet.Pages {
		var hp htmlPage
		for _, cell := range page.Cells {
			hp.Boxes = append(hp.Boxes, box(g, cell.Outline))
			for _, fill := range cell.Fills {
				hp.Boxes = append(hp.Boxes, box(g, fill))
			}
			for _, t := range cell.Texts {
				hp.Texts = append(hp.Texts, text(g, t))
			}
		}
		doc.Pages = append(doc.Pages, hp)
	}
	if len(doc.Pages) == 0 {
		doc.Pages = []htmlPage{{}}
	}

	var buf bytes.Buffer
	if err := sheetTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to build sheet HTML: %w", err)
	}
	return buf.String(), nil
}

func box(g labeling.Geometry, op labeling.RectOp) htmlBox {
	paint := template.CSS("border:1pt solid " + op.Color.Hex() + ";")
	if op.Mode == labeling.RectFilled {
		paint = template.CSS("background:" + op.Color.Hex() + ";")
	}
	return htmlBox{
		Left:   pt(op.X),
		Top:    pt(g.PageHeight - (op.Y + op.Height)),
		Width:  pt(op.Width),
		Height: pt(op.Height),
		Paint:  paint,
	}
}

func text(g labeling.Geometry, op labeling.TextOp) htmlText {
	weight := "normal"
	if op.Font.Style == labeling.FontBold {
		weight = "bold"
	}
	return htmlText{
		Left:   pt(op.X),
		Top:    pt(g.PageHeight - op.Y - op.Font.Size*baselineRatio),
		Size:   pt(op.Font.Size),
		Weight: weight,
		Color:  template.CSS(op.Color.Hex()),
		Text:   op.Text,
	}
}

func pt(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
