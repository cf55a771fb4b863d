package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// CompressionLine draws the fixed horizontal threshold line across the
// scroll viewport. It is layered over the list and never intercepts input.
type CompressionLine struct {
	widget.BaseWidget

	offsetY float32
}

// NewCompressionLine creates the threshold line overlay at the given Y
func NewCompressionLine(offsetY float32) *CompressionLine {
	cl := &CompressionLine{offsetY: offsetY}
	cl.ExtendBaseWidget(cl)
	return cl
}

// OffsetY returns the line's viewport Y coordinate
func (cl *CompressionLine) OffsetY() float32 {
	return cl.offsetY
}

// CreateRenderer creates the widget renderer
func (cl *CompressionLine) CreateRenderer() fyne.WidgetRenderer {
	line := canvas.NewLine(LineColor)
	line.StrokeWidth = 2
	return &compressionLineRenderer{line: line, owner: cl}
}

type compressionLineRenderer struct {
	line  *canvas.Line
	owner *CompressionLine
}

func (r *compressionLineRenderer) Layout(size fyne.Size) {
	r.line.Position1 = fyne.NewPos(CardCornerInset, r.owner.offsetY)
	r.line.Position2 = fyne.NewPos(size.Width-CardCornerInset, r.owner.offsetY)
}

func (r *compressionLineRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *compressionLineRenderer) Refresh() {
	r.line.StrokeColor = LineColor
	canvas.Refresh(r.line)
}

func (r *compressionLineRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.line}
}

func (r *compressionLineRenderer) Destroy() {}
