// Package contentstream emits PDF content-stream operators with the fixed
// decimal formatting the icon renderer relies on for deterministic output.
package contentstream

import (
	"fmt"
	"strings"

	"deploykit/coords"
)

// BezierK is the control-point distance ratio approximating a quarter
// circle with a cubic bezier.
const BezierK = 0.5522847498

// RGB is a DeviceRGB color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Writer accumulates drawing operators, one per line. Output for identical
// call sequences is byte-identical.
type Writer struct {
	ops []string
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) op(format string, args ...interface{}) {
	w.ops = append(w.ops, fmt.Sprintf(format, args...))
}

func (w *Writer) Save()    { w.ops = append(w.ops, "q") }
func (w *Writer) Restore() { w.ops = append(w.ops, "Q") }

// ConcatFit applies a uniform scale-and-translate transform. One cm at the
// top of the stream is what keeps font sizes, stroke widths and offsets
// scaling together.
func (w *Writer) ConcatFit(t coords.Transform) {
	w.op("%.6f 0 0 %.6f %.3f %.3f cm", t.Scale, t.Scale, t.OffsetX, t.OffsetY)
}

// ConcatScaleAt maps the unit square to a width x height box at (x, y);
// the placement transform for image XObjects.
func (w *Writer) ConcatScaleAt(width, height, x, y float64) {
	w.op("%.3f 0 0 %.3f %.3f %.3f cm", width, height, x, y)
}

func (w *Writer) FillRGB(c RGB)   { w.op("%.4f %.4f %.4f rg", c.R, c.G, c.B) }
func (w *Writer) StrokeRGB(c RGB) { w.op("%.4f %.4f %.4f RG", c.R, c.G, c.B) }

// LineWidth emits a w operator with the given number of decimals; the icon
// layout uses different precisions for circle and box borders.
func (w *Writer) LineWidth(v float64, decimals int) {
	w.op("%.*f w", decimals, v)
}

// Circle appends a full circle path from four bezier quarters, starting at
// the rightmost point, followed by h to close it.
func (w *Writer) Circle(cx, cy, r float64) {
	k := BezierK
	w.op("%.3f %.3f m", cx+r, cy)
	w.op("%.3f %.3f %.3f %.3f %.3f %.3f c", cx+r, cy+r*k, cx+r*k, cy+r, cx, cy+r)
	w.op("%.3f %.3f %.3f %.3f %.3f %.3f c", cx-r*k, cy+r, cx-r, cy+r*k, cx-r, cy)
	w.op("%.3f %.3f %.3f %.3f %.3f %.3f c", cx-r, cy-r*k, cx-r*k, cy-r, cx, cy-r)
	w.op("%.3f %.3f %.3f %.3f %.3f %.3f c", cx+r*k, cy-r, cx+r, cy-r*k, cx+r, cy)
	w.ops = append(w.ops, "h")
}

func (w *Writer) Rect(x, y, width, height float64) {
	w.op("%.3f %.3f %.3f %.3f re", x, y, width, height)
}

func (w *Writer) Fill()       { w.ops = append(w.ops, "f") }
func (w *Writer) Stroke()     { w.ops = append(w.ops, "S") }
func (w *Writer) FillStroke() { w.ops = append(w.ops, "B") }

func (w *Writer) BeginText() { w.ops = append(w.ops, "BT") }
func (w *Writer) EndText()   { w.ops = append(w.ops, "ET") }

// SetFont selects a font resource at a size formatted with the given number
// of decimals.
func (w *Writer) SetFont(name string, size float64, decimals int) {
	w.op("/%s %.*f Tf", name, decimals, size)
}

func (w *Writer) TextAt(x, y float64) { w.op("%.3f %.3f Td", x, y) }

// TextMatrixAt positions text absolutely, resetting any prior Td offsets.
func (w *Writer) TextMatrixAt(x, y float64) { w.op("1 0 0 1 %.3f %.3f Tm", x, y) }

func (w *Writer) ShowText(s string) { w.op("(%s) Tj", Escape(s)) }

func (w *Writer) XObject(name string) { w.op("/%s Do", name) }

// Raw appends a pre-formatted operator line unchanged.
func (w *Writer) Raw(line string) { w.ops = append(w.ops, line) }

// Bytes returns the stream with operators joined by newlines.
func (w *Writer) Bytes() []byte {
	return []byte(strings.Join(w.ops, "\n"))
}

// Escape backslash-escapes the delimiters of a PDF literal string.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "(", "\\(")
	s = strings.ReplaceAll(s, ")", "\\)")
	return s
}
