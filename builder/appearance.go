package builder

import (
	"strings"

	"deploykit/contentstream"
	"deploykit/coords"
	"deploykit/fonts"
)

// FontName is the resource name the appearance streams reference for all
// text runs. The resource dictionary maps it to Helvetica-Bold.
const FontName = "Helv"

// ImageName is the XObject resource name for the icon bitmap.
const ImageName = "Img"

// modelMaxLines caps the model caption below the circle.
const modelMaxLines = 3

// lineHeightRatio spaces stacked model lines relative to the font size.
const lineHeightRatio = 1.2

// BuildAppearance renders one icon as a content stream projected into the
// annotation rectangle described by t. Identical inputs produce
// byte-identical output.
func BuildAppearance(p Params, t coords.Transform) []byte {
	w := contentstream.NewWriter()
	w.Save()
	w.ConcatFit(t)
	writeIcon(w, p)
	w.Restore()
	return w.Bytes()
}

// writeIcon emits the icon in canonical coordinates: circle, ID box and
// label, device image, brand caption, model caption.
func writeIcon(w *contentstream.Writer, p Params) {
	w.StrokeRGB(p.CircleBorderColor)
	w.LineWidth(p.CircleBorderWidth, 4)
	w.FillRGB(p.CircleColor)
	w.Circle(p.Cx, p.Cy, p.Radius)
	w.FillStroke()

	if !p.NoIDBox {
		w.Save()
		w.FillRGB(contentstream.RGB{R: 1, G: 1, B: 1})
		w.StrokeRGB(contentstream.RGB{})
		w.LineWidth(p.IDBoxBorderWidth, 1)
		w.Rect(p.IDBoxX, p.IDBoxY, p.IDBoxW, p.IDBoxH)
		w.FillStroke()
		w.Restore()

		textW := fonts.MeasureString(p.Label, p.IDFontSize)
		tx := p.IDBoxX + (p.IDBoxW-textW)/2
		ty := p.IDBoxY + (p.IDBoxH-p.IDFontSize)/2 + 0.3
		w.BeginText()
		w.FillRGB(p.IDTextColor)
		w.SetFont(FontName, p.IDFontSize, 1)
		w.TextAt(tx, ty)
		w.ShowText(p.Label)
		w.EndText()
	}

	if p.HasImage {
		w.Save()
		w.ConcatScaleAt(p.ImgW, p.ImgH, p.ImgX, p.ImgY)
		w.XObject(ImageName)
		w.Restore()
	}

	if p.BrandText != "" {
		textW := fonts.MeasureString(p.BrandText, p.BrandFontSize)
		tx := p.Cx - textW/2 + p.BrandXOffset
		ty := p.Cy + p.Radius + p.BrandYOffset
		w.BeginText()
		w.FillRGB(p.TextColor)
		w.SetFont(FontName, p.BrandFontSize, 2)
		w.TextAt(tx, ty)
		w.ShowText(p.BrandText)
		w.EndText()
	}

	if p.ModelText != "" {
		writeModelLines(w, p)
	}
}

// writeModelLines draws the model caption, up to modelMaxLines lines
// stacked around the base position so multi-line captions stay centered
// on the same spot as a single line.
func writeModelLines(w *contentstream.Writer, p Params) {
	lines := strings.Split(p.ModelText, "\n")
	if len(lines) > modelMaxLines {
		lines = lines[:modelMaxLines]
	}
	lineHeight := p.ModelFontSize * lineHeightRatio
	baseY := p.Cy - p.Radius + p.ModelYOffset
	if len(lines) > 1 {
		baseY += float64(len(lines)-1) * lineHeight / 2
	}
	for i, line := range lines {
		textW := fonts.MeasureString(line, p.ModelFontSize)
		tx := p.Cx - textW/2 + p.ModelXOffset
		ty := baseY - float64(i)*lineHeight
		w.BeginText()
		w.FillRGB(p.TextColor)
		w.SetFont(FontName, p.ModelFontSize, 2)
		w.TextAt(tx, ty)
		w.ShowText(line)
		w.EndText()
	}
}
