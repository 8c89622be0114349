package builder

import (
	"fmt"
	"strings"

	"deploykit/contentstream"
	"deploykit/coords"
	"deploykit/fonts"
	"deploykit/icons"
)

// CompoundScale maps canonical units to page points for compound icons,
// roughly 28 x 34 points per icon.
const CompoundScale = 1.12

// CompoundFontName is the font resource name used inside compound
// component streams and their /DA strings.
const CompoundFontName = "HelvBld"

// Component roles, in the order Components emits them.
const (
	RoleRootIDText  = "root_id_text"
	RoleIDBoxBorder = "id_box_border"
	RoleContainer   = "container"
	RoleCircle      = "circle"
	RoleImage       = "image"
	RoleModelText   = "model_text"
	RoleBrandText   = "brand_text"
)

// Annotation subtypes for compound components.
const (
	SubtypeFreeText = "FreeText"
	SubtypeSquare   = "Square"
	SubtypeCircle   = "Circle"
)

// Component is one annotation of a compound icon group. Each carries its
// own appearance stream drawn at absolute page coordinates; the form
// Matrix translates the content into form-local space.
type Component struct {
	Role    string
	Subtype string
	Rect    coords.Rect
	Content []byte

	NeedsFont  bool
	NeedsImage bool

	// Annotation dictionary extras.
	DA            string
	Contents      string
	InteriorColor []float64
	Color         []float64
	BorderWidth   float64
	RectDiff      float64
}

// componentRects is the absolute page geometry of a compound icon.
type componentRects struct {
	container coords.Rect
	idBox     coords.Rect
	idText    coords.Rect
	circle    coords.Rect
	image     coords.Rect
	hasImage  bool
	modelText coords.Rect
	brandText coords.Rect
}

// Components renders one icon as 3 to 7 self-contained annotation
// components centered at the given page point. Viewers that regenerate
// appearance streams on move keep each shape intact because every
// component is a primitive they understand.
func Components(cfg icons.Config, label string, center coords.Point, imgW, imgH int) []Component {
	rects := compoundRects(cfg, center, imgW, imgH)

	idColor := cfg.CircleColor
	if cfg.IDTextColor != nil {
		idColor = *cfg.IDTextColor
	}
	idLabel := label
	if cfg.NoIDBox {
		idLabel = ""
	}

	out := make([]Component, 0, 7)

	out = append(out, Component{
		Role:      RoleRootIDText,
		Subtype:   SubtypeFreeText,
		Rect:      rects.idText,
		Content:   freetextContent(rects.idText, idLabel, cfg.IDFontSize, idColor),
		NeedsFont: true,
		DA:        daString(idColor, cfg.IDFontSize),
		Contents:  idLabel,
	})

	if !cfg.NoIDBox {
		out = append(out, Component{
			Role:          RoleIDBoxBorder,
			Subtype:       SubtypeSquare,
			Rect:          rects.idBox,
			Content:       idBoxContent(rects.idBox, cfg.IDBoxBorderWidth),
			InteriorColor: []float64{1, 1, 1},
			Color:         []float64{0, 0, 0},
			BorderWidth:   cfg.IDBoxBorderWidth,
			RectDiff:      cfg.IDBoxBorderWidth / 2,
		})
	}

	out = append(out, Component{
		Role:      RoleContainer,
		Subtype:   SubtypeFreeText,
		Rect:      rects.container,
		Content:   nil,
		NeedsFont: true,
		DA:        fmt.Sprintf("0 0 0 rg /%s 1 Tf", CompoundFontName),
	})

	out = append(out, Component{
		Role:          RoleCircle,
		Subtype:       SubtypeCircle,
		Rect:          rects.circle,
		Content:       circleContent(rects.circle, cfg.CircleColor, cfg.CircleBorderColor, cfg.CircleBorderWidth),
		InteriorColor: []float64{cfg.CircleColor.R, cfg.CircleColor.G, cfg.CircleColor.B},
		Color:         []float64{cfg.CircleBorderColor.R, cfg.CircleBorderColor.G, cfg.CircleBorderColor.B},
		BorderWidth:   cfg.CircleBorderWidth,
		RectDiff:      cfg.CircleBorderWidth / 2,
	})

	if rects.hasImage {
		out = append(out, Component{
			Role:       RoleImage,
			Subtype:    SubtypeSquare,
			Rect:       rects.image,
			Content:    imageContent(rects.image),
			NeedsImage: true,
			Color:      []float64{1, 0, 0},
		})
	}

	if model := icons.DisplayModel(cfg); model != "" {
		out = append(out, Component{
			Role:      RoleModelText,
			Subtype:   SubtypeFreeText,
			Rect:      rects.modelText,
			Content:   freetextContent(rects.modelText, model, cfg.ModelFontSize, cfg.TextColor),
			NeedsFont: true,
			DA:        daString(cfg.TextColor, cfg.ModelFontSize),
			Contents:  model,
		})
	}

	if cfg.BrandText != "" {
		out = append(out, Component{
			Role:      RoleBrandText,
			Subtype:   SubtypeFreeText,
			Rect:      rects.brandText,
			Content:   freetextContent(rects.brandText, cfg.BrandText, cfg.BrandFontSize, cfg.TextColor),
			NeedsFont: true,
			DA:        daString(cfg.TextColor, cfg.BrandFontSize),
			Contents:  cfg.BrandText,
		})
	}

	return out
}

// compoundRects scales the canonical layout around the page center point.
func compoundRects(cfg icons.Config, center coords.Point, imgW, imgH int) componentRects {
	scale := CompoundScale
	ox := center.X - (CanonW*scale)/2
	oy := center.Y - (CanonH*scale)/2

	toPage := func(x, y, w, h float64) coords.Rect {
		return coords.Rect{
			X1: ox + x*scale,
			Y1: oy + y*scale,
			X2: ox + (x+w)*scale,
			Y2: oy + (y+h)*scale,
		}
	}

	cx := CanonW / 2
	idBoxW := CanonW * cfg.IDBoxWidthRatio
	idBoxX := cx - idBoxW/2
	idBoxY := CanonH - cfg.IDBoxHeight + cfg.IDBoxYOffset
	circleTop := idBoxY + circleOverlap
	radius := minf(CanonW, circleTop)/2 - 0.3
	cy := circleTop - radius

	r := componentRects{
		container: toPage(0, 0, CanonW, CanonH),
		idBox:     toPage(idBoxX, idBoxY, idBoxW, cfg.IDBoxHeight),
		idText:    toPage(0, idBoxY-2, CanonW, cfg.IDBoxHeight+4),
		circle:    toPage(cx-radius, cy-radius, 2*radius, 2*radius),
	}

	if imgW > 0 && imgH > 0 {
		s := (radius * cfg.ImgScaleRatio) / float64(maxi(imgW, imgH))
		w := float64(imgW) * s
		h := float64(imgH) * s
		x := cx - w/2 + cfg.ImgXOffset
		y := cy - h/2 + cfg.ImgYOffset
		r.image = toPage(x, y, w, h)
		r.hasImage = true
	}

	modelY := cy - radius + cfg.ModelYOffset - cfg.ModelFontSize*2
	if modelY < 0 {
		modelY = 0
	}
	r.modelText = toPage(0, modelY, CanonW, cfg.ModelFontSize*5)

	brandY := cy + radius + cfg.BrandYOffset - cfg.BrandFontSize
	r.brandText = toPage(0, brandY, CanonW, cfg.BrandFontSize*4)

	return r
}

func daString(c contentstream.RGB, size float64) string {
	return fmt.Sprintf("%.4f %.4f %.4f rg /%s %.2f Tf", c.R, c.G, c.B, CompoundFontName, size)
}

func circleContent(rect coords.Rect, fill, border contentstream.RGB, borderWidth float64) []byte {
	c := rect.Center()
	radius := minf(rect.Width(), rect.Height()) / 2

	w := contentstream.NewWriter()
	w.StrokeRGB(border)
	w.LineWidth(borderWidth, 4)
	w.FillRGB(fill)
	w.Circle(c.X, c.Y, radius)
	w.FillStroke()
	return w.Bytes()
}

func idBoxContent(rect coords.Rect, borderWidth float64) []byte {
	w := contentstream.NewWriter()
	w.FillRGB(contentstream.RGB{R: 1, G: 1, B: 1})
	w.StrokeRGB(contentstream.RGB{})
	w.LineWidth(borderWidth, 2)
	w.Rect(rect.X1, rect.Y1, rect.Width(), rect.Height())
	w.FillStroke()
	return w.Bytes()
}

func imageContent(rect coords.Rect) []byte {
	w := contentstream.NewWriter()
	w.Save()
	w.ConcatScaleAt(rect.Width(), rect.Height(), rect.X1, rect.Y1)
	w.XObject(ImageName)
	w.Restore()
	return w.Bytes()
}

// freetextContent centers up to three lines of text in the rect, using Tm
// so each line positions absolutely.
func freetextContent(rect coords.Rect, text string, fontSize float64, color contentstream.RGB) []byte {
	lines := []string{""}
	if text != "" {
		lines = strings.Split(text, "\n")
		if len(lines) > modelMaxLines {
			lines = lines[:modelMaxLines]
		}
	}
	center := rect.Center()
	lineHeight := fontSize * lineHeightRatio
	baseY := center.Y - fontSize/2 + 0.3
	if len(lines) > 1 {
		baseY += float64(len(lines)-1) * lineHeight / 2
	}

	w := contentstream.NewWriter()
	w.BeginText()
	w.FillRGB(color)
	w.SetFont(CompoundFontName, fontSize, 2)
	for i, line := range lines {
		lw := fonts.MeasureString(line, fontSize)
		w.TextMatrixAt(center.X-lw/2, baseY-float64(i)*lineHeight)
		w.ShowText(line)
	}
	w.EndText()
	return w.Bytes()
}
