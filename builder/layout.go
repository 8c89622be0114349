// Package builder computes the canonical icon layout and assembles
// appearance streams from it. All geometry here lives in the fixed
// CanonW x CanonH design space; projecting into a real annotation
// rectangle is the job of a coords.Transform applied at build time.
package builder

import (
	"deploykit/contentstream"
	"deploykit/icons"
)

// Canonical design-space dimensions. Every layout quantity is derived from
// these two constants, never from a target rectangle.
const (
	CanonW = 25.0
	CanonH = 30.0
)

// circleOverlap is how far the circle rises into the ID box, in canonical
// units.
const circleOverlap = 2.0

// Params is the fully resolved canonical layout plus the style values the
// appearance stream needs. Label is the already-assigned identifier text
// (empty when the device type has no label scheme).
type Params struct {
	Cx, Cy, Radius float64

	IDBoxX, IDBoxY, IDBoxW, IDBoxH float64

	HasImage               bool
	ImgX, ImgY, ImgW, ImgH float64

	CircleColor       contentstream.RGB
	CircleBorderColor contentstream.RGB
	CircleBorderWidth float64

	NoIDBox          bool
	IDBoxBorderWidth float64
	IDFontSize       float64
	IDTextColor      contentstream.RGB
	Label            string

	TextColor contentstream.RGB

	BrandText     string
	BrandFontSize float64
	BrandXOffset  float64
	BrandYOffset  float64

	ModelText     string
	ModelFontSize float64
	ModelXOffset  float64
	ModelYOffset  float64
}

// Layout derives the canonical geometry for one icon. imgW and imgH are
// the source bitmap dimensions in pixels; pass zeros when there is no
// image.
func Layout(cfg icons.Config, label string, imgW, imgH int) Params {
	cx := CanonW / 2
	idBoxW := CanonW * cfg.IDBoxWidthRatio
	idBoxX := cx - idBoxW/2
	idBoxY := CanonH - cfg.IDBoxHeight + cfg.IDBoxYOffset

	circleTop := idBoxY + circleOverlap
	circleArea := circleTop // circle bottom sits on y=0
	radius := minf(CanonW, circleArea)/2 - 0.3
	cy := circleTop - radius

	idColor := cfg.CircleColor
	if cfg.IDTextColor != nil {
		idColor = *cfg.IDTextColor
	}

	p := Params{
		Cx: cx, Cy: cy, Radius: radius,
		IDBoxX: idBoxX, IDBoxY: idBoxY, IDBoxW: idBoxW, IDBoxH: cfg.IDBoxHeight,

		CircleColor:       cfg.CircleColor,
		CircleBorderColor: cfg.CircleBorderColor,
		CircleBorderWidth: cfg.CircleBorderWidth,

		NoIDBox:          cfg.NoIDBox,
		IDBoxBorderWidth: cfg.IDBoxBorderWidth,
		IDFontSize:       cfg.IDFontSize,
		IDTextColor:      idColor,
		Label:            label,

		TextColor: cfg.TextColor,

		BrandText:     cfg.BrandText,
		BrandFontSize: cfg.BrandFontSize,
		BrandXOffset:  cfg.BrandXOffset,
		BrandYOffset:  cfg.BrandYOffset,

		ModelText:     icons.DisplayModel(cfg),
		ModelFontSize: cfg.ModelFontSize,
		ModelXOffset:  cfg.ModelXOffset,
		ModelYOffset:  cfg.ModelYOffset,
	}

	if imgW > 0 && imgH > 0 && !cfg.NoImage {
		scale := (radius * cfg.ImgScaleRatio) / float64(maxi(imgW, imgH))
		p.ImgW = float64(imgW) * scale
		p.ImgH = float64(imgH) * scale
		p.ImgX = cx - p.ImgW/2 + cfg.ImgXOffset
		p.ImgY = cy - p.ImgH/2 + cfg.ImgYOffset
		p.HasImage = true
	}
	return p
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
