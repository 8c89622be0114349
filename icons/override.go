package icons

import "deploykit/contentstream"

// Override is a partial Config: nil fields leave the base value alone.
// The same shape backs the builtin per-icon tuning table and the TOML
// override store.
type Override struct {
	CircleColor       *[3]float64 `toml:"circle_color,omitempty"`
	CircleBorderColor *[3]float64 `toml:"circle_border_color,omitempty"`
	CircleBorderWidth *float64    `toml:"circle_border_width,omitempty"`

	IDBoxHeight      *float64 `toml:"id_box_height,omitempty"`
	IDBoxWidthRatio  *float64 `toml:"id_box_width_ratio,omitempty"`
	IDBoxBorderWidth *float64 `toml:"id_box_border_width,omitempty"`
	IDBoxYOffset     *float64 `toml:"id_box_y_offset,omitempty"`
	NoIDBox          *bool    `toml:"no_id_box,omitempty"`
	IDFontSize       *float64 `toml:"id_font_size,omitempty"`
	IDTextColor      *[3]float64 `toml:"id_text_color,omitempty"`

	ImgScaleRatio *float64 `toml:"img_scale_ratio,omitempty"`
	ImgXOffset    *float64 `toml:"img_x_offset,omitempty"`
	ImgYOffset    *float64 `toml:"img_y_offset,omitempty"`

	BrandText     *string  `toml:"brand_text,omitempty"`
	BrandFontSize *float64 `toml:"brand_font_size,omitempty"`
	BrandXOffset  *float64 `toml:"brand_x_offset,omitempty"`
	BrandYOffset  *float64 `toml:"brand_y_offset,omitempty"`

	ModelFontSize     *float64 `toml:"model_font_size,omitempty"`
	ModelXOffset      *float64 `toml:"model_x_offset,omitempty"`
	ModelYOffset      *float64 `toml:"model_y_offset,omitempty"`
	ModelTextOverride *string  `toml:"model_text_override,omitempty"`
	ModelUppercase    *bool    `toml:"model_uppercase,omitempty"`
}

func rgb(v [3]float64) contentstream.RGB {
	return contentstream.RGB{R: v[0], G: v[1], B: v[2]}
}

// Apply folds the override into cfg.
func (o Override) Apply(cfg *Config) {
	if o.CircleColor != nil {
		cfg.CircleColor = rgb(*o.CircleColor)
	}
	if o.CircleBorderColor != nil {
		cfg.CircleBorderColor = rgb(*o.CircleBorderColor)
	}
	if o.CircleBorderWidth != nil {
		cfg.CircleBorderWidth = *o.CircleBorderWidth
	}
	if o.IDBoxHeight != nil {
		cfg.IDBoxHeight = *o.IDBoxHeight
	}
	if o.IDBoxWidthRatio != nil {
		cfg.IDBoxWidthRatio = *o.IDBoxWidthRatio
	}
	if o.IDBoxBorderWidth != nil {
		cfg.IDBoxBorderWidth = *o.IDBoxBorderWidth
	}
	if o.IDBoxYOffset != nil {
		cfg.IDBoxYOffset = *o.IDBoxYOffset
	}
	if o.NoIDBox != nil {
		cfg.NoIDBox = *o.NoIDBox
	}
	if o.IDFontSize != nil {
		cfg.IDFontSize = *o.IDFontSize
	}
	if o.IDTextColor != nil {
		c := rgb(*o.IDTextColor)
		cfg.IDTextColor = &c
	}
	if o.ImgScaleRatio != nil {
		cfg.ImgScaleRatio = *o.ImgScaleRatio
	}
	if o.ImgXOffset != nil {
		cfg.ImgXOffset = *o.ImgXOffset
	}
	if o.ImgYOffset != nil {
		cfg.ImgYOffset = *o.ImgYOffset
	}
	if o.BrandText != nil {
		cfg.BrandText = *o.BrandText
	}
	if o.BrandFontSize != nil {
		cfg.BrandFontSize = *o.BrandFontSize
	}
	if o.BrandXOffset != nil {
		cfg.BrandXOffset = *o.BrandXOffset
	}
	if o.BrandYOffset != nil {
		cfg.BrandYOffset = *o.BrandYOffset
	}
	if o.ModelFontSize != nil {
		cfg.ModelFontSize = *o.ModelFontSize
	}
	if o.ModelXOffset != nil {
		cfg.ModelXOffset = *o.ModelXOffset
	}
	if o.ModelYOffset != nil {
		cfg.ModelYOffset = *o.ModelYOffset
	}
	if o.ModelTextOverride != nil {
		cfg.ModelTextOverride = *o.ModelTextOverride
	}
	if o.ModelUppercase != nil {
		cfg.ModelUppercase = *o.ModelUppercase
	}
}
