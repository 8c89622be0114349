package icons

import "fmt"

// Params flattens a merged config into the tunable parameter map exposed
// to the scripting engine and the tuner API. Keys match the TOML override
// field names.
func Params(cfg Config) map[string]interface{} {
	p := map[string]interface{}{
		"circle_color":        []float64{cfg.CircleColor.R, cfg.CircleColor.G, cfg.CircleColor.B},
		"circle_border_color": []float64{cfg.CircleBorderColor.R, cfg.CircleBorderColor.G, cfg.CircleBorderColor.B},
		"circle_border_width": cfg.CircleBorderWidth,

		"id_box_height":       cfg.IDBoxHeight,
		"id_box_width_ratio":  cfg.IDBoxWidthRatio,
		"id_box_border_width": cfg.IDBoxBorderWidth,
		"id_box_y_offset":     cfg.IDBoxYOffset,
		"no_id_box":           cfg.NoIDBox,
		"id_font_size":        cfg.IDFontSize,

		"img_scale_ratio": cfg.ImgScaleRatio,
		"img_x_offset":    cfg.ImgXOffset,
		"img_y_offset":    cfg.ImgYOffset,

		"brand_text":      cfg.BrandText,
		"brand_font_size": cfg.BrandFontSize,
		"brand_x_offset":  cfg.BrandXOffset,
		"brand_y_offset":  cfg.BrandYOffset,

		"model_font_size":     cfg.ModelFontSize,
		"model_x_offset":      cfg.ModelXOffset,
		"model_y_offset":      cfg.ModelYOffset,
		"model_text_override": cfg.ModelTextOverride,
		"model_uppercase":     cfg.ModelUppercase,
	}
	if cfg.IDTextColor != nil {
		p["id_text_color"] = []float64{cfg.IDTextColor.R, cfg.IDTextColor.G, cfg.IDTextColor.B}
	}
	return p
}

// SetParam stores one named parameter into an override. Unknown names and
// mismatched value types are errors; nothing is partially applied.
func (o *Override) SetParam(name string, value interface{}) error {
	switch name {
	case "circle_color":
		return setColor(&o.CircleColor, name, value)
	case "circle_border_color":
		return setColor(&o.CircleBorderColor, name, value)
	case "id_text_color":
		return setColor(&o.IDTextColor, name, value)
	case "circle_border_width":
		return setFloat(&o.CircleBorderWidth, name, value)
	case "id_box_height":
		return setFloat(&o.IDBoxHeight, name, value)
	case "id_box_width_ratio":
		return setFloat(&o.IDBoxWidthRatio, name, value)
	case "id_box_border_width":
		return setFloat(&o.IDBoxBorderWidth, name, value)
	case "id_box_y_offset":
		return setFloat(&o.IDBoxYOffset, name, value)
	case "id_font_size":
		return setFloat(&o.IDFontSize, name, value)
	case "img_scale_ratio":
		return setFloat(&o.ImgScaleRatio, name, value)
	case "img_x_offset":
		return setFloat(&o.ImgXOffset, name, value)
	case "img_y_offset":
		return setFloat(&o.ImgYOffset, name, value)
	case "brand_font_size":
		return setFloat(&o.BrandFontSize, name, value)
	case "brand_x_offset":
		return setFloat(&o.BrandXOffset, name, value)
	case "brand_y_offset":
		return setFloat(&o.BrandYOffset, name, value)
	case "model_font_size":
		return setFloat(&o.ModelFontSize, name, value)
	case "model_x_offset":
		return setFloat(&o.ModelXOffset, name, value)
	case "model_y_offset":
		return setFloat(&o.ModelYOffset, name, value)
	case "no_id_box":
		return setBool(&o.NoIDBox, name, value)
	case "model_uppercase":
		return setBool(&o.ModelUppercase, name, value)
	case "brand_text":
		return setString(&o.BrandText, name, value)
	case "model_text_override":
		return setString(&o.ModelTextOverride, name, value)
	default:
		return fmt.Errorf("unknown icon parameter %q", name)
	}
}

func setFloat(dst **float64, name string, value interface{}) error {
	v, err := toFloat(value)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = &v
	return nil
}

func setBool(dst **bool, name string, value interface{}) error {
	v, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%s: want bool, got %T", name, value)
	}
	*dst = &v
	return nil
}

func setString(dst **string, name string, value interface{}) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("%s: want string, got %T", name, value)
	}
	*dst = &v
	return nil
}

func setColor(dst **[3]float64, name string, value interface{}) error {
	parts, ok := value.([]interface{})
	if !ok {
		if fs, ok := value.([]float64); ok && len(fs) == 3 {
			c := [3]float64{fs[0], fs[1], fs[2]}
			*dst = &c
			return nil
		}
		return fmt.Errorf("%s: want [r g b], got %T", name, value)
	}
	if len(parts) != 3 {
		return fmt.Errorf("%s: want 3 components, got %d", name, len(parts))
	}
	var c [3]float64
	for i, p := range parts {
		v, err := toFloat(p)
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		c[i] = v
	}
	*dst = &c
	return nil
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("want number, got %T", value)
	}
}
