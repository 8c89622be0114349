package icons

import "testing"

func TestParamsExposesMergedValues(t *testing.T) {
	cfg, ok := Default().Lookup("AP - Cisco MR36H")
	if !ok {
		t.Fatal("Lookup failed")
	}
	p := Params(cfg)
	if p["img_scale_ratio"] != 0.64 {
		t.Errorf("img_scale_ratio = %v", p["img_scale_ratio"])
	}
	if p["brand_text"] != "CISCO" {
		t.Errorf("brand_text = %v", p["brand_text"])
	}
	color, ok := p["circle_color"].([]float64)
	if !ok || len(color) != 3 {
		t.Fatalf("circle_color = %v", p["circle_color"])
	}
}

func TestSetParamTypes(t *testing.T) {
	var ov Override
	if err := ov.SetParam("img_scale_ratio", 1.5); err != nil {
		t.Fatal(err)
	}
	if err := ov.SetParam("no_id_box", true); err != nil {
		t.Fatal(err)
	}
	if err := ov.SetParam("brand_text", "UBIQUITI"); err != nil {
		t.Fatal(err)
	}
	if err := ov.SetParam("circle_color", []interface{}{0.1, 0.2, 0.3}); err != nil {
		t.Fatal(err)
	}
	if *ov.ImgScaleRatio != 1.5 || !*ov.NoIDBox || *ov.BrandText != "UBIQUITI" {
		t.Errorf("override = %+v", ov)
	}
	if *ov.CircleColor != [3]float64{0.1, 0.2, 0.3} {
		t.Errorf("circle_color = %v", *ov.CircleColor)
	}
}

func TestSetParamRejectsBadInput(t *testing.T) {
	var ov Override
	if err := ov.SetParam("nonsense", 1); err == nil {
		t.Error("unknown name accepted")
	}
	if err := ov.SetParam("img_scale_ratio", "wide"); err == nil {
		t.Error("string for float accepted")
	}
	if err := ov.SetParam("circle_color", []interface{}{0.1}); err == nil {
		t.Error("short color accepted")
	}
}
