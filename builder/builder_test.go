package builder

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"deploykit/contentstream"
	"deploykit/coords"
	"deploykit/icons"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func lookup(t *testing.T, subject string) icons.Config {
	t.Helper()
	cfg, ok := icons.Default().Lookup(subject)
	if !ok {
		t.Fatalf("no config for %s", subject)
	}
	return cfg
}

func TestLayoutGeometry(t *testing.T) {
	cfg := lookup(t, "AP - Cisco 9166D")
	p := Layout(cfg, "j100", 0, 0)

	if !approx(p.Cx, 12.5) {
		t.Errorf("Cx = %v, want 12.5", p.Cx)
	}
	// id_box_height 2.3: box top-aligned at y 27.7, circle reaches 2 units
	// into it, radius min(25, 29.7)/2 - 0.3.
	if !approx(p.IDBoxY, 27.7) {
		t.Errorf("IDBoxY = %v, want 27.7", p.IDBoxY)
	}
	if !approx(p.Radius, 12.2) {
		t.Errorf("Radius = %v, want 12.2", p.Radius)
	}
	if !approx(p.Cy, 17.5) {
		t.Errorf("Cy = %v, want 17.5", p.Cy)
	}
	if !approx(p.IDBoxW, 25*cfg.IDBoxWidthRatio) {
		t.Errorf("IDBoxW = %v", p.IDBoxW)
	}
	if p.HasImage {
		t.Error("HasImage set without image dimensions")
	}
}

func TestLayoutImagePlacement(t *testing.T) {
	cfg := lookup(t, "AP - Cisco 9166D")
	p := Layout(cfg, "j100", 100, 50)
	if !p.HasImage {
		t.Fatal("HasImage not set")
	}
	scale := (p.Radius * cfg.ImgScaleRatio) / 100
	if !approx(p.ImgW, 100*scale) || !approx(p.ImgH, 50*scale) {
		t.Errorf("image size = %v x %v", p.ImgW, p.ImgH)
	}
	if !approx(p.ImgX, 12.5-p.ImgW/2+cfg.ImgXOffset) {
		t.Errorf("ImgX = %v", p.ImgX)
	}
	if !approx(p.ImgY, p.Cy-p.ImgH/2+cfg.ImgYOffset) {
		t.Errorf("ImgY = %v", p.ImgY)
	}
}

func TestLayoutNoImageFlag(t *testing.T) {
	cfg := lookup(t, "AP - Cisco 9166D")
	cfg.NoImage = true
	if p := Layout(cfg, "j100", 100, 50); p.HasImage {
		t.Error("NoImage config still produced image placement")
	}
}

func TestBuildAppearanceStructure(t *testing.T) {
	cfg := lookup(t, "AP - Cisco MR36H")
	p := Layout(cfg, "j100", 64, 64)
	ft, err := coords.FitRect(coords.Rect{X1: 100, Y1: 200, X2: 122.9, Y2: 222.9}, CanonW, CanonH)
	if err != nil {
		t.Fatal(err)
	}
	stream := string(BuildAppearance(p, ft))

	if !strings.HasPrefix(stream, "q\n") || !strings.HasSuffix(stream, "\nQ") {
		t.Error("stream not wrapped in q/Q")
	}
	if !strings.Contains(stream, "0.763333 0 0 0.763333 101.908 200.000 cm") {
		t.Errorf("fit transform missing:\n%s", stream)
	}
	if !strings.Contains(stream, "(j100) Tj") {
		t.Error("identifier label missing")
	}
	if !strings.Contains(stream, "/Helv 3.9 Tf") {
		t.Error("ID font selection missing")
	}
	if !strings.Contains(stream, "/Img Do") {
		t.Error("image XObject invocation missing")
	}
	if !strings.Contains(stream, "(CISCO) Tj") {
		t.Error("brand text missing")
	}
	if !strings.Contains(stream, "(MR36H) Tj") {
		t.Error("model text missing")
	}
}

func TestBuildAppearanceDeterministic(t *testing.T) {
	cfg := lookup(t, "DIST - Micro NOC")
	p := Layout(cfg, "f100", 32, 32)
	ft, err := coords.FitRect(coords.Rect{X1: 10, Y1: 10, X2: 60, Y2: 70}, CanonW, CanonH)
	if err != nil {
		t.Fatal(err)
	}
	a := BuildAppearance(p, ft)
	b := BuildAppearance(p, ft)
	if !bytes.Equal(a, b) {
		t.Error("identical inputs produced different streams")
	}
}

func TestBuildAppearanceNoIDBox(t *testing.T) {
	cfg := lookup(t, "AP - Cisco 9166D")
	cfg.NoIDBox = true
	p := Layout(cfg, "j100", 0, 0)
	ft, _ := coords.FitRect(coords.Rect{X2: 25, Y2: 30}, CanonW, CanonH)
	stream := string(BuildAppearance(p, ft))
	if strings.Contains(stream, " re") {
		t.Error("ID box rectangle emitted despite NoIDBox")
	}
	if strings.Contains(stream, "(j100) Tj") {
		t.Error("identifier label emitted despite NoIDBox")
	}
}

func TestBuildAppearanceModelLineStacking(t *testing.T) {
	cfg := lookup(t, "AP - Cisco 9166D")
	cfg.ModelTextOverride = "LINE1\nLINE2"
	p := Layout(cfg, "j100", 0, 0)
	ft, _ := coords.FitRect(coords.Rect{X2: 25, Y2: 30}, CanonW, CanonH)
	stream := string(BuildAppearance(p, ft))
	if !strings.Contains(stream, "(LINE1) Tj") || !strings.Contains(stream, "(LINE2) Tj") {
		t.Errorf("model lines missing:\n%s", stream)
	}
	if strings.Count(stream, "BT") < 3 {
		t.Error("each model line should be its own text block")
	}
}

func TestComponentsFullSet(t *testing.T) {
	cfg := lookup(t, "AP - Cisco MR36H")
	comps := Components(cfg, "j100", coords.Point{X: 100, Y: 100}, 64, 64)
	wantRoles := []string{
		RoleRootIDText, RoleIDBoxBorder, RoleContainer,
		RoleCircle, RoleImage, RoleModelText, RoleBrandText,
	}
	if len(comps) != len(wantRoles) {
		t.Fatalf("got %d components, want %d", len(comps), len(wantRoles))
	}
	for i, want := range wantRoles {
		if comps[i].Role != want {
			t.Errorf("component %d role = %s, want %s", i, comps[i].Role, want)
		}
	}

	// Container spans the scaled canonical box around the center.
	container := comps[2].Rect
	if !approx(container.X1, 100-CanonW*CompoundScale/2) ||
		!approx(container.Y2, 100+CanonH*CompoundScale/2) {
		t.Errorf("container rect = %+v", container)
	}
	if comps[2].Content != nil {
		t.Error("container should have an empty appearance")
	}

	if comps[0].Contents != "j100" {
		t.Errorf("root Contents = %q", comps[0].Contents)
	}
	if !strings.Contains(comps[0].DA, "/HelvBld 3.90 Tf") {
		t.Errorf("root DA = %q", comps[0].DA)
	}
}

func TestComponentsNoIDBox(t *testing.T) {
	cfg := lookup(t, "AP - Cisco 9166D")
	cfg.NoIDBox = true
	comps := Components(cfg, "j100", coords.Point{X: 50, Y: 50}, 0, 0)
	for _, c := range comps {
		if c.Role == RoleIDBoxBorder {
			t.Error("id box border present despite NoIDBox")
		}
	}
	if comps[0].Contents != "" {
		t.Errorf("root Contents = %q, want empty", comps[0].Contents)
	}
}

func TestComponentsCircleStream(t *testing.T) {
	cfg := lookup(t, "HL - Artist")
	comps := Components(cfg, "aa100", coords.Point{X: 200, Y: 300}, 0, 0)
	var circle *Component
	for i := range comps {
		if comps[i].Role == RoleCircle {
			circle = &comps[i]
		}
	}
	if circle == nil {
		t.Fatal("no circle component")
	}
	stream := string(circle.Content)
	if !strings.Contains(stream, " RG") || !strings.Contains(stream, " rg") {
		t.Error("circle stream missing color operators")
	}
	if !strings.HasSuffix(stream, "B") {
		t.Error("circle path not fill-stroked")
	}
	if circle.BorderWidth != cfg.CircleBorderWidth {
		t.Errorf("BorderWidth = %v", circle.BorderWidth)
	}
}

func TestFlattenTransparencyOntoBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{A: 0})

	img := Flatten(src, contentstream.RGB{R: 0, G: 0, B: 1})
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("size = %dx%d", img.Width, img.Height)
	}
	if img.RGB[0] != 255 || img.RGB[1] != 0 {
		t.Errorf("opaque pixel = %v", img.RGB[:3])
	}
	if img.RGB[3] != 0 || img.RGB[5] != 255 {
		t.Errorf("transparent pixel should take background color: %v", img.RGB[3:6])
	}
}

func TestDownsample(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := Downsample(src, 40)
	b := out.Bounds()
	if b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("downsampled to %dx%d, want 40x20", b.Dx(), b.Dy())
	}
	if same := Downsample(src, 200); same != src {
		t.Error("image within limit should be returned unchanged")
	}
}
