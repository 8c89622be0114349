package convert

import (
	"context"
	"strings"
	"testing"

	"deploykit/coords"
	"deploykit/icons"
	"deploykit/identifier"
)

var iconRect = coords.Rect{X1: 100, Y1: 200, X2: 122.9, Y2: 222.9}

func newConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := New(icons.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestConvertSequentialLabels(t *testing.T) {
	c := newConverter(t)
	annots := []Annotation{
		{Subject: "AP - Cisco MR36H", Rect: iconRect},
		{Subject: "AP - Cisco MR36H", Rect: iconRect},
		{Subject: "CCTV - Cisco MV93X", Rect: iconRect},
		{Subject: "AP - Cisco MR36H", Rect: iconRect},
	}
	out, err := c.Convert(context.Background(), annots)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := []string{"j100", "j101", "100a", "j102"}
	for i, w := range want {
		if out[i].Label != w {
			t.Errorf("annotation %d label = %q, want %q", i, out[i].Label, w)
		}
		if !strings.Contains(string(out[i].Stream), "("+w+") Tj") {
			t.Errorf("annotation %d stream missing label %q", i, w)
		}
	}
}

func TestConvertResetsBetweenDocuments(t *testing.T) {
	c := newConverter(t)
	annots := []Annotation{{Subject: "AP - Cisco MR78", Rect: iconRect}}
	for run := 0; run < 2; run++ {
		out, err := c.Convert(context.Background(), annots)
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if out[0].Label != "k100" {
			t.Errorf("run %d label = %q, want k100", run, out[0].Label)
		}
	}
}

func TestConvertUnknownSubjectSkipped(t *testing.T) {
	c := newConverter(t)
	out, err := c.Convert(context.Background(), []Annotation{
		{Subject: "AP - Not A Device", Rect: iconRect},
		{Subject: "AP - Cisco MR36H", Rect: iconRect},
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !out[0].Skipped || out[0].Stream != nil {
		t.Error("unknown subject should be skipped without a stream")
	}
	// Skipped annotations consume no identifier.
	if out[1].Label != "j100" {
		t.Errorf("label after skip = %q, want j100", out[1].Label)
	}
}

func TestConvertDegenerateRectAborts(t *testing.T) {
	c := newConverter(t)
	_, err := c.Convert(context.Background(), []Annotation{
		{Subject: "AP - Cisco MR36H", Rect: iconRect},
		{Subject: "AP - Cisco MR78", Rect: coords.Rect{X1: 10, Y1: 10, X2: 10, Y2: 20}},
	})
	if err == nil {
		t.Fatal("degenerate rect did not abort the conversion")
	}
	if !strings.Contains(err.Error(), "AP - Cisco MR78") {
		t.Errorf("error does not identify the annotation: %v", err)
	}
}

func TestConvertCancelledContext(t *testing.T) {
	c := newConverter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Convert(ctx, []Annotation{{Subject: "AP - Cisco MR36H", Rect: iconRect}}); err == nil {
		t.Fatal("cancelled context not honored")
	}
}

func TestConvertSharedPoolAcrossSubjects(t *testing.T) {
	c := newConverter(t)
	out, err := c.Convert(context.Background(), []Annotation{
		{Subject: "DIST - Micro NOC", Rect: iconRect},
		{Subject: "DIST - Mega NOC", Rect: iconRect},
		{Subject: "DIST - Pelican NOC", Rect: iconRect},
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := []string{"f100", "f101", "f102"}
	for i, w := range want {
		if out[i].Label != w {
			t.Errorf("NOC %d label = %q, want %q", i, out[i].Label, w)
		}
	}
	snap := c.Snapshot()
	if snap[identifier.CounterKey{Prefix: "f", Start: 100}] != 102 {
		t.Errorf("counter snapshot = %v", snap)
	}
}

func TestCompoundUsesSameSequence(t *testing.T) {
	c := newConverter(t)
	comps, label, err := c.Compound(Annotation{Subject: "AP - Cisco MR36H", Rect: iconRect})
	if err != nil {
		t.Fatalf("Compound failed: %v", err)
	}
	if label != "j100" {
		t.Errorf("label = %q, want j100", label)
	}
	if len(comps) < 3 {
		t.Fatalf("got %d components", len(comps))
	}
	if comps[0].Contents != "j100" {
		t.Errorf("root component Contents = %q", comps[0].Contents)
	}
}
