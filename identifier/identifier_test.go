package identifier

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustNew(t *testing.T, table map[string]Config) *Assigner {
	t.Helper()
	a, err := New(table)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

func next(t *testing.T, a *Assigner, device string) string {
	t.Helper()
	id, ok := a.NextID(device)
	if !ok {
		t.Fatalf("NextID(%q) returned no label", device)
	}
	return id
}

func TestSequentialPerDevice(t *testing.T) {
	a := mustNew(t, map[string]Config{
		"AP - Cisco MR36H": {Prefix: "j", Start: 100},
	})
	for i := 0; i < 5; i++ {
		want := fmt.Sprintf("j%d", 100+i)
		if got := next(t, a, "AP - Cisco MR36H"); got != want {
			t.Errorf("call %d = %q, want %q", i, got, want)
		}
	}
}

func TestNumberFirstFormat(t *testing.T) {
	a := mustNew(t, map[string]Config{
		"CCTV - Cisco MV93X": {Prefix: "a", Start: 100, Format: FormatNumberFirst},
	})
	if got := next(t, a, "CCTV - Cisco MV93X"); got != "100a" {
		t.Errorf("first id = %q, want 100a", got)
	}
	if got := next(t, a, "CCTV - Cisco MV93X"); got != "101a" {
		t.Errorf("second id = %q, want 101a", got)
	}
}

func TestSharedCounter(t *testing.T) {
	// All NOC variants draw from the same pool.
	table := map[string]Config{
		"DIST - Micro NOC":    {Prefix: "f", Start: 100},
		"DIST - Mini NOC":     {Prefix: "f", Start: 100},
		"DIST - Standard NOC": {Prefix: "f", Start: 100},
	}
	a := mustNew(t, table)
	got := []string{
		next(t, a, "DIST - Micro NOC"),
		next(t, a, "DIST - Standard NOC"),
		next(t, a, "DIST - Mini NOC"),
	}
	want := []string{"f100", "f101", "f102"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shared counter sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestIndependentStarts(t *testing.T) {
	// Same prefix, different starts: independent counters that never collide.
	a := mustNew(t, map[string]Config{
		"SW - Cisco 9300X 24X":   {Prefix: "d", Start: 300},
		"SW - Cisco 9300 12X36M": {Prefix: "d", Start: 500},
	})
	got := []string{
		next(t, a, "SW - Cisco 9300X 24X"),
		next(t, a, "SW - Cisco 9300 12X36M"),
		next(t, a, "SW - Cisco 9300X 24X"),
		next(t, a, "SW - Cisco 9300 12X36M"),
	}
	want := []string{"d300", "d500", "d301", "d501"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interleaved sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	a := mustNew(t, map[string]Config{
		"AP - Cisco MR36H": {Prefix: "j", Start: 100},
	})
	next(t, a, "AP - Cisco MR36H")
	next(t, a, "AP - Cisco MR36H")
	a.Reset()
	if got := next(t, a, "AP - Cisco MR36H"); got != "j100" {
		t.Errorf("first id after reset = %q, want j100", got)
	}
}

func TestUnconfiguredDevice(t *testing.T) {
	a := mustNew(t, map[string]Config{
		"AP - Cisco MR36H": {Prefix: "j", Start: 100},
	})
	for i := 0; i < 3; i++ {
		if id, ok := a.NextID("MISC - Bike Rack"); ok {
			t.Fatalf("unconfigured device returned label %q", id)
		}
	}
	// The miss must not have created or advanced any counter.
	if got := next(t, a, "AP - Cisco MR36H"); got != "j100" {
		t.Errorf("id after misses = %q, want j100", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	a := mustNew(t, map[string]Config{
		"AP - Cisco MR36H": {Prefix: "j", Start: 100},
	})
	next(t, a, "AP - Cisco MR36H")

	snap := a.Snapshot()
	want := map[CounterKey]int{{Prefix: "j", Start: 100}: 100}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	snap[CounterKey{Prefix: "j", Start: 100}] = 999
	if got := next(t, a, "AP - Cisco MR36H"); got != "j101" {
		t.Errorf("id after snapshot mutation = %q, want j101", got)
	}
}

func TestUnknownFormatRejectedAtConstruction(t *testing.T) {
	_, err := New(map[string]Config{
		"AP - Cisco MR36H": {Prefix: "j", Start: 100, Format: "suffix_first"},
	})
	if err == nil {
		t.Fatal("New accepted an unknown format")
	}
}

func TestEmptyPrefixRejected(t *testing.T) {
	if _, err := New(map[string]Config{"X": {Prefix: "", Start: 100}}); err == nil {
		t.Fatal("New accepted an empty prefix")
	}
}

func TestValidateReportsSharedKeys(t *testing.T) {
	shared, err := Validate(map[string]Config{
		"DIST - Micro NOC": {Prefix: "f", Start: 100},
		"DIST - Mini NOC":  {Prefix: "f", Start: 100},
		"AP - Cisco MR36H": {Prefix: "j", Start: 100},
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	want := map[CounterKey][]string{
		{Prefix: "f", Start: 100}: {"DIST - Micro NOC", "DIST - Mini NOC"},
	}
	if diff := cmp.Diff(want, shared); diff != "" {
		t.Errorf("shared groups mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRejectsConflictingSharedFormats(t *testing.T) {
	_, err := Validate(map[string]Config{
		"A": {Prefix: "f", Start: 100, Format: FormatPrefixFirst},
		"B": {Prefix: "f", Start: 100, Format: FormatNumberFirst},
	})
	if err == nil {
		t.Fatal("Validate accepted a shared key with conflicting formats")
	}
}
