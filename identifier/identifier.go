// Package identifier assigns sequential, human-readable labels to device
// instances during a document conversion. Each device type maps to a prefix
// and a starting number; device types sharing the same (prefix, start) pair
// deliberately share one counter, while identical prefixes with different
// starts count independently.
package identifier

import (
	"fmt"
	"sort"
)

// Format selects how the prefix and counter combine into a label.
type Format string

const (
	// FormatPrefixFirst renders "j100".
	FormatPrefixFirst Format = "prefix_first"
	// FormatNumberFirst renders "100a".
	FormatNumberFirst Format = "number_first"
)

// Config describes the label scheme for one device type. An empty Format
// means FormatPrefixFirst.
type Config struct {
	Prefix string
	Start  int
	Format Format
}

// CounterKey identifies one shared counter. It is derived from the config,
// not the device-type key: two device types with equal (Prefix, Start) draw
// from the same number pool.
type CounterKey struct {
	Prefix string
	Start  int
}

// Assigner hands out labels for one document conversion. It owns its counter
// state exclusively; parallel conversions need separate instances.
type Assigner struct {
	table    map[string]Config
	counters map[CounterKey]int
}

// Validate checks a prefix table for configuration errors and reports which
// device types share a counter. Sharing is legal (it models a shared
// physical ID pool), but a shared key whose members disagree on format is
// ambiguous and rejected.
func Validate(table map[string]Config) (shared map[CounterKey][]string, err error) {
	shared = make(map[CounterKey][]string)
	formats := make(map[CounterKey]Format)
	for device, cfg := range table {
		if cfg.Prefix == "" {
			return nil, fmt.Errorf("device type %q: empty prefix", device)
		}
		if cfg.Start < 0 {
			return nil, fmt.Errorf("device type %q: negative start %d", device, cfg.Start)
		}
		f := cfg.Format
		if f == "" {
			f = FormatPrefixFirst
		}
		if f != FormatPrefixFirst && f != FormatNumberFirst {
			return nil, fmt.Errorf("device type %q: unknown format %q", device, cfg.Format)
		}
		key := CounterKey{Prefix: cfg.Prefix, Start: cfg.Start}
		if prev, ok := formats[key]; ok && prev != f {
			return nil, fmt.Errorf("device type %q: counter key (%s, %d) shared with conflicting formats %q and %q",
				device, key.Prefix, key.Start, prev, f)
		}
		formats[key] = f
		shared[key] = append(shared[key], device)
	}
	for key, devices := range shared {
		if len(devices) < 2 {
			delete(shared, key)
			continue
		}
		sort.Strings(devices)
	}
	return shared, nil
}

// New constructs an Assigner over an immutable copy of the prefix table.
// Invalid configurations fail here, not on first use.
func New(table map[string]Config) (*Assigner, error) {
	if _, err := Validate(table); err != nil {
		return nil, err
	}
	copied := make(map[string]Config, len(table))
	for k, v := range table {
		if v.Format == "" {
			v.Format = FormatPrefixFirst
		}
		copied[k] = v
	}
	return &Assigner{
		table:    copied,
		counters: make(map[CounterKey]int),
	}, nil
}

// NextID returns the next label for a device type, or ok=false when the
// device type has no configured label scheme. The first call for a counter
// key yields the configured start; every later call yields one more than
// the previous.
func (a *Assigner) NextID(deviceType string) (id string, ok bool) {
	cfg, found := a.table[deviceType]
	if !found {
		return "", false
	}
	key := CounterKey{Prefix: cfg.Prefix, Start: cfg.Start}
	n, seen := a.counters[key]
	if !seen {
		n = cfg.Start
	} else {
		n++
	}
	a.counters[key] = n

	if cfg.Format == FormatNumberFirst {
		return fmt.Sprintf("%d%s", n, cfg.Prefix), true
	}
	return fmt.Sprintf("%s%d", cfg.Prefix, n), true
}

// Reset clears all counters. Call it once at the start of each independent
// document conversion so labels never leak across documents.
func (a *Assigner) Reset() {
	a.counters = make(map[CounterKey]int)
}

// Snapshot returns a copy of the current counter values for diagnostics.
// Mutating the returned map does not affect the assigner.
func (a *Assigner) Snapshot() map[CounterKey]int {
	out := make(map[CounterKey]int, len(a.counters))
	for k, v := range a.counters {
		out[k] = v
	}
	return out
}
