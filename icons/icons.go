// Package icons holds the deployment-icon catalog: which device types
// exist, how each is drawn, where its gear image lives, and which label
// scheme it uses. The catalog is an immutable, explicitly constructed
// lookup table; per-site tuning lives in a TOML override store layered on
// top.
package icons

import (
	"sort"

	"deploykit/contentstream"
	"deploykit/identifier"
)

// Config is the fully merged rendering configuration for one device type:
// category defaults with per-icon and store overrides applied.
type Config struct {
	Subject   string
	Category  string
	ImagePath string
	NoImage   bool

	CircleColor       contentstream.RGB
	CircleBorderColor contentstream.RGB
	CircleBorderWidth float64

	IDBoxHeight      float64
	IDBoxWidthRatio  float64
	IDBoxBorderWidth float64
	IDBoxYOffset     float64
	NoIDBox          bool
	IDFontSize       float64
	// IDTextColor nil means the label text takes the circle color.
	IDTextColor *contentstream.RGB

	ImgScaleRatio float64
	ImgXOffset    float64
	ImgYOffset    float64

	BrandText     string
	BrandFontSize float64
	BrandXOffset  float64
	BrandYOffset  float64

	ModelFontSize     float64
	ModelXOffset      float64
	ModelYOffset      float64
	ModelTextOverride string
	ModelUppercase    bool

	TextColor contentstream.RGB
}

// Catalog resolves device types to merged configs. Construct with Default
// (the builtin tables) and optionally attach an override Store.
type Catalog struct {
	categories map[string]string
	defaults   map[string]Config
	overrides  map[string]Override
	imagePaths map[string]string
	prefixes   map[string]identifier.Config
	store      *Store
}

// Default returns a catalog over the builtin tables.
func Default() *Catalog {
	return &Catalog{
		categories: subjectCategories,
		defaults:   categoryDefaults,
		overrides:  iconOverrides,
		imagePaths: imagePaths,
		prefixes:   prefixTable,
	}
}

// WithStore layers a mutable override store on top of the static tables.
// Store entries win over builtin per-icon overrides.
func (c *Catalog) WithStore(s *Store) *Catalog {
	c.store = s
	return c
}

// Lookup returns the merged config for a device type, or ok=false when the
// catalog does not know it.
func (c *Catalog) Lookup(subject string) (Config, bool) {
	category, ok := c.categories[subject]
	if !ok {
		return Config{}, false
	}
	cfg, ok := c.defaults[category]
	if !ok {
		return Config{}, false
	}
	cfg.Subject = subject
	cfg.Category = category
	cfg.ImagePath = c.imagePaths[subject]

	if ov, ok := c.overrides[subject]; ok {
		ov.Apply(&cfg)
	}
	if c.store != nil {
		if ov, ok := c.store.Get(subject); ok {
			ov.Apply(&cfg)
		}
	}
	return cfg, true
}

// Subjects lists every known device type in sorted order.
func (c *Catalog) Subjects() []string {
	out := make([]string, 0, len(c.categories))
	for s := range c.categories {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// PrefixTable returns a copy of the label-scheme table, suitable for
// constructing an identifier.Assigner.
func (c *Catalog) PrefixTable() map[string]identifier.Config {
	out := make(map[string]identifier.Config, len(c.prefixes))
	for k, v := range c.prefixes {
		out[k] = v
	}
	return out
}
