package icons

import (
	"deploykit/contentstream"
	"deploykit/identifier"
)

// subjectCategories maps device types to their rendering category.
var subjectCategories = map[string]string{
	// Access points
	"AP - Cisco MR36H":    "APs",
	"AP - Cisco MR78":     "APs",
	"AP - Cisco 9166I":    "APs",
	"AP - Cisco 9166D":    "APs",
	"AP - Cisco 9120":     "APs",
	"AP - Cisco Marlin 4": "APs",
	"AP - Cisco DB10":     "APs",
	// Cameras
	"CCTV - Cisco MV93X":   "Cameras",
	"CCTV - AXIS P5655-E":  "Cameras",
	"CCTV - AXIS M5526-E":  "Cameras",
	// Hardlines
	"HL - Access Control":            "Hardlines",
	"HL - Artist":                    "Hardlines",
	"HL - Audio":                     "Hardlines",
	"HL - CCTV":                      "Hardlines",
	"HL - Clair":                     "Hardlines",
	"HL - Emergency Announce System": "Hardlines",
	"HL - General Internet":          "Hardlines",
	"HL - IPTV":                      "Hardlines",
	"HL - Lighting":                  "Hardlines",
	"HL - Media":                     "Hardlines",
	"HL - PoS":                       "Hardlines",
	"HL - Production":                "Hardlines",
	"HL - Radios":                    "Hardlines",
	"HL - Sponsor":                   "Hardlines",
	"HL - Streaming":                 "Hardlines",
	"HL - Video":                     "Hardlines",
	// Point-to-points
	"P2P - Ubiquiti NanoBeam":      "P2Ps",
	"P2P - Ubiquiti LiteAP":        "P2Ps",
	"P2P - Ubiquiti Wave Nano":     "P2Ps",
	"P2P - Ubiquiti Wave Pico":     "P2Ps",
	"P2P - Ubiquiti Wave AP Micro": "P2Ps",
	"P2P - Ubiquiti GigaBeam":      "P2Ps",
	"P2P - Ubiquiti GigaBeam LR":   "P2Ps",
	// Switches
	"SW - Cisco Micro 4P":      "Switches",
	"SW - Fortinet 108F 8P":    "Switches",
	"SW - Cisco 9200 12P":      "Switches",
	"SW - Cisco 9300X 24X":     "Switches",
	"SW - Cisco 9300 12X36M":   "Switches",
	"SW - Cisco 9300X 24Y":     "Switches",
	"SW - Cisco 9500 48Y4C":    "Switches",
	"SW - IDF Cisco 9300 24X":  "Switches",
	"SW - IDF Cisco 9300X 24X": "Switches",
	"SW - Raspberry Pi":        "Switches",
	// Distribution
	"DIST - Micro NOC":    "Switches",
	"DIST - Mini NOC":     "Switches",
	"DIST - Standard NOC": "Switches",
	"DIST - Mega NOC":     "Switches",
	"DIST - Pelican NOC":  "Switches",
	"DIST - MikroTik Hex": "Switches",
	"DIST - Starlink":     "Switches",
	// Misc (no label scheme, no image)
	"MISC - Bike Rack": "Misc",
	"INFRA - Conduit":  "Misc",
}

// categoryDefaults holds the per-category rendering baseline in canonical
// units. Colors match the reference deployment PDFs.
var categoryDefaults = map[string]Config{
	"APs": {
		CircleColor:       contentstream.RGB{R: 0.2157, G: 0.3412, B: 0.6431},
		CircleBorderColor: contentstream.RGB{},
		CircleBorderWidth: 0.75,
		IDBoxHeight:       2.3,
		IDBoxWidthRatio:   0.41,
		IDBoxBorderWidth:  0.35,
		IDFontSize:        3.9,
		ImgScaleRatio:     0.70,
		BrandText:         "CISCO",
		BrandFontSize:     1.8,
		BrandYOffset:      -3.2,
		BrandXOffset:      -0.2,
		ModelFontSize:     2.2,
		ModelYOffset:      2.5,
		ModelXOffset:      -0.2,
		TextColor:         contentstream.RGB{R: 1, G: 1, B: 1},
	},
	"Switches": {
		CircleColor:       contentstream.RGB{R: 0.267, G: 0.714, B: 0.290},
		CircleBorderColor: contentstream.RGB{},
		CircleBorderWidth: 0.75,
		IDBoxHeight:       3.5,
		IDBoxWidthRatio:   0.55,
		IDBoxBorderWidth:  0.45,
		IDFontSize:        3.2,
		ImgScaleRatio:     0.70,
		BrandFontSize:     1.8,
		BrandYOffset:      -3.2,
		BrandXOffset:      -0.2,
		ModelFontSize:     2.2,
		ModelYOffset:      2.5,
		ModelXOffset:      -0.2,
		TextColor:         contentstream.RGB{R: 1, G: 1, B: 1},
	},
	"P2Ps": {
		CircleColor:       contentstream.RGB{R: 0.9843, G: 0.6392, B: 0.1059},
		CircleBorderColor: contentstream.RGB{},
		CircleBorderWidth: 0.75,
		IDBoxHeight:       2.3,
		IDBoxWidthRatio:   0.41,
		IDBoxBorderWidth:  0.35,
		IDFontSize:        3.9,
		ImgScaleRatio:     0.70,
		BrandText:         "UBIQUITI",
		BrandFontSize:     1.8,
		BrandYOffset:      -3.2,
		BrandXOffset:      -0.2,
		ModelFontSize:     2.2,
		ModelYOffset:      2.5,
		ModelXOffset:      -0.2,
		TextColor:         contentstream.RGB{R: 1, G: 1, B: 1},
	},
	"Hardlines": {
		CircleColor:       contentstream.RGB{R: 0.7882, G: 0.1294, B: 0.1529},
		CircleBorderColor: contentstream.RGB{},
		CircleBorderWidth: 0.75,
		IDBoxHeight:       4.0,
		IDBoxWidthRatio:   0.65,
		IDBoxBorderWidth:  0.5,
		IDFontSize:        3.0,
		ImgScaleRatio:     1.2075,
		ImgYOffset:        -0.5,
		BrandText:         "CAT6",
		BrandFontSize:     1.8,
		BrandYOffset:      -3.2,
		BrandXOffset:      -0.5,
		ModelFontSize:     2.2,
		ModelYOffset:      2.5,
		ModelXOffset:      -0.4,
		ModelUppercase:    true,
		TextColor:         contentstream.RGB{R: 1, G: 1, B: 1},
	},
	"Cameras": {
		CircleColor:       contentstream.RGB{R: 0.3176, G: 0.4980, B: 0.9098},
		CircleBorderColor: contentstream.RGB{},
		CircleBorderWidth: 0.75,
		IDBoxHeight:       2.3,
		IDBoxWidthRatio:   0.41,
		IDBoxBorderWidth:  0.35,
		IDFontSize:        3.9,
		ImgScaleRatio:     0.70,
		BrandFontSize:     1.8,
		BrandYOffset:      -3.2,
		BrandXOffset:      -0.2,
		ModelFontSize:     2.2,
		ModelYOffset:      2.5,
		ModelXOffset:      -0.2,
		TextColor:         contentstream.RGB{R: 1, G: 1, B: 1},
	},
	"Misc": {
		CircleColor:       contentstream.RGB{R: 0.5, G: 0.5, B: 0.5},
		CircleBorderColor: contentstream.RGB{},
		CircleBorderWidth: 0.75,
		IDBoxHeight:       2.3,
		IDBoxWidthRatio:   0.41,
		IDBoxBorderWidth:  0.35,
		IDFontSize:        3.9,
		ImgScaleRatio:     0.70,
		BrandFontSize:     1.8,
		BrandYOffset:      -3.2,
		BrandXOffset:      -0.2,
		ModelFontSize:     2.2,
		ModelYOffset:      2.5,
		ModelXOffset:      -0.2,
		NoImage:           true,
		TextColor:         contentstream.RGB{R: 1, G: 1, B: 1},
	},
}

// iconOverrides holds hand-tuned per-icon adjustments on top of the
// category defaults.
var iconOverrides = map[string]Override{
	"AP - Cisco MR36H": {
		ImgScaleRatio: f64(0.64),
		ModelXOffset:  f64(-1.0),
		ModelYOffset:  f64(3.0),
	},
	"AP - Cisco 9120": {
		ImgScaleRatio: f64(1.04),
		ImgXOffset:    f64(0.2),
		ImgYOffset:    f64(0.8),
		ModelFontSize: f64(1.1),
		ModelXOffset:  f64(2.0),
		ModelYOffset:  f64(0.0),
	},
	"AP - Cisco 9166I": {
		ImgScaleRatio: f64(0.98),
		ModelYOffset:  f64(3.0),
		ModelXOffset:  f64(0.0),
	},
	"AP - Cisco MR78": {
		ImgScaleRatio: f64(1.04),
		ImgXOffset:    f64(-0.2),
		ImgYOffset:    f64(0.6),
		ModelXOffset:  f64(-0.8),
		ModelYOffset:  f64(3.2),
	},
	"SW - Cisco Micro 4P": {
		BrandText: str("CISCO"),
	},
	"SW - Cisco 9200 12P": {
		BrandText:     str("CISCO"),
		ImgScaleRatio: f64(1.37),
		ImgXOffset:    f64(-0.8),
		ImgYOffset:    f64(-2.0),
	},
	"SW - IDF Cisco 9300 24X": {
		BrandText:         str("IDF 6U"),
		ImgScaleRatio:     f64(1.3125),
		ImgYOffset:        f64(-0.5),
		ImgXOffset:        f64(-0.2),
		ModelTextOverride: str("9300 24X"),
	},
	"DIST - Micro NOC": {
		ImgScaleRatio: f64(1.4),
	},
	"DIST - MikroTik Hex": {
		BrandText: str("MIKROTIK"),
	},
	"DIST - Starlink": {
		BrandText: str("STARLINK"),
	},
}

// imagePaths maps device types to gear images, relative to the icon
// directory.
var imagePaths = map[string]string{
	"AP - Cisco MR36H":         "APs/MR36H.png",
	"AP - Cisco MR78":          "APs/MR78.png",
	"AP - Cisco 9166I":         "APs/9166I.png",
	"AP - Cisco 9166D":         "APs/9166D.png",
	"AP - Cisco 9120":          "APs/9120.png",
	"AP - Cisco Marlin 4":      "APs/Marlin 4.png",
	"AP - Cisco DB10":          "APs/DB10.png",
	"CCTV - Cisco MV93X":       "Cameras/MV93X.png",
	"CCTV - AXIS P5655-E":      "Cameras/P5655-E.png",
	"CCTV - AXIS M5526-E":      "Cameras/M5526-E.png",
	"P2P - Ubiquiti NanoBeam":  "P2Ps/NanoBeam.png",
	"P2P - Ubiquiti LiteAP":    "P2Ps/LiteAP.png",
	"P2P - Ubiquiti GigaBeam":  "P2Ps/GigaBeam.png",
	"SW - Cisco Micro 4P":      "Switches/Micro 4P.png",
	"SW - Cisco 9200 12P":      "Switches/9200 12P.png",
	"SW - IDF Cisco 9300 24X":  "Switches/9300 24X.png",
	"DIST - Micro NOC":         "Switches/Micro NOC.png",
	"DIST - Mini NOC":          "Switches/Mini NOC.png",
	"DIST - Standard NOC":      "Switches/Standard NOC.png",
	"HL - Access Control":      "Hardlines/Access Control.png",
	"HL - Audio":               "Hardlines/Audio.png",
	"HL - Video":               "Hardlines/Video.png",
}

// prefixTable is the label-scheme table ("Prefix Table"). Device types
// sharing (prefix, start) share a physical ID pool; equal prefixes with
// different starts are independent ranges.
var prefixTable = map[string]identifier.Config{
	// Access points: prefix first (j100, k100, ...)
	"AP - Cisco MR36H":    {Prefix: "j", Start: 100},
	"AP - Cisco MR78":     {Prefix: "k", Start: 100},
	"AP - Cisco 9166I":    {Prefix: "l", Start: 100},
	"AP - Cisco 9166D":    {Prefix: "m", Start: 100},
	"AP - Cisco 9120":     {Prefix: "n", Start: 100},
	"AP - Cisco Marlin 4": {Prefix: "o", Start: 100},
	"AP - Cisco DB10":     {Prefix: "p", Start: 100},

	// Cameras: number first (100a, 101a, ...)
	"CCTV - Cisco MV93X":  {Prefix: "a", Start: 100, Format: identifier.FormatNumberFirst},
	"CCTV - AXIS P5655-E": {Prefix: "b", Start: 100, Format: identifier.FormatNumberFirst},
	"CCTV - AXIS M5526-E": {Prefix: "c", Start: 100, Format: identifier.FormatNumberFirst},

	// Hardlines: double letters (aa100, bb100, ...)
	"HL - Access Control":            {Prefix: "aa", Start: 100},
	"HL - Artist":                    {Prefix: "bb", Start: 100},
	"HL - Audio":                     {Prefix: "cc", Start: 100},
	"HL - CCTV":                      {Prefix: "dd", Start: 100},
	"HL - Clair":                     {Prefix: "ee", Start: 100},
	"HL - Emergency Announce System": {Prefix: "ff", Start: 100},
	"HL - General Internet":          {Prefix: "gg", Start: 100},
	"HL - IPTV":                      {Prefix: "hh", Start: 100},
	"HL - Lighting":                  {Prefix: "ii", Start: 100},
	"HL - Media":                     {Prefix: "jj", Start: 100},
	"HL - PoS":                       {Prefix: "kk", Start: 100},
	"HL - Production":                {Prefix: "ll", Start: 100},
	"HL - Radios":                    {Prefix: "mm", Start: 100},
	"HL - Sponsor":                   {Prefix: "nn", Start: 100},
	"HL - Streaming":                 {Prefix: "oo", Start: 100},
	"HL - Video":                     {Prefix: "pp", Start: 100},

	// Point-to-points
	"P2P - Ubiquiti NanoBeam":      {Prefix: "s", Start: 100},
	"P2P - Ubiquiti LiteAP":        {Prefix: "t", Start: 100},
	"P2P - Ubiquiti Wave Nano":     {Prefix: "u", Start: 100},
	"P2P - Ubiquiti Wave Pico":     {Prefix: "v", Start: 100},
	"P2P - Ubiquiti Wave AP Micro": {Prefix: "w", Start: 100},
	"P2P - Ubiquiti GigaBeam":      {Prefix: "x", Start: 100},
	"P2P - Ubiquiti GigaBeam LR":   {Prefix: "y", Start: 100},

	// Switches: staggered starts keep sibling SKUs from colliding, and the
	// a/b/c ranges start at 200 so they stay clear of the camera pools that
	// reuse those letters.
	"SW - Cisco Micro 4P":    {Prefix: "a", Start: 200},
	"SW - Fortinet 108F 8P":  {Prefix: "b", Start: 200},
	"SW - Cisco 9200 12P":    {Prefix: "c", Start: 200},
	"SW - Cisco 9300X 24X":   {Prefix: "d", Start: 300},
	"SW - Cisco 9300 12X36M": {Prefix: "d", Start: 500},
	"SW - Cisco 9300X 24Y":   {Prefix: "d", Start: 700},
	"SW - Cisco 9500 48Y4C":  {Prefix: "d", Start: 900},

	// IDFs
	"SW - IDF Cisco 9300 24X":  {Prefix: "e", Start: 100},
	"SW - IDF Cisco 9300X 24X": {Prefix: "e", Start: 300},

	// NOCs: one shared pool across all variants.
	"DIST - Micro NOC":    {Prefix: "f", Start: 100},
	"DIST - Mini NOC":     {Prefix: "f", Start: 100},
	"DIST - Standard NOC": {Prefix: "f", Start: 100},
	"DIST - Mega NOC":     {Prefix: "f", Start: 100},
	"DIST - Pelican NOC":  {Prefix: "f", Start: 100},
}

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }
func boolp(v bool) *bool     { return &v }
