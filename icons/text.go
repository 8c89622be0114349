package icons

import "strings"

// brandPrefixes are manufacturer names stripped from the model part of a
// subject when deriving display text.
var brandPrefixes = []string{
	"Cisco ", "Ubiquiti ", "AXIS ", "Yealink ", "BrightSign ",
	"Fortinet ", "Meraki ", "EcoFlow ", "Liebert ", "Netgear ", "Netonix ",
}

// ModelText derives the short display model from a device-type subject:
// "AP - Cisco MR36H" becomes "MR36H", "HL - Artist" becomes "Artist".
// Subjects without the " - " separator are returned unchanged.
func ModelText(subject string) string {
	if !strings.Contains(subject, " - ") {
		return subject
	}
	parts := strings.Split(subject, " - ")
	model := parts[len(parts)-1]
	for _, brand := range brandPrefixes {
		if strings.HasPrefix(model, brand) {
			return model[len(brand):]
		}
	}
	return model
}

// DisplayModel resolves the model text for a merged config, honoring the
// per-icon override and uppercase flag.
func DisplayModel(cfg Config) string {
	model := cfg.ModelTextOverride
	if model == "" {
		model = ModelText(cfg.Subject)
	}
	if cfg.ModelUppercase {
		model = strings.ToUpper(model)
	}
	return model
}
