// Package scripting runs tuning scripts against the icon catalog. Scripts
// batch-adjust icon parameters (for instance nudging every brand label or
// recoloring a category) without going through the HTTP tuner one call at
// a time.
package scripting

import "context"

// Engine executes a script with access to a registered catalog DOM.
type Engine interface {
	// Execute runs a script and returns its final value. Cancelling the
	// context interrupts a running script.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RegisterCatalog exposes the icon catalog to scripts.
	RegisterCatalog(dom CatalogDOM) error
}

// CatalogDOM is the controlled surface scripts see: list device types,
// read merged parameters and write overrides.
type CatalogDOM interface {
	Subjects() []string
	Params(subject string) (map[string]interface{}, error)
	SetParam(subject, name string, value interface{}) error
	Log(message string)
}
