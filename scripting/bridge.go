package scripting

import (
	"fmt"

	"deploykit/icons"
	"deploykit/observability"
)

// CatalogBridge implements CatalogDOM over the icon catalog and its
// override store. Reads see merged values; writes land in the store so
// they persist and trigger the store's change notifications.
type CatalogBridge struct {
	catalog *icons.Catalog
	store   *icons.Store
	log     observability.Logger
}

func NewCatalogBridge(catalog *icons.Catalog, store *icons.Store, log observability.Logger) *CatalogBridge {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &CatalogBridge{catalog: catalog, store: store, log: log}
}

func (b *CatalogBridge) Subjects() []string { return b.catalog.Subjects() }

func (b *CatalogBridge) Params(subject string) (map[string]interface{}, error) {
	cfg, ok := b.catalog.Lookup(subject)
	if !ok {
		return nil, fmt.Errorf("unknown device type %q", subject)
	}
	return icons.Params(cfg), nil
}

func (b *CatalogBridge) SetParam(subject, name string, value interface{}) error {
	if _, ok := b.catalog.Lookup(subject); !ok {
		return fmt.Errorf("unknown device type %q", subject)
	}
	ov, _ := b.store.Get(subject)
	if err := ov.SetParam(name, value); err != nil {
		return err
	}
	return b.store.Set(subject, ov)
}

func (b *CatalogBridge) Log(message string) {
	b.log.Info("script", observability.String("message", message))
}
