package registry

import (
	"kilometers.ai/mcpspaces/internal/application/ports"
	"kilometers.ai/mcpspaces/internal/core/catalogue"
)

// BuiltinCatalogueRegistry serves the catalogue compiled into the binary
type BuiltinCatalogueRegistry struct {
	catalogue *catalogue.Catalogue
}

// NewBuiltinCatalogueRegistry creates a registry over catalogue.Default()
func NewBuiltinCatalogueRegistry() *BuiltinCatalogueRegistry {
	return &BuiltinCatalogueRegistry{catalogue: catalogue.Default()}
}

// NewCatalogueRegistry creates a registry over an explicit catalogue
func NewCatalogueRegistry(cat *catalogue.Catalogue) *BuiltinCatalogueRegistry {
	return &BuiltinCatalogueRegistry{catalogue: cat}
}

// Catalogue returns the catalogue
func (r *BuiltinCatalogueRegistry) Catalogue() *catalogue.Catalogue {
	return r.catalogue
}

var _ ports.CatalogueRepository = (*BuiltinCatalogueRegistry)(nil)
