package ports

import (
	"kilometers.ai/mcpspaces/internal/core/catalogue"
)

// CatalogueRepository defines the interface for reading the entry catalogue
type CatalogueRepository interface {
	// Catalogue returns the catalogue for this build
	Catalogue() *catalogue.Catalogue
}

// SettingsRepository defines the interface for resolving run settings
type SettingsRepository interface {
	// Load resolves settings from flags, environment, config file and defaults
	Load() (*Settings, error)

	// LoadDefault returns the default settings
	LoadDefault() *Settings

	// ConfigFileUsed returns the config file that was read, if any
	ConfigFileUsed() string
}

// Settings represents the resolved run settings
type Settings struct {
	Output string        `json:"output" yaml:"output"`
	Format SummaryFormat `json:"format" yaml:"format"`
	Debug  bool          `json:"debug" yaml:"debug"`
}
