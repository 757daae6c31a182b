package config

import (
	"fmt"

	"kilometers.ai/mcpspaces/internal/application/ports"
)

// SettingsValidator checks resolved settings before a run. The output path
// is checked only by the commands that write it.
type SettingsValidator struct{}

// NewSettingsValidator creates a new settings validator
func NewSettingsValidator() *SettingsValidator {
	return &SettingsValidator{}
}

// Validate validates all settings fields
func (v *SettingsValidator) Validate(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	return v.ValidateFormat(string(settings.Format))
}

// ValidateFormat validates the summary format
func (v *SettingsValidator) ValidateFormat(format string) error {
	switch ports.SummaryFormat(format) {
	case ports.SummaryFormatText, ports.SummaryFormatYAML:
		return nil
	}
	return fmt.Errorf("invalid format: %s (valid formats: text, yaml)", format)
}
