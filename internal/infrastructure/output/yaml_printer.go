package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"kilometers.ai/mcpspaces/internal/application/ports"
	"kilometers.ai/mcpspaces/internal/core/catalogue"
)

// YAMLPrinter prints the catalogue summary as a YAML document
type YAMLPrinter struct{}

// NewYAMLPrinter creates a new YAML printer
func NewYAMLPrinter() *YAMLPrinter {
	return &YAMLPrinter{}
}

type spaceView struct {
	Name        string `yaml:"name"`
	SpaceID     string `yaml:"space_id"`
	Transport   string `yaml:"transport"`
	Entrypoint  string `yaml:"entrypoint"`
	Description string `yaml:"description"`
}

type summaryView struct {
	Spaces []spaceView `yaml:"spaces"`
}

// PrintSummary writes {spaces: [...]} in the given order
func (p *YAMLPrinter) PrintSummary(w io.Writer, entries []catalogue.Entry) error {
	view := summaryView{Spaces: make([]spaceView, 0, len(entries))}
	for _, e := range entries {
		view.Spaces = append(view.Spaces, spaceView{
			Name:        e.DisplayName(),
			SpaceID:     e.ID().Value(),
			Transport:   e.Transport().String(),
			Entrypoint:  e.Entrypoint(),
			Description: e.Description(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}

// Printers returns every summary printer keyed by format
func Printers() map[ports.SummaryFormat]ports.SummaryPrinter {
	return map[ports.SummaryFormat]ports.SummaryPrinter{
		ports.SummaryFormatText: NewTextPrinter(),
		ports.SummaryFormatYAML: NewYAMLPrinter(),
	}
}

var _ ports.SummaryPrinter = (*YAMLPrinter)(nil)
