package commands

import (
	"strings"

	"kilometers.ai/mcpspaces/internal/application/ports"
)

const (
	CommandTypeGenerateConfig = "generate_config"
)

// GenerateConfigCommand selects catalogue entries and either writes the
// client configuration or prints a summary of the selection
type GenerateConfigCommand struct {
	BaseCommand
	Include    []string            `json:"include,omitempty"`
	OutputPath string              `json:"output_path"`
	ListOnly   bool                `json:"list_only"`
	Format     ports.SummaryFormat `json:"format"`
}

// NewGenerateConfigCommand creates a new generate configuration command
func NewGenerateConfigCommand(outputPath string) *GenerateConfigCommand {
	return &GenerateConfigCommand{
		BaseCommand: NewBaseCommand(CommandTypeGenerateConfig),
		OutputPath:  outputPath,
		Format:      ports.SummaryFormatText,
	}
}

// Validate validates the generate configuration command
func (c *GenerateConfigCommand) Validate() error {
	if !c.ListOnly && strings.TrimSpace(c.OutputPath) == "" {
		return NewValidationError("output path is required")
	}

	return validateFormat(c.Format)
}

// ListCommand returns the list command a ListOnly run delegates to
func (c *GenerateConfigCommand) ListCommand() *ListSpacesCommand {
	list := NewListSpacesCommand(c.Format)
	list.Include = c.Include
	return list
}

// GenerateConfigResult is the Data payload of a successful generation
type GenerateConfigResult struct {
	Servers      []string `json:"servers"`
	OutputPath   string   `json:"output_path,omitempty"`
	BytesWritten int64    `json:"bytes_written,omitempty"`
	Listed       int      `json:"listed,omitempty"`
}
