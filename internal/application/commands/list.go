package commands

import (
	"fmt"

	"kilometers.ai/mcpspaces/internal/application/ports"
)

const (
	CommandTypeListSpaces = "list_spaces"
)

// ListSpacesCommand prints a summary of the selected catalogue entries
type ListSpacesCommand struct {
	BaseCommand
	Include []string            `json:"include,omitempty"`
	Format  ports.SummaryFormat `json:"format"`
}

// NewListSpacesCommand creates a new list command in the given format
func NewListSpacesCommand(format ports.SummaryFormat) *ListSpacesCommand {
	return &ListSpacesCommand{
		BaseCommand: NewBaseCommand(CommandTypeListSpaces),
		Format:      format,
	}
}

// Validate validates the list command
func (c *ListSpacesCommand) Validate() error {
	return validateFormat(c.Format)
}

func validateFormat(format ports.SummaryFormat) error {
	switch format {
	case ports.SummaryFormatText, ports.SummaryFormatYAML:
		return nil
	}
	return NewValidationError(fmt.Sprintf("unsupported summary format %q (must be text or yaml)", format))
}
