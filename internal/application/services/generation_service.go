package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"kilometers.ai/mcpspaces/internal/application/commands"
	"kilometers.ai/mcpspaces/internal/application/ports"
	"kilometers.ai/mcpspaces/internal/core/catalogue"
	"kilometers.ai/mcpspaces/internal/core/transform"
)

// GenerationService turns a selection of catalogue entries into either a
// client configuration file or a printed summary
type GenerationService struct {
	catalogueRepo ports.CatalogueRepository
	writer        ports.ConfigWriter
	printers      map[ports.SummaryFormat]ports.SummaryPrinter
	logger        ports.LoggingGateway
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	catalogueRepo ports.CatalogueRepository,
	writer ports.ConfigWriter,
	printers map[ports.SummaryFormat]ports.SummaryPrinter,
	logger ports.LoggingGateway,
) *GenerationService {
	return &GenerationService{
		catalogueRepo: catalogueRepo,
		writer:        writer,
		printers:      printers,
		logger:        logger,
	}
}

// Entries returns the whole catalogue in catalogue order
func (s *GenerationService) Entries(ctx context.Context) []catalogue.Entry {
	return s.catalogueRepo.Catalogue().Entries()
}

// Generate resolves the selection, then prints it when ListOnly is set or
// renders and writes the configuration otherwise. Every error is terminal
// and returned to the caller for reporting; failures are only logged at
// debug level.
func (s *GenerationService) Generate(ctx context.Context, out io.Writer, cmd *commands.GenerateConfigCommand) (*commands.CommandResult, error) {
	start := time.Now()

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.ListOnly {
		return s.List(ctx, out, cmd.ListCommand())
	}

	selected, err := s.selectEntries(cmd.Include)
	if err != nil {
		return nil, err
	}

	servers, err := transform.Build(selected)
	if err != nil {
		s.logger.Log(ports.LogLevelDebug, "Failed to render configuration", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	written, err := s.writer.WriteConfig(ctx, servers, cmd.OutputPath)
	if err != nil {
		s.logger.Log(ports.LogLevelDebug, "Failed to write configuration", map[string]interface{}{
			"error":       err.Error(),
			"output_path": cmd.OutputPath,
		})
		return nil, err
	}

	s.logger.Log(ports.LogLevelInfo, "Configuration written", map[string]interface{}{
		"output_path": cmd.OutputPath,
		"servers":     servers.Len(),
		"bytes":       written,
	})

	result := commands.NewSuccessResult(
		fmt.Sprintf("Wrote MCP configuration with %d server(s) to %s", servers.Len(), cmd.OutputPath),
		commands.GenerateConfigResult{
			Servers:      servers.Names(),
			OutputPath:   cmd.OutputPath,
			BytesWritten: written,
		},
	)
	if servers.Len() < len(selected) {
		result.AddWarning(fmt.Sprintf("%d selected space(s) repeated a display name and were merged", len(selected)-servers.Len()))
	}
	result.ExecutionTime = time.Since(start)
	return result, nil
}

// List prints the selected entries in the requested format without touching
// the filesystem
func (s *GenerationService) List(ctx context.Context, out io.Writer, cmd *commands.ListSpacesCommand) (*commands.CommandResult, error) {
	start := time.Now()

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	printer, ok := s.printers[cmd.Format]
	if !ok {
		return nil, commands.NewValidationError(fmt.Sprintf("no printer registered for format %q", cmd.Format))
	}

	selected, err := s.selectEntries(cmd.Include)
	if err != nil {
		return nil, err
	}

	if err := printer.PrintSummary(out, selected); err != nil {
		return nil, fmt.Errorf("failed to print summary: %w", err)
	}

	names := make([]string, 0, len(selected))
	for _, e := range selected {
		names = append(names, e.DisplayName())
	}

	result := commands.NewSuccessResult(
		fmt.Sprintf("Listed %d space(s)", len(selected)),
		commands.GenerateConfigResult{Servers: names, Listed: len(selected)},
	)
	result.SetMetadata("format", string(cmd.Format))
	result.ExecutionTime = time.Since(start)
	return result, nil
}

func (s *GenerationService) selectEntries(include []string) ([]catalogue.Entry, error) {
	selected, err := s.catalogueRepo.Catalogue().Select(include)
	if err != nil {
		s.logger.Log(ports.LogLevelDebug, "Selection failed", map[string]interface{}{
			"error":   err.Error(),
			"include": include,
		})
		return nil, err
	}

	s.logger.Log(ports.LogLevelDebug, "Selection resolved", map[string]interface{}{
		"requested": len(include),
		"selected":  len(selected),
	})
	return selected, nil
}
