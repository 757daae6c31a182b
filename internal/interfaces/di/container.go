package di

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"kilometers.ai/mcpspaces/internal/application/ports"
	"kilometers.ai/mcpspaces/internal/application/services"
	"kilometers.ai/mcpspaces/internal/core/transform"
	"kilometers.ai/mcpspaces/internal/infrastructure/config"
	"kilometers.ai/mcpspaces/internal/infrastructure/logging"
	"kilometers.ai/mcpspaces/internal/infrastructure/output"
	"kilometers.ai/mcpspaces/internal/infrastructure/registry"
	"kilometers.ai/mcpspaces/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	// Configuration
	SettingsRepo *config.ViperSettingsRepository

	// Infrastructure
	CatalogueRepo *registry.BuiltinCatalogueRegistry
	Writer        *output.FileWriter
	Printers      map[ports.SummaryFormat]ports.SummaryPrinter

	// Application services
	GenerationService *services.GenerationService

	// CLI
	CLIContainer *cli.CLIContainer

	// Logger
	Logger *logging.ConsoleLogger
}

// NewContainer creates the container with logs going to stderr
func NewContainer() (*Container, error) {
	return NewContainerWithLogOutput(os.Stderr)
}

// NewContainerWithLogOutput creates the container with logs going to w
func NewContainerWithLogOutput(w io.Writer) (*Container, error) {
	container := &Container{
		Logger: logging.NewConsoleLogger(w, ports.LogLevelWarn),
	}

	if err := container.initializeComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	return container, nil
}

// initializeComponents wires every component with its dependencies
func (c *Container) initializeComponents() error {
	// 1. Settings are resolved later, once the CLI flags are parsed
	c.SettingsRepo = config.NewViperSettingsRepository(viper.New())

	// 2. Infrastructure
	c.CatalogueRepo = registry.NewBuiltinCatalogueRegistry()
	c.Writer = output.NewFileWriter()
	c.Printers = output.Printers()

	// 3. Application services
	c.GenerationService = services.NewGenerationService(
		c.CatalogueRepo,
		c.Writer,
		c.Printers,
		c.Logger,
	)

	// 4. CLI container
	c.CLIContainer = &cli.CLIContainer{
		GenerationService: c.GenerationService,
		SettingsRepo:      c.SettingsRepo,
		Logger:            c.Logger,
	}

	c.Logger.Log(ports.LogLevelDebug, "Dependency injection container initialized", map[string]interface{}{
		"spaces": c.CatalogueRepo.Catalogue().Len(),
	})
	return nil
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}

// HealthCheck verifies that every component is wired and that the whole
// built-in catalogue renders
func (c *Container) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.GenerationService == nil {
		return fmt.Errorf("generation service not initialized")
	}

	for _, format := range []ports.SummaryFormat{ports.SummaryFormatText, ports.SummaryFormatYAML} {
		if _, ok := c.Printers[format]; !ok {
			return fmt.Errorf("no printer registered for format %q", format)
		}
	}

	if _, err := transform.Build(c.GenerationService.Entries(ctx)); err != nil {
		return fmt.Errorf("built-in catalogue does not render: %w", err)
	}

	return nil
}
