package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"kilometers.ai/mcpspaces/internal/application/commands"
	"kilometers.ai/mcpspaces/internal/application/ports"
	"kilometers.ai/mcpspaces/internal/application/services"
	"kilometers.ai/mcpspaces/internal/infrastructure/config"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// settingsFlags are bound to the settings repository on every run
var settingsFlags = []string{"output", "format", "debug", "config"}

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	GenerationService *services.GenerationService
	SettingsRepo      *config.ViperSettingsRepository
	Logger            ports.LoggingGateway

	// Settings is resolved before any command runs
	Settings *ports.Settings
}

// NewRootCommand creates the mcp-spaces command. Without a subcommand it
// writes the client configuration for the selected spaces.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var (
		include  []string
		listOnly bool
	)

	rootCmd := &cobra.Command{
		Use:   "mcp-spaces [flags] [NAME...]",
		Short: "Generate MCP client configuration for Hugging Face Spaces",
		Long: `mcp-spaces renders a built-in catalogue of Hugging Face Spaces that speak
the Model Context Protocol into a {"servers": {...}} configuration file
that Claude Desktop, VS Code and similar MCP clients can load.

Examples:
  mcp-spaces                                  # All spaces to mcp_spaces.json
  mcp-spaces --include everything phi-3-vision
  mcp-spaces -o ~/.config/mcp.json --include stable-diffusion
  mcp-spaces --list-only --format yaml`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveSettings(cmd, container)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append(append([]string{}, include...), args...)
			if listOnly {
				return runList(cmd, container, names)
			}
			return runGenerate(cmd, container, names)
		},
	}

	rootCmd.SetVersionTemplate(versionText())

	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "Path to write the MCP configuration file")
	rootCmd.PersistentFlags().String("format", string(ports.SummaryFormatText), "Summary format for listing (text, yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("config", "", "Optional YAML settings file")

	rootCmd.Flags().StringSliceVar(&include, "include", nil, "Space display names to include (default: all)")
	rootCmd.Flags().BoolVar(&listOnly, "list-only", false, "Print the registered spaces instead of writing a file")

	rootCmd.AddCommand(NewListCommand(container))
	rootCmd.AddCommand(NewPickCommand(container))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// resolveSettings binds the flags of the running command and loads the
// effective settings into the container
func resolveSettings(cmd *cobra.Command, container *CLIContainer) error {
	if err := container.SettingsRepo.BindFlags(cmd.Flags(), settingsFlags...); err != nil {
		return err
	}

	settings, err := container.SettingsRepo.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	container.Settings = settings

	if settings.Debug {
		container.Logger.SetLogLevel(ports.LogLevelDebug)
	}
	container.Logger.Log(ports.LogLevelDebug, "Settings resolved", map[string]interface{}{
		"output":      settings.Output,
		"format":      settings.Format,
		"config_file": container.SettingsRepo.ConfigFileUsed(),
	})
	return nil
}

// runGenerate writes the configuration for names and reports it
func runGenerate(cmd *cobra.Command, container *CLIContainer, names []string) error {
	gen := commands.NewGenerateConfigCommand(container.Settings.Output)
	gen.Include = names
	gen.Format = container.Settings.Format

	result, err := container.GenerationService.Generate(cmd.Context(), cmd.OutOrStdout(), gen)
	if err != nil {
		return err
	}

	printWarnings(cmd.ErrOrStderr(), result)

	data, _ := result.Data.(commands.GenerateConfigResult)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ %s (%s)\n", result.Message, humanize.Bytes(uint64(data.BytesWritten)))
	fmt.Fprintln(out, "   You can reference this file from Claude Desktop or VS Code's MCP settings.")
	return nil
}

// runList prints the summary for names
func runList(cmd *cobra.Command, container *CLIContainer, names []string) error {
	list := commands.NewListSpacesCommand(container.Settings.Format)
	list.Include = names

	result, err := container.GenerationService.List(cmd.Context(), cmd.OutOrStdout(), list)
	if err != nil {
		return err
	}
	printWarnings(cmd.ErrOrStderr(), result)
	return nil
}

func printWarnings(w io.Writer, result *commands.CommandResult) {
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "⚠️  %s\n", warning)
	}
}

// versionText renders the same text for --version and the version command
func versionText() string {
	return fmt.Sprintf("mcp-spaces version %s\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		Version, BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH)
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and exits with status 1 on any error.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
