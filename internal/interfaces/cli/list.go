package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command
func NewListCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "list [NAME...]",
		Short: "List the registered spaces",
		Long: `Print the registered Hugging Face Spaces with their transport and
entrypoint. Naming spaces limits the listing to those, in the order given.
Nothing is written to disk.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, container, args)
		},
	}
}
