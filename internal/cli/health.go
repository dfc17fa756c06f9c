package cli

import (
	"fmt"

	"crmdesk/internal/client"
	"crmdesk/internal/config"

	"github.com/spf13/cobra"
)

// NewHealthCommand creates the health command.
func NewHealthCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "health",
		Short:        "Check API and database connectivity",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			svc := client.New(rootOpts.APIBaseURL, client.WithTimeout(cfg.Client.RequestTimeout))

			if err := svc.Health(cmd.Context()); err != nil {
				return fmt.Errorf("API unreachable: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Server is running")
			return nil
		},
	}
}
