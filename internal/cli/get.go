package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "get <id>",
		Short:        "Show a single customer",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			s := newSession(rootOpts)
			if err := s.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load customers: %w", err)
			}

			customer, ok := s.Get(args[0])
			if !ok {
				return fmt.Errorf("customer %s not found", args[0])
			}
			return formatter.Customer(customer)
		},
	}
}
