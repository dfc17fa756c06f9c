package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Long: `Delete a customer. A snapshot of the removed record is kept in
the undo buffer; "crmctl undo" re-creates it as a new record. The
buffer holds the last five deletions.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(rootOpts)
			if err := s.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load customers: %w", err)
			}

			if _, ok := s.Get(args[0]); !ok {
				return fmt.Errorf("customer %s not found", args[0])
			}

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete customer: %w", err)
			}

			deleted := s.Deleted()
			if len(deleted) > 0 {
				if err := recordDeletion(deleted[0]); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not record deletion for undo: %v\n", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted customer %s\n", args[0])
			return nil
		},
	}
}
