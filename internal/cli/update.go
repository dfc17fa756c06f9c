package cli

import (
	"fmt"

	"crmdesk/internal/crm"

	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var data crm.FormData

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing customer",
		Long: `Update a customer. Only the given flags are changed; omitted
fields keep their stored values.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			if data == (crm.FormData{}) {
				return fmt.Errorf("nothing to update: set at least one of --name, --email, --phone, --address")
			}

			s := newSession(rootOpts)
			if err := s.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load customers: %w", err)
			}

			updated, err := s.Update(cmd.Context(), args[0], data)
			if err != nil {
				return fmt.Errorf("update customer: %w", err)
			}

			formatter.VerboseLog("updated customer %s", updated.ID)
			return formatter.Customer(updated)
		},
	}

	cmd.Flags().StringVar(&data.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&data.Email, "email", "", "email address")
	cmd.Flags().StringVar(&data.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&data.Address, "address", "", "postal address")

	return cmd
}
