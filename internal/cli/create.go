package cli

import (
	"fmt"

	"crmdesk/internal/crm"
	"crmdesk/internal/validation"

	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var data crm.FormData

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new customer",
		Long: `Create a customer from the given field flags.

Fields are validated locally before anything is sent; the API applies
its own validation and duplicate-email check on top.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			if errs := validation.ValidateForm(data); len(errs) > 0 {
				return formatter.FieldErrors(errs)
			}

			s := newSession(rootOpts)
			created, err := s.Add(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("create customer: %w", err)
			}

			formatter.VerboseLog("created customer %s", created.ID)
			return formatter.Customer(created)
		},
	}

	cmd.Flags().StringVar(&data.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&data.Email, "email", "", "email address")
	cmd.Flags().StringVar(&data.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&data.Address, "address", "", "postal address")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")
	cmd.MarkFlagRequired("address")

	return cmd
}
