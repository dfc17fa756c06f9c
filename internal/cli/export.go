package cli

import (
	"fmt"
	"os"

	"crmdesk/internal/csvcodec"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all customers as CSV",
		Long: `Export the full customer collection as CSV, one row per record
in server order (newest first). Writes to stdout unless --output is
given.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			s := newSession(rootOpts)
			if err := s.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load customers: %w", err)
			}

			customers := s.Customers()
			text := csvcodec.Export(customers)
			formatter.VerboseLog("exporting %d customer(s)", len(customers))

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			if err := os.WriteFile(output, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d customer(s) to %s\n", len(customers), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to this file instead of stdout")

	return cmd
}
