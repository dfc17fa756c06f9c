package cli

import (
	"fmt"
	"os"

	"crmdesk/internal/crm"
	"crmdesk/internal/csvcodec"

	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import customers from a CSV file",
		Long: `Import customers from a CSV file in the export format.

Each row is submitted as an independent creation; rows that fail
(for example duplicate emails) are counted but do not stop the rest.
Quoted commas inside fields are not supported by the format.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			parsed := csvcodec.Import(string(raw))
			if len(parsed) == 0 {
				return fmt.Errorf("no importable rows in %s", args[0])
			}
			formatter.VerboseLog("parsed %d row(s) from %s", len(parsed), args[0])

			records := make([]crm.FormData, len(parsed))
			for i, c := range parsed {
				records[i] = c.FormData()
			}

			s := newSession(rootOpts)
			result, err := s.Import(cmd.Context(), records)
			if err != nil {
				return fmt.Errorf("import customers: %w", err)
			}

			if rootOpts.Format == "json" {
				return formatter.JSON(map[string]int{
					"imported": result.Imported,
					"failed":   result.Failed,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d customer(s), %d failed\n", result.Imported, result.Failed)
			return nil
		},
	}
}
