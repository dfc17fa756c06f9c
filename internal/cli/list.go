package cli

import (
	"fmt"

	"crmdesk/internal/crm"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		search   string
		sortBy   string
		order    string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers with search, sorting and pagination",
		Long: `List customers from the API.

The search, sort and pagination happen locally over the fetched
collection, exactly as the interactive client does: search matches
name or email case-insensitively, sorting is locale-aware for names,
and pagination splits the filtered and sorted result into fixed pages.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			s := newSession(rootOpts)
			if err := s.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load customers: %w", err)
			}

			s.SetSearchTerm(search)
			s.SetSortOption(crm.SortOption{By: crm.SortBy(sortBy), Order: crm.SortOrder(order)})
			if pageSize > 0 {
				s.SetPageSize(pageSize)
			}
			s.SetPage(page)

			result := s.Visible()
			formatter.VerboseLog("%d matching customer(s), page %d of %d", result.Total, page, result.Pages)

			if rootOpts.Format == "json" {
				return formatter.JSON(result)
			}
			if err := formatter.Customers(result.Data); err != nil {
				return err
			}
			if result.Pages > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d total)\n", page, result.Pages, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name or email")
	cmd.Flags().StringVar(&sortBy, "sort", string(crm.SortByDate), "sort key (name|date)")
	cmd.Flags().StringVar(&order, "order", string(crm.OrderDesc), "sort direction (asc|desc)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "records per page (0 = configured default)")

	return cmd
}
