// Package cli implements the crmctl command line interface. Every command
// drives the same session store the desktop client uses, so list output,
// undo behavior and CSV handling match the interactive application exactly.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"crmdesk/internal/client"
	"crmdesk/internal/config"
	"crmdesk/internal/store"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIBaseURL string
	Format     string // "json" | "text"
	Verbose    bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the crmctl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "crmctl",
		Short: "crmctl - customer records from the command line",
		Long:  "A command line client for the customer management API with local search, sorting, pagination, CSV import/export and undo.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cfg := config.Load()

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.APIBaseURL, "api", cfg.Client.APIBaseURL, "base URL of the customer API")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewUndoCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewThemeCommand(opts))
	cmd.AddCommand(NewHealthCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newSession builds a store bound to the configured API for one command
// invocation.
func newSession(opts *RootOptions) *store.Store {
	cfg := config.Load()

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	svc := client.New(opts.APIBaseURL, client.WithTimeout(cfg.Client.RequestTimeout))

	return store.New(svc,
		store.WithLogger(logger),
		store.WithThemeStore(store.NewFileThemeStore(cfg.Client.ThemeFile)),
		store.WithPageSize(cfg.Client.PageSize),
	)
}
