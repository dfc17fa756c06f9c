package cli

import (
	"fmt"

	"crmdesk/internal/config"
	"crmdesk/internal/crm"
	"crmdesk/internal/store"

	"github.com/spf13/cobra"
)

// NewThemeCommand creates the theme command.
func NewThemeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the persisted theme preference",
		Long: `Show the persisted theme preference, set it to light or dark,
or toggle it. The preference survives between invocations and is
shared with the interactive client.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			themes := store.NewFileThemeStore(cfg.Client.ThemeFile)

			current := themes.Load()
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), current)
				return nil
			}

			var next crm.Theme
			switch args[0] {
			case "light":
				next = crm.ThemeLight
			case "dark":
				next = crm.ThemeDark
			case "toggle":
				next = crm.ThemeDark
				if current == crm.ThemeDark {
					next = crm.ThemeLight
				}
			default:
				return fmt.Errorf("unknown theme %q: use light, dark or toggle", args[0])
			}

			if err := themes.Save(next); err != nil {
				return fmt.Errorf("persist theme preference: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}

	return cmd
}
