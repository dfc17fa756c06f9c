package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"crmdesk/internal/config"
	"crmdesk/internal/crm"
	"crmdesk/internal/store"

	"github.com/spf13/cobra"
)

// The interactive client holds deleted-customer snapshots in memory for the
// session. The CLI spans many short-lived processes, so the same bounded
// buffer is persisted next to the theme preference between invocations.

// NewUndoCommand creates the undo command.
func NewUndoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Restore the most recently deleted customer",
		Long: `Restore the most recently deleted customer by re-creating it.

The restored record receives a new identifier and creation timestamp;
only the entered field values survive the round trip. Up to the last
five deletions are recoverable, most recent first.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			buffer, err := loadUndoBuffer()
			if err != nil {
				return fmt.Errorf("read undo buffer: %w", err)
			}
			if len(buffer) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo")
				return nil
			}

			last := buffer[0]

			s := newSession(rootOpts)
			restored, err := s.Add(cmd.Context(), last.FormData())
			if err != nil {
				// The popped entry is gone either way, matching the
				// session store's undo semantics.
				if saveErr := saveUndoBuffer(buffer[1:]); saveErr != nil {
					formatter.VerboseLog("failed to rewrite undo buffer: %v", saveErr)
				}
				return fmt.Errorf("restore customer: %w", err)
			}

			if err := saveUndoBuffer(buffer[1:]); err != nil {
				return fmt.Errorf("rewrite undo buffer: %w", err)
			}

			formatter.VerboseLog("restored %s as %s", last.ID, restored.ID)
			return formatter.Customer(restored)
		},
	}
}

func undoBufferPath() string {
	cfg := config.Load()
	return filepath.Join(filepath.Dir(cfg.Client.ThemeFile), "undo.json")
}

func loadUndoBuffer() ([]crm.DeletedCustomer, error) {
	raw, err := os.ReadFile(undoBufferPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var buffer []crm.DeletedCustomer
	if err := json.Unmarshal(raw, &buffer); err != nil {
		return nil, err
	}
	return buffer, nil
}

func saveUndoBuffer(buffer []crm.DeletedCustomer) error {
	if len(buffer) > store.UndoBufferSize {
		buffer = buffer[:store.UndoBufferSize]
	}

	path := undoBufferPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	raw, err := json.Marshal(buffer)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// recordDeletion pushes a snapshot onto the front of the persisted buffer.
func recordDeletion(snapshot crm.DeletedCustomer) error {
	buffer, err := loadUndoBuffer()
	if err != nil {
		return err
	}
	return saveUndoBuffer(append([]crm.DeletedCustomer{snapshot}, buffer...))
}
