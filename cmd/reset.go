package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluentpath/fluentpath/internal/progress"
	"github.com/fluentpath/fluentpath/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		user := resolveUser(cmd)
		if err := st.RecordRepo().Put(cmd.Context(), user.ID, progress.NewRecord()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Printf("Progress reset for user %q.\n", user.ID)
		return nil
	},
}
