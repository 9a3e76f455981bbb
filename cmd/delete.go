package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwoolee/timsync/pkg/config"
	"github.com/jwoolee/timsync/pkg/store"
	"github.com/jwoolee/timsync/pkg/tombstone"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Long: `Delete a task from the collection. Provider-sourced tasks are
tombstoned so the next sync does not recreate them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		st, err := store.Open(dir)
		if err != nil {
			return err
		}
		tombs, err := tombstone.Open(dir)
		if err != nil {
			return err
		}

		externalID, err := st.DeleteTask(args[0])
		if err != nil {
			return err
		}
		if externalID != "" {
			tombs.Record(externalID)
			if err := tombs.Save(); err != nil {
				return err
			}
		}
		if err := st.Save(); err != nil {
			return err
		}
		fmt.Printf("Deleted task %s\n", args[0])
		return nil
	},
}

var dismissCmd = &cobra.Command{
	Use:   "dismiss <task-id>",
	Short: "Dismiss the calendar-changed marker on a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		st, err := store.Open(dir)
		if err != nil {
			return err
		}
		if err := st.DismissDrift(args[0]); err != nil {
			return err
		}
		return st.Save()
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dismissCmd)
}
