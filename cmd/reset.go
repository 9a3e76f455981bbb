package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwoolee/timsync/pkg/config"
	"github.com/jwoolee/timsync/pkg/snapshot"
	"github.com/jwoolee/timsync/pkg/tombstone"
)

var resetCmd = &cobra.Command{
	Use:   "reset-tombstones",
	Short: "Forget locally deleted calendar events",
	Long: `Clear the tombstone set and the event snapshots. Events deleted
locally will be recreated by the next sync.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		tombs, err := tombstone.Open(dir)
		if err != nil {
			return err
		}
		snaps, err := snapshot.Open(dir)
		if err != nil {
			return err
		}

		tombs.Reset()
		snaps.Reset()
		if err := tombs.Save(); err != nil {
			return err
		}
		if err := snaps.Save(); err != nil {
			return err
		}
		fmt.Println("Tombstones and snapshots cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
