package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwoolee/timsync/pkg/config"
)

var setCalendarCmd = &cobra.Command{
	Use:   "set-calendar <name>",
	Short: "Set the default Google Calendar to sync from",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Calendar = args[0]
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Default calendar set to: %s\n", cfg.Calendar)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCalendarCmd)
}
