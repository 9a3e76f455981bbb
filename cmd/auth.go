package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwoolee/timsync/pkg/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Google Calendar",
	Long:  "Delete any cached token and run the OAuth authorization flow again.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenPath, err := auth.TokenPath()
		if err != nil {
			return err
		}
		if err := os.Remove(tokenPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("could not delete token file %s: %w", tokenPath, err)
		}

		if _, err := auth.GetClient(cmd.Context(), auth.Scopes()); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
		fmt.Printf("Authentication successful! Token saved to %s\n", tokenPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
}
