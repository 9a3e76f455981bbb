package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jwoolee/timsync/pkg/classify"
	"github.com/jwoolee/timsync/pkg/config"
	"github.com/jwoolee/timsync/pkg/engine"
	"github.com/jwoolee/timsync/pkg/google"
	"github.com/jwoolee/timsync/pkg/snapshot"
	"github.com/jwoolee/timsync/pkg/store"
	"github.com/jwoolee/timsync/pkg/tombstone"
)

var syncCalendar string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one calendar sync pass",
	Long: `Fetch the sync window from Google Calendar, classify each event, and
merge the batch into the local task collection. A fetch failure aborts the
pass with nothing changed; run sync again on the next tick.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		calendarName := cfg.Calendar
		if syncCalendar != "" {
			calendarName = syncCalendar
		}

		dir, err := config.Dir()
		if err != nil {
			return err
		}
		st, err := store.Open(dir)
		if err != nil {
			return err
		}
		snaps, err := snapshot.Open(dir)
		if err != nil {
			return err
		}
		tombs, err := tombstone.Open(dir)
		if err != nil {
			return err
		}

		var mdl classify.Model
		if key := config.GeminiAPIKey(); key != "" {
			g, err := classify.NewGemini(ctx, key, cfg.GeminiModel)
			if err != nil {
				logger.Warn("classification model unavailable, keyword-only sync", zap.Error(err))
			} else {
				mdl = g
			}
		} else {
			logger.Debug("GEMINI_API_KEY not set, keyword-only sync")
		}

		eng := engine.New(classify.NewService(mdl, logger), logger,
			engine.WithWindow(cfg.SyncPastDays, cfg.SyncFutureDays))

		client, err := google.NewClient(ctx, calendarName)
		if err != nil {
			return fmt.Errorf("creating calendar client: %w", err)
		}

		win := eng.Window()
		batch, err := client.EventsInWindow(win.Start, win.End)
		if err != nil {
			// No partial mutation on fetch failure.
			return fmt.Errorf("sync failed, will retry: %w", err)
		}

		res := eng.Sync(ctx, st.Tasks(), batch, snaps.Current(), tombs.Current())

		st.ReplaceTasks(res.Tasks)
		snaps.Replace(res.Snapshots)
		if err := st.Save(); err != nil {
			return err
		}
		if err := snaps.Save(); err != nil {
			return err
		}

		fmt.Printf("Synced %d events from %q: %d tasks.\n", len(batch), calendarName, len(res.Tasks))
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncCalendar, "calendar", "", "calendar name to sync with (overrides config)")
	rootCmd.AddCommand(syncCmd)
}
