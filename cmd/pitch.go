package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwoolee/timsync/pkg/config"
	"github.com/jwoolee/timsync/pkg/model"
	"github.com/jwoolee/timsync/pkg/store"
)

var pitchGrade string

var pitchCmd = &cobra.Command{
	Use:   "pitch <task-id>",
	Short: "Promote a collab task to the pitching board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade := model.PitchingGrade(pitchGrade)
		switch grade {
		case model.PitchingGradeA, model.PitchingGradeB, model.PitchingGradeC:
		default:
			return fmt.Errorf("invalid grade %q (want A, B or C)", pitchGrade)
		}

		dir, err := config.Dir()
		if err != nil {
			return err
		}
		st, err := store.Open(dir)
		if err != nil {
			return err
		}

		idea, err := st.PromoteToPitching(args[0], grade, time.Now())
		if err != nil {
			return err
		}
		if err := st.Save(); err != nil {
			return err
		}
		fmt.Printf("Moved %q to pitching board with grade %s\n", idea.DemoName, idea.Grade)
		return nil
	},
}

func init() {
	pitchCmd.Flags().StringVar(&pitchGrade, "grade", "B", "pitching grade (A, B or C)")
	rootCmd.AddCommand(pitchCmd)
}
