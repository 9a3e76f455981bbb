package cmd

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jwoolee/timsync/pkg/config"
	"github.com/jwoolee/timsync/pkg/model"
	"github.com/jwoolee/timsync/pkg/store"
)

var tasksCategory string

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the current task collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		st, err := store.Open(dir)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Category", "Start", "Title", "Flags"})

		for _, task := range st.Tasks() {
			if tasksCategory != "" && task.Category != model.Category(tasksCategory) {
				continue
			}
			t.AppendRow(table.Row{
				shortID(task.ID),
				string(task.Category),
				task.Start.Format(time.DateOnly),
				task.Title,
				flags(task),
			})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 13 {
		return id[:13]
	}
	return id
}

func flags(t model.Task) string {
	out := ""
	if t.Starred {
		out += "★"
	}
	if t.Drift {
		out += "~"
	}
	if t.UserEdited {
		out += "✎"
	}
	return out
}

func init() {
	tasksCmd.Flags().StringVar(&tasksCategory, "category", "", "only show one category (e.g. COLLAB)")
	rootCmd.AddCommand(tasksCmd)
}
