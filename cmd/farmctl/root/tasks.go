package root

import (
	"fmt"

	"github.com/spf13/cobra"

	tasksvc "farmdash/pkg/task/service"
	"farmdash/pkg/ui"
)

func newTasksCmd() *cobra.Command {
	var pending bool
	var q string
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks, pending first then by due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := services()
			if err != nil {
				return err
			}
			query := tasksvc.Query{Search: q}
			if pending {
				query.Status = tasksvc.StatusPending
			}
			list, err := s.Tasks.List(cmd.Context(), query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, fmt.Sprintf("Tasks (%d)", len(list))))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  no tasks"))
				return nil
			}
			for _, t := range list {
				mark := "[ ]"
				title := t.Title
				if t.Completed {
					mark = ui.Good.Render("[x]")
					title = ui.Muted.Render(title)
				}
				fmt.Fprintf(out, "  %s #%-3d %-10s %s  %s\n", mark, t.ID, t.DueDate, ui.Priority(string(t.Priority)), title)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pending, "pending", false, "only incomplete tasks")
	cmd.Flags().StringVarP(&q, "search", "q", "", "search title, description and category")
	return cmd
}
