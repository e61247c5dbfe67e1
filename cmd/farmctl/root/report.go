package root

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"farmdash/pkg/report"
	"farmdash/pkg/ui"
)

func newReportCmd() *cobra.Command {
	var csvPath, xlsxPath string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the farm report, or export it with --csv / --xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := services()
			if err != nil {
				return err
			}
			sum, err := s.Reports.Summary(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if csvPath == "" && xlsxPath == "" {
				printSummary(out, sum)
				return nil
			}
			if csvPath != "" {
				if err := writeFile(csvPath, func(w io.Writer) error { return report.WriteCSV(w, sum) }); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" wrote "+csvPath))
			}
			if xlsxPath != "" {
				if err := writeFile(xlsxPath, func(w io.Writer) error { return report.WriteXLSX(w, sum) }); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" wrote "+xlsxPath))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the report as CSV to this file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the report as XLSX to this file")
	return cmd
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(w io.Writer, s *report.Summary) {
	fmt.Fprintln(w, ui.Heading(ui.IconReport, "Farm report"))
	fmt.Fprintln(w, ui.Panel.Render(fmt.Sprintf("%s\n%s\n%s\n%s\n%s %s",
		ui.LabelValue("Fields", fmt.Sprintf("%d (%d active)", s.TotalFields, s.ActiveFields)),
		ui.LabelValue("Crops", fmt.Sprintf("%d (%d harvested)", s.TotalCrops, s.HarvestedCrops)),
		ui.LabelValue("Total yield", fmt.Sprintf("%g kg", s.TotalYield)),
		ui.LabelValue("Tasks", fmt.Sprintf("%d done / %d pending", s.CompletedTasks, s.PendingTasks)),
		ui.LabelValue("Completion", fmt.Sprintf("%3d%%", s.CompletionRate)), ui.Bar(s.CompletionRate, 20),
	)))
	section := func(title string, rows []report.Count) {
		fmt.Fprintln(w, ui.H2.Render(title))
		for _, r := range rows {
			fmt.Fprintf(w, "  %-14s %3d  %s\n", r.Label, r.Count, ui.Muted.Render(fmt.Sprintf("%d%%", r.Percent)))
		}
	}
	section("Field status", s.FieldStatus)
	section("Crop varieties", s.CropVarieties)
	section("Task categories", s.TaskCategories)
	if len(s.Expenses) > 0 {
		fmt.Fprintln(w, ui.H2.Render("Expenses"))
		for _, a := range s.Expenses {
			fmt.Fprintf(w, "  %-14s %10.2f\n", a.Label, a.Amount)
		}
		fmt.Fprintf(w, "  %-14s %10.2f\n", "total", s.TotalExpenses)
	}
}
