package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// rows flattens the summary into section,label,value rows shared by both
// export formats.
func rows(s *Summary) [][]string {
	num := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	out := [][]string{
		{"section", "label", "value"},
		{"summary", "generated_at", s.GeneratedAt.Format("2006-01-02 15:04")},
		{"summary", "total_fields", strconv.Itoa(s.TotalFields)},
		{"summary", "active_fields", strconv.Itoa(s.ActiveFields)},
		{"summary", "total_crops", strconv.Itoa(s.TotalCrops)},
		{"summary", "harvested_crops", strconv.Itoa(s.HarvestedCrops)},
		{"summary", "total_yield_kg", num(s.TotalYield)},
		{"summary", "total_tasks", strconv.Itoa(s.TotalTasks)},
		{"summary", "completed_tasks", strconv.Itoa(s.CompletedTasks)},
		{"summary", "pending_tasks", strconv.Itoa(s.PendingTasks)},
		{"summary", "completion_rate_pct", strconv.Itoa(s.CompletionRate)},
		{"summary", "total_expenses", num(s.TotalExpenses)},
	}
	for _, c := range s.FieldStatus {
		out = append(out, []string{"field_status", c.Label, strconv.Itoa(c.Count)})
	}
	for _, c := range s.CropVarieties {
		out = append(out, []string{"crop_variety", c.Label, strconv.Itoa(c.Count)})
	}
	for _, c := range s.TaskCategories {
		out = append(out, []string{"task_category", c.Label, strconv.Itoa(c.Count)})
	}
	for _, a := range s.Expenses {
		out = append(out, []string{"expense_category", a.Label, num(a.Amount)})
	}
	return out
}

func WriteCSV(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows(s)); err != nil {
		return fmt.Errorf("write report csv: %w", err)
	}
	return nil
}

// WriteXLSX writes a workbook with a "Summary" sheet holding the same rows
// as the CSV export and one sheet per distribution.
func WriteXLSX(w io.Writer, s *Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	for i, r := range rows(s) {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		vals := make([]any, len(r))
		for j, v := range r {
			vals[j] = v
		}
		if err := f.SetSheetRow(summarySheet, cell, &vals); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	sheets := []struct {
		name string
		data []Count
	}{
		{"Field Status", s.FieldStatus},
		{"Crop Varieties", s.CropVarieties},
		{"Task Categories", s.TaskCategories},
	}
	for _, sh := range sheets {
		if _, err := f.NewSheet(sh.name); err != nil {
			return err
		}
		_ = f.SetSheetRow(sh.name, "A1", &[]any{"label", "count", "percent"})
		for i, c := range sh.data {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := f.SetSheetRow(sh.name, cell, &[]any{c.Label, c.Count, c.Percent}); err != nil {
				return err
			}
		}
	}

	const exp = "Expenses"
	if _, err := f.NewSheet(exp); err != nil {
		return err
	}
	_ = f.SetSheetRow(exp, "A1", &[]any{"category", "amount"})
	for i, a := range s.Expenses {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exp, cell, &[]any{a.Label, a.Amount}); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write report xlsx: %w", err)
	}
	return nil
}
