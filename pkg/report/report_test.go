package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"farmdash/entities"
	cropRepoImp "farmdash/pkg/crop/repositoryImp"
	cropSvcImp "farmdash/pkg/crop/serviceImp"
	expenseRepoImp "farmdash/pkg/expense/repositoryImp"
	expenseSvcImp "farmdash/pkg/expense/serviceImp"
	fieldRepoImp "farmdash/pkg/field/repositoryImp"
	fieldSvcImp "farmdash/pkg/field/serviceImp"
	"farmdash/pkg/store"
	taskRepoImp "farmdash/pkg/task/repositoryImp"
	taskSvcImp "farmdash/pkg/task/serviceImp"
	"farmdash/seed"
)

func load[T any](t *testing.T, name string) []T {
	t.Helper()
	out, err := store.LoadJSON[T](seed.FS, name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return out
}

func seedSummary(t *testing.T) *Summary {
	t.Helper()
	return Build(
		load[entities.Field](t, seed.Fields),
		load[entities.Crop](t, seed.Crops),
		load[entities.Task](t, seed.Tasks),
		load[entities.Expense](t, seed.Expenses),
	)
}

func TestBuildFromSeed(t *testing.T) {
	s := seedSummary(t)
	if s.TotalFields != 5 || s.ActiveFields != 4 {
		t.Fatalf("fields = %d/%d, want 4/5", s.ActiveFields, s.TotalFields)
	}
	if s.TotalCrops != 6 || s.HarvestedCrops != 2 || s.TotalYield != 485 {
		t.Fatalf("crops = %d harvested=%d yield=%g", s.TotalCrops, s.HarvestedCrops, s.TotalYield)
	}
	if s.CompletedTasks != 2 || s.PendingTasks != 4 || s.CompletionRate != 33 {
		t.Fatalf("tasks = %d done %d pending %d%%", s.CompletedTasks, s.PendingTasks, s.CompletionRate)
	}
	if s.TotalExpenses != 1375.5 || s.Expenses[0].Label != "labor" || s.Expenses[3].Label != "fertilizer" {
		t.Fatalf("expenses = %+v total %g", s.Expenses, s.TotalExpenses)
	}
}

func TestFieldStatusIncludesEveryStatus(t *testing.T) {
	s := Build([]entities.Field{{Status: entities.FieldHealthy}, {Status: entities.FieldHealthy}}, nil, nil, nil)
	if len(s.FieldStatus) != len(entities.FieldStatuses) {
		t.Fatalf("statuses = %d, want %d", len(s.FieldStatus), len(entities.FieldStatuses))
	}
	if s.FieldStatus[0].Label != "healthy" || s.FieldStatus[0].Count != 2 || s.FieldStatus[0].Percent != 100 {
		t.Fatalf("healthy row = %+v", s.FieldStatus[0])
	}
	for _, c := range s.FieldStatus[1:] {
		if c.Count != 0 || c.Percent != 0 {
			t.Fatalf("row %+v, want zero", c)
		}
	}
}

func TestCompletionRateWithoutTasks(t *testing.T) {
	s := Build(nil, nil, nil, nil)
	if s.CompletionRate != 0 || s.TotalTasks != 0 {
		t.Fatalf("rate = %d", s.CompletionRate)
	}
}

func TestCountsOrdered(t *testing.T) {
	s := Build(nil, nil, []entities.Task{
		{Category: "watering"}, {Category: "harvesting"}, {Category: "watering"},
	}, nil)
	if s.TaskCategories[0].Label != "watering" || s.TaskCategories[0].Count != 2 || s.TaskCategories[0].Percent != 67 {
		t.Fatalf("categories = %+v", s.TaskCategories)
	}
}

func TestWriteCSV(t *testing.T) {
	s := seedSummary(t)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	found := false
	for _, r := range recs {
		if r[0] == "summary" && r[1] == "completion_rate_pct" {
			found = r[2] == "33"
		}
	}
	if !found {
		t.Fatalf("completion row missing or wrong: %v", recs)
	}
}

func TestWriteXLSX(t *testing.T) {
	s := seedSummary(t)
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, s); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Field Status")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1+len(entities.FieldStatuses) || rows[4][0] != "fallow" || rows[4][1] != "1" {
		t.Fatalf("Field Status rows = %v", rows)
	}
	if v, _ := f.GetCellValue("Expenses", "A2"); v != "labor" {
		t.Fatalf("Expenses!A2 = %q", v)
	}
}

func TestSummaryLoadsThroughServices(t *testing.T) {
	fields := fieldRepoImp.NewMock(load[entities.Field](t, seed.Fields), 0)
	svc := New(
		fieldSvcImp.NewFieldService(fields),
		cropSvcImp.NewCropService(cropRepoImp.NewMock(load[entities.Crop](t, seed.Crops), 0), fields),
		taskSvcImp.NewTaskService(taskRepoImp.NewMock(load[entities.Task](t, seed.Tasks), 0)),
		expenseSvcImp.NewExpenseService(expenseRepoImp.NewMock(load[entities.Expense](t, seed.Expenses), 0)),
	)
	fixed := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	s, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !s.GeneratedAt.Equal(fixed) || s.TotalFields != 5 {
		t.Fatalf("summary = %+v", s)
	}
}
