// Package report aggregates the farm records into the reports view and its
// CSV and XLSX exports.
package report

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"farmdash/entities"
	cropsvc "farmdash/pkg/crop/service"
	expensesvc "farmdash/pkg/expense/service"
	fieldsvc "farmdash/pkg/field/service"
	tasksvc "farmdash/pkg/task/service"
)

// Count is one row of a distribution.
type Count struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type Amount struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type Summary struct {
	GeneratedAt time.Time `json:"generated_at"`

	TotalFields    int     `json:"total_fields"`
	ActiveFields   int     `json:"active_fields"`
	TotalCrops     int     `json:"total_crops"`
	HarvestedCrops int     `json:"harvested_crops"`
	TotalYield     float64 `json:"total_yield"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	PendingTasks   int     `json:"pending_tasks"`
	CompletionRate int     `json:"completion_rate"` // %, 0 without tasks
	TotalExpenses  float64 `json:"total_expenses"`

	FieldStatus    []Count  `json:"field_status"` // every status, zeros included
	CropVarieties  []Count  `json:"crop_varieties"`
	TaskCategories []Count  `json:"task_categories"`
	Expenses       []Amount `json:"expenses"`
}

type Service struct {
	fields   fieldsvc.FieldService
	crops    cropsvc.CropService
	tasks    tasksvc.TaskService
	expenses expensesvc.ExpenseService
	now      func() time.Time
}

func New(f fieldsvc.FieldService, c cropsvc.CropService, t tasksvc.TaskService, e expensesvc.ExpenseService) *Service {
	return &Service{fields: f, crops: c, tasks: t, expenses: e, now: time.Now}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var (
		fields   []entities.Field
		crops    []entities.Crop
		tasks    []entities.Task
		expenses []entities.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { fields, err = s.fields.List(gctx, ""); return })
	g.Go(func() (err error) { crops, err = s.crops.List(gctx, ""); return })
	g.Go(func() (err error) { tasks, err = s.tasks.List(gctx, tasksvc.Query{}); return })
	g.Go(func() (err error) { expenses, err = s.expenses.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sum := Build(fields, crops, tasks, expenses)
	sum.GeneratedAt = s.now()
	return sum, nil
}

// Build aggregates loaded records. It has no side effects.
func Build(fields []entities.Field, crops []entities.Crop, tasks []entities.Task, expenses []entities.Expense) *Summary {
	s := &Summary{
		TotalFields: len(fields),
		TotalCrops:  len(crops),
		TotalTasks:  len(tasks),
	}

	byStatus := map[string]int{}
	for _, f := range fields {
		byStatus[string(f.Status)]++
		if f.Status != entities.FieldFallow {
			s.ActiveFields++
		}
	}
	for _, st := range entities.FieldStatuses {
		n := byStatus[string(st)]
		s.FieldStatus = append(s.FieldStatus, Count{Label: string(st), Count: n, Percent: percent(n, len(fields))})
	}

	varieties := map[string]int{}
	for _, c := range crops {
		varieties[c.Variety]++
		s.TotalYield += c.Yield
		if c.Status == entities.CropHarvested {
			s.HarvestedCrops++
		}
	}
	s.CropVarieties = counts(varieties, len(crops))

	categories := map[string]int{}
	for _, t := range tasks {
		categories[t.Category]++
		if t.Completed {
			s.CompletedTasks++
		}
	}
	s.PendingTasks = s.TotalTasks - s.CompletedTasks
	s.CompletionRate = percent(s.CompletedTasks, s.TotalTasks)
	s.TaskCategories = counts(categories, len(tasks))

	spent := map[string]float64{}
	for _, e := range expenses {
		spent[e.Category] += e.Amount
		s.TotalExpenses += e.Amount
	}
	for label, amt := range spent {
		s.Expenses = append(s.Expenses, Amount{Label: label, Amount: amt})
	}
	sort.Slice(s.Expenses, func(i, j int) bool {
		if s.Expenses[i].Amount != s.Expenses[j].Amount {
			return s.Expenses[i].Amount > s.Expenses[j].Amount
		}
		return s.Expenses[i].Label < s.Expenses[j].Label
	})
	return s
}

// counts orders a tally by count descending, then label.
func counts(m map[string]int, total int) []Count {
	out := make([]Count, 0, len(m))
	for label, n := range m {
		out = append(out, Count{Label: label, Count: n, Percent: percent(n, total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) * 100 / float64(total)))
}
