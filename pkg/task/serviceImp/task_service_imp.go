package serviceImp

import (
	"context"
	"sort"
	"strings"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	repo "farmdash/pkg/task/repository"
	"farmdash/pkg/task/service"
)

type taskSvc struct{ r repo.TaskRepository }

func NewTaskService(r repo.TaskRepository) service.TaskService { return &taskSvc{r} }

func (s *taskSvc) List(ctx context.Context, q service.Query) ([]entities.Task, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	all, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := Filter(all, q)
	SortForDisplay(out)
	return out, nil
}

// Filter applies the search term, status and priority of q.
func Filter(tasks []entities.Task, q service.Query) []entities.Task {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) &&
			!strings.Contains(strings.ToLower(t.Category), term) {
			continue
		}
		switch q.Status {
		case service.StatusPending:
			if t.Completed {
				continue
			}
		case service.StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if q.Priority != "" && q.Priority != service.StatusAll && string(t.Priority) != q.Priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortForDisplay orders pending tasks before completed ones, each group by
// due date ascending. Tasks without a due date sort last within their group.
func SortForDisplay(tasks []entities.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return dueBefore(a, b)
	})
}

// Upcoming returns at most n pending tasks ordered by due date.
func Upcoming(tasks []entities.Task, n int) []entities.Task {
	out := make([]entities.Task, 0, n)
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return dueBefore(out[i], out[j]) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func dueBefore(a, b entities.Task) bool {
	switch {
	case a.DueDate == b.DueDate:
		return a.ID < b.ID
	case a.DueDate == "":
		return false
	case b.DueDate == "":
		return true
	}
	return a.DueDate < b.DueDate
}

func validateQuery(q service.Query) error {
	switch q.Status {
	case "", service.StatusAll, service.StatusPending, service.StatusCompleted:
	default:
		return apperr.Invalid("unknown task status filter " + q.Status)
	}
	if q.Priority != "" && q.Priority != service.StatusAll && !entities.Priority(q.Priority).Valid() {
		return apperr.Invalid("unknown task priority " + q.Priority)
	}
	return nil
}

func (s *taskSvc) ListByField(ctx context.Context, fieldID int) ([]entities.Task, error) {
	return s.r.ListByField(ctx, fieldID)
}

func (s *taskSvc) Pending(ctx context.Context) ([]entities.Task, error) {
	return s.r.ListByCompleted(ctx, false)
}

func (s *taskSvc) Completed(ctx context.Context) ([]entities.Task, error) {
	return s.r.ListByCompleted(ctx, true)
}

func (s *taskSvc) Get(ctx context.Context, id int) (*entities.Task, error) {
	return s.r.FindByID(ctx, id)
}

func (s *taskSvc) Create(ctx context.Context, t *entities.Task) (*entities.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return nil, apperr.Invalid("task title is required")
	}
	if t.Priority == "" {
		t.Priority = entities.PriorityMedium
	}
	if t.Category == "" {
		t.Category = "general"
	}
	if err := validate(t.Priority, t.DueDate); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskSvc) Update(ctx context.Context, id int, p entities.TaskPatch) (*entities.Task, error) {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return nil, apperr.Invalid("task title cannot be empty")
		}
		p.Title = &title
	}
	prio, due := entities.PriorityMedium, ""
	if p.Priority != nil {
		prio = *p.Priority
	}
	if p.DueDate != nil {
		due = *p.DueDate
	}
	if err := validate(prio, due); err != nil {
		return nil, err
	}
	return s.r.Update(ctx, id, p)
}

func (s *taskSvc) Complete(ctx context.Context, id int) (*entities.Task, error) {
	done := true
	return s.r.Update(ctx, id, entities.TaskPatch{Completed: &done})
}

func (s *taskSvc) Delete(ctx context.Context, id int) (*entities.Task, error) {
	return s.r.Delete(ctx, id)
}

func validate(p entities.Priority, due string) error {
	if !p.Valid() {
		return apperr.Invalid("unknown task priority " + string(p))
	}
	if !entities.ValidDate(due) {
		return apperr.Invalid("invalid due_date " + due + ", want YYYY-MM-DD")
	}
	return nil
}
