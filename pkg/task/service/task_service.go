package service

import (
	"context"

	"farmdash/entities"
)

const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Query filters the task list. Empty Status and Priority mean "all".
type Query struct {
	Search   string
	Status   string // all|pending|completed
	Priority string // all|low|medium|high
}

type TaskService interface {
	// List filters by Query and orders incomplete tasks first, then by due date.
	List(ctx context.Context, q Query) ([]entities.Task, error)
	ListByField(ctx context.Context, fieldID int) ([]entities.Task, error)
	Pending(ctx context.Context) ([]entities.Task, error)
	Completed(ctx context.Context) ([]entities.Task, error)
	Get(ctx context.Context, id int) (*entities.Task, error)
	Create(ctx context.Context, t *entities.Task) (*entities.Task, error)
	Update(ctx context.Context, id int, p entities.TaskPatch) (*entities.Task, error)
	Complete(ctx context.Context, id int) (*entities.Task, error)
	Delete(ctx context.Context, id int) (*entities.Task, error)
}
