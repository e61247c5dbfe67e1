package repository

import (
	"context"

	"farmdash/entities"
)

type TaskRepository interface {
	List(ctx context.Context) ([]entities.Task, error)
	ListByField(ctx context.Context, fieldID int) ([]entities.Task, error)
	ListByCompleted(ctx context.Context, completed bool) ([]entities.Task, error)
	FindByID(ctx context.Context, id int) (*entities.Task, error)
	Create(ctx context.Context, t *entities.Task) error
	Update(ctx context.Context, id int, p entities.TaskPatch) (*entities.Task, error)
	Delete(ctx context.Context, id int) (*entities.Task, error)
}
