package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
	"farmdash/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) find(ctx context.Context, where ...any) ([]entities.Task, error) {
	q := r.db.WithContext(ctx)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	var out []entities.Task
	if err := q.Order("due_date ASC, id ASC").Find(&out).Error; err != nil {
		return nil, database.Translate(err, "task", 0)
	}
	return out, nil
}

func (r *taskRepo) List(ctx context.Context) ([]entities.Task, error) { return r.find(ctx) }

func (r *taskRepo) ListByField(ctx context.Context, fieldID int) ([]entities.Task, error) {
	return r.find(ctx, "field_id = ?", fieldID)
}

func (r *taskRepo) ListByCompleted(ctx context.Context, completed bool) ([]entities.Task, error) {
	return r.find(ctx, "completed = ?", completed)
}

func (r *taskRepo) FindByID(ctx context.Context, id int) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, database.Translate(err, "task", id)
	}
	return &t, nil
}

func (r *taskRepo) Create(ctx context.Context, t *entities.Task) error {
	t.ID = 0
	return database.Translate(r.db.WithContext(ctx).Create(t).Error, "task", 0)
}

func (r *taskRepo) Update(ctx context.Context, id int, p entities.TaskPatch) (*entities.Task, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(t)
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return nil, database.Translate(err, "task", id)
	}
	return t, nil
}

func (r *taskRepo) Delete(ctx context.Context, id int) (*entities.Task, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entities.Task{}, id).Error; err != nil {
		return nil, database.Translate(err, "task", id)
	}
	return t, nil
}
