package repositoryImp

import (
	"context"
	"time"

	"farmdash/entities"
	"farmdash/pkg/store"
	"farmdash/pkg/task/repository"
)

type mockRepo struct {
	s *store.Mock[entities.Task, *entities.Task]
}

func NewMock(seed []entities.Task, delay time.Duration) repository.TaskRepository {
	return &mockRepo{s: store.NewMock[entities.Task]("task", seed, delay)}
}

func (r *mockRepo) List(ctx context.Context) ([]entities.Task, error) { return r.s.All(ctx) }

func (r *mockRepo) ListByField(ctx context.Context, fieldID int) ([]entities.Task, error) {
	return r.s.Filter(ctx, func(t *entities.Task) bool { return t.FieldID == fieldID })
}

func (r *mockRepo) ListByCompleted(ctx context.Context, completed bool) ([]entities.Task, error) {
	return r.s.Filter(ctx, func(t *entities.Task) bool { return t.Completed == completed })
}

func (r *mockRepo) FindByID(ctx context.Context, id int) (*entities.Task, error) {
	return r.s.Get(ctx, id)
}

func (r *mockRepo) Create(ctx context.Context, t *entities.Task) error {
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	out, err := r.s.Create(ctx, *t)
	if err != nil {
		return err
	}
	*t = *out
	return nil
}

func (r *mockRepo) Update(ctx context.Context, id int, p entities.TaskPatch) (*entities.Task, error) {
	return r.s.Update(ctx, id, func(t *entities.Task) {
		p.Apply(t)
		t.UpdatedAt = time.Now()
	})
}

func (r *mockRepo) Delete(ctx context.Context, id int) (*entities.Task, error) {
	return r.s.Delete(ctx, id)
}
