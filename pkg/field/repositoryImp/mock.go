package repositoryImp

import (
	"context"
	"time"

	"farmdash/entities"
	"farmdash/pkg/field/repository"
	"farmdash/pkg/store"
)

type mockRepo struct {
	s *store.Mock[entities.Field, *entities.Field]
}

func NewMock(seed []entities.Field, delay time.Duration) repository.FieldRepository {
	return &mockRepo{s: store.NewMock[entities.Field]("field", seed, delay)}
}

func (r *mockRepo) List(ctx context.Context) ([]entities.Field, error) { return r.s.All(ctx) }

func (r *mockRepo) FindByID(ctx context.Context, id int) (*entities.Field, error) {
	return r.s.Get(ctx, id)
}

func (r *mockRepo) Create(ctx context.Context, f *entities.Field) error {
	now := time.Now()
	f.CreatedAt, f.UpdatedAt = now, now
	out, err := r.s.Create(ctx, *f)
	if err != nil {
		return err
	}
	*f = *out
	return nil
}

func (r *mockRepo) Update(ctx context.Context, id int, p entities.FieldPatch) (*entities.Field, error) {
	return r.s.Update(ctx, id, func(f *entities.Field) {
		p.Apply(f)
		f.UpdatedAt = time.Now()
	})
}

func (r *mockRepo) Delete(ctx context.Context, id int) (*entities.Field, error) {
	return r.s.Delete(ctx, id)
}
