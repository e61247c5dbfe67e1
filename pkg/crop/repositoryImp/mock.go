package repositoryImp

import (
	"context"
	"time"

	"farmdash/entities"
	"farmdash/pkg/crop/repository"
	"farmdash/pkg/store"
)

type mockRepo struct {
	s *store.Mock[entities.Crop, *entities.Crop]
}

func NewMock(seed []entities.Crop, delay time.Duration) repository.CropRepository {
	return &mockRepo{s: store.NewMock[entities.Crop]("crop", seed, delay)}
}

func (r *mockRepo) List(ctx context.Context) ([]entities.Crop, error) { return r.s.All(ctx) }

func (r *mockRepo) ListByField(ctx context.Context, fieldID int) ([]entities.Crop, error) {
	return r.s.Filter(ctx, func(c *entities.Crop) bool { return c.FieldID == fieldID })
}

func (r *mockRepo) FindByID(ctx context.Context, id int) (*entities.Crop, error) {
	return r.s.Get(ctx, id)
}

func (r *mockRepo) Create(ctx context.Context, c *entities.Crop) error {
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	out, err := r.s.Create(ctx, *c)
	if err != nil {
		return err
	}
	*c = *out
	return nil
}

func (r *mockRepo) Update(ctx context.Context, id int, p entities.CropPatch) (*entities.Crop, error) {
	return r.s.Update(ctx, id, func(c *entities.Crop) {
		p.Apply(c)
		c.UpdatedAt = time.Now()
	})
}

func (r *mockRepo) Delete(ctx context.Context, id int) (*entities.Crop, error) {
	return r.s.Delete(ctx, id)
}
