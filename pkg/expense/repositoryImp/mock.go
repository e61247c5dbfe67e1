package repositoryImp

import (
	"context"
	"time"

	"farmdash/entities"
	"farmdash/pkg/expense/repository"
	"farmdash/pkg/store"
)

type mockRepo struct {
	s *store.Mock[entities.Expense, *entities.Expense]
}

func NewMock(seed []entities.Expense, delay time.Duration) repository.ExpenseRepository {
	return &mockRepo{s: store.NewMock[entities.Expense]("expense", seed, delay)}
}

func (r *mockRepo) List(ctx context.Context) ([]entities.Expense, error) { return r.s.All(ctx) }

func (r *mockRepo) ListByCrop(ctx context.Context, cropID int) ([]entities.Expense, error) {
	return r.s.Filter(ctx, func(e *entities.Expense) bool { return e.CropID == cropID })
}

func (r *mockRepo) ListByCategory(ctx context.Context, category string) ([]entities.Expense, error) {
	return r.s.Filter(ctx, func(e *entities.Expense) bool { return e.Category == category })
}

func (r *mockRepo) FindByID(ctx context.Context, id int) (*entities.Expense, error) {
	return r.s.Get(ctx, id)
}

func (r *mockRepo) Create(ctx context.Context, e *entities.Expense) error {
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	out, err := r.s.Create(ctx, *e)
	if err != nil {
		return err
	}
	*e = *out
	return nil
}

func (r *mockRepo) Update(ctx context.Context, id int, p entities.ExpensePatch) (*entities.Expense, error) {
	return r.s.Update(ctx, id, func(e *entities.Expense) {
		p.Apply(e)
		e.UpdatedAt = time.Now()
	})
}

func (r *mockRepo) Delete(ctx context.Context, id int) (*entities.Expense, error) {
	return r.s.Delete(ctx, id)
}
