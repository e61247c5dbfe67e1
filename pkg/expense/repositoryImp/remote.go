package repositoryImp

import (
	"context"
	"net/url"
	"strconv"

	"farmdash/entities"
	"farmdash/pkg/backend"
	"farmdash/pkg/expense/repository"
	"farmdash/pkg/records"
)

type remoteRepo struct {
	t *backend.Table[entities.Expense]
}

func NewRemote(c *backend.Client) repository.ExpenseRepository {
	return &remoteRepo{t: backend.NewTable[entities.Expense](c, records.TableExpenses, "expense")}
}

func (r *remoteRepo) List(ctx context.Context) ([]entities.Expense, error) {
	return r.t.Fetch(ctx, nil)
}

func (r *remoteRepo) ListByCrop(ctx context.Context, cropID int) ([]entities.Expense, error) {
	return r.t.Fetch(ctx, url.Values{"crop_id": {strconv.Itoa(cropID)}})
}

func (r *remoteRepo) ListByCategory(ctx context.Context, category string) ([]entities.Expense, error) {
	return r.t.Fetch(ctx, url.Values{"category": {category}})
}

func (r *remoteRepo) FindByID(ctx context.Context, id int) (*entities.Expense, error) {
	return r.t.Get(ctx, id)
}

func (r *remoteRepo) Create(ctx context.Context, e *entities.Expense) error {
	out, err := r.t.Create(ctx, e)
	if err != nil {
		return err
	}
	*e = *out
	return nil
}

func (r *remoteRepo) Update(ctx context.Context, id int, p entities.ExpensePatch) (*entities.Expense, error) {
	return r.t.Update(ctx, id, p)
}

func (r *remoteRepo) Delete(ctx context.Context, id int) (*entities.Expense, error) {
	return r.t.Delete(ctx, id)
}
