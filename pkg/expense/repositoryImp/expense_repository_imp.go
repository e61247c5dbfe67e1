package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
	"farmdash/pkg/expense/repository"
)

type expenseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) list(ctx context.Context, q *gorm.DB) ([]entities.Expense, error) {
	var out []entities.Expense
	if err := q.WithContext(ctx).Order("date asc, id asc").Find(&out).Error; err != nil {
		return nil, database.Translate(err, "expense", 0)
	}
	return out, nil
}

func (r *expenseRepo) List(ctx context.Context) ([]entities.Expense, error) {
	return r.list(ctx, r.db.Model(&entities.Expense{}))
}

func (r *expenseRepo) ListByCrop(ctx context.Context, cropID int) ([]entities.Expense, error) {
	return r.list(ctx, r.db.Model(&entities.Expense{}).Where("crop_id = ?", cropID))
}

func (r *expenseRepo) ListByCategory(ctx context.Context, category string) ([]entities.Expense, error) {
	return r.list(ctx, r.db.Model(&entities.Expense{}).Where("category = ?", category))
}

func (r *expenseRepo) FindByID(ctx context.Context, id int) (*entities.Expense, error) {
	var out entities.Expense
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, database.Translate(err, "expense", id)
	}
	return &out, nil
}

func (r *expenseRepo) Create(ctx context.Context, e *entities.Expense) error {
	e.ID = 0
	return database.Translate(r.db.WithContext(ctx).Create(e).Error, "expense", 0)
}

func (r *expenseRepo) Update(ctx context.Context, id int, p entities.ExpensePatch) (*entities.Expense, error) {
	cur, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(cur)
	if err := r.db.WithContext(ctx).Save(cur).Error; err != nil {
		return nil, database.Translate(err, "expense", id)
	}
	return cur, nil
}

func (r *expenseRepo) Delete(ctx context.Context, id int) (*entities.Expense, error) {
	cur, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entities.Expense{}, id).Error; err != nil {
		return nil, database.Translate(err, "expense", id)
	}
	return cur, nil
}
