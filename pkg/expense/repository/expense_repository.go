package repository

import (
	"context"

	"farmdash/entities"
)

type ExpenseRepository interface {
	List(ctx context.Context) ([]entities.Expense, error)
	ListByCrop(ctx context.Context, cropID int) ([]entities.Expense, error)
	ListByCategory(ctx context.Context, category string) ([]entities.Expense, error)
	FindByID(ctx context.Context, id int) (*entities.Expense, error)
	Create(ctx context.Context, e *entities.Expense) error
	Update(ctx context.Context, id int, p entities.ExpensePatch) (*entities.Expense, error)
	Delete(ctx context.Context, id int) (*entities.Expense, error)
}
