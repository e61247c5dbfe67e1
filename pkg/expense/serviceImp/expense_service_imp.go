package serviceImp

import (
	"context"
	"strings"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	repo "farmdash/pkg/expense/repository"
	"farmdash/pkg/expense/service"
)

type expenseSvc struct{ r repo.ExpenseRepository }

func NewExpenseService(r repo.ExpenseRepository) service.ExpenseService {
	return &expenseSvc{r: r}
}

func (s *expenseSvc) List(ctx context.Context) ([]entities.Expense, error) { return s.r.List(ctx) }

func (s *expenseSvc) ListByCrop(ctx context.Context, cropID int) ([]entities.Expense, error) {
	return s.r.ListByCrop(ctx, cropID)
}

func (s *expenseSvc) ListByCategory(ctx context.Context, category string) ([]entities.Expense, error) {
	return s.r.ListByCategory(ctx, strings.TrimSpace(category))
}

func (s *expenseSvc) Get(ctx context.Context, id int) (*entities.Expense, error) {
	return s.r.FindByID(ctx, id)
}

func (s *expenseSvc) Create(ctx context.Context, e *entities.Expense) (*entities.Expense, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return nil, apperr.Invalid("expense name is required")
	}
	if e.Category == "" {
		e.Category = "other"
	}
	if err := validate(e.Amount, e.Date); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *expenseSvc) Update(ctx context.Context, id int, p entities.ExpensePatch) (*entities.Expense, error) {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, apperr.Invalid("expense name cannot be empty")
		}
		p.Name = &name
	}
	amount, date := 0.0, ""
	if p.Amount != nil {
		amount = *p.Amount
	}
	if p.Date != nil {
		date = *p.Date
	}
	if err := validate(amount, date); err != nil {
		return nil, err
	}
	return s.r.Update(ctx, id, p)
}

func (s *expenseSvc) Delete(ctx context.Context, id int) (*entities.Expense, error) {
	return s.r.Delete(ctx, id)
}

func validate(amount float64, date string) error {
	if amount < 0 {
		return apperr.Invalid("expense amount cannot be negative")
	}
	if !entities.ValidDate(date) {
		return apperr.Invalid("invalid date " + date + ", want YYYY-MM-DD")
	}
	return nil
}
