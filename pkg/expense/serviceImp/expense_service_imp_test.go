package serviceImp

import (
	"context"
	"testing"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	repoImp "farmdash/pkg/expense/repositoryImp"
	"farmdash/pkg/expense/service"
	"farmdash/pkg/store"
	"farmdash/seed"
)

func newSvc(t *testing.T) service.ExpenseService {
	t.Helper()
	list, err := store.LoadJSON[entities.Expense](seed.FS, seed.Expenses)
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	return NewExpenseService(repoImp.NewMock(list, 0))
}

func TestFilters(t *testing.T) {
	ctx := context.Background()
	s := newSvc(t)
	byCrop, err := s.ListByCrop(ctx, 3)
	if err != nil || len(byCrop) != 1 || byCrop[0].Name != "Drip line" {
		t.Fatalf("ListByCrop = %+v, %v", byCrop, err)
	}
	byCat, err := s.ListByCategory(ctx, "labor")
	if err != nil || len(byCat) != 1 || byCat[0].Amount != 640 {
		t.Fatalf("ListByCategory = %+v, %v", byCat, err)
	}
}

func TestCreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := newSvc(t)

	got, err := s.Create(ctx, &entities.Expense{Name: "Diesel", Amount: 60, Date: "2024-06-10"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.ID != 5 || got.Category != "other" {
		t.Fatalf("created = %+v", got)
	}

	amt := 75.0
	up, err := s.Update(ctx, got.ID, entities.ExpensePatch{Amount: &amt})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if up.Amount != 75 || up.Name != "Diesel" || up.Date != "2024-06-10" {
		t.Fatalf("updated = %+v", up)
	}

	name := " Red diesel "
	if up, err = s.Update(ctx, got.ID, entities.ExpensePatch{Name: &name}); err != nil || up.Name != "Red diesel" {
		t.Fatalf("trimmed update = %+v, %v", up, err)
	}

	neg := -1.0
	if _, err := s.Update(ctx, got.ID, entities.ExpensePatch{Amount: &neg}); apperr.CodeOf(err) != apperr.CodeInvalidArgument {
		t.Fatalf("negative amount err = %v", err)
	}
	if _, err := s.Create(ctx, &entities.Expense{Name: "x", Date: "yesterday"}); apperr.CodeOf(err) != apperr.CodeInvalidArgument {
		t.Fatalf("bad date err = %v", err)
	}
}
