package serviceImp

import (
	"context"
	"errors"
	"testing"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	repoImp "farmdash/pkg/field/repositoryImp"
	"farmdash/pkg/store"
	"farmdash/seed"
)

func newSvc(t *testing.T) *fieldSvc {
	t.Helper()
	fields, err := store.LoadJSON[entities.Field](seed.FS, seed.Fields)
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	return NewFieldService(repoImp.NewMock(fields, 0)).(*fieldSvc)
}

func TestListSearch(t *testing.T) {
	ctx := context.Background()
	s := newSvc(t)

	all, err := s.List(ctx, "")
	if err != nil || len(all) != 5 {
		t.Fatalf("all = %d, %v", len(all), err)
	}
	// name
	if got, _ := s.List(ctx, "orchard"); len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("name search = %+v", got)
	}
	// location
	if got, _ := s.List(ctx, "CREEK"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("location search = %+v", got)
	}
	// status
	if got, _ := s.List(ctx, "fallow"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("status search = %+v", got)
	}
	if got, _ := s.List(ctx, "zzz"); len(got) != 0 {
		t.Fatalf("no match = %+v", got)
	}
}

func TestCreateDefaults(t *testing.T) {
	got, err := newSvc(t).Create(context.Background(), &entities.Field{Name: "Back Forty", Size: 40})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.ID != 6 || got.Status != entities.FieldHealthy || got.Unit != "acres" {
		t.Fatalf("created = %+v", got)
	}
}

func TestCreateRejects(t *testing.T) {
	ctx := context.Background()
	s := newSvc(t)
	for _, f := range []entities.Field{
		{Name: " "},
		{Name: "x", Size: -1},
		{Name: "x", Status: "flooded"},
	} {
		f := f
		if _, err := s.Create(ctx, &f); apperr.CodeOf(err) != apperr.CodeInvalidArgument {
			t.Fatalf("Create(%+v) err = %v, want invalid", f, err)
		}
	}
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	s := newSvc(t)
	st := entities.FieldGrowing
	got, err := s.Update(ctx, 3, entities.FieldPatch{Status: &st})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != entities.FieldGrowing || got.Name != "East Pasture" || got.Size != 32 {
		t.Fatalf("updated = %+v", got)
	}
	empty := "  "
	if _, err := s.Update(ctx, 3, entities.FieldPatch{Name: &empty}); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("empty name err = %v", err)
	}
	padded := "  East Meadow "
	got, err = s.Update(ctx, 3, entities.FieldPatch{Name: &padded})
	if err != nil || got.Name != "East Meadow" {
		t.Fatalf("trimmed update = %+v, %v", got, err)
	}
	if _, err := s.Update(ctx, 99, entities.FieldPatch{Status: &st}); !apperr.IsNotFound(err) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestDeleteReturnsRemoved(t *testing.T) {
	ctx := context.Background()
	s := newSvc(t)
	got, err := s.Delete(ctx, 2)
	if err != nil || got.Name != "South Field" {
		t.Fatalf("delete = %+v, %v", got, err)
	}
	if _, err := s.Get(ctx, 2); !apperr.IsNotFound(err) {
		t.Fatalf("get after delete err = %v", err)
	}
	rest, _ := s.List(ctx, "")
	if len(rest) != 4 {
		t.Fatalf("remaining = %d, want 4", len(rest))
	}
}
