package service

import (
	"context"

	"farmdash/entities"
)

type FieldService interface {
	// List returns fields whose name, location or status contains q
	// (case-insensitive). An empty q returns every field.
	List(ctx context.Context, q string) ([]entities.Field, error)
	Get(ctx context.Context, id int) (*entities.Field, error)
	Create(ctx context.Context, f *entities.Field) (*entities.Field, error)
	Update(ctx context.Context, id int, p entities.FieldPatch) (*entities.Field, error)
	Delete(ctx context.Context, id int) (*entities.Field, error)
}
