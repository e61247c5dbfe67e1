package repository

import (
	"context"

	"farmdash/entities"
)

type FieldRepository interface {
	List(ctx context.Context) ([]entities.Field, error)
	FindByID(ctx context.Context, id int) (*entities.Field, error)
	Create(ctx context.Context, f *entities.Field) error
	Update(ctx context.Context, id int, p entities.FieldPatch) (*entities.Field, error)
	Delete(ctx context.Context, id int) (*entities.Field, error)
}
