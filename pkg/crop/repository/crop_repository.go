package repository

import (
	"context"

	"farmdash/entities"
)

type CropRepository interface {
	List(ctx context.Context) ([]entities.Crop, error)
	ListByField(ctx context.Context, fieldID int) ([]entities.Crop, error)
	FindByID(ctx context.Context, id int) (*entities.Crop, error)
	Create(ctx context.Context, c *entities.Crop) error
	Update(ctx context.Context, id int, p entities.CropPatch) (*entities.Crop, error)
	Delete(ctx context.Context, id int) (*entities.Crop, error)
}
