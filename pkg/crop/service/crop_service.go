package service

import (
	"context"

	"farmdash/entities"
)

type CropService interface {
	// List searches variety, field name and status.
	List(ctx context.Context, q string) ([]entities.Crop, error)
	ListByField(ctx context.Context, fieldID int) ([]entities.Crop, error)
	Get(ctx context.Context, id int) (*entities.Crop, error)
	Create(ctx context.Context, c *entities.Crop) (*entities.Crop, error)
	Update(ctx context.Context, id int, p entities.CropPatch) (*entities.Crop, error)
	Delete(ctx context.Context, id int) (*entities.Crop, error)
}
