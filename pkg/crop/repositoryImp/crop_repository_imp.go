package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
	"farmdash/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) List(ctx context.Context) ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, database.Translate(err, "crop", 0)
	}
	return out, nil
}

func (r *cropRepo) ListByField(ctx context.Context, fieldID int) ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.WithContext(ctx).Where("field_id = ?", fieldID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, database.Translate(err, "crop", 0)
	}
	return out, nil
}

func (r *cropRepo) FindByID(ctx context.Context, id int) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, database.Translate(err, "crop", id)
	}
	return &c, nil
}

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	c.ID = 0
	return database.Translate(r.db.WithContext(ctx).Create(c).Error, "crop", 0)
}

func (r *cropRepo) Update(ctx context.Context, id int, p entities.CropPatch) (*entities.Crop, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(c)
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, database.Translate(err, "crop", id)
	}
	return c, nil
}

func (r *cropRepo) Delete(ctx context.Context, id int) (*entities.Crop, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entities.Crop{}, id).Error; err != nil {
		return nil, database.Translate(err, "crop", id)
	}
	return c, nil
}
