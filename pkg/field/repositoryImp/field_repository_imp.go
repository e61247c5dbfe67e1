package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
	"farmdash/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) List(ctx context.Context) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, database.Translate(err, "field", 0)
	}
	return out, nil
}

func (r *fieldRepo) FindByID(ctx context.Context, id int) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, database.Translate(err, "field", id)
	}
	return &f, nil
}

func (r *fieldRepo) Create(ctx context.Context, f *entities.Field) error {
	f.ID = 0
	return database.Translate(r.db.WithContext(ctx).Create(f).Error, "field", 0)
}

func (r *fieldRepo) Update(ctx context.Context, id int, p entities.FieldPatch) (*entities.Field, error) {
	f, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(f)
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		return nil, database.Translate(err, "field", id)
	}
	return f, nil
}

func (r *fieldRepo) Delete(ctx context.Context, id int) (*entities.Field, error) {
	f, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entities.Field{}, id).Error; err != nil {
		return nil, database.Translate(err, "field", id)
	}
	return f, nil
}
