package repositoryImp

import (
	"context"

	"farmdash/entities"
	"farmdash/pkg/backend"
	"farmdash/pkg/field/repository"
	"farmdash/pkg/records"
)

type remoteRepo struct {
	t *backend.Table[entities.Field]
}

func NewRemote(c *backend.Client) repository.FieldRepository {
	return &remoteRepo{t: backend.NewTable[entities.Field](c, records.TableFields, "field")}
}

func (r *remoteRepo) List(ctx context.Context) ([]entities.Field, error) {
	return r.t.Fetch(ctx, nil)
}

func (r *remoteRepo) FindByID(ctx context.Context, id int) (*entities.Field, error) {
	return r.t.Get(ctx, id)
}

func (r *remoteRepo) Create(ctx context.Context, f *entities.Field) error {
	out, err := r.t.Create(ctx, f)
	if err != nil {
		return err
	}
	*f = *out
	return nil
}

func (r *remoteRepo) Update(ctx context.Context, id int, p entities.FieldPatch) (*entities.Field, error) {
	return r.t.Update(ctx, id, p)
}

func (r *remoteRepo) Delete(ctx context.Context, id int) (*entities.Field, error) {
	return r.t.Delete(ctx, id)
}
