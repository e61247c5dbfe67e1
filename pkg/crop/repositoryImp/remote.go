package repositoryImp

import (
	"context"
	"net/url"
	"strconv"

	"farmdash/entities"
	"farmdash/pkg/backend"
	"farmdash/pkg/crop/repository"
	"farmdash/pkg/records"
)

type remoteRepo struct {
	t *backend.Table[entities.Crop]
}

func NewRemote(c *backend.Client) repository.CropRepository {
	return &remoteRepo{t: backend.NewTable[entities.Crop](c, records.TableCrops, "crop")}
}

func (r *remoteRepo) List(ctx context.Context) ([]entities.Crop, error) {
	return r.t.Fetch(ctx, nil)
}

func (r *remoteRepo) ListByField(ctx context.Context, fieldID int) ([]entities.Crop, error) {
	return r.t.Fetch(ctx, url.Values{"field_id": {strconv.Itoa(fieldID)}})
}

func (r *remoteRepo) FindByID(ctx context.Context, id int) (*entities.Crop, error) {
	return r.t.Get(ctx, id)
}

func (r *remoteRepo) Create(ctx context.Context, c *entities.Crop) error {
	out, err := r.t.Create(ctx, c)
	if err != nil {
		return err
	}
	*c = *out
	return nil
}

func (r *remoteRepo) Update(ctx context.Context, id int, p entities.CropPatch) (*entities.Crop, error) {
	return r.t.Update(ctx, id, p)
}

func (r *remoteRepo) Delete(ctx context.Context, id int) (*entities.Crop, error) {
	return r.t.Delete(ctx, id)
}
