package repositoryImp

import (
	"context"
	"net/url"
	"strconv"

	"farmdash/entities"
	"farmdash/pkg/backend"
	"farmdash/pkg/records"
	"farmdash/pkg/task/repository"
)

type remoteRepo struct {
	t *backend.Table[entities.Task]
}

func NewRemote(c *backend.Client) repository.TaskRepository {
	return &remoteRepo{t: backend.NewTable[entities.Task](c, records.TableTasks, "task")}
}

func (r *remoteRepo) List(ctx context.Context) ([]entities.Task, error) {
	return r.t.Fetch(ctx, nil)
}

func (r *remoteRepo) ListByField(ctx context.Context, fieldID int) ([]entities.Task, error) {
	return r.t.Fetch(ctx, url.Values{"field_id": {strconv.Itoa(fieldID)}})
}

func (r *remoteRepo) ListByCompleted(ctx context.Context, completed bool) ([]entities.Task, error) {
	return r.t.Fetch(ctx, url.Values{"completed": {strconv.FormatBool(completed)}})
}

func (r *remoteRepo) FindByID(ctx context.Context, id int) (*entities.Task, error) {
	return r.t.Get(ctx, id)
}

func (r *remoteRepo) Create(ctx context.Context, t *entities.Task) error {
	out, err := r.t.Create(ctx, t)
	if err != nil {
		return err
	}
	*t = *out
	return nil
}

func (r *remoteRepo) Update(ctx context.Context, id int, p entities.TaskPatch) (*entities.Task, error) {
	return r.t.Update(ctx, id, p)
}

func (r *remoteRepo) Delete(ctx context.Context, id int) (*entities.Task, error) {
	return r.t.Delete(ctx, id)
}
