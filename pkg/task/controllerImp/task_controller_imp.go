package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	"farmdash/pkg/records"
	"farmdash/pkg/task/service"
)

type TaskCtrl struct {
	*records.Endpoint[entities.Task, entities.TaskPatch]
	svc service.TaskService
}

func New(svc service.TaskService) *TaskCtrl {
	h := &TaskCtrl{svc: svc}
	h.Endpoint = &records.Endpoint[entities.Task, entities.TaskPatch]{
		Name:  "task",
		Svc:   svc,
		Query: h.query,
	}
	return h
}

func (h *TaskCtrl) query(c echo.Context) ([]entities.Task, error) {
	ctx := c.Request().Context()
	if v := c.QueryParam("field_id"); v != "" {
		fid, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperr.Invalid("invalid field_id")
		}
		return h.svc.ListByField(ctx, fid)
	}
	if v := c.QueryParam("completed"); v != "" {
		done, err := strconv.ParseBool(v)
		if err != nil {
			return nil, apperr.Invalid("invalid completed flag")
		}
		if done {
			return h.svc.Completed(ctx)
		}
		return h.svc.Pending(ctx)
	}
	return h.svc.List(ctx, service.Query{
		Search:   c.QueryParam("q"),
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
	})
}

// Complete serves POST /api/v1/tasks/:id/complete.
func (h *TaskCtrl) Complete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, records.Fail("invalid id"))
	}
	t, err := h.svc.Complete(c.Request().Context(), id)
	if err != nil {
		return records.Error(c, err)
	}
	return records.Data(c, http.StatusOK, t)
}

// ByField serves GET /fields/:id/tasks.
func (h *TaskCtrl) ByField(c echo.Context) error {
	fid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, records.Fail("invalid field id"))
	}
	list, err := h.svc.ListByField(c.Request().Context(), fid)
	if err != nil {
		return records.Error(c, err)
	}
	if list == nil {
		list = []entities.Task{}
	}
	return records.Data(c, http.StatusOK, list)
}
