package records

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmdash/pkg/apperr"
)

// Service is the write side every entity service offers.
type Service[T any, P any] interface {
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, id int, patch P) (*T, error)
	Delete(ctx context.Context, id int) (*T, error)
}

type owned interface{ SetOwner(uid string) }

// Endpoint serves one table of the records API.
type Endpoint[T any, P any] struct {
	Name string // singular, used in messages
	Svc  Service[T, P]
	// Query lists records for GET /:table using the request's query string.
	Query func(c echo.Context) ([]T, error)
}

func (e *Endpoint[T, P]) Register(g *echo.Group, table string) {
	g.GET("/"+table, e.List)
	g.GET("/"+table+"/:id", e.Get)
	g.POST("/"+table, e.Create)
	g.PATCH("/"+table, e.Update)
	g.DELETE("/"+table, e.Delete)
}

func (e *Endpoint[T, P]) List(c echo.Context) error {
	list, err := e.Query(c)
	if err != nil {
		return Error(c, err)
	}
	if list == nil {
		list = []T{}
	}
	return Data(c, http.StatusOK, list)
}

func (e *Endpoint[T, P]) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	rec, err := e.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return Error(c, err)
	}
	return Data(c, http.StatusOK, rec)
}

func (e *Endpoint[T, P]) Create(c echo.Context) error {
	var req WriteRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil || len(req.Records) == 0 {
		return c.JSON(http.StatusBadRequest, Fail("records required"))
	}
	uid, _ := c.Get("uid").(string)
	ctx := c.Request().Context()
	results := make([]Result, 0, len(req.Records))
	for _, raw := range req.Records {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			results = append(results, Result{Message: "invalid " + e.Name + " json", Code: invalid})
			continue
		}
		if o, ok := any(&rec).(owned); ok && uid != "" {
			o.SetOwner(uid)
		}
		out, err := e.Svc.Create(ctx, &rec)
		results = append(results, result(out, err))
	}
	return e.batch(c, http.StatusCreated, results)
}

func (e *Endpoint[T, P]) Update(c echo.Context) error {
	var req WriteRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil || len(req.Records) == 0 {
		return c.JSON(http.StatusBadRequest, Fail("records required"))
	}
	ctx := c.Request().Context()
	results := make([]Result, 0, len(req.Records))
	for _, raw := range req.Records {
		var key struct {
			ID int `json:"id"`
		}
		var patch P
		if json.Unmarshal(raw, &key) != nil || key.ID <= 0 {
			results = append(results, Result{Message: "record id required", Code: invalid})
			continue
		}
		if err := json.Unmarshal(raw, &patch); err != nil {
			results = append(results, Result{Message: "invalid " + e.Name + " json", Code: invalid})
			continue
		}
		out, err := e.Svc.Update(ctx, key.ID, patch)
		results = append(results, result(out, err))
	}
	return e.batch(c, http.StatusOK, results)
}

func (e *Endpoint[T, P]) Delete(c echo.Context) error {
	var req DeleteRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil || len(req.RecordIDs) == 0 {
		return c.JSON(http.StatusBadRequest, Fail("record_ids required"))
	}
	ctx := c.Request().Context()
	results := make([]Result, 0, len(req.RecordIDs))
	for _, id := range req.RecordIDs {
		out, err := e.Svc.Delete(ctx, id)
		results = append(results, result(out, err))
	}
	return e.batch(c, http.StatusOK, results)
}

func (e *Endpoint[T, P]) batch(c echo.Context, status int, results []Result) error {
	resp := Batch(results)
	if !resp.Success {
		_, failed := Split(results)
		resp.Message = fmt.Sprintf("%d of %d %s records failed", len(failed), len(results), e.Name)
		status = http.StatusOK
	}
	return c.JSON(status, resp)
}

const invalid = string(apperr.CodeInvalidArgument)

func result[T any](rec *T, err error) Result {
	if err != nil {
		return Result{Message: err.Error(), Code: string(apperr.CodeOf(err))}
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return Result{Message: err.Error()}
	}
	return Result{Success: true, Data: b}
}

// Data writes a successful envelope around v.
func Data(c echo.Context, status int, v any) error {
	resp, err := OK(v)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, Fail(err.Error()))
	}
	return c.JSON(status, resp)
}

// Error writes a failed envelope with the status matching err's code.
func Error(c echo.Context, err error) error {
	return c.JSON(apperr.CodeOf(err).HTTPStatus(), Fail(err.Error()))
}
