package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	"farmdash/pkg/backend"
	"farmdash/pkg/middleware"
	fieldCtrlImp "farmdash/pkg/field/controllerImp"
	fieldRepoImp "farmdash/pkg/field/repositoryImp"
	fieldSvcImp "farmdash/pkg/field/serviceImp"
	"farmdash/pkg/records"
)

// newUpstream serves the fields table from an in-memory store. Extra
// middleware runs on the /api/v1 group.
func newUpstream(t *testing.T, mw []echo.MiddlewareFunc, seed ...entities.Field) *httptest.Server {
	t.Helper()
	svc := fieldSvcImp.NewFieldService(fieldRepoImp.NewMock(seed, 0))
	e := echo.New()
	fieldCtrlImp.New(svc).Register(e.Group("/api/v1", mw...), records.TableFields)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := newUpstream(t, nil,
		entities.Field{ID: 1, Name: "North", Size: 10, Unit: "acres", Status: entities.FieldHealthy},
		entities.Field{ID: 2, Name: "South", Size: 5, Unit: "acres", Status: entities.FieldFallow},
	)
	repo := fieldRepoImp.NewRemote(backend.New(srv.URL, "", "", time.Second))

	list, err := repo.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("List = %v, %v", list, err)
	}

	f := &entities.Field{Name: "East", Size: 3, Unit: "ha", Status: entities.FieldGrowing}
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.ID != 3 {
		t.Fatalf("created id = %d, want 3", f.ID)
	}

	loc := "river bend"
	got, err := repo.Update(ctx, 1, entities.FieldPatch{Location: &loc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Location != loc || got.Name != "North" || got.Size != 10 {
		t.Fatalf("Update merged = %+v", got)
	}

	removed, err := repo.Delete(ctx, 2)
	if err != nil || removed.Name != "South" {
		t.Fatalf("Delete = %+v, %v", removed, err)
	}
	if _, err := repo.FindByID(ctx, 2); !apperr.IsNotFound(err) {
		t.Fatalf("FindByID after delete err = %v, want not found", err)
	}
}

func TestBatchFailureIsGeneric(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(records.Batch([]records.Result{{Message: "name is required"}}))
	}))
	defer srv.Close()

	tbl := backend.NewTable[entities.Field](backend.New(srv.URL, "k3y", "", time.Second), records.TableFields, "field")
	_, err := tbl.Create(context.Background(), &entities.Field{})
	if err == nil {
		t.Fatalf("Create succeeded on failed batch")
	}
	if err.Error() != "failed to create field" {
		t.Fatalf("err = %q, want generic message", err.Error())
	}
	if apperr.CodeOf(err) != apperr.CodeUnavailable {
		t.Fatalf("code = %s", apperr.CodeOf(err))
	}
	if auth != "Bearer k3y" {
		t.Fatalf("Authorization = %q", auth)
	}
}

func TestEnvelopeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(records.Fail("invalid field_id"))
	}))
	defer srv.Close()

	tbl := backend.NewTable[entities.Crop](backend.New(srv.URL, "", "", time.Second), records.TableCrops, "crop")
	if _, err := tbl.Fetch(context.Background(), nil); apperr.CodeOf(err) != apperr.CodeInvalidArgument {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var w entities.Weather
	err := backend.New(url, "", "", 200*time.Millisecond).Read(context.Background(), records.PathWeather, &w)
	if apperr.CodeOf(err) != apperr.CodeUnavailable {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestUpstreamRequiringUID(t *testing.T) {
	var seen []string
	record := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			seen = append(seen, c.Get("uid").(string))
			return next(c)
		}
	}
	srv := newUpstream(t, []echo.MiddlewareFunc{middleware.RequireUID(), record},
		entities.Field{ID: 1, Name: "North", Status: entities.FieldHealthy})

	tbl := backend.NewTable[entities.Field](backend.New(srv.URL, "", "farmdash", time.Second), records.TableFields, "field")
	list, err := tbl.Fetch(context.Background(), nil)
	if err != nil || len(list) != 1 {
		t.Fatalf("Fetch = %v, %v", list, err)
	}

	ctx := middleware.WithUID(context.Background(), "ana")
	created, err := tbl.Create(ctx, &entities.Field{Name: "East"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Owner != "ana" {
		t.Fatalf("owner = %q, want ana", created.Owner)
	}
	if len(seen) != 2 || seen[0] != "farmdash" || seen[1] != "ana" {
		t.Fatalf("upstream uids = %v", seen)
	}

	anon := backend.NewTable[entities.Field](backend.New(srv.URL, "", "", time.Second), records.TableFields, "field")
	if _, err := anon.Fetch(context.Background(), nil); apperr.CodeOf(err) != apperr.CodeUnavailable {
		t.Fatalf("anonymous Fetch err = %v, want unavailable", err)
	}
}

func TestUpdateMissingKeepsNotFound(t *testing.T) {
	srv := newUpstream(t, nil, entities.Field{ID: 1, Name: "North", Status: entities.FieldHealthy})
	repo := fieldRepoImp.NewRemote(backend.New(srv.URL, "", "", time.Second))

	name := "Gone"
	_, err := repo.Update(context.Background(), 42, entities.FieldPatch{Name: &name})
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if err.Error() != "failed to update field" {
		t.Fatalf("err = %q, want generic message", err.Error())
	}
}
