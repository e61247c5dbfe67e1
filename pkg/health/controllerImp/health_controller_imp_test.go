package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	"farmdash/database"
)

func get(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	if err := h.Health(c); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec.Code, body
}

func TestHealthMock(t *testing.T) {
	code, body := get(t, NewHealthCtrl("mock", nil))
	if code != http.StatusOK || body["data_source"] != "mock" {
		t.Fatalf("code = %d body = %v", code, body)
	}
}

func TestHealthSQLite(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	code, body := get(t, NewHealthCtrl("sqlite", db))
	if code != http.StatusOK {
		t.Fatalf("code = %d body = %v", code, body)
	}
	checks := body["checks"].(map[string]any)
	if ok := checks["database"].(map[string]any)["ok"]; ok != true {
		t.Fatalf("database check = %v", checks["database"])
	}

	sqlDB, _ := db.DB()
	sqlDB.Close()
	code, _ = get(t, NewHealthCtrl("sqlite", db))
	if code != http.StatusServiceUnavailable {
		t.Fatalf("closed db code = %d, want 503", code)
	}
}
