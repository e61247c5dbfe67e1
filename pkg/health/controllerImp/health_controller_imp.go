package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	source string
	db     *gorm.DB // nil unless the sqlite source is in use
}

func NewHealthCtrl(source string, db *gorm.DB) *HealthCtrl {
	return &HealthCtrl{source: source, db: db}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	checks := map[string]check{}
	allOK := true
	if h.db != nil {
		db := check{OK: true}
		sqlDB, err := h.db.DB()
		if err != nil {
			db = check{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = check{Err: "ping: " + err.Error()}
		}
		checks["database"] = db
		allOK = db.OK
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":      map[string]any{"ok": allOK},
		"data_source": h.source,
		"uptime_sec":  int(time.Since(appStart).Seconds()),
		"checks":      checks,
		"time":        time.Now().Format(time.RFC3339),
	})
}
