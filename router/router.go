package router

import (
	"github.com/go-chi/cors"
	"github.com/labstack/echo/v4"

	"farmdash/pkg/middleware"
)

// Table is a records API table served under /api/v1.
type Table interface {
	Register(g *echo.Group, table string)
}

type Deps struct {
	DevLogin    bool
	CORSOrigins []string

	Tables  map[string]Table
	Weather interface{ Register(g *echo.Group) }
	// FieldCrops serves GET /api/v1/fields/:id/crops.
	FieldCrops   echo.HandlerFunc
	FieldTasks   echo.HandlerFunc
	CompleteTask echo.HandlerFunc

	Auth   interface{ DevLogin(echo.Context) error; WhoAmI(echo.Context) error }
	Health interface{ Health(echo.Context) error }
	Views  interface{ Register(e *echo.Echo) }
}

func New(e *echo.Echo, d Deps) *echo.Echo {
	if d.DevLogin {
		e.Use(middleware.DevLogin())
		e.GET("/devlogin", d.Auth.DevLogin)
	}
	e.GET("/whoami", d.Auth.WhoAmI)
	e.GET("/health", d.Health.Health)

	api := e.Group("/api/v1")
	if len(d.CORSOrigins) > 0 {
		api.Use(echo.WrapMiddleware(cors.Handler(cors.Options{
			AllowedOrigins:   d.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.UIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		})))
	}
	if !d.DevLogin {
		api.Use(middleware.RequireUID())
	}
	for table, t := range d.Tables {
		t.Register(api, table)
	}
	if d.FieldCrops != nil {
		api.GET("/fields/:id/crops", d.FieldCrops)
	}
	if d.FieldTasks != nil {
		api.GET("/fields/:id/tasks", d.FieldTasks)
	}
	if d.CompleteTask != nil {
		api.POST("/tasks/:id/complete", d.CompleteTask)
	}
	d.Weather.Register(api)

	d.Views.Register(e)
	return e
}
