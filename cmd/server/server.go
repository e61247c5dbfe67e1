package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmdash/config"
	"farmdash/pkg/app"
	"farmdash/pkg/records"
	"farmdash/pkg/web"
	"farmdash/router"

	authCtrlImp "farmdash/pkg/auth/controllerImp"
	cropCtrlImp "farmdash/pkg/crop/controllerImp"
	expenseCtrlImp "farmdash/pkg/expense/controllerImp"
	fieldCtrlImp "farmdash/pkg/field/controllerImp"
	healthCtrlImp "farmdash/pkg/health/controllerImp"
	taskCtrlImp "farmdash/pkg/task/controllerImp"
	weatherCtrlImp "farmdash/pkg/weather/controllerImp"
)

// newServer builds the echo instance with every route of the dashboard and
// the records API.
func newServer(cfg config.AppConfig, s *app.Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Printf("[http] %s %s %d %s id=%s err=%v", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error)
				return nil
			}
			log.Printf("[http] %s %s %d %s id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))

	fCtrl := fieldCtrlImp.New(s.Fields)
	cCtrl := cropCtrlImp.New(s.Crops)
	tCtrl := taskCtrlImp.New(s.Tasks)
	eCtrl := expenseCtrlImp.New(s.Expenses)

	return router.New(e, router.Deps{
		DevLogin:    cfg.EnableDevLogin,
		CORSOrigins: cfg.CORSOrigins,
		Tables: map[string]router.Table{
			records.TableFields:   fCtrl,
			records.TableCrops:    cCtrl,
			records.TableTasks:    tCtrl,
			records.TableExpenses: eCtrl,
		},
		Weather:      weatherCtrlImp.New(s.Weather),
		FieldCrops:   cCtrl.ByField,
		FieldTasks:   tCtrl.ByField,
		CompleteTask: tCtrl.Complete,
		Auth:         authCtrlImp.NewAuthController(),
		Health:       healthCtrlImp.NewHealthCtrl(s.Source, s.DB),
		Views: &web.Handler{
			Fields:    s.Fields,
			Crops:     s.Crops,
			Tasks:     s.Tasks,
			Weather:   s.Weather,
			Dashboard: s.Dashboard,
			Reports:   s.Reports,
		},
	})
}
