package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/records"
	"farmdash/pkg/weather/controller"
	"farmdash/pkg/weather/service"
	"farmdash/pkg/weather/serviceImp"
)

type weatherCtrl struct{ svc service.WeatherService }

type currentView struct {
	*entities.Weather
	Recommendation entities.Recommendation `json:"recommendation"`
}

func New(svc service.WeatherService) controller.WeatherController { return &weatherCtrl{svc: svc} }

func (h *weatherCtrl) Register(g *echo.Group) {
	g.GET("/"+records.PathWeather, h.Current)
	g.GET("/"+records.PathForecast, h.Forecast)
	g.GET("/"+records.PathAlerts, h.Alerts)
}

// Current also carries the recommendation for the reading under
// "recommendation"; clients decoding into entities.Weather ignore it.
func (h *weatherCtrl) Current(c echo.Context) error {
	w, err := h.svc.Current(c.Request().Context())
	if err != nil {
		return records.Error(c, err)
	}
	return records.Data(c, http.StatusOK, currentView{w, serviceImp.Recommend(*w)})
}

func (h *weatherCtrl) Forecast(c echo.Context) error {
	list, err := h.svc.Forecast(c.Request().Context())
	if err != nil {
		return records.Error(c, err)
	}
	return records.Data(c, http.StatusOK, list)
}

func (h *weatherCtrl) Alerts(c echo.Context) error {
	list, err := h.svc.Alerts(c.Request().Context())
	if err != nil {
		return records.Error(c, err)
	}
	return records.Data(c, http.StatusOK, list)
}
