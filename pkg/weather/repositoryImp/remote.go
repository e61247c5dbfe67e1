package repositoryImp

import (
	"context"

	"farmdash/entities"
	"farmdash/pkg/backend"
	"farmdash/pkg/records"
	"farmdash/pkg/weather/repository"
)

type remoteRepo struct{ c *backend.Client }

func NewRemote(c *backend.Client) repository.WeatherRepository { return &remoteRepo{c: c} }

func (r *remoteRepo) Current(ctx context.Context) (*entities.Weather, error) {
	var w entities.Weather
	if err := r.c.Read(ctx, records.PathWeather, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *remoteRepo) Forecast(ctx context.Context) ([]entities.ForecastDay, error) {
	out := []entities.ForecastDay{}
	if err := r.c.Read(ctx, records.PathForecast, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *remoteRepo) Alerts(ctx context.Context) ([]entities.WeatherAlert, error) {
	out := []entities.WeatherAlert{}
	if err := r.c.Read(ctx, records.PathAlerts, &out); err != nil {
		return nil, err
	}
	return out, nil
}
