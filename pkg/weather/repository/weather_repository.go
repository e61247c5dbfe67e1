package repository

import (
	"context"

	"farmdash/entities"
)

type WeatherRepository interface {
	Current(ctx context.Context) (*entities.Weather, error)
	Forecast(ctx context.Context) ([]entities.ForecastDay, error)
	Alerts(ctx context.Context) ([]entities.WeatherAlert, error)
}
