package service

import (
	"context"

	"farmdash/entities"
)

type WeatherService interface {
	Current(ctx context.Context) (*entities.Weather, error)
	Forecast(ctx context.Context) ([]entities.ForecastDay, error)
	Alerts(ctx context.Context) ([]entities.WeatherAlert, error)
	// Overview loads all three concurrently.
	Overview(ctx context.Context) (*entities.WeatherData, error)
}
