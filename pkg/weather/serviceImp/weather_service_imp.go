package serviceImp

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"farmdash/entities"
	repo "farmdash/pkg/weather/repository"
	"farmdash/pkg/weather/service"
)

const (
	RecSuccess = "success"
	RecInfo    = "info"
	RecWarning = "warning"
	RecError   = "error"
)

type weatherSvc struct{ r repo.WeatherRepository }

func NewWeatherService(r repo.WeatherRepository) service.WeatherService {
	return &weatherSvc{r: r}
}

func (s *weatherSvc) Current(ctx context.Context) (*entities.Weather, error) { return s.r.Current(ctx) }

func (s *weatherSvc) Forecast(ctx context.Context) ([]entities.ForecastDay, error) {
	return s.r.Forecast(ctx)
}

func (s *weatherSvc) Alerts(ctx context.Context) ([]entities.WeatherAlert, error) {
	return s.r.Alerts(ctx)
}

func (s *weatherSvc) Overview(ctx context.Context) (*entities.WeatherData, error) {
	var out entities.WeatherData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := s.r.Current(ctx)
		if err == nil {
			out.Current = *w
		}
		return err
	})
	g.Go(func() (err error) {
		out.Forecast, err = s.r.Forecast(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Alerts, err = s.r.Alerts(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommend turns a reading into farming advice. Rain wins over temperature.
func Recommend(w entities.Weather) entities.Recommendation {
	switch {
	case strings.EqualFold(w.Condition, "rainy"):
		return entities.Recommendation{Type: RecWarning, Message: "Rain expected - postpone outdoor activities like spraying or harvesting"}
	case w.Temperature > 30:
		return entities.Recommendation{Type: RecInfo, Message: "High temperature - ensure adequate irrigation for crops"}
	case w.Temperature < 5:
		return entities.Recommendation{Type: RecError, Message: "Low temperature - protect sensitive crops from frost"}
	}
	return entities.Recommendation{Type: RecSuccess, Message: "Good weather conditions for most farm activities"}
}
