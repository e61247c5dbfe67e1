package repositoryImp

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"time"

	"farmdash/entities"
	"farmdash/pkg/weather/repository"
)

// mockRepo serves a fixed weather snapshot. Reads are delayed like the other
// mock tables; forecast and alerts are a little faster than the current
// reading.
type mockRepo struct {
	data  entities.WeatherData
	delay time.Duration
}

func NewMock(data entities.WeatherData, delay time.Duration) repository.WeatherRepository {
	return &mockRepo{data: data, delay: delay}
}

// LoadMock reads the weather snapshot from a JSON file in fsys.
func LoadMock(fsys fs.FS, name string, delay time.Duration) (repository.WeatherRepository, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read weather %s: %w", name, err)
	}
	var data entities.WeatherData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode weather %s: %w", name, err)
	}
	return NewMock(data, delay), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *mockRepo) Current(ctx context.Context) (*entities.Weather, error) {
	if err := wait(ctx, r.delay); err != nil {
		return nil, err
	}
	w := r.data.Current
	return &w, nil
}

func (r *mockRepo) Forecast(ctx context.Context) ([]entities.ForecastDay, error) {
	if err := wait(ctx, r.delay*5/6); err != nil {
		return nil, err
	}
	return append([]entities.ForecastDay{}, r.data.Forecast...), nil
}

func (r *mockRepo) Alerts(ctx context.Context) ([]entities.WeatherAlert, error) {
	if err := wait(ctx, r.delay*2/3); err != nil {
		return nil, err
	}
	return append([]entities.WeatherAlert{}, r.data.Alerts...), nil
}
