package dashboard_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"farmdash/config"
	"farmdash/entities"
	"farmdash/pkg/app"
	"farmdash/pkg/dashboard"
	"farmdash/pkg/weather/repository"
)

func TestOverviewFromMock(t *testing.T) {
	svcs, err := app.Build(config.AppConfig{DataSource: config.SourceMock})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	o, err := svcs.Dashboard.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if o.TotalFields != 5 || o.ActiveFields != 4 {
		t.Fatalf("fields = %d/%d", o.ActiveFields, o.TotalFields)
	}
	if o.GrowingCrops != 2 || o.PendingTasks != 4 || o.TotalYield != 485 {
		t.Fatalf("overview = %+v", o)
	}
	if len(o.Upcoming) != 4 || o.Upcoming[0].ID != 1 || o.Upcoming[3].ID != 5 {
		t.Fatalf("upcoming = %+v", o.Upcoming)
	}
	if o.Weather.Condition != "sunny" || o.Recommendation.Type != "success" {
		t.Fatalf("weather = %+v %+v", o.Weather, o.Recommendation)
	}
}

func TestBuildLimitsUpcoming(t *testing.T) {
	var tasks []entities.Task
	for i := 1; i <= 8; i++ {
		tasks = append(tasks, entities.Task{ID: i, DueDate: fmt.Sprintf("2024-07-%02d", 10-i)})
	}
	o := dashboard.Build(nil, nil, tasks)
	if len(o.Upcoming) != dashboard.UpcomingLimit {
		t.Fatalf("upcoming = %d, want %d", len(o.Upcoming), dashboard.UpcomingLimit)
	}
	if o.Upcoming[0].ID != 8 {
		t.Fatalf("first upcoming = %d, want 8 (earliest due)", o.Upcoming[0].ID)
	}
}

type brokenWeather struct{}

var errDown = errors.New("weather down")

func (brokenWeather) Current(context.Context) (*entities.Weather, error) { return nil, errDown }
func (brokenWeather) Forecast(context.Context) ([]entities.ForecastDay, error) {
	return nil, errDown
}
func (brokenWeather) Alerts(context.Context) ([]entities.WeatherAlert, error) { return nil, errDown }

var _ repository.WeatherRepository = brokenWeather{}

func TestOverviewFailsWhenAnyLoadFails(t *testing.T) {
	repos, err := app.MockRepos(config.AppConfig{})
	if err != nil {
		t.Fatalf("repos: %v", err)
	}
	repos.Weather = brokenWeather{}
	_, err = app.Wire(repos).Dashboard.Overview(context.Background())
	if !errors.Is(err, errDown) {
		t.Fatalf("err = %v, want weather error", err)
	}
}
