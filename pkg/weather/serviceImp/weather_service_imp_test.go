package serviceImp

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmdash/entities"
	repoImp "farmdash/pkg/weather/repositoryImp"
	"farmdash/seed"
)

func TestRecommend(t *testing.T) {
	cases := []struct {
		w    entities.Weather
		want string
	}{
		{entities.Weather{Condition: "Rainy", Temperature: 35}, RecWarning},
		{entities.Weather{Condition: "sunny", Temperature: 31}, RecInfo},
		{entities.Weather{Condition: "sunny", Temperature: 30}, RecSuccess},
		{entities.Weather{Condition: "snowy", Temperature: 4.5}, RecError},
		{entities.Weather{Condition: "cloudy", Temperature: 5}, RecSuccess},
	}
	for _, c := range cases {
		if got := Recommend(c.w); got.Type != c.want || got.Message == "" {
			t.Fatalf("Recommend(%+v) = %+v, want %s", c.w, got, c.want)
		}
	}
}

func TestOverviewFromSeed(t *testing.T) {
	r, err := repoImp.LoadMock(seed.FS, seed.Weather, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d, err := NewWeatherService(r).Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if d.Current.Condition != "sunny" || len(d.Forecast) != 5 || len(d.Alerts) != 2 {
		t.Fatalf("overview = %+v", d)
	}
}

func TestMockHonoursContext(t *testing.T) {
	r := repoImp.NewMock(entities.WeatherData{}, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	start := time.Now()
	if _, err := NewWeatherService(r).Overview(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatalf("overview waited %s after cancel", time.Since(start))
	}
}
