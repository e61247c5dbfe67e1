// Package dashboard assembles the farm overview shown on the home page.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"farmdash/entities"
	cropsvc "farmdash/pkg/crop/service"
	fieldsvc "farmdash/pkg/field/service"
	tasksvc "farmdash/pkg/task/service"
	taskimp "farmdash/pkg/task/serviceImp"
	weathersvc "farmdash/pkg/weather/service"
	weatherimp "farmdash/pkg/weather/serviceImp"
)

// UpcomingLimit is how many pending tasks the overview lists.
const UpcomingLimit = 5

type Overview struct {
	TotalFields  int     `json:"total_fields"`
	ActiveFields int     `json:"active_fields"`
	GrowingCrops int     `json:"growing_crops"`
	PendingTasks int     `json:"pending_tasks"`
	TotalYield   float64 `json:"total_yield"`

	Upcoming       []entities.Task         `json:"upcoming"`
	FieldNames     map[int]string          `json:"field_names"`
	Weather        entities.Weather        `json:"weather"`
	Recommendation entities.Recommendation `json:"recommendation"`
}

type Service struct {
	fields  fieldsvc.FieldService
	crops   cropsvc.CropService
	tasks   tasksvc.TaskService
	weather weathersvc.WeatherService
}

func New(f fieldsvc.FieldService, c cropsvc.CropService, t tasksvc.TaskService, w weathersvc.WeatherService) *Service {
	return &Service{fields: f, crops: c, tasks: t, weather: w}
}

// Overview loads fields, crops, tasks and the current weather in parallel.
// The first failure cancels the remaining loads.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var (
		fields []entities.Field
		crops  []entities.Crop
		tasks  []entities.Task
		w      *entities.Weather
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { fields, err = s.fields.List(gctx, ""); return })
	g.Go(func() (err error) { crops, err = s.crops.List(gctx, ""); return })
	g.Go(func() (err error) { tasks, err = s.tasks.List(gctx, tasksvc.Query{}); return })
	g.Go(func() (err error) { w, err = s.weather.Current(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o := Build(fields, crops, tasks)
	o.Weather = *w
	o.Recommendation = weatherimp.Recommend(*w)
	return o, nil
}

// Build computes the overview counters from already loaded records.
func Build(fields []entities.Field, crops []entities.Crop, tasks []entities.Task) *Overview {
	o := &Overview{TotalFields: len(fields), FieldNames: make(map[int]string, len(fields))}
	for _, f := range fields {
		o.FieldNames[f.ID] = f.Name
		if f.Status != entities.FieldFallow {
			o.ActiveFields++
		}
	}
	for _, c := range crops {
		if c.Status == entities.CropGrowing {
			o.GrowingCrops++
		}
		o.TotalYield += c.Yield
	}
	for _, t := range tasks {
		if !t.Completed {
			o.PendingTasks++
		}
	}
	o.Upcoming = taskimp.Upcoming(tasks, UpcomingLimit)
	return o
}
