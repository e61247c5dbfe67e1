// Package app builds the repositories and services for the configured data
// source. The server and farmctl share it.
package app

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"farmdash/config"
	"farmdash/database"
	"farmdash/entities"
	"farmdash/pkg/backend"
	"farmdash/pkg/dashboard"
	"farmdash/pkg/report"
	"farmdash/pkg/store"
	"farmdash/seed"

	croprepo "farmdash/pkg/crop/repository"
	cropRepoImp "farmdash/pkg/crop/repositoryImp"
	cropsvc "farmdash/pkg/crop/service"
	cropSvcImp "farmdash/pkg/crop/serviceImp"

	expenserepo "farmdash/pkg/expense/repository"
	expenseRepoImp "farmdash/pkg/expense/repositoryImp"
	expensesvc "farmdash/pkg/expense/service"
	expenseSvcImp "farmdash/pkg/expense/serviceImp"

	fieldrepo "farmdash/pkg/field/repository"
	fieldRepoImp "farmdash/pkg/field/repositoryImp"
	fieldsvc "farmdash/pkg/field/service"
	fieldSvcImp "farmdash/pkg/field/serviceImp"

	taskrepo "farmdash/pkg/task/repository"
	taskRepoImp "farmdash/pkg/task/repositoryImp"
	tasksvc "farmdash/pkg/task/service"
	taskSvcImp "farmdash/pkg/task/serviceImp"

	weatherrepo "farmdash/pkg/weather/repository"
	weatherRepoImp "farmdash/pkg/weather/repositoryImp"
	weathersvc "farmdash/pkg/weather/service"
	weatherSvcImp "farmdash/pkg/weather/serviceImp"
)

type Repos struct {
	Fields   fieldrepo.FieldRepository
	Crops    croprepo.CropRepository
	Tasks    taskrepo.TaskRepository
	Expenses expenserepo.ExpenseRepository
	Weather  weatherrepo.WeatherRepository
}

type Services struct {
	Source string
	DB     *gorm.DB // set for the sqlite source only

	Fields    fieldsvc.FieldService
	Crops     cropsvc.CropService
	Tasks     tasksvc.TaskService
	Expenses  expensesvc.ExpenseService
	Weather   weathersvc.WeatherService
	Dashboard *dashboard.Service
	Reports   *report.Service
}

// Build opens the configured data source and wires every service on top.
func Build(cfg config.AppConfig) (*Services, error) {
	var (
		repos *Repos
		db    *gorm.DB
		err   error
	)
	switch cfg.DataSource {
	case config.SourceMock:
		repos, err = MockRepos(cfg)
	case config.SourceSQLite:
		db, err = database.OpenSQLite(cfg.DBPath)
		if err == nil {
			err = database.Seed(db)
		}
		if err == nil {
			repos, err = SQLiteRepos(db, cfg)
		}
	case config.SourceRemote:
		repos = RemoteRepos(backend.New(cfg.BackendURL, cfg.BackendAPIKey, cfg.BackendUID, cfg.BackendTimeout))
	default:
		err = fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[app] data source: %s", cfg.DataSource)
	s := Wire(repos)
	s.Source, s.DB = cfg.DataSource, db
	return s, nil
}

// Wire builds the services over repos.
func Wire(r *Repos) *Services {
	s := &Services{
		Fields:   fieldSvcImp.NewFieldService(r.Fields),
		Crops:    cropSvcImp.NewCropService(r.Crops, r.Fields),
		Tasks:    taskSvcImp.NewTaskService(r.Tasks),
		Expenses: expenseSvcImp.NewExpenseService(r.Expenses),
		Weather:  weatherSvcImp.NewWeatherService(r.Weather),
	}
	s.Dashboard = dashboard.New(s.Fields, s.Crops, s.Tasks, s.Weather)
	s.Reports = report.New(s.Fields, s.Crops, s.Tasks, s.Expenses)
	return s
}

// MockRepos seeds in-memory stores from the embedded JSON.
func MockRepos(cfg config.AppConfig) (*Repos, error) {
	fields, err := store.LoadJSON[entities.Field](seed.FS, seed.Fields)
	if err != nil {
		return nil, err
	}
	crops, err := store.LoadJSON[entities.Crop](seed.FS, seed.Crops)
	if err != nil {
		return nil, err
	}
	tasks, err := store.LoadJSON[entities.Task](seed.FS, seed.Tasks)
	if err != nil {
		return nil, err
	}
	expenses, err := store.LoadJSON[entities.Expense](seed.FS, seed.Expenses)
	if err != nil {
		return nil, err
	}
	weather, err := weatherRepoImp.LoadMock(seed.FS, seed.Weather, cfg.MockDelay)
	if err != nil {
		return nil, err
	}
	return &Repos{
		Fields:   fieldRepoImp.NewMock(fields, cfg.MockDelay),
		Crops:    cropRepoImp.NewMock(crops, cfg.MockDelay),
		Tasks:    taskRepoImp.NewMock(tasks, cfg.MockDelay),
		Expenses: expenseRepoImp.NewMock(expenses, cfg.MockDelay),
		Weather:  weather,
	}, nil
}

// SQLiteRepos uses gorm tables for records. Weather has no table and keeps
// coming from the embedded snapshot.
func SQLiteRepos(db *gorm.DB, cfg config.AppConfig) (*Repos, error) {
	weather, err := weatherRepoImp.LoadMock(seed.FS, seed.Weather, cfg.MockDelay)
	if err != nil {
		return nil, err
	}
	return &Repos{
		Fields:   fieldRepoImp.New(db),
		Crops:    cropRepoImp.New(db),
		Tasks:    taskRepoImp.New(db),
		Expenses: expenseRepoImp.New(db),
		Weather:  weather,
	}, nil
}

func RemoteRepos(c *backend.Client) *Repos {
	return &Repos{
		Fields:   fieldRepoImp.NewRemote(c),
		Crops:    cropRepoImp.NewRemote(c),
		Tasks:    taskRepoImp.NewRemote(c),
		Expenses: expenseRepoImp.NewRemote(c),
		Weather:  weatherRepoImp.NewRemote(c),
	}
}
