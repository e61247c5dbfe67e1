package web

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	cropsvc "farmdash/pkg/crop/service"
	"farmdash/pkg/dashboard"
	fieldsvc "farmdash/pkg/field/service"
	"farmdash/pkg/report"
	tasksvc "farmdash/pkg/task/service"
	weathersvc "farmdash/pkg/weather/service"
	weatherimp "farmdash/pkg/weather/serviceImp"
)

type Handler struct {
	Fields    fieldsvc.FieldService
	Crops     cropsvc.CropService
	Tasks     tasksvc.TaskService
	Weather   weathersvc.WeatherService
	Dashboard *dashboard.Service
	Reports   *report.Service
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.dashboard)
	e.GET("/fields", h.fields)
	e.POST("/fields", h.createField)
	e.GET("/crops", h.crops)
	e.POST("/crops", h.createCrop)
	e.GET("/tasks", h.tasks)
	e.POST("/tasks", h.createTask)
	e.POST("/tasks/:id/complete", h.completeTask)
	e.GET("/weather", h.weather)
	e.GET("/reports", h.reports)
	e.GET("/reports/export.csv", h.exportCSV)
	e.GET("/reports/export.xlsx", h.exportXLSX)
}

func render(c echo.Context, status int, title, active string, body templ.Component) error {
	var buf bytes.Buffer
	ctx := templ.WithChildren(c.Request().Context(), body)
	if err := Layout(title, active).Render(ctx, &buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// fail logs err and renders the error panel in place of the page body.
func fail(c echo.Context, title, active string, err error) error {
	r := c.Request()
	log.Printf("[web] %s %s: %v", r.Method, r.URL.RequestURI(), err)
	retry := active
	if r.Method == http.MethodGet {
		retry = r.URL.RequestURI()
	}
	return render(c, apperr.CodeOf(err).HTTPStatus(), title, active, ErrorPanel(retry))
}

func (h *Handler) dashboard(c echo.Context) error {
	o, err := h.Dashboard.Overview(c.Request().Context())
	if err != nil {
		return fail(c, "Dashboard", "/", err)
	}
	return render(c, http.StatusOK, "Dashboard", "/", DashboardPage(o))
}

func (h *Handler) fields(c echo.Context) error {
	q := c.QueryParam("q")
	list, err := h.Fields.List(c.Request().Context(), q)
	if err != nil {
		return fail(c, "Fields", "/fields", err)
	}
	return render(c, http.StatusOK, "Fields", "/fields", FieldsPage(list, q))
}

func (h *Handler) crops(c echo.Context) error {
	q := c.QueryParam("q")
	var (
		crops  []entities.Crop
		fields []entities.Field
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) { crops, err = h.Crops.List(ctx, q); return })
	g.Go(func() (err error) { fields, err = h.Fields.List(ctx, ""); return })
	if err := g.Wait(); err != nil {
		return fail(c, "Crops", "/crops", err)
	}
	return render(c, http.StatusOK, "Crops", "/crops", CropsPage(crops, fields, q))
}

func (h *Handler) tasks(c echo.Context) error {
	q := tasksvc.Query{
		Search:   c.QueryParam("q"),
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
	}
	var (
		tasks  []entities.Task
		fields []entities.Field
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) { tasks, err = h.Tasks.List(ctx, q); return })
	g.Go(func() (err error) { fields, err = h.Fields.List(ctx, ""); return })
	if err := g.Wait(); err != nil {
		return fail(c, "Tasks", "/tasks", err)
	}
	return render(c, http.StatusOK, "Tasks", "/tasks", TasksPage(tasks, fields, q))
}

func (h *Handler) weather(c echo.Context) error {
	d, err := h.Weather.Overview(c.Request().Context())
	if err != nil {
		return fail(c, "Weather", "/weather", err)
	}
	return render(c, http.StatusOK, "Weather", "/weather", WeatherPage(d, weatherimp.Recommend(d.Current)))
}

func (h *Handler) reports(c echo.Context) error {
	s, err := h.Reports.Summary(c.Request().Context())
	if err != nil {
		return fail(c, "Reports", "/reports", err)
	}
	return render(c, http.StatusOK, "Reports", "/reports", ReportsPage(s))
}

func (h *Handler) exportCSV(c echo.Context) error {
	s, err := h.Reports.Summary(c.Request().Context())
	if err != nil {
		return fail(c, "Reports", "/reports", err)
	}
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, s); err != nil {
		return fail(c, "Reports", "/reports", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="farm-report.csv"`)
	return c.Blob(http.StatusOK, report.ContentTypeCSV, buf.Bytes())
}

func (h *Handler) exportXLSX(c echo.Context) error {
	s, err := h.Reports.Summary(c.Request().Context())
	if err != nil {
		return fail(c, "Reports", "/reports", err)
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, s); err != nil {
		return fail(c, "Reports", "/reports", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="farm-report.xlsx"`)
	return c.Blob(http.StatusOK, report.ContentTypeXLSX, buf.Bytes())
}

func (h *Handler) completeTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, "Tasks", "/tasks", apperr.Invalid("invalid task id"))
	}
	if _, err := h.Tasks.Complete(c.Request().Context(), id); err != nil {
		return fail(c, "Tasks", "/tasks", err)
	}
	return c.Redirect(http.StatusSeeOther, localPath(c.FormValue("back"), "/tasks"))
}

// localPath returns p when it is a path on this site, otherwise def.
func localPath(p, def string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return def
	}
	return p
}

func owner(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}

func formFloat(c echo.Context, name string) (float64, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, apperr.Invalid("invalid " + name)
	}
	return f, nil
}

func formInt(c echo.Context, name string) (int, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.Invalid("invalid " + name)
	}
	return n, nil
}

func (h *Handler) createField(c echo.Context) error {
	size, err := formFloat(c, "size")
	if err != nil {
		return fail(c, "Fields", "/fields", err)
	}
	f := &entities.Field{
		Name:     c.FormValue("name"),
		Size:     size,
		Unit:     c.FormValue("unit"),
		Status:   entities.FieldStatus(c.FormValue("status")),
		SoilType: c.FormValue("soil_type"),
		Location: c.FormValue("location"),
		Owner:    owner(c),
	}
	if _, err := h.Fields.Create(c.Request().Context(), f); err != nil {
		return fail(c, "Fields", "/fields", err)
	}
	return c.Redirect(http.StatusSeeOther, "/fields")
}

func (h *Handler) createCrop(c echo.Context) error {
	fid, err := formInt(c, "field_id")
	if err != nil {
		return fail(c, "Crops", "/crops", err)
	}
	cr := &entities.Crop{
		Variety:         c.FormValue("variety"),
		FieldID:         fid,
		PlantingDate:    c.FormValue("planting_date"),
		ExpectedHarvest: c.FormValue("expected_harvest"),
		Status:          entities.CropStatus(c.FormValue("status")),
		Owner:           owner(c),
	}
	if _, err := h.Crops.Create(c.Request().Context(), cr); err != nil {
		return fail(c, "Crops", "/crops", err)
	}
	return c.Redirect(http.StatusSeeOther, "/crops")
}

func (h *Handler) createTask(c echo.Context) error {
	fid, err := formInt(c, "field_id")
	if err != nil {
		return fail(c, "Tasks", "/tasks", err)
	}
	t := &entities.Task{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		DueDate:     c.FormValue("due_date"),
		Priority:    entities.Priority(c.FormValue("priority")),
		Category:    c.FormValue("category"),
		FieldID:     fid,
		Owner:       owner(c),
	}
	if _, err := h.Tasks.Create(c.Request().Context(), t); err != nil {
		return fail(c, "Tasks", "/tasks", err)
	}
	return c.Redirect(http.StatusSeeOther, "/tasks")
}
