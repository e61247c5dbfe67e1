package web

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"farmdash/entities"
	cropimp "farmdash/pkg/crop/serviceImp"
	"farmdash/pkg/dashboard"
	"farmdash/pkg/report"
	tasksvc "farmdash/pkg/task/service"
)

func fieldKind(s entities.FieldStatus) string {
	switch s {
	case entities.FieldHealthy:
		return "success"
	case entities.FieldGrowing:
		return "info"
	case entities.FieldHarvested:
		return "warning"
	case entities.FieldMaintenance:
		return "error"
	}
	return ""
}

func cropKind(s entities.CropStatus) string {
	switch s {
	case entities.CropGrowing:
		return "success"
	case entities.CropPlanted:
		return "info"
	case entities.CropHarvested:
		return "warning"
	case entities.CropFailed:
		return "error"
	}
	return ""
}

func priorityKind(p entities.Priority) string {
	switch p {
	case entities.PriorityHigh:
		return "error"
	case entities.PriorityMedium:
		return "warning"
	}
	return "info"
}

func DashboardPage(d *dashboard.Overview) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw(`<section class="grid stats">`)
		o.raw(statCard("Active Fields", fmt.Sprintf("%d / %d", d.ActiveFields, d.TotalFields)))
		o.raw(statCard("Growing Crops", strconv.Itoa(d.GrowingCrops)))
		o.raw(statCard("Pending Tasks", strconv.Itoa(d.PendingTasks)))
		o.raw(statCard("Total Yield", num(d.TotalYield)+" kg"))
		o.raw(`</section>`)

		o.raw(`<section class="grid"><div class="card weather">`)
		weatherCard(o, d.Weather)
		o.f(`<p class="recommendation">%s</p></div>`, badge(d.Recommendation.Message, d.Recommendation.Type))

		o.raw(`<div class="card upcoming"><h2>Upcoming Tasks</h2>`)
		if len(d.Upcoming) == 0 {
			o.raw(`<p class="none">No pending tasks</p>`)
		}
		o.raw(`<ul>`)
		for _, t := range d.Upcoming {
			taskItem(o, t, cropimp.FieldName(d.FieldNames, t.FieldID), "/")
		}
		o.raw(`</ul></div></section>`)
	})
}

func weatherCard(o *out, w entities.Weather) {
	o.f(`<h2>%s</h2><p class="temp">%s°C, %s</p><p>Humidity %d%% · Wind %s km/h</p>`,
		esc(w.Location), num(w.Temperature), esc(w.Condition), w.Humidity, num(w.WindSpeed))
}

func taskItem(o *out, t entities.Task, fieldName, back string) {
	cls := "task"
	if t.Completed {
		cls += " done"
	}
	o.f(`<li class="%s" data-id="%d"><strong>%s</strong> %s <span class="due">%s</span> <span class="field">%s</span>`,
		cls, t.ID, esc(t.Title), badge(string(t.Priority), priorityKind(t.Priority)), esc(t.DueDate), esc(fieldName))
	if !t.Completed {
		o.f(`<form method="post" action="/tasks/%d/complete"><input type="hidden" name="back" value="%s"><button type="submit">Complete</button></form>`,
			t.ID, esc(back))
	}
	o.raw(`</li>`)
}

func FieldsPage(fields []entities.Field, q string) templ.Component {
	return component(func(ctx context.Context, o *out) {
		searchForm(o, "/fields", q)
		if len(fields) == 0 {
			o.render(ctx, EmptyState("field", q != ""))
		} else {
			o.raw(`<div class="grid fields">`)
			for _, f := range fields {
				o.f(`<div class="card field" data-id="%d"><h3>%s</h3>%s<p>%s %s · %s</p><p>%s</p></div>`,
					f.ID, esc(f.Name), badge(string(f.Status), fieldKind(f.Status)),
					num(f.Size), esc(f.Unit), esc(f.SoilType), esc(f.Location))
			}
			o.raw(`</div>`)
		}
		o.raw(`<details class="new"><summary>Add New Field</summary><form method="post" action="/fields">
<input name="name" placeholder="Name" required><input name="size" type="number" step="any" min="0" placeholder="Size">
<input name="unit" placeholder="acres"><input name="soil_type" placeholder="Soil type"><input name="location" placeholder="Location">`)
		statusSelect(o, "status", entities.FieldStatuses)
		o.raw(`<button type="submit">Save</button></form></details>`)
	})
}

func statusSelect[S ~string](o *out, name string, opts []S) {
	o.f(`<select name="%s">`, esc(name))
	for _, s := range opts {
		o.f(`<option value="%s">%s</option>`, esc(string(s)), esc(string(s)))
	}
	o.raw(`</select>`)
}

func CropsPage(crops []entities.Crop, fields []entities.Field, q string) templ.Component {
	fieldNames := cropimp.FieldNames(fields)
	return component(func(ctx context.Context, o *out) {
		searchForm(o, "/crops", q)
		if len(crops) == 0 {
			o.render(ctx, EmptyState("crop", q != ""))
		} else {
			total := 0.0
			o.raw(`<table class="crops"><thead><tr><th>Variety</th><th>Field</th><th>Planted</th><th>Expected Harvest</th><th>Status</th><th>Yield</th></tr></thead><tbody>`)
			for _, c := range crops {
				total += c.Yield
				o.f(`<tr data-id="%d"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s kg</td></tr>`,
					c.ID, esc(c.Variety), esc(cropimp.FieldName(fieldNames, c.FieldID)),
					esc(c.PlantingDate), esc(c.ExpectedHarvest), badge(string(c.Status), cropKind(c.Status)), num(c.Yield))
			}
			o.f(`</tbody><tfoot><tr><td colspan="5">Total</td><td class="total-yield">%s kg</td></tr></tfoot></table>`, num(total))
		}
		o.raw(`<details class="new"><summary>Add New Crop</summary><form method="post" action="/crops">
<input name="variety" placeholder="Variety" required><select name="field_id">`)
		fieldOptions(o, fields)
		o.raw(`</select><input name="planting_date" type="date"><input name="expected_harvest" type="date">`)
		statusSelect(o, "status", entities.CropStatuses)
		o.raw(`<button type="submit">Save</button></form></details>`)
	})
}

func TasksPage(tasks []entities.Task, fields []entities.Field, q tasksvc.Query) templ.Component {
	fieldNames := cropimp.FieldNames(fields)
	return component(func(ctx context.Context, o *out) {
		searchForm(o, "/tasks", q.Search,
			selectInput{Name: "status", Value: q.Status, Options: []string{tasksvc.StatusAll, tasksvc.StatusPending, tasksvc.StatusCompleted}},
			selectInput{Name: "priority", Value: q.Priority, Options: []string{"all", "high", "medium", "low"}},
		)
		if len(tasks) == 0 {
			o.render(ctx, EmptyState("task", q.Search != ""))
		} else {
			back := withQuery("/tasks", taskQueryValues(q))
			o.raw(`<ul class="tasks">`)
			for _, t := range tasks {
				taskItem(o, t, cropimp.FieldName(fieldNames, t.FieldID), back)
			}
			o.raw(`</ul>`)
		}
		o.raw(`<details class="new"><summary>Add New Task</summary><form method="post" action="/tasks">
<input name="title" placeholder="Title" required><input name="description" placeholder="Description">
<input name="due_date" type="date"><input name="category" placeholder="Category">`)
		statusSelect(o, "priority", []entities.Priority{entities.PriorityMedium, entities.PriorityHigh, entities.PriorityLow})
		o.raw(`<select name="field_id">`)
		fieldOptions(o, fields)
		o.raw(`</select><button type="submit">Save</button></form></details>`)
	})
}

func fieldOptions(o *out, fields []entities.Field) {
	for _, f := range fields {
		o.f(`<option value="%d">%s</option>`, f.ID, esc(f.Name))
	}
}

func taskQueryValues(q tasksvc.Query) url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Priority != "" {
		v.Set("priority", q.Priority)
	}
	return v
}

func WeatherPage(d *entities.WeatherData, rec entities.Recommendation) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw(`<section class="grid"><div class="card current">`)
		weatherCard(o, d.Current)
		o.raw(`</div>`)
		o.f(`<div class="card recommendation %s"><h2>Farm Recommendation</h2><p>%s</p></div></section>`,
			esc(rec.Type), esc(rec.Message))

		o.raw(`<h2>Forecast</h2><section class="grid forecast">`)
		for _, day := range d.Forecast {
			o.f(`<div class="card day"><h3>%s</h3><p>%s</p><p>%s° / %s°</p><p>Rain: %d%%</p></div>`,
				esc(day.Date), esc(day.Condition), num(day.High), num(day.Low), day.Precipitation)
		}
		o.raw(`</section>`)

		if len(d.Alerts) > 0 {
			o.raw(`<h2>Alerts</h2><ul class="alerts">`)
			for _, a := range d.Alerts {
				o.f(`<li class="alert">%s <strong>%s</strong> %s</li>`, badge(a.Severity, a.Type), esc(a.Title), esc(a.Message))
			}
			o.raw(`</ul>`)
		}
	})
}

func ReportsPage(s *report.Summary) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw(`<p class="export"><a href="/reports/export.csv">Export CSV</a> · <a href="/reports/export.xlsx">Export XLSX</a></p>`)
		o.raw(`<section class="grid stats">`)
		o.raw(statCard("Total Fields", strconv.Itoa(s.TotalFields)))
		o.raw(statCard("Total Crops", strconv.Itoa(s.TotalCrops)))
		o.raw(statCard("Total Yield", num(s.TotalYield)+" kg"))
		o.raw(statCard("Task Completion", strconv.Itoa(s.CompletionRate)+"%"))
		o.raw(`</section><section class="grid">`)
		distribution(o, "field-status", "Field Status", s.FieldStatus)
		distribution(o, "crop-varieties", "Crop Varieties", s.CropVarieties)
		distribution(o, "task-categories", "Task Categories", s.TaskCategories)
		o.raw(`</section>`)

		o.raw(`<section class="grid activity">`)
		o.raw(statCard("Completed Tasks", strconv.Itoa(s.CompletedTasks)))
		o.raw(statCard("Pending Tasks", strconv.Itoa(s.PendingTasks)))
		o.raw(statCard("Active Fields", strconv.Itoa(s.ActiveFields)))
		o.raw(`</section>`)

		if len(s.Expenses) > 0 {
			o.raw(`<div class="card expenses"><h2>Expenses</h2><table><tbody>`)
			for _, a := range s.Expenses {
				o.f(`<tr><td>%s</td><td>%s</td></tr>`, esc(a.Label), num(a.Amount))
			}
			o.f(`</tbody><tfoot><tr><td>Total</td><td>%s</td></tr></tfoot></table></div>`, num(s.TotalExpenses))
		}
		o.f(`<p class="generated">Report generated %s</p>`, esc(s.GeneratedAt.Format("January 02, 2006 at 15:04")))
	})
}

func distribution(o *out, class, title string, rows []report.Count) {
	o.f(`<div class="card %s"><h2>%s</h2><ul>`, esc(class), esc(title))
	for _, r := range rows {
		o.f(`<li data-label="%s"><span>%s</span> <span class="count">%d</span> <span class="pct">%d%%</span></li>`,
			esc(r.Label), esc(r.Label), r.Count, r.Percent)
	}
	o.raw(`</ul></div>`)
}
