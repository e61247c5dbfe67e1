// Package web renders the dashboard views. Components are plain
// templ.Components so they compose with templ.WithChildren like generated
// templates do.
package web

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// page is the nav entry set, in display order.
var pages = []struct{ Path, Label string }{
	{"/", "Dashboard"},
	{"/fields", "Fields"},
	{"/crops", "Crops"},
	{"/tasks", "Tasks"},
	{"/weather", "Weather"},
	{"/reports", "Reports"},
}

// out accumulates the first write error so components can be written as a
// straight sequence of writes.
type out struct {
	w   io.Writer
	err error
}

func (o *out) raw(s string) {
	if o.err == nil {
		_, o.err = io.WriteString(o.w, s)
	}
}

// f writes format with args. String args must already be escaped with esc.
func (o *out) f(format string, args ...any) { o.raw(fmt.Sprintf(format, args...)) }

func (o *out) render(ctx context.Context, c templ.Component) {
	if o.err == nil && c != nil {
		o.err = c.Render(ctx, o.w)
	}
}

func esc(s string) string { return templ.EscapeString(s) }

func num(f float64) string { return fmt.Sprintf("%g", f) }

func component(fn func(ctx context.Context, o *out)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := &out{w: w}
		fn(ctx, o)
		return o.err
	})
}

const styles = `body{font-family:system-ui,sans-serif;margin:0;background:#f7f7f2;color:#1f2a1f}
nav{display:flex;gap:1rem;padding:1rem 2rem;background:#2d5a27}
nav a{color:#e8f0e4;text-decoration:none}nav a.active{font-weight:700;color:#fff;border-bottom:2px solid #f4b942}
main{padding:1.5rem 2rem;max-width:1100px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:1rem}
.card{background:#fff;border-radius:8px;padding:1rem;box-shadow:0 1px 3px #0002}
.badge{padding:.1rem .5rem;border-radius:999px;font-size:.8rem;background:#eee}
.badge.success{background:#dcf3dc}.badge.info{background:#dceaf8}.badge.warning{background:#fbefd3}.badge.error{background:#f8dcdc}
.empty,.error-panel{text-align:center;padding:3rem 1rem}
table{width:100%;border-collapse:collapse}td,th{padding:.4rem;border-bottom:1px solid #ddd;text-align:left}
.done{opacity:.6;text-decoration:line-through}`

// Layout wraps the children of ctx in the page chrome with active marking
// the current nav entry.
func Layout(title, active string) templ.Component {
	return component(func(ctx context.Context, o *out) {
		o.f(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s · FarmDash</title><style>%s</style></head><body>`, esc(title), styles)
		o.raw(`<nav>`)
		for _, p := range pages {
			cls := ""
			if p.Path == active {
				cls = ` class="active"`
			}
			o.f(`<a href="%s"%s>%s</a>`, p.Path, cls, esc(p.Label))
		}
		o.f(`</nav><main><h1>%s</h1>`, esc(title))
		o.render(ctx, templ.GetChildren(ctx))
		o.raw(`</main></body></html>`)
	})
}

// EmptyState is shown for an empty list. searching switches the hint to
// the search variant.
func EmptyState(noun string, searching bool) templ.Component {
	return component(func(_ context.Context, o *out) {
		hint := "Start by adding your first " + noun
		if searching {
			hint = "Try adjusting your search terms"
		}
		o.f(`<div class="empty"><h3>No %ss found</h3><p>%s</p></div>`, esc(noun), esc(hint))
	})
}

// ErrorPanel is the generic failure view. retry is the URL reloaded by the
// "Try again" link.
func ErrorPanel(retry string) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.f(`<div class="error-panel" role="alert"><h3>Something went wrong</h3><p>We encountered an error while loading your data. Please try again.</p><a class="retry" href="%s">Try again</a></div>`,
			esc(string(templ.URL(retry))))
	})
}

func badge(label, kind string) string {
	return fmt.Sprintf(`<span class="badge %s">%s</span>`, esc(kind), esc(label))
}

func statCard(label, value string) string {
	return fmt.Sprintf(`<div class="card stat"><p>%s</p><strong>%s</strong></div>`, esc(label), esc(value))
}

// searchForm renders a GET form for action with the search box and an
// optional set of select filters.
func searchForm(o *out, action, q string, selects ...selectInput) {
	o.f(`<form class="search" method="get" action="%s"><input type="search" name="q" value="%s" placeholder="Search...">`, esc(action), esc(q))
	for _, s := range selects {
		o.f(`<select name="%s">`, esc(s.Name))
		for _, opt := range s.Options {
			sel := ""
			if opt == s.Value || (s.Value == "" && opt == "all") {
				sel = " selected"
			}
			o.f(`<option value="%s"%s>%s</option>`, esc(opt), sel, esc(opt))
		}
		o.raw(`</select>`)
	}
	o.raw(`<button type="submit">Filter</button></form>`)
}

type selectInput struct {
	Name    string
	Value   string
	Options []string
}

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
