// Package view renders the two HTML screens, the feedback form and the dashboard.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"customer-feedback/internal/data/entity"
	"customer-feedback/internal/dto/response"
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/widget"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	FormView      = "form"
	DashboardView = "dashboard"
)

var funcs = template.FuncMap{
	"stars": func(rating float64, size int) *widget.StarRating {
		return widget.NewReadOnlyStarRating(rating, size)
	},
	"badge": func(sentiment string) widget.Badge {
		return widget.SentimentBadge(entity.Sentiment(sentiment))
	},
	"float": func(i int) float64 { return float64(i) },
}

type Page struct {
	Title        string
	Notification *widget.Notification
}

type FormPage struct {
	Page
	Products []string
	Form     usecase.FeedbackForm
	Stars    *widget.StarRating
	MaxChars int
}

func NewFormPage(products []string, form usecase.FeedbackForm, n *widget.Notification) *FormPage {
	return &FormPage{
		Page:     Page{Title: "Share Your Feedback", Notification: n},
		Products: products,
		Form:     form,
		Stars:    form.StarControl(),
		MaxChars: usecase.MaxCommentChars,
	}
}

func (p *FormPage) CommentLength() int { return p.Form.CommentLength() }

// StarsDesc lists the picker's stars from 5 down to 1, the order the CSS hover
// preview needs.
func (p *FormPage) StarsDesc() []widget.Star {
	stars := p.Stars.Stars()
	for i, j := 0, len(stars)-1; i < j; i, j = i+1, j-1 {
		stars[i], stars[j] = stars[j], stars[i]
	}
	return stars
}

// Column is one sortable table header.
type Column struct {
	Label     string
	Field     string
	Href      string
	Active    bool
	Direction string
}

type DashboardPage struct {
	Page
	Analytics *response.AnalyticsResponse
	List      *response.FeedbackListResponse
	Columns   []Column
}

var columnLabels = map[usecase.SortField]string{
	usecase.SortByID:        "Review ID",
	usecase.SortByUserName:  "User Name",
	usecase.SortByProduct:   "Product Name",
	usecase.SortByRating:    "Rating",
	usecase.SortBySentiment: "Sentiment",
}

func NewDashboardPage(state usecase.SortState, analytics *response.AnalyticsResponse, list *response.FeedbackListResponse) *DashboardPage {
	columns := make([]Column, len(usecase.SortFields))
	for i, f := range usecase.SortFields {
		next := state.Toggle(f)
		q := url.Values{}
		q.Set("sort", string(next.Field))
		q.Set("dir", string(next.Direction))

		columns[i] = Column{
			Label:     columnLabels[f],
			Field:     string(f),
			Href:      "/dashboard?" + q.Encode(),
			Active:    f == state.Field,
			Direction: string(state.Direction),
		}
	}

	return &DashboardPage{
		Page:      Page{Title: "Feedback Dashboard"},
		Analytics: analytics,
		List:      list,
		Columns:   columns,
	}
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{FormView, DashboardView} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the named page fully before writing anything, so a template error
// never leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render %s: unknown view", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
