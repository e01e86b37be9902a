package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
	"github.com/hpungsan/flux/internal/ops"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "journal", "history", "meds", "plan"
}

// DashboardPageData is the template data for the main journal page.
type DashboardPageData struct {
	PageData
	Record   journal.DailyRecord
	Created  bool
	Crisis   bool
	Elevated bool
	Plan     journal.SafetyPlan
	Meds     []journal.MedicationLog
	MedCount int
}

// HistoryPageData is the template data for the record history page.
type HistoryPageData struct {
	PageData
	Items      []journal.DailyRecord
	Pagination ops.Pagination
}

// DayPageData is the template data for the single-day detail page.
type DayPageData struct {
	PageData
	Record       journal.DailyRecord
	Crisis       bool
	Elevated     bool
	RenderedNote template.HTML
}

// TrendPageData is the template data for the trend page.
type TrendPageData struct {
	PageData
	Points []ops.TrendPoint
	Window int
}

// MedsPageData is the template data for the medication page.
type MedsPageData struct {
	PageData
	Logs  []journal.MedicationLog
	Count int
}

// PlanPageData is the template data for the safety plan page.
type PlanPageData struct {
	PageData
	Plan journal.SafetyPlan
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"add":        func(a, b int) int { return a + b },
		"sub":        func(a, b int) int { return a - b },
		"formatTime": formatTime,
		"moodLabel":  moodLabel,
		"energyBars": energyBars,
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"dashboard": "dashboard.html",
		"history":   "history.html",
		"day":       "day.html",
		"trend":     "trend.html",
		"meds":      "meds.html",
		"plan":      "plan.html",
		"error":     "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, req *http.Request, name string, data any) {
	r.renderPageStatus(w, req, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
// For HTMX requests, only the "content" block is rendered to avoid duplicating the layout.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	block := "layout"
	if req != nil && req.Header.Get("HX-Request") == "true" {
		block = "content"
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, block, data); err != nil {
		log.Printf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var fErr *errors.FluxError
	if !stderrors.As(err, &fErr) {
		fErr = errors.NewInternal(err)
	}

	status := fErr.Status
	message := fErr.Message

	// HTMX request: return HTML fragment
	if req.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintf(w, `<div class="error-message">%s</div>`, template.HTMLEscapeString(message))
		return
	}

	// JSON request
	if strings.Contains(req.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    string(fErr.Code),
				"message": message,
				"status":  status,
			},
		})
		return
	}

	// Full error page
	r.renderPageStatus(w, req, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatTime formats a Unix timestamp as "15:04" in local time.
func formatTime(unix int64) string {
	return time.Unix(unix, 0).Format("15:04")
}

// moodLabel maps a mood rating onto a short description for display.
func moodLabel(mood int) string {
	switch {
	case mood <= journal.CrisisThreshold:
		return "Severe low"
	case mood < 0:
		return "Low"
	case mood == 0:
		return "Neutral"
	case mood < journal.ElevatedThreshold:
		return "Raised"
	default:
		return "Very elevated"
	}
}

// energyBars renders an energy level as a filled/empty bar string.
func energyBars(level journal.EnergyLevel) string {
	switch level {
	case journal.EnergyLow:
		return "▮▯▯"
	case journal.EnergyHigh:
		return "▮▮▮"
	default:
		return "▮▮▯"
	}
}
