package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hpungsan/flux/internal/config"
	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
	"github.com/hpungsan/flux/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	session  *ops.Session
	cfg      *config.Config
	renderer *Renderer
}

// HandleDashboard handles GET /journal — today's record at a glance.
func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	today, err := ops.Today(h.session, ops.TodayInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	meds, err := ops.MedList(h.session, ops.MedListInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	plan, err := ops.PlanGet(h.session)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "dashboard", DashboardPageData{
		PageData: PageData{
			Title:   "Today",
			Version: h.renderer.version,
			Nav:     "journal",
		},
		Record:   today.Record,
		Created:  today.Created,
		Crisis:   today.Crisis,
		Elevated: today.Elevated,
		Plan:     plan.Plan,
		Meds:     meds.Logs,
		MedCount: meds.Count,
	})
}

// HandleHistory handles GET /journal/history — paged record list.
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	input := ops.HistoryInput{
		Limit:  parseIntParam(r, "limit", ops.DefaultHistoryLimit),
		Offset: parseIntParam(r, "offset", 0),
	}

	result, err := ops.History(h.session, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "history", HistoryPageData{
		PageData: PageData{
			Title:   "History",
			Version: h.renderer.version,
			Nav:     "history",
		},
		Items:      result.Items,
		Pagination: result.Pagination,
	})
}

// HandleTrend handles GET /journal/trend — mood, sleep, and energy over time.
func (h *Handlers) HandleTrend(w http.ResponseWriter, r *http.Request) {
	input := ops.TrendInput{
		Days: parseIntParam(r, "days", 0),
	}

	result, err := ops.Trend(h.session, h.cfg, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "trend", TrendPageData{
		PageData: PageData{
			Title:   "Trend",
			Version: h.renderer.version,
			Nav:     "history",
		},
		Points: result.Points,
		Window: result.Window,
	})
}

// HandleDay handles GET /journal/{date} — view a single day's record.
func (h *Handlers) HandleDay(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if err := ops.ValidateDate(date); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	rec, ok := journal.FindByDate(h.session.Records(), date)
	if !ok {
		h.renderer.renderError(w, r, errors.NewNotFound("record "+date))
		return
	}

	h.renderer.renderPage(w, r, "day", DayPageData{
		PageData: PageData{
			Title:   date,
			Version: h.renderer.version,
			Nav:     "history",
		},
		Record:       rec,
		Crisis:       journal.IsCrisisRange(rec.MoodValue),
		Elevated:     journal.IsElevatedRange(rec.MoodValue),
		RenderedNote: renderMarkdown(rec.Note),
	})
}

// HandleMeds handles GET /meds — today's medication history.
func (h *Handlers) HandleMeds(w http.ResponseWriter, r *http.Request) {
	result, err := ops.MedList(h.session, ops.MedListInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "meds", MedsPageData{
		PageData: PageData{
			Title:   "Medications",
			Version: h.renderer.version,
			Nav:     "meds",
		},
		Logs:  result.Logs,
		Count: result.Count,
	})
}

// HandleMedLog handles POST /meds/log — record a dose from the UI.
func (h *Handlers) HandleMedLog(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	result, err := ops.MedLog(h.session, ops.MedLogInput{
		Name: strings.TrimSpace(r.FormValue("name")),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// HTMX request: redirect via HX-Redirect header
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/meds")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, map[string]any{
			"log":         result.Log,
			"today_count": result.TodayCount,
		})
		return
	}

	// Default: redirect
	http.Redirect(w, r, "/meds", http.StatusFound)
}

// HandlePlan handles GET /plan — the safety plan page.
func (h *Handlers) HandlePlan(w http.ResponseWriter, r *http.Request) {
	result, err := ops.PlanGet(h.session)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "plan", PlanPageData{
		PageData: PageData{
			Title:   "Safety Plan",
			Version: h.renderer.version,
			Nav:     "plan",
		},
		Plan: result.Plan,
	})
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
