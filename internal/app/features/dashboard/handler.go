// internal/app/features/dashboard/handler.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/intelhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

const (
	pageTitle = "Intelligence Dashboard"
	panelPath = viewdata.PathDashboard + "/panel"
)

type Handler struct {
	Agg      *Aggregator
	Sessions viewdata.Sessions
	Log      *zap.Logger

	// Render and RenderSnippet default to the template engine.
	Render        func(w http.ResponseWriter, r *http.Request, name string, data any)
	RenderSnippet func(w http.ResponseWriter, name string, data any)
}

func NewHandler(agg *Aggregator, sessions viewdata.Sessions, logger *zap.Logger) *Handler {
	return &Handler{
		Agg:      agg,
		Sessions: sessions,
		Log:      logger,
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
		RenderSnippet: func(w http.ResponseWriter, name string, data any) {
			templates.RenderSnippet(w, name, data)
		},
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type statCard struct {
	Label string
	Icon  string
	Value string
}

type activityRow struct {
	Username    string
	Command     string
	Query       string
	CreditsUsed int64
	CreatedAt   string
}

type requestRow struct {
	ID        string
	Type      string
	Status    string
	Badge     string
	CreatedAt string
}

type panelData struct {
	State    string
	PanelURL string
	Error    string
	Cards    []statCard
	Activity []activityRow
	Requests []requestRow
	LoadedAt string
}

type pageData struct {
	viewdata.ShellVM
	Panel panelData
}

const timeLayout = "Jan 2, 2006 15:04"

func buildPanel(s Snapshot) panelData {
	p := panelData{State: string(s.State), PanelURL: panelPath, Error: s.Error}
	if s.State != StateReady || s.Stats == nil {
		return p
	}

	st := *s.Stats
	p.Cards = []statCard{
		{Label: "Total Officers", Icon: "👥", Value: strconv.Itoa(st.TotalOfficers)},
		{Label: "Active Officers", Icon: "🛡️", Value: strconv.Itoa(st.ActiveOfficers)},
		{Label: "Total Credits", Icon: "💳", Value: FormatNumber(st.TotalCredits)},
		{Label: "Pending Requests", Icon: "📡", Value: strconv.Itoa(st.PendingRequests)},
	}

	p.Activity = make([]activityRow, 0, len(s.RecentActivity))
	for _, l := range s.RecentActivity {
		p.Activity = append(p.Activity, activityRow{
			Username:    l.Username,
			Command:     l.Command,
			Query:       plainText(l.Query),
			CreditsUsed: l.CreditsUsed,
			CreatedAt:   l.CreatedAt.Format(timeLayout),
		})
	}

	p.Requests = make([]requestRow, 0, len(s.ManualRequests))
	for _, m := range s.ManualRequests {
		p.Requests = append(p.Requests, requestRow{
			ID:        m.ID,
			Type:      m.Type,
			Status:    string(m.Status),
			Badge:     StatusBadge(string(m.Status)),
			CreatedAt: m.CreatedAt.Format(timeLayout),
		})
	}

	if s.LoadedAt != nil {
		p.LoadedAt = s.LoadedAt.Format(timeLayout)
	}
	return p
}

/*─────────────────────────────────────────────────────────────────────────────*
| Handlers                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// ServePage handles GET /admin/dashboard. It renders the shell with the
// loading panel; the panel fetches itself via HTMX.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		ShellVM: viewdata.NewShellVM(r, h.Sessions, pageTitle),
		Panel:   buildPanel(Snapshot{State: StateLoading}),
	}
	h.Render(w, r, "dashboard_page", data)
}

// ServePanel handles GET /admin/dashboard/panel. HTMX requests get the
// panel fragment; plain requests get the full page with the panel settled.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	snap := h.load(r)
	panel := buildPanel(snap)

	if r.Header.Get("HX-Request") == "true" {
		h.RenderSnippet(w, "dashboard_panel", panel)
		return
	}

	data := pageData{
		ShellVM: viewdata.NewShellVM(r, h.Sessions, pageTitle),
		Panel:   panel,
	}
	// Nav highlighting follows the dashboard screen, not the panel URL.
	data.CurrentPath = viewdata.PathDashboard
	data.Nav = viewdata.BuildNav(viewdata.PathDashboard)
	h.Render(w, r, "dashboard_page", data)
}

// ServeJSON handles GET /api/dashboard.
//
// On success: 200 and { "state":"ready", "stats":{...}, "recent_activity":[...] }
// On failure: 503 and { "state":"failed", "error":"Failed to load dashboard data" }
func (h *Handler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	snap := h.load(r)

	w.Header().Set("Content-Type", "application/json")
	if snap.State != StateReady {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		h.Log.Warn("dashboard json encode", zap.Error(err))
	}
}

// load runs one cycle bound to the request; the view is closed when the
// handler returns so a late result cannot land anywhere.
func (h *Handler) load(r *http.Request) Snapshot {
	v := NewView()
	defer v.Close()

	start := time.Now()
	snap := h.Agg.Run(r.Context(), v)
	h.Log.Debug("dashboard cycle settled",
		zap.String("state", string(snap.State)),
		zap.Duration("elapsed", time.Since(start)))
	return snap
}
