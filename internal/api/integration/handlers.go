// internal/api/integration/handlers.go
package integration

import (
	"net/http"
	"net/url"
	"time"

	"github.com/basketbot/admin-console/internal/api"
	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/templates"
	"github.com/basketbot/admin-console/internal/view"
)

var client *backend.Client

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *backend.Client) {
	client = c
}

type pageData struct {
	Page   templates.Page
	From   string
	To     string
	Stats  *view.Value[backend.IntegrationStats]
	Events *view.List[backend.IntegrationEvent]
}

// /integration?from&to — delivery statistics for a period plus the
// most recent send attempts. Defaults to the last 7 days, matching the
// backend's own default window.
func HandlePage(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		now := time.Now()
		to = now.Format("2006-01-02")
		from = now.AddDate(0, 0, -7).Format("2006-01-02")
	}

	stats := view.NewValue[backend.IntegrationStats]()
	view.ApplyValue(stats, backend.Get[backend.IntegrationStats](r.Context(), client.ForRequest(r),
		"/api/admin/integration/stats?from="+url.QueryEscape(from)+"&to="+url.QueryEscape(to)))

	events := view.NewList[backend.IntegrationEvent]()
	view.ApplyList(events, backend.Get[[]backend.IntegrationEvent](r.Context(), client.ForRequest(r),
		"/api/admin/integration/events?limit=100"))

	templates.Render(w, "integration", pageData{
		Page:   templates.Page{Title: "Интеграция", Path: "/integration", Team: api.TeamName(r.Context())},
		From:   from,
		To:     to,
		Stats:  stats,
		Events: events,
	})
}
