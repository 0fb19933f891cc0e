// internal/api/dashboard/handlers.go
package dashboard

import (
	"net/http"

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
	Page templates.Page
	Data *view.Value[backend.Dashboard]
}

// /dashboard
func HandlePage(w http.ResponseWriter, r *http.Request) {
	data := view.NewValue[backend.Dashboard]()
	view.ApplyValue(data, backend.Get[backend.Dashboard](r.Context(), client.ForRequest(r), "/api/admin/dashboard"))

	templates.Render(w, "dashboard", pageData{
		Page: templates.Page{Title: "Дашборд", Path: "/dashboard", Team: api.TeamName(r.Context())},
		Data: data,
	})
}
