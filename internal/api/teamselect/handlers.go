// internal/api/teamselect/handlers.go
package teamselect

import (
	"net/http"
	"strconv"

	"github.com/basketbot/admin-console/internal/api"
	"github.com/basketbot/admin-console/internal/backend"
)

var client *backend.Client

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *backend.Client) {
	client = c
}

// /team-select
func HandlePage(w http.ResponseWriter, r *http.Request) {
	me := api.SessionFromContext(r.Context())
	if me == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	api.RenderTeamPicker(w, me.Teams, "")
}

// POST /team-select
//
// Failure keeps the picker open with the mapped message inline; only a
// confirmed selection navigates to the dashboard.
func HandleSelect(w http.ResponseWriter, r *http.Request) {
	me := api.SessionFromContext(r.Context())
	if me == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		api.RenderTeamPicker(w, me.Teams, backend.MsgGeneric)
		return
	}
	teamID, err := strconv.ParseInt(r.PostFormValue("teamId"), 10, 64)
	if err != nil {
		api.RenderTeamPicker(w, me.Teams, backend.MsgGeneric)
		return
	}

	res := backend.Post[backend.TeamSelectResult](r.Context(), client.ForRequest(r),
		"/api/admin/team-select", map[string]int64{"teamId": teamID})
	for _, ck := range res.Cookies {
		http.SetCookie(w, ck)
	}

	if !res.OK || !res.HasData || !res.Data.Success {
		detail := res.Data.Error
		if detail == "" {
			detail = res.Err
		}
		api.RenderTeamPicker(w, me.Teams, backend.UserFacing(res.Status, detail))
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
