// internal/api/session.go
package api

import (
	"context"
	"net/http"

	"github.com/basketbot/admin-console/internal/api/htmx"
	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/templates"
)

type sessionKeyType struct{}

var sessionKey sessionKeyType

// Paths reachable while no team is selected.
const (
	teamSelectPath  = "/team-select"
	systemSetupPath = "/system-setup"
)

// WithSession gates every page behind the backend session. Each request
// re-checks GET /api/admin/me: an unauthenticated session redirects to
// /login, a session without teams lands on first-run setup, a session
// with teams but no selection gets the blocking picker. Only a Ready
// session reaches the page handlers.
func WithSession(client *backend.Client) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := backend.Get[backend.Me](r.Context(), client.ForRequest(r), "/api/admin/me")
			if !res.OK || res.Status == http.StatusUnauthorized || !res.HasData {
				// A 303 inside a fragment swap would splice the login
				// page into the modal; htmx needs a full navigation.
				if htmx.IsRequest(r) {
					htmx.Redirect(w, "/login")
					return
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			me := res.Data

			if me.CurrentTeam == nil {
				switch {
				case len(me.Teams) > 0 && r.URL.Path != teamSelectPath:
					RenderTeamPicker(w, me.Teams, "")
					return
				case len(me.Teams) == 0 && r.URL.Path != systemSetupPath:
					RenderFirstRun(w, "")
					return
				}
			}

			ctx := context.WithValue(r.Context(), sessionKey, &me)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) *backend.Me {
	me, _ := ctx.Value(sessionKey).(*backend.Me)
	return me
}

// TeamName is the chrome label for the currently selected team.
func TeamName(ctx context.Context) string {
	if me := SessionFromContext(ctx); me != nil && me.CurrentTeam != nil {
		return me.CurrentTeam.Name
	}
	return ""
}

type teamPickerData struct {
	Page  templates.Page
	Teams []backend.Team
	Error string
}

// RenderTeamPicker shows the blocking team chooser. A failed selection
// re-renders it with the mapped message inline; nothing navigates.
func RenderTeamPicker(w http.ResponseWriter, teams []backend.Team, errMsg string) {
	templates.Render(w, "teampicker", teamPickerData{
		Page:  templates.Page{Title: "Выберите команду"},
		Teams: teams,
		Error: errMsg,
	})
}

type firstRunData struct {
	Page  templates.Page
	Error string
}

// RenderFirstRun shows the zero-teams state. The first team is created
// out of band by the Telegram bot; the console only lets the operator
// designate the bot admin and waits.
func RenderFirstRun(w http.ResponseWriter, errMsg string) {
	templates.Render(w, "firstrun", firstRunData{
		Page:  templates.Page{Title: "Первоначальная настройка"},
		Error: errMsg,
	})
}
