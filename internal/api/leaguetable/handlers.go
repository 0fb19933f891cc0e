// internal/api/leaguetable/handlers.go
package leaguetable

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

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
	Page  templates.Page
	List  *view.List[backend.LeagueTableRow]
	Flash *view.Flash
}

// /league-table
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	list := view.NewList[backend.LeagueTableRow]()
	view.ApplyList(list, backend.Get[[]backend.LeagueTableRow](r.Context(), client.ForRequest(r), "/api/admin/league-table"))

	templates.Render(w, "leaguetable", pageData{
		Page:  templates.Page{Title: "Таблица лиги", Path: "/league-table", Team: api.TeamName(r.Context())},
		List:  list,
		Flash: flash,
	})
}

// POST /league-table
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	name := r.PostFormValue("teamName")
	if name == "" {
		render(w, r, view.FlashErr("Укажите название команды"))
		return
	}
	body := backend.LeagueTableRowCreate{TeamName: name}
	var bad bool
	for field, dst := range map[string]*int{
		"position":   &body.Position,
		"wins":       &body.Wins,
		"losses":     &body.Losses,
		"pointsDiff": &body.PointsDiff,
	} {
		s := r.PostFormValue(field)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			bad = true
			break
		}
		*dst = n
	}
	if bad {
		render(w, r, view.FlashErr("Позиция, победы, поражения и разница — числа"))
		return
	}

	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r), "/api/admin/league-table", body)
	render(w, r, view.MutationFlash(res, "Строка добавлена"))
}

// POST /league-table/{id}/delete
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	res := backend.Delete[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/league-table/"+chi.URLParam(r, "id"))
	render(w, r, view.MutationFlash(res, "Строка удалена"))
}
