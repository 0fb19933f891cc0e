// internal/api/invitations/handlers.go
package invitations

import (
	"net/http"
	"net/url"
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
	List  *view.List[backend.Invitation]
	Flash *view.Flash
}

// /invitations
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	list := view.NewList[backend.Invitation]()
	view.ApplyList(list, backend.Get[[]backend.Invitation](r.Context(), client.ForRequest(r), "/api/admin/invitations"))

	templates.Render(w, "invitations", pageData{
		Page:  templates.Page{Title: "Приглашения", Path: "/invitations", Team: api.TeamName(r.Context())},
		List:  list,
		Flash: flash,
	})
}

// POST /invitations
//
// Creation has its own envelope: success plus the created invitation,
// or an error string.
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	body := backend.InvitationCreate{Role: r.PostFormValue("role")}
	if s := r.PostFormValue("expiresInDays"); s != "" {
		if days, err := strconv.Atoi(s); err == nil {
			body.ExpiresInDays = days
		}
	}

	res := backend.Post[backend.InvitationCreated](r.Context(), client.ForRequest(r),
		"/api/admin/invitations", body)
	if !res.OK || !res.HasData || !res.Data.Success {
		detail := res.Data.Error
		if detail == "" {
			detail = res.Err
		}
		msg := backend.UserFacing(res.Status, detail)
		if detail == "" && res.OK {
			msg = "Ошибка создания"
		}
		render(w, r, view.FlashErr(msg))
		return
	}
	render(w, r, view.FlashOK("Приглашение создано"))
}

// POST /invitations/{code}/delete
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	res := backend.Delete[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/invitations/"+url.PathEscape(chi.URLParam(r, "code")))
	render(w, r, view.MutationFlash(res, "Приглашение удалено"))
}
