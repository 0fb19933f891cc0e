// internal/api/players/handlers.go
package players

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/basketbot/admin-console/internal/api"
	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/templates"
	"github.com/basketbot/admin-console/internal/view"
)

var (
	client   *backend.Client
	validate = validator.New()
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *backend.Client) {
	client = c
}

type pageData struct {
	Page  templates.Page
	List  *view.List[backend.Player]
	Flash *view.Flash
	Form  *formData
}

type formData struct {
	EditID int64
	Name   string
	Number string
	Status string
}

type playerForm struct {
	Name   string `validate:"required"`
	Number string `validate:"omitempty,number"`
	Status string `validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// /players
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	list := view.NewList[backend.Player]()
	view.ApplyList(list, backend.Get[[]backend.Player](r.Context(), client.ForRequest(r), "/api/admin/players"))

	var form *formData
	q := r.URL.Query()
	if q.Get("new") != "" {
		form = &formData{Status: "ACTIVE"}
	}
	if s := q.Get("edit"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			for _, p := range list.Items {
				if p.ID == id {
					f := formData{EditID: id, Name: p.Name, Status: p.Status}
					if p.Number != nil {
						f.Number = strconv.Itoa(*p.Number)
					}
					form = &f
					break
				}
			}
		}
	}

	templates.Render(w, "players", pageData{
		Page:  templates.Page{Title: "Состав", Path: "/players", Team: api.TeamName(r.Context())},
		List:  list,
		Flash: flash,
		Form:  form,
	})
}

func parseForm(r *http.Request) (playerForm, *view.Flash) {
	if err := r.ParseForm(); err != nil {
		return playerForm{}, view.FlashErr(backend.MsgGeneric)
	}
	f := playerForm{
		Name:   strings.TrimSpace(r.PostFormValue("name")),
		Number: strings.TrimSpace(r.PostFormValue("number")),
		Status: r.PostFormValue("status"),
	}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.Field() == "Number" {
				return f, view.FlashErr("Номер — число")
			}
		}
		return f, view.FlashErr(backend.MsgGeneric)
	}
	return f, nil
}

func body(f playerForm, withStatus bool) map[string]any {
	var num *int
	if f.Number != "" {
		if n, err := strconv.Atoi(f.Number); err == nil {
			num = &n
		}
	}
	b := map[string]any{"name": f.Name, "number": num}
	if withStatus {
		b["status"] = f.Status
	}
	return b
}

// POST /players
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	f, bad := parseForm(r)
	if bad != nil {
		render(w, r, bad)
		return
	}
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/players", body(f, false))
	render(w, r, view.MutationFlash(res, "Игрок добавлен"))
}

// POST /players/{id}
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	f, bad := parseForm(r)
	if bad != nil {
		render(w, r, bad)
		return
	}
	res := backend.Put[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/players/"+chi.URLParam(r, "id"), body(f, true))
	render(w, r, view.MutationFlash(res, "Сохранено"))
}

// POST /players/{id}/delete
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	res := backend.Delete[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/players/"+chi.URLParam(r, "id"))
	if !res.OK {
		render(w, r, view.FlashErr(backend.UserFacing(res.Status, res.Err)))
		return
	}
	render(w, r, view.FlashOK("Удалено"))
}
