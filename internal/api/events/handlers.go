// internal/api/events/handlers.go
package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/basketbot/admin-console/internal/api"
	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/templates"
	"github.com/basketbot/admin-console/internal/view"
)

var (
	client   *backend.Client
	validate *validator.Validate
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *backend.Client) {
	client = c
	validate = validator.New()
}

type eventForm struct {
	Title       string `validate:"required"`
	EventType   string `validate:"required,oneof=TRAINING GAME MEETING OTHER"`
	EventDate   string `validate:"required,datetime=2006-01-02"`
	Location    string
	Description string
}

type pageData struct {
	Page  templates.Page
	List  *view.List[backend.Event]
	Flash *view.Flash
}

// /calendar
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	list := view.NewList[backend.Event]()
	view.ApplyList(list, backend.Get[[]backend.Event](r.Context(), client.ForRequest(r), "/api/admin/events"))

	templates.Render(w, "calendar", pageData{
		Page:  templates.Page{Title: "Календарь", Path: "/calendar", Team: api.TeamName(r.Context())},
		List:  list,
		Flash: flash,
	})
}

// POST /calendar
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	form := eventForm{
		Title:       r.PostFormValue("title"),
		EventType:   r.PostFormValue("eventType"),
		EventDate:   r.PostFormValue("eventDate"),
		Location:    r.PostFormValue("location"),
		Description: r.PostFormValue("description"),
	}
	if err := validate.Struct(form); err != nil {
		render(w, r, view.FlashErr("Проверьте название, тип и дату"))
		return
	}

	body := backend.Event{
		Title:     form.Title,
		EventType: form.EventType,
		EventDate: form.EventDate,
	}
	if form.Location != "" {
		body.Location = &form.Location
	}
	if form.Description != "" {
		body.Description = &form.Description
	}

	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r), "/api/admin/events", body)
	render(w, r, view.MutationFlash(res, "Событие создано"))
}

// POST /calendar/{id}/delete
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	res := backend.Delete[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/events/"+chi.URLParam(r, "id"))
	render(w, r, view.MutationFlash(res, "Событие удалено"))
}
