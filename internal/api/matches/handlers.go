// internal/api/matches/handlers.go
package matches

import (
	"net/http"
	"strconv"
	"strings"

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
	Page   templates.Page
	List   *view.List[backend.Match]
	Flash  *view.Flash
	Form   *matchForm
	Result *resultForm
}

type matchForm struct {
	EditID   int64
	Opponent string
	DateTime string // datetime-local value, split into date+time on submit
	Location string
}

type resultForm struct {
	MatchID  int64
	OurScore string
	OppScore string
}

// /matches
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	list := view.NewList[backend.Match]()
	view.ApplyList(list, backend.Get[[]backend.Match](r.Context(), client.ForRequest(r), "/api/admin/matches"))

	data := pageData{
		Page:  templates.Page{Title: "Матчи", Path: "/matches", Team: api.TeamName(r.Context())},
		List:  list,
		Flash: flash,
	}

	q := r.URL.Query()
	if q.Get("new") != "" {
		data.Form = &matchForm{}
	}
	if s := q.Get("edit"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			for _, m := range list.Items {
				if m.ID == id {
					f := matchForm{EditID: id, Opponent: m.Opponent}
					if m.Date != nil {
						f.DateTime = dateInputValue(*m.Date)
					}
					if m.Location != nil {
						f.Location = *m.Location
					}
					data.Form = &f
					break
				}
			}
		}
	}
	if s := q.Get("result"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			f := resultForm{MatchID: id}
			for _, m := range list.Items {
				if m.ID == id {
					if m.OurScore != nil {
						f.OurScore = strconv.Itoa(*m.OurScore)
					}
					if m.OpponentScore != nil {
						f.OppScore = strconv.Itoa(*m.OpponentScore)
					}
				}
			}
			data.Result = &f
		}
	}

	templates.Render(w, "matches", data)
}

// The backend stores dates as "2006-01-02 15:04"; the form speaks
// datetime-local ("2006-01-02T15:04").
func dateInputValue(s string) string {
	s = strings.Replace(s, " ", "T", 1)
	if len(s) > 16 {
		s = s[:16]
	}
	return s
}

func splitDateTime(v string) (date, clock string) {
	date, clock, ok := strings.Cut(strings.Replace(v, "T", " ", 1), " ")
	if !ok || clock == "" {
		clock = "12:00"
	}
	return date, clock
}

func matchBody(r *http.Request) map[string]any {
	date, clock := splitDateTime(r.PostFormValue("datetime"))
	return map[string]any{
		"opponent": strings.TrimSpace(r.PostFormValue("opponent")),
		"date":     date,
		"time":     clock,
		"location": strings.TrimSpace(r.PostFormValue("location")),
	}
}

// POST /matches
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/matches", matchBody(r))
	render(w, r, view.MutationFlash(res, "Матч создан"))
}

// POST /matches/{id}
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	res := backend.Put[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/matches/"+chi.URLParam(r, "id"), matchBody(r))
	render(w, r, view.MutationFlash(res, "Сохранено"))
}

// POST /matches/{id}/result
func HandleResult(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	our, err1 := strconv.Atoi(r.PostFormValue("ourScore"))
	opp, err2 := strconv.Atoi(r.PostFormValue("opponentScore"))
	if err1 != nil || err2 != nil {
		render(w, r, view.FlashErr("Введите счёт числами"))
		return
	}
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/matches/"+chi.URLParam(r, "id")+"/result",
		map[string]int{"ourScore": our, "opponentScore": opp})
	render(w, r, view.MutationFlash(res, "Результат сохранён"))
}

// POST /matches/{id}/cancel
func HandleCancel(w http.ResponseWriter, r *http.Request) {
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/matches/"+chi.URLParam(r, "id")+"/cancel", struct{}{})
	render(w, r, view.MutationFlash(res, "Матч отменён"))
}

// POST /matches/{id}/send-to-channel
func HandleSendToChannel(w http.ResponseWriter, r *http.Request) {
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/matches/"+chi.URLParam(r, "id")+"/send-to-channel", struct{}{})
	render(w, r, view.MutationFlash(res, "Опубликовано"))
}

// GET /matches/modal/close
func HandleModalClose(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(""))
}
