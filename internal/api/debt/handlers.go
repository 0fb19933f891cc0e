// internal/api/debt/handlers.go
package debt

import (
	"net/http"
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
}

type debtForm struct {
	PlayerName string `validate:"required"`
	Amount     string `validate:"required,number"`
}

// /debt
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	list := view.NewList[backend.Player]()
	res := backend.Get[backend.DebtList](r.Context(), client.ForRequest(r), "/api/admin/debt")
	if !res.OK {
		list.FetchFailed(backend.UserFacing(res.Status, res.Err))
	} else {
		list.FetchSucceeded(res.Data.Debtors, res.HasData)
	}

	templates.Render(w, "debt", pageData{
		Page:  templates.Page{Title: "Долги", Path: "/debt", Team: api.TeamName(r.Context())},
		List:  list,
		Flash: flash,
	})
}

// POST /debt
func HandleSet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	f := debtForm{
		PlayerName: strings.TrimSpace(r.PostFormValue("playerName")),
		Amount:     strings.TrimSpace(r.PostFormValue("amount")),
	}
	if err := validate.Struct(f); err != nil {
		render(w, r, view.FlashErr("Сумма — число"))
		return
	}

	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r), "/api/admin/debt",
		map[string]string{"playerName": f.PlayerName, "amount": f.Amount})
	render(w, r, view.MutationFlash(res, "Долг выставлен"))
}

// POST /debt/paid/{playerId}
func HandlePaid(w http.ResponseWriter, r *http.Request) {
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/debt/paid/"+chi.URLParam(r, "playerId"), struct{}{})
	render(w, r, view.MutationFlash(res, "Оплата отмечена"))
}

// POST /debt/notify
func HandleNotify(w http.ResponseWriter, r *http.Request) {
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/notify-debt", struct{}{})
	// The reminder can half-succeed: the envelope's success flag decides
	// the banner color, the backend text is shown either way.
	if backend.Failed(res) {
		render(w, r, view.MutationFlash(res, ""))
		return
	}
	render(w, r, view.FlashOK(backend.Message(res, "Напоминание о долгах")))
}
