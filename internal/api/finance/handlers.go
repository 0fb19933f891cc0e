// internal/api/finance/handlers.go
package finance

import (
	"net/http"
	"net/url"
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
	Page   templates.Page
	List   *view.List[backend.FinanceEntry]
	Report *view.Value[backend.FinanceReport]
	From   string
	To     string
	Flash  *view.Flash
}

type entryForm struct {
	Type        string `validate:"required,oneof=INCOME EXPENSE"`
	Amount      string `validate:"required,number"`
	Description string
	EntryDate   string `validate:"required,datetime=2006-01-02"`
}

// /finance — list plus, when a period is given, the derived report.
// The report is never persisted; it is recomputed per request.
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	list := view.NewList[backend.FinanceEntry]()
	view.ApplyList(list, backend.Get[[]backend.FinanceEntry](r.Context(), client.ForRequest(r), "/api/admin/finance"))

	data := pageData{
		Page:  templates.Page{Title: "Финансы", Path: "/finance", Team: api.TeamName(r.Context())},
		List:  list,
		Flash: flash,
		From:  r.URL.Query().Get("from"),
		To:    r.URL.Query().Get("to"),
	}

	if data.From != "" && data.To != "" {
		report := view.NewValue[backend.FinanceReport]()
		view.ApplyValue(report, backend.Get[backend.FinanceReport](r.Context(), client.ForRequest(r),
			"/api/admin/finance/report?from="+url.QueryEscape(data.From)+"&to="+url.QueryEscape(data.To)))
		data.Report = report
	}

	templates.Render(w, "finance", data)
}

// POST /finance
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	f := entryForm{
		Type:        r.PostFormValue("type"),
		Amount:      strings.TrimSpace(r.PostFormValue("amount")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		EntryDate:   r.PostFormValue("entryDate"),
	}
	if err := validate.Struct(f); err != nil {
		render(w, r, view.FlashErr("Проверьте сумму и дату"))
		return
	}

	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r), "/api/admin/finance",
		map[string]string{
			"type":        f.Type,
			"amount":      f.Amount,
			"description": f.Description,
			"entryDate":   f.EntryDate,
		})
	render(w, r, view.MutationFlash(res, "Запись добавлена"))
}

// POST /finance/{id}/delete
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	res := backend.Delete[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/finance/"+chi.URLParam(r, "id"))
	render(w, r, view.MutationFlash(res, "Запись удалена"))
}
