// internal/api/members/handlers.go
package members

import (
	"net/http"
	"net/url"
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
	Page  templates.Page
	List  *view.List[backend.Member]
	Flash *view.Flash
	Form  *formData
}

type formData struct {
	TelegramUserID string
	DisplayName    string
	Number         string
	Role           string
	IsActive       bool
}

// /members
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	list := view.NewList[backend.Member]()
	view.ApplyList(list, backend.Get[[]backend.Member](r.Context(), client.ForRequest(r), "/api/admin/members"))

	var form *formData
	if id := r.URL.Query().Get("edit"); id != "" {
		for _, m := range list.Items {
			if m.TelegramUserID == id {
				f := formData{
					TelegramUserID: id,
					DisplayName:    m.DisplayName,
					Role:           m.Role,
					IsActive:       m.IsActive,
				}
				if m.Number != nil {
					f.Number = strconv.Itoa(*m.Number)
				}
				form = &f
				break
			}
		}
	}

	templates.Render(w, "members", pageData{
		Page:  templates.Page{Title: "Участники", Path: "/members", Team: api.TeamName(r.Context())},
		List:  list,
		Flash: flash,
		Form:  form,
	})
}

// POST /members/{telegramUserId}
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	body := map[string]any{
		"displayName": strings.TrimSpace(r.PostFormValue("displayName")),
		"isActive":    r.PostFormValue("isActive") != "",
	}
	if s := strings.TrimSpace(r.PostFormValue("number")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			render(w, r, view.FlashErr("Номер — число"))
			return
		}
		body["number"] = n
	}
	res := backend.Patch[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/members/"+url.PathEscape(chi.URLParam(r, "telegramUserId")), body)
	render(w, r, view.MutationFlash(res, "Имя сохранено"))
}

// POST /members/{telegramUserId}/role
func HandleRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/members/"+url.PathEscape(chi.URLParam(r, "telegramUserId"))+"/role",
		map[string]string{"role": r.PostFormValue("role")})
	render(w, r, view.MutationFlash(res, "Роль обновлена"))
}

type attendanceData struct {
	Member     string
	Attendance *view.List[backend.MemberAttendance]
}

// GET /members/{telegramUserId}/attendance — htmx fragment listing the
// member's confirmations per match.
func HandleAttendanceFragment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "telegramUserId")

	att := view.NewList[backend.MemberAttendance]()
	view.ApplyList(att, backend.Get[[]backend.MemberAttendance](r.Context(), client.ForRequest(r),
		"/api/admin/members/"+url.PathEscape(id)+"/attendance"))

	templates.Render(w, "member_attendance", attendanceData{Member: id, Attendance: att})
}
