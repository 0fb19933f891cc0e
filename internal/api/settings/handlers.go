// internal/api/settings/handlers.go
package settings

import (
	"net/http"

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
	Page     templates.Page
	Settings *view.Value[backend.Settings]
	Flash    *view.Flash
}

// /settings
func HandlePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, nil)
}

func render(w http.ResponseWriter, r *http.Request, flash *view.Flash) {
	val := view.NewValue[backend.Settings]()
	view.ApplyValue(val, backend.Get[backend.Settings](r.Context(), client.ForRequest(r), "/api/admin/settings"))

	templates.Render(w, "settings", pageData{
		Page:     templates.Page{Title: "Настройки", Path: "/settings", Team: api.TeamName(r.Context())},
		Settings: val,
		Flash:    flash,
	})
}

// POST /settings
func HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	body := backend.Settings{
		ChannelID:   r.PostFormValue("channelId"),
		GroupChatID: r.PostFormValue("groupChatId"),
	}
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r), "/api/admin/settings", body)
	render(w, r, view.MutationFlash(res, "Настройки сохранены"))
}

// POST /settings/notify — a free-form message pushed to the team chat
// via the bot.
func HandleNotify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	message := r.PostFormValue("message")
	if message == "" {
		render(w, r, view.FlashErr("Введите текст сообщения"))
		return
	}
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/notify", map[string]string{"message": message})
	render(w, r, view.MutationFlash(res, "Сообщение отправлено"))
}
