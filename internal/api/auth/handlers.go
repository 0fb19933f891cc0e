// internal/api/auth/handlers.go
package auth

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/ratelimit"
	"github.com/basketbot/admin-console/internal/templates"
)

const msgTooManyAttempts = "Слишком много попыток входа. Попробуйте позже."

var (
	client     *backend.Client
	limiter    *ratelimit.Limiter
	trustProxy bool
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *backend.Client, l *ratelimit.Limiter, trust bool) {
	client = c
	limiter = l
	trustProxy = trust
}

type loginData struct {
	Page     templates.Page
	Error    string
	Username string
}

// /login
func HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "login", loginData{Page: templates.Page{Title: "Вход в админку"}})
}

func renderLogin(w http.ResponseWriter, username, errMsg string) {
	templates.Render(w, "login", loginData{
		Page:     templates.Page{Title: "Вход в админку"},
		Error:    errMsg,
		Username: username,
	})
}

// POST /login
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderLogin(w, "", backend.MsgGeneric)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	ip := ratelimit.GetClientIP(r, trustProxy)

	if lim := limiter.CheckLogin(username, ip); !lim.Allowed {
		ratelimit.LogRateLimitExceeded(username, ip, lim.Reason)
		renderLogin(w, username, msgTooManyAttempts)
		return
	}

	res := backend.Post[backend.LoginResult](r.Context(), client.Anonymous(), "/api/admin/login",
		map[string]string{"username": username, "password": password})
	relayCookies(w, res.Cookies)

	if !res.OK || !res.HasData || !res.Data.Success {
		if locked := limiter.RecordFailure(username, ip); locked {
			ratelimit.LogRateLimitExceeded(username, ip, "lockout")
		}
		renderLogin(w, username, backend.UserFacing(res.Status, pick(res.Data.Error, res.Err)))
		return
	}

	limiter.Reset(username)
	log.Ctx(r.Context()).Info().Msg("Admin logged in")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// POST /logout
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r), "/api/admin/logout", struct{}{})
	relayCookies(w, res.Cookies)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func relayCookies(w http.ResponseWriter, cookies []*http.Cookie) {
	for _, ck := range cookies {
		http.SetCookie(w, ck)
	}
}

func pick(first, second string) string {
	if first != "" {
		return first
	}
	return second
}
