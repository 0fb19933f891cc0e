// internal/api/settings/system.go
package settings

import (
	"net/http"

	"github.com/basketbot/admin-console/internal/api"
	"github.com/basketbot/admin-console/internal/backend"
)

// GET /system-setup — the first-run page. Shown by the session gate
// when the account has no teams yet; reachable directly as well so the
// initial admin binding can be corrected.
func HandleSystemPage(w http.ResponseWriter, r *http.Request) {
	api.RenderFirstRun(w, "")
}

// POST /system-setup
func HandleSystemSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		api.RenderFirstRun(w, backend.MsgGeneric)
		return
	}
	body := backend.SystemSettings{
		AdminTelegramID:       r.PostFormValue("adminTelegramId"),
		AdminTelegramUsername: r.PostFormValue("adminTelegramUsername"),
	}
	res := backend.Put[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/system-settings", body)
	if backend.Failed(res) {
		api.RenderFirstRun(w, backend.UserFacing(res.Status, backend.Detail(res)))
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
