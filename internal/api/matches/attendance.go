// internal/api/matches/attendance.go
package matches

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/basketbot/admin-console/internal/api/htmx"
	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/templates"
	"github.com/basketbot/admin-console/internal/view"
)

type attendanceData struct {
	MatchID    int64
	Attendance *view.Value[backend.MatchAttendance]
	Flash      *view.Flash
}

// GET /matches/{id}/attendance — htmx fragment for the roster modal.
func HandleAttendanceFragment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	renderAttendance(w, r, id, nil)
}

func renderAttendance(w http.ResponseWriter, r *http.Request, id int64, flash *view.Flash) {
	att := view.NewValue[backend.MatchAttendance]()
	view.ApplyValue(att, backend.Get[backend.MatchAttendance](r.Context(), client.ForRequest(r),
		"/api/admin/matches/"+strconv.FormatInt(id, 10)+"/attendance"))

	templates.Render(w, "match_attendance", attendanceData{MatchID: id, Attendance: att, Flash: flash})
}

// POST /matches/{id}/attendance — the only transition the console may
// make is marking a member NOT_COMING.
func HandleAttendanceSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}
	res := backend.Put[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/matches/"+chi.URLParam(r, "id")+"/attendance",
		backend.AttendanceUpdate{
			TelegramUserID: r.PostFormValue("telegramUserId"),
			Status:         "NOT_COMING",
		})
	flash := view.MutationFlash(res, "Сохранено")

	// In-modal submit: swap the fragment with the fresh roster, keeping
	// the mutation verdict visible inside the modal.
	if htmx.IsRequest(r) {
		if id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err == nil {
			renderAttendance(w, r, id, flash)
			return
		}
	}
	render(w, r, flash)
}
