// internal/api/matches/stats.go
package matches

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/templates"
	"github.com/basketbot/admin-console/internal/view"
)

type statsData struct {
	MatchID int64
	Stats   *view.Value[backend.MatchStats]
}

// GET /matches/{id}/stats — htmx fragment for the stats modal. The grid
// is buffered in the form and saved as one batch; a failed load shows
// "Нет данных" inside the modal while the page stays interactive.
func HandleStatsFragment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	stats := view.NewValue[backend.MatchStats]()
	view.ApplyValue(stats, backend.Get[backend.MatchStats](r.Context(), client.ForRequest(r),
		"/api/admin/matches/"+strconv.FormatInt(id, 10)+"/stats"))

	templates.Render(w, "match_stats", statsData{MatchID: id, Stats: stats})
}

// POST /matches/{id}/stats — atomic batch save of the whole grid.
func HandleStatsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, view.FlashErr(backend.MsgGeneric))
		return
	}

	var save backend.MatchStatsSave
	for _, idStr := range r.PostForm["playerId"] {
		playerID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			continue
		}
		row := backend.MatchStatRow{
			PlayerID:  playerID,
			Minutes:   optInt(r.PostFormValue("minutes_" + idStr)),
			Points:    formInt(r.PostFormValue("points_" + idStr)),
			Rebounds:  formInt(r.PostFormValue("rebounds_" + idStr)),
			Assists:   formInt(r.PostFormValue("assists_" + idStr)),
			Fouls:     formInt(r.PostFormValue("fouls_" + idStr)),
			PlusMinus: optInt(r.PostFormValue("plusminus_" + idStr)),
			MVP:       r.PostFormValue("mvp") == idStr,
		}
		save.Stats = append(save.Stats, row)
	}

	res := backend.Post[backend.ActionResult](r.Context(), client.ForRequest(r),
		"/api/admin/matches/"+chi.URLParam(r, "id")+"/stats", save)
	render(w, r, view.MutationFlash(res, "Сохранено"))
}

func formInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func optInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
