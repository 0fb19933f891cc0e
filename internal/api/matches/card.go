// internal/api/matches/card.go
package matches

import (
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// GET /matches/{id}/card — the rendered result card is a binary blob;
// it bypasses the JSON client and streams straight through.
func HandleCard(w http.ResponseWriter, r *http.Request) {
	streamBlob(w, r, "/api/admin/matches/"+chi.URLParam(r, "id")+"/card")
}

// GET /matches/{id}/player-card?playerId=
func HandlePlayerCard(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	streamBlob(w, r, "/api/admin/matches/"+chi.URLParam(r, "id")+"/player-card?playerId="+url.QueryEscape(playerID))
}

func streamBlob(w http.ResponseWriter, r *http.Request, path string) {
	resp, err := client.ForRequest(r).Raw(r.Context(), http.MethodGet, path)
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Str("path", path).Msg("Card fetch failed")
		http.Error(w, "Не удалось загрузить карточку", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}
