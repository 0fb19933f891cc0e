// internal/api/invitations/qr.go
package invitations

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/basketbot/admin-console/internal/backend"
)

// GET /invitations/{code}/qr — the invitation link as a QR PNG. The
// link is looked up fresh so a deleted or expired code 404s instead of
// minting a stale image.
func HandleQR(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	res := backend.Get[[]backend.Invitation](r.Context(), client.ForRequest(r), "/api/admin/invitations")
	if !res.OK || !res.HasData {
		http.Error(w, backend.UserFacing(res.Status, res.Err), http.StatusBadGateway)
		return
	}

	var link string
	for _, inv := range res.Data {
		if inv.Code == code {
			link = inv.Link
			break
		}
	}
	if link == "" {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
