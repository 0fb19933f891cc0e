package matches

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/testutil"
)

func attendanceRouter(t *testing.T) (*testutil.FakeBackend, chi.Router) {
	t.Helper()
	fb := testutil.NewFakeBackend(t)
	InitHandlers(fb.Client())

	r := chi.NewRouter()
	r.Get("/matches/{id}/attendance", HandleAttendanceFragment)
	r.Post("/matches/{id}/attendance", HandleAttendanceSave)
	return fb, r
}

func respondRoster(fb *testutil.FakeBackend) {
	fb.RespondOK(http.MethodGet, "/api/admin/matches/7/attendance", backend.MatchAttendance{
		Responded: []backend.MatchAttendanceRow{
			{TelegramUserID: "100", DisplayName: "Иван", TelegramUsername: "ivan", Status: "COMING"},
		},
		NoResponse: []backend.MatchAttendanceRow{
			{TelegramUserID: "200", DisplayName: "Пётр", TelegramUsername: "petr"},
		},
	})
}

func saveAttendance(router chi.Router) *httptest.ResponseRecorder {
	form := url.Values{"telegramUserId": {"100"}}
	req := httptest.NewRequest(http.MethodPost, "/matches/7/attendance", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAttendanceFragmentRendersRoster(t *testing.T) {
	fb, router := attendanceRouter(t)
	respondRoster(fb)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/7/attendance", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "Иван")
	assert.Contains(t, body, "Не придёт")
	assert.Contains(t, body, "Пётр", "no-response block renders too")
	assert.NotContains(t, body, "flash", "no banner before any mutation")
}

func TestAttendanceSaveRefreshesRoster(t *testing.T) {
	fb, router := attendanceRouter(t)
	respondRoster(fb)
	fb.RespondOK(http.MethodPut, "/api/admin/matches/7/attendance", backend.ActionResult{Success: true})

	rec := saveAttendance(router)

	sent := fb.LastRequest(http.MethodPut, "/api/admin/matches/7/attendance")
	require.NotNil(t, sent)
	assert.JSONEq(t, `{"telegramUserId":"100","status":"NOT_COMING"}`, string(sent.Body))

	body := rec.Body.String()
	assert.Contains(t, body, "Сохранено")
	assert.Contains(t, body, "Иван", "modal swaps to the fresh roster")
}

func TestAttendanceSaveFailureShowsErrorInModal(t *testing.T) {
	fb, router := attendanceRouter(t)
	respondRoster(fb)
	fb.Respond(http.MethodPut, "/api/admin/matches/7/attendance", http.StatusBadRequest,
		map[string]string{"error": "Матч уже завершён"})

	rec := saveAttendance(router)

	// The rejected transition must surface in the swapped fragment, not
	// vanish behind a fresh roster.
	body := rec.Body.String()
	assert.Contains(t, body, "Матч уже завершён")
	assert.NotContains(t, body, "Сохранено")
	assert.Contains(t, body, "Иван", "roster still renders alongside the banner")
}
