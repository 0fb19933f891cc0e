package teamselect

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basketbot/admin-console/internal/api"
	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/testutil"
)

func selectVia(t *testing.T, fb *testutil.FakeBackend, teamID string) *httptest.ResponseRecorder {
	t.Helper()
	InitHandlers(fb.Client())

	handler := api.WithSession(fb.Client())(http.HandlerFunc(HandleSelect))

	form := url.Values{"teamId": {teamID}}
	req := httptest.NewRequest(http.MethodPost, "/team-select", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func twoTeams(fb *testutil.FakeBackend) {
	fb.RespondOK(http.MethodGet, "/api/admin/me", backend.Me{
		Teams: []backend.Team{{ID: 1, Name: "Тигры"}, {ID: 2, Name: "Львы"}},
	})
}

func TestSelectSuccessNavigates(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	twoTeams(fb)
	fb.RespondOK(http.MethodPost, "/api/admin/team-select", backend.TeamSelectResult{Success: true})

	rec := selectVia(t, fb, "2")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	sent := fb.LastRequest(http.MethodPost, "/api/admin/team-select")
	require.NotNil(t, sent)
	assert.JSONEq(t, `{"teamId":2}`, string(sent.Body))
}

func TestSelectForbiddenStaysOnPicker(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	twoTeams(fb)
	fb.Respond(http.MethodPost, "/api/admin/team-select", http.StatusForbidden,
		backend.TeamSelectResult{Success: false, Error: "forbidden"})

	rec := selectVia(t, fb, "2")

	require.Equal(t, http.StatusOK, rec.Code, "failure must not navigate")
	body := rec.Body.String()
	assert.Contains(t, body, "Выберите команду")
	assert.Contains(t, body, backend.MsgForbidden)
	assert.NotContains(t, body, "forbidden", "envelope token must not reach the page")
	assert.Contains(t, body, "Тигры")
}

func TestSelectForbiddenWithoutBodyStaysOnPicker(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	twoTeams(fb)
	fb.Respond(http.MethodPost, "/api/admin/team-select", http.StatusForbidden, nil)

	rec := selectVia(t, fb, "2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), backend.MsgForbidden)
}

func TestSelectRelaysSessionCookie(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	twoTeams(fb)
	fb.Server.Config.Handler = cookieThenServe(fb.Server.Config.Handler)

	rec := selectVia(t, fb, "1")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "ADMIN_SESSION", cookies[0].Name)
}

// cookieThenServe wraps the fake backend so the team-select endpoint
// also sets a fresh session cookie, as the real backend does.
func cookieThenServe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/admin/team-select" {
			http.SetCookie(w, &http.Cookie{Name: "ADMIN_SESSION", Value: "team-scoped"})
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
