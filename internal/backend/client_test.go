package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return New(url, 2*time.Second)
}

func TestTransportFailureBecomesNetworkError(t *testing.T) {
	// Point at a closed server.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	res := Get[[]Player](context.Background(), testClient(srv.URL).Anonymous(), "/api/admin/players")

	assert.False(t, res.OK)
	assert.Equal(t, 0, res.Status)
	assert.True(t, res.NetworkError)
	assert.Equal(t, MsgNoConnection, res.Err)
	assert.False(t, res.HasData)
}

func TestSuccessWithJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Иван","number":7,"status":"ACTIVE","debt":"0"}]`))
	}))
	defer srv.Close()

	res := Get[[]Player](context.Background(), testClient(srv.URL).Anonymous(), "/api/admin/players")

	require.True(t, res.OK)
	assert.Equal(t, http.StatusOK, res.Status)
	require.True(t, res.HasData)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Иван", res.Data[0].Name)
	require.NotNil(t, res.Data[0].Number)
	assert.Equal(t, 7, *res.Data[0].Number)
}

func TestSuccessWithoutJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>login page</html>"))
	}))
	defer srv.Close()

	res := Get[Me](context.Background(), testClient(srv.URL).Anonymous(), "/api/admin/me")

	// 2xx but not JSON: success with no data, never a parse error.
	assert.True(t, res.OK)
	assert.False(t, res.HasData)
	assert.Empty(t, res.Err)
}

func TestErrorFieldExtraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Матч уже завершён"}`))
	}))
	defer srv.Close()

	res := Post[ActionResult](context.Background(), testClient(srv.URL).Anonymous(), "/api/admin/matches", nil)

	assert.False(t, res.OK)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Матч уже завершён", res.Err)
	assert.False(t, res.NetworkError)
}

func TestErrorWithoutBodyLeavesErrEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	res := Get[Me](context.Background(), testClient(srv.URL).Anonymous(), "/api/admin/me")

	// No synthesized status line: the mapper decides from the status.
	assert.False(t, res.OK)
	assert.Empty(t, res.Err)
	assert.Equal(t, MsgForbidden, UserFacing(res.Status, res.Err))
}

func TestCookiesForwardedAndRelayed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("ADMIN_SESSION")
		if err != nil || ck.Value != "abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "ADMIN_SESSION", Value: "rotated"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	inbound := httptest.NewRequest(http.MethodGet, "/players", nil)
	inbound.AddCookie(&http.Cookie{Name: "ADMIN_SESSION", Value: "abc"})

	res := Post[ActionResult](context.Background(), testClient(srv.URL).ForRequest(inbound),
		"/api/admin/auth/login", map[string]string{"username": "admin"})

	require.True(t, res.OK)
	require.Len(t, res.Cookies, 1)
	assert.Equal(t, "rotated", res.Cookies[0].Value)
}

func TestRequestBodyIsJSON(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	res := Put[ActionResult](context.Background(), testClient(srv.URL).Anonymous(), "/api/admin/players/1",
		map[string]any{"name": "Иван", "number": 7})

	assert.True(t, res.OK)
	assert.Equal(t, "application/json", gotContentType)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Get[Me](ctx, testClient(srv.URL).Anonymous(), "/api/admin/me")
	assert.True(t, res.NetworkError)
	assert.Equal(t, 0, res.Status)
}
