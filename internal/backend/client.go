// internal/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Responses larger than this are cut off; the backend never sends
// payloads anywhere near it.
const maxResponseBytes = 4 << 20

// Client talks to the bot backend REST API. It is safe for concurrent
// use; per-request state (the admin session cookie) lives on Caller.
type Client struct {
	origin string
	http   *http.Client
}

func New(origin string, timeout time.Duration) *Client {
	return &Client{
		origin: strings.TrimRight(origin, "/"),
		http:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Origin() string { return c.origin }

// Caller binds the client to one inbound request so the backend sees
// the browser's session cookies.
type Caller struct {
	c       *Client
	cookies []*http.Cookie
}

func (c *Client) ForRequest(r *http.Request) *Caller {
	return &Caller{c: c, cookies: r.Cookies()}
}

// Anonymous is for calls made before a session exists (login).
func (c *Client) Anonymous() *Caller {
	return &Caller{c: c}
}

// Result classifies one backend response. It is never accompanied by a
// Go error: transport failures come back as Status 0 with NetworkError
// set, so rendering code has a single shape to branch on.
type Result[T any] struct {
	OK           bool
	Status       int
	Data         T
	HasData      bool
	Err          string
	NetworkError bool
	// Cookies holds Set-Cookie values from the backend (session
	// creation and teardown) for relaying to the browser.
	Cookies []*http.Cookie
}

func Get[T any](ctx context.Context, ca *Caller, path string) Result[T] {
	return do[T](ctx, ca, http.MethodGet, path, nil)
}

func Post[T any](ctx context.Context, ca *Caller, path string, body any) Result[T] {
	return do[T](ctx, ca, http.MethodPost, path, body)
}

func Put[T any](ctx context.Context, ca *Caller, path string, body any) Result[T] {
	return do[T](ctx, ca, http.MethodPut, path, body)
}

func Patch[T any](ctx context.Context, ca *Caller, path string, body any) Result[T] {
	return do[T](ctx, ca, http.MethodPatch, path, body)
}

func Delete[T any](ctx context.Context, ca *Caller, path string) Result[T] {
	return do[T](ctx, ca, http.MethodDelete, path, nil)
}

func do[T any](ctx context.Context, ca *Caller, method, path string, body any) Result[T] {
	var res Result[T]

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			res.Status = 0
			res.Err = MsgNoConnection
			res.NetworkError = true
			return res
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, ca.c.origin+path, payload)
	if err != nil {
		res.Status = 0
		res.Err = MsgNoConnection
		res.NetworkError = true
		return res
	}
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range ca.cookies {
		req.AddCookie(ck)
	}

	resp, err := ca.c.http.Do(req)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("method", method).Str("path", path).
			Msg("Backend unreachable")
		res.Status = 0
		res.Err = MsgNoConnection
		res.NetworkError = true
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	res.Cookies = resp.Cookies()

	var raw []byte
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		raw, _ = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &res.Data); err == nil {
				res.HasData = true
			}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Err carries only what the backend actually said. A bodiless
		// error stays empty so UserFacing maps it by status instead of
		// echoing a synthesized status line.
		var e struct {
			Error string `json:"error"`
		}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &e)
		}
		res.Err = e.Error
		return res
	}

	res.OK = true
	return res
}

// Raw performs a passthrough request for non-JSON payloads (match card
// images). The caller owns the response body.
func (ca *Caller) Raw(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, ca.c.origin+path, nil)
	if err != nil {
		return nil, err
	}
	for _, ck := range ca.cookies {
		req.AddCookie(ck)
	}
	return ca.c.http.Do(req)
}
