// internal/backend/errors.go
package backend

import (
	"strings"
	"unicode"
)

// User-facing texts. Backend internals and stack traces never reach the
// page: anything the backend sends above the trust bound is replaced by
// a status-based message.
const (
	MsgNoConnection = "Нет связи с сервером. Проверьте подключение."
	MsgUnauthorized = "Неверный логин или пароль. Либо сессия истекла — войдите снова."
	MsgForbidden    = "Нет доступа."
	MsgNotFound     = "Не найдено."
	MsgServerError  = "Ошибка на сервере. Попробуйте позже."
	MsgGeneric      = "Произошла ошибка. Попробуйте ещё раз."
)

// Messages at or above this length are presumed to be leaked internals.
const trustBound = 500

// UserFacing maps a status code plus an optional backend message to the
// text shown to the admin. Total over every status; short Russian
// backend detail is trusted verbatim (the backend pre-sanitizes it),
// everything else maps by status.
func UserFacing(status int, backendMsg string) string {
	msg := strings.TrimSpace(backendMsg)
	if trusted(msg) {
		return msg
	}
	switch status {
	case 0:
		return MsgNoConnection
	case 401:
		return MsgUnauthorized
	case 403:
		return MsgForbidden
	case 404:
		return MsgNotFound
	case 500:
		return MsgServerError
	default:
		if status >= 500 {
			return MsgServerError
		}
		return MsgGeneric
	}
}

// trusted reports whether backend text may be shown verbatim. The
// backend writes its user-facing detail in Russian; a pure-ASCII string
// is a machine token ("forbidden") or a leaked internal, and the status
// mapping applies instead.
func trusted(msg string) bool {
	if msg == "" || len([]rune(msg)) >= trustBound {
		return false
	}
	for _, r := range msg {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}

// Detail pulls the error detail out of a failed mutation. Some backend
// endpoints put it in the envelope's data field, others in error; data
// wins, matching what the backend sends today.
func Detail(r Result[ActionResult]) string {
	if r.HasData && r.Data.Data != "" {
		return r.Data.Data
	}
	return r.Err
}

// Message picks the success text for a completed mutation.
func Message(r Result[ActionResult], fallback string) string {
	if r.HasData && r.Data.Message != "" {
		return r.Data.Message
	}
	return fallback
}

// Failed reports whether a mutation did not take effect: transport or
// HTTP failure, or a 2xx envelope with success=false.
func Failed(r Result[ActionResult]) bool {
	return !r.OK || !r.HasData || !r.Data.Success
}
