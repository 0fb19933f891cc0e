package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserFacingTotalOverAllStatuses(t *testing.T) {
	// Every status code must map to some non-empty text, with no
	// backend message to fall back on.
	for status := 100; status < 600; status++ {
		msg := UserFacing(status, "")
		assert.NotEmpty(t, msg, "status %d produced no message", status)
	}
	assert.Equal(t, MsgNoConnection, UserFacing(0, ""))
}

func TestUserFacingStatusMapping(t *testing.T) {
	assert.Equal(t, MsgUnauthorized, UserFacing(401, ""))
	assert.Equal(t, MsgForbidden, UserFacing(403, ""))
	assert.Equal(t, MsgNotFound, UserFacing(404, ""))
	assert.Equal(t, MsgServerError, UserFacing(500, ""))
	assert.Equal(t, MsgServerError, UserFacing(503, ""))
	assert.Equal(t, MsgGeneric, UserFacing(400, ""))
	assert.Equal(t, MsgGeneric, UserFacing(422, ""))
}

func TestUserFacingTrustsShortBackendMessages(t *testing.T) {
	assert.Equal(t, "Игрок уже существует", UserFacing(400, "Игрок уже существует"))
	// Whitespace-only is not a message.
	assert.Equal(t, MsgGeneric, UserFacing(400, "   "))
}

func TestUserFacingIgnoresMachineTokens(t *testing.T) {
	// Envelope tokens and synthesized status lines are not user-facing
	// detail; the Russian status mapping must win.
	assert.Equal(t, MsgForbidden, UserFacing(403, "forbidden"))
	assert.Equal(t, MsgServerError, UserFacing(500, "Internal Server Error"))
	assert.Equal(t, MsgNotFound, UserFacing(404, "Not Found"))
	assert.Equal(t, MsgGeneric, UserFacing(400, "Bad Request"))
	assert.Equal(t, MsgUnauthorized, UserFacing(401, "unauthorized"))
}

func TestUserFacingRejectsOversizedMessages(t *testing.T) {
	leak := strings.Repeat("х", 500)
	assert.Equal(t, MsgServerError, UserFacing(500, leak))

	// 499 runes is still under the bound and trusted verbatim.
	short := strings.Repeat("х", 499)
	assert.Equal(t, short, UserFacing(500, short))
}

func TestDetailPrefersDataField(t *testing.T) {
	r := Result[ActionResult]{
		Status:  200,
		OK:      true,
		HasData: true,
		Data:    ActionResult{Success: false, Data: "Недостаточно игроков"},
		Err:     "should not be used",
	}
	assert.Equal(t, "Недостаточно игроков", Detail(r))

	r.Data.Data = ""
	r.Err = "Bad Request"
	assert.Equal(t, "Bad Request", Detail(r))
}

func TestFailed(t *testing.T) {
	ok := Result[ActionResult]{OK: true, HasData: true, Data: ActionResult{Success: true}}
	assert.False(t, Failed(ok))

	assert.True(t, Failed(Result[ActionResult]{OK: false}))
	assert.True(t, Failed(Result[ActionResult]{OK: true, HasData: false}))
	assert.True(t, Failed(Result[ActionResult]{OK: true, HasData: true, Data: ActionResult{Success: false}}))
}

func TestMessage(t *testing.T) {
	r := Result[ActionResult]{OK: true, HasData: true, Data: ActionResult{Success: true, Message: "Готово"}}
	assert.Equal(t, "Готово", Message(r, "fallback"))

	r.Data.Message = ""
	assert.Equal(t, "fallback", Message(r, "fallback"))
}
