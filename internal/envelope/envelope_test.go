package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ridwaanhall/SpaceX/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestFailure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"Decryption", apperr.New(apperr.KindDecryption, "stats", errors.New("hmac mismatch")), http.StatusInternalServerError, MsgDecryption},
		{"Validation", apperr.New(apperr.KindValidation, "launch-detail", errors.New("bad link")), http.StatusBadRequest, MsgValidation},
		{"Not found", apperr.New(apperr.KindNotFound, "stats", nil), http.StatusNotFound, MsgNotFound},
		{"Invalid payload", apperr.New(apperr.KindInvalidPayload, "upcoming", nil), http.StatusBadRequest, MsgPayload},
		{"Timeout", apperr.New(apperr.KindTimeout, "dragon-telemetry", nil), http.StatusServiceUnavailable, MsgUnavailable},
		{"Connection", apperr.New(apperr.KindConnection, "launches", nil), http.StatusServiceUnavailable, MsgUnavailable},
		{"Upstream 5xx", apperr.New(apperr.KindUnavailable, "launches", nil), http.StatusServiceUnavailable, MsgUnavailable},
		{"Upstream 4xx", apperr.New(apperr.KindUpstream, "launches", nil), http.StatusServiceUnavailable, MsgUnavailable},
		{"Internal", apperr.New(apperr.KindInternal, "launches", nil), http.StatusInternalServerError, MsgInternal},
		{"Untyped", errors.New("nil pointer dereference"), http.StatusInternalServerError, MsgInternal},
		{"Wrapped", fmt.Errorf("handler: %w", apperr.New(apperr.KindNotFound, "upcoming", nil)), http.StatusNotFound, MsgNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, status := Failure(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.Nil(t, env.Data)
		})
	}
}

func TestFailure_NeverLeaksCause(t *testing.T) {
	secretURL := "https://secret-upstream.internal/api?token=abc"
	err := apperr.New(apperr.KindConnection, "stats", fmt.Errorf("dial %s: refused", secretURL))

	env, _ := Failure(err)
	data, mErr := json.Marshal(env)
	require.NoError(t, mErr)
	assert.NotContains(t, string(data), "secret-upstream")
	assert.JSONEq(t, `{"success":false,"message":"`+MsgUnavailable+`","data":null}`, string(data))
}

func TestMapKind_GRPC(t *testing.T) {
	tests := []struct {
		kind apperr.Kind
		code codes.Code
	}{
		{apperr.KindDecryption, codes.Internal},
		{apperr.KindValidation, codes.InvalidArgument},
		{apperr.KindNotFound, codes.NotFound},
		{apperr.KindInvalidPayload, codes.FailedPrecondition},
		{apperr.KindTimeout, codes.DeadlineExceeded},
		{apperr.KindConnection, codes.Unavailable},
		{apperr.KindUnavailable, codes.Unavailable},
		{apperr.KindUpstream, codes.Unavailable},
		{apperr.KindInternal, codes.Internal},
		{apperr.Kind(99), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.code, MapKind(tt.kind).Code)
		})
	}
}

func TestSuccess(t *testing.T) {
	data, err := json.Marshal(Success(MsgStats, map[string]int{"totalLaunches": 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"SpaceX statistics retrieved successfully","data":{"totalLaunches":1}}`, string(data))
}

func TestSetWarnings(t *testing.T) {
	h := http.Header{}
	SetWarnings(h, 0)
	assert.Empty(t, h.Get(WarningsHeader))

	SetWarnings(h, 3)
	assert.Equal(t, "3", h.Get(WarningsHeader))
}
