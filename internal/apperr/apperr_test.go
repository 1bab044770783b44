package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := New(KindTimeout, "stats", errors.New("deadline exceeded"))
	assert.Equal(t, "stats: timeout: deadline exceeded", err.Error())

	bare := New(KindNotFound, "upcoming", nil)
	assert.Equal(t, "upcoming: not_found", bare.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"Direct", New(KindDecryption, "stats", nil), KindDecryption},
		{"Wrapped", fmt.Errorf("fetch: %w", New(KindUnavailable, "dragon-telemetry", nil)), KindUnavailable},
		{"Plain error", errors.New("boom"), KindInternal},
		{"Nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestIsAndResourceOf(t *testing.T) {
	cause := errors.New("no route to host")
	err := fmt.Errorf("wrapped: %w", New(KindConnection, "launches", cause))

	assert.True(t, Is(err, KindConnection))
	assert.False(t, Is(err, KindTimeout))
	assert.Equal(t, "launches", ResourceOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "", ResourceOf(errors.New("plain")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "invalid_payload", KindInvalidPayload.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
