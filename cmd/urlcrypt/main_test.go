package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ridwaanhall/SpaceX/internal/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestRun_RoundTrip(t *testing.T) {
	var encrypted bytes.Buffer
	require.NoError(t, run([]string{"-s", "k", "https://example.com/api/stats"}, noEnv, &encrypted))

	token := strings.TrimSpace(encrypted.String())
	assert.True(t, strings.HasPrefix(token, "gAAAAA"))

	var decrypted bytes.Buffer
	env := func(key string) string {
		if key == "SECRET_KEY" {
			return "k"
		}
		return ""
	}
	require.NoError(t, run([]string{"-d", token}, env, &decrypted))
	assert.Equal(t, "https://example.com/api/stats\n", decrypted.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"No secret", []string{"https://example.com"}, endpoint.ErrEmptySecret},
		{"No argument", []string{"-s", "k"}, errUsage},
		{"Too many arguments", []string{"-s", "k", "a", "b"}, errUsage},
		{"Unknown flag", []string{"-x"}, errUsage},
		{"Not a URL", []string{"-s", "k", "example.com"}, endpoint.ErrInvalidPlainURL},
		{"Bad token", []string{"-s", "k", "-d", "not-a-token"}, endpoint.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.args, noEnv, &out)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}
