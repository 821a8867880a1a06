package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("GOOGLE_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_PROJECT", "acme-prod-123")
	t.Setenv("GKESTACK_BACKEND_URL", "file:///tmp/state")
	t.Setenv("PULUMI_CONFIG_PASSPHRASE", "hunter2")

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, `{"type":"service_account"}`, env.Credentials)
	assert.Equal(t, "acme-prod-123", env.Project)
	assert.Equal(t, "file:///tmp/state", env.BackendURL)
	assert.Equal(t, "hunter2", env.Passphrase)
}

func TestHasCredentials(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Env{}).HasCredentials())
	assert.True(t, (&Env{Credentials: "{}"}).HasCredentials())
	assert.True(t, (&Env{CredentialsFile: "/secrets/key.json"}).HasCredentials())
}
