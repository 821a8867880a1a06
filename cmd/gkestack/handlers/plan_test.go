package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lkhq/gkestack/internal/config"
	"github.com/lkhq/gkestack/internal/stack"
)

func TestPlan(t *testing.T) {
	engine := &fakeEngine{
		previewSummary: stack.PlanSummary{Creates: 20, Unchanged: 3},
	}
	restore := withFakes(engine, nil)
	defer restore()

	err := Plan(context.Background(), "gkestack.yaml")
	require.NoError(t, err)
	assert.True(t, engine.previewed)
}

func TestPlanEngineError(t *testing.T) {
	engine := &fakeEngine{previewErr: errBoom}
	restore := withFakes(engine, nil)
	defer restore()

	err := Plan(context.Background(), "gkestack.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestPlanConfigLoadError(t *testing.T) {
	restore := withFakes(&fakeEngine{}, nil)
	defer restore()

	loadConfigFile = func(_ string) (*config.Config, error) {
		return nil, errBoom
	}

	err := Plan(context.Background(), "gkestack.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestPlanFindsDefaultConfig(t *testing.T) {
	engine := &fakeEngine{}
	restore := withFakes(engine, nil)
	defer restore()

	origFind := findConfigFile
	defer func() { findConfigFile = origFind }()

	found := false
	findConfigFile = func() (string, error) {
		found = true
		return "gkestack.yaml", nil
	}

	err := Plan(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, found, "empty path should trigger config auto-detection")
}

func TestPlanWarnsWithoutCredentials(t *testing.T) {
	engine := &fakeEngine{}
	restore := withFakes(engine, nil)
	defer restore()

	rec := &recordingObserver{}
	restoreObs := withObserver(rec)
	defer restoreObs()

	err := Plan(context.Background(), "gkestack.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, rec.messages)
	assert.Contains(t, rec.messages[0], "no Google credentials")
	assert.Equal(t, "acme", rec.fields["stack"])
}

func TestPlanNoCredentialWarningWithCredentials(t *testing.T) {
	engine := &fakeEngine{}
	restore := withFakes(engine, nil)
	defer restore()

	loadEnv = func() (*config.Env, error) {
		return &config.Env{Passphrase: "test", Credentials: `{"type":"service_account"}`}, nil
	}

	rec := &recordingObserver{}
	restoreObs := withObserver(rec)
	defer restoreObs()

	err := Plan(context.Background(), "gkestack.yaml")
	require.NoError(t, err)
	for _, msg := range rec.messages {
		assert.NotContains(t, msg, "no Google credentials")
	}
}
