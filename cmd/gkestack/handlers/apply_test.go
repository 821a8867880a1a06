package handlers

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lkhq/gkestack/internal/stack"
)

func TestApply(t *testing.T) {
	engine := &fakeEngine{
		upOutputs: stack.Outputs{
			"clusterName": {Value: "acme-gke"},
			"kubeconfig":  {Value: "apiVersion: v1", Secret: true},
		},
	}
	restore := withFakes(engine, nil)
	defer restore()

	var writtenPath string
	var writtenData []byte
	writeFile = func(path string, data []byte, _ os.FileMode) error {
		writtenPath = path
		writtenData = data
		return nil
	}

	err := Apply(context.Background(), "gkestack.yaml")
	require.NoError(t, err)

	assert.True(t, engine.upped)
	assert.Equal(t, "kubeconfig", writtenPath)
	assert.Equal(t, "apiVersion: v1", string(writtenData))
}

func TestApplyNoKubeconfigOutput(t *testing.T) {
	engine := &fakeEngine{
		upOutputs: stack.Outputs{"clusterName": {Value: "acme-gke"}},
	}
	restore := withFakes(engine, nil)
	defer restore()

	wrote := false
	writeFile = func(_ string, _ []byte, _ os.FileMode) error {
		wrote = true
		return nil
	}

	err := Apply(context.Background(), "gkestack.yaml")
	require.NoError(t, err)
	assert.False(t, wrote, "should not write kubeconfig when output is absent")
}

func TestApplyEngineError(t *testing.T) {
	engine := &fakeEngine{upErr: errBoom}
	restore := withFakes(engine, nil)
	defer restore()

	err := Apply(context.Background(), "gkestack.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestApplyOpenStackError(t *testing.T) {
	restore := withFakes(nil, errBoom)
	defer restore()

	err := Apply(context.Background(), "gkestack.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open stack")
}
