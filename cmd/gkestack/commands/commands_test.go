package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "gkestack", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"init", "bootstrap", "plan", "apply", "destroy", "outputs", "refresh", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestPlan(t *testing.T) {
	cmd := Plan()

	require.NotNil(t, cmd)
	assert.Equal(t, "plan", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "config flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestApply(t *testing.T) {
	cmd := Apply()

	require.NotNil(t, cmd)
	assert.Equal(t, "apply", cmd.Use)
	assert.Equal(t, "Create or update the platform", cmd.Short)
	assert.NotNil(t, cmd.RunE)

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestDestroy(t *testing.T) {
	cmd := Destroy()

	require.NotNil(t, cmd)
	assert.Equal(t, "destroy", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestDestroy_ConfigFlagRequired(t *testing.T) {
	cmd := Destroy()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag)
	_, hasRequired := flag.Annotations["cobra_annotation_bash_completion_one_required_flag"]
	assert.True(t, hasRequired, "config flag should be required")
}

func TestDestroy_ConfirmFlag(t *testing.T) {
	cmd := Destroy()

	flag := cmd.Flags().Lookup("confirm")
	require.NotNil(t, flag, "confirm flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestBootstrap(t *testing.T) {
	cmd := Bootstrap()

	require.NotNil(t, cmd)
	assert.Equal(t, "bootstrap", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestInit(t *testing.T) {
	cmd := Init()

	require.NotNil(t, cmd)
	assert.Equal(t, "init", cmd.Use)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "gkestack.yaml", output.DefValue)

	nonInteractive := cmd.Flags().Lookup("non-interactive")
	require.NotNil(t, nonInteractive)
	assert.Equal(t, "false", nonInteractive.DefValue)
}

func TestOutputs(t *testing.T) {
	cmd := Outputs()

	require.NotNil(t, cmd)
	assert.Equal(t, "outputs", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("json"))
	assert.NotNil(t, cmd.Flags().Lookup("show-secrets"))
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-08-29")
	cmd := Version()

	require.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.Run)
}

func TestCompletion(t *testing.T) {
	cmd := Completion()

	require.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "completion")
	assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
}
