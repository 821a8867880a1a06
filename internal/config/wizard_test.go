package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWizardName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateWizardName("acme"))
	assert.NoError(t, validateWizardName("acme-prod-2"))
	assert.Error(t, validateWizardName(""))
	assert.Error(t, validateWizardName("Acme"))
	assert.Error(t, validateWizardName("a-very-long-platform-name"))
}

func TestRequireValue(t *testing.T) {
	t.Parallel()

	check := requireValue("state bucket")
	assert.NoError(t, check("acme-state"))

	err := check("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state bucket is required")
}

func TestRegionOptions(t *testing.T) {
	t.Parallel()

	opts := regionOptions()
	require.Len(t, opts, len(ValidRegions))
	for _, opt := range opts {
		assert.True(t, ValidRegions[opt.Value], "option %q not a valid region", opt.Value)
	}
}
