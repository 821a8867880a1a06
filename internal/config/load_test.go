package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `name: acme
project: acme-prod-123
region: europe-west3
registry:
  id: acme-images
state:
  bucket: acme-state
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gkestack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(writeTempConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Name)
	assert.Equal(t, "acme-prod-123", cfg.Project)
	assert.Equal(t, "europe-west3", cfg.Region)
	assert.Equal(t, "acme-images", cfg.Registry.ID)
	assert.Equal(t, "acme-state", cfg.State.Bucket)
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(writeTempConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, DefaultNetworkCIDR, cfg.Network.CIDR)
	assert.Equal(t, DefaultPodsCIDR, cfg.Network.PodsCIDR)
	assert.Equal(t, DefaultServicesCIDR, cfg.Network.ServicesCIDR)
	assert.Equal(t, DefaultMasterCIDR, cfg.Network.MasterCIDR)
	assert.Equal(t, "REGULAR", cfg.Cluster.ReleaseChannel)
	assert.Equal(t, "03:00", cfg.Cluster.MaintenanceStart)
	assert.Equal(t, "DOCKER", cfg.Registry.Format)
	assert.Equal(t, "gkestack", cfg.State.Prefix)
	assert.Equal(t, "EU", cfg.State.Location)
	assert.Equal(t, "kubeconfig", cfg.KubeconfigPath)

	require.Len(t, cfg.NodePools, 2)
	assert.Equal(t, "default", cfg.NodePools[0].Name)
	assert.Equal(t, "e2-medium", cfg.NodePools[0].MachineType)
	assert.Equal(t, 1, cfg.NodePools[0].MinNodes)
	assert.Equal(t, 5, cfg.NodePools[0].MaxNodes)
	assert.Equal(t, 100, cfg.NodePools[0].DiskSizeGB)
	assert.Equal(t, "spot", cfg.NodePools[1].Name)
	assert.True(t, cfg.NodePools[1].Spot)
	assert.Equal(t, 0, cfg.NodePools[1].MinNodes)
}

func TestLoadFileExplicitPools(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(writeTempConfig(t, validYAML+`node_pools:
  - name: workers
    machine_type: n2-standard-8
    min_nodes: 2
    max_nodes: 10
    disk_size_gb: 200
    labels:
      workload: batch
`))
	require.NoError(t, err)

	require.Len(t, cfg.NodePools, 1)
	pool := cfg.NodePools[0]
	assert.Equal(t, "workers", pool.Name)
	assert.Equal(t, "n2-standard-8", pool.MachineType)
	assert.Equal(t, 2, pool.MinNodes)
	assert.Equal(t, 10, pool.MaxNodes)
	assert.Equal(t, 200, pool.DiskSizeGB)
	assert.Equal(t, "batch", pool.Labels["workload"])
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFileInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(writeTempConfig(t, "name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestLoadFileValidationFailure(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(writeTempConfig(t, `name: acme
project: acme-prod-123
region: mars-north1
registry:
  id: acme-images
state:
  bucket: acme-state
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestApplyDefaultsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	again := *cfg
	again.ApplyDefaults()

	if diff := cmp.Diff(*cfg, again); diff != "" {
		t.Errorf("defaults changed on second application (-first +second):\n%s", diff)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	_, err = FindConfigFile()
	require.Error(t, err)

	require.NoError(t, os.WriteFile(DefaultConfigFile, []byte(validYAML), 0o600))
	path, err := FindConfigFile()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFile, path)
}

func TestWorkloadNamespace(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	assert.Equal(t, "default", cfg.WorkloadNamespace())

	cfg.Cluster.Namespaces = []string{"staging", "production"}
	assert.Equal(t, "staging", cfg.WorkloadNamespace())
}
