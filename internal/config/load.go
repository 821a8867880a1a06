package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up when no path is given.
const DefaultConfigFile = "gkestack.yaml"

// Fixed default ranges. The subnet primary range and the two secondary
// ranges feed the cluster's alias-IP allocation; the master range is the
// control plane peering block for private clusters.
const (
	DefaultNetworkCIDR  = "10.128.0.0/20"
	DefaultPodsCIDR     = "10.8.0.0/14"
	DefaultServicesCIDR = "10.12.0.0/20"
	DefaultMasterCIDR   = "172.16.0.0/28"
)

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// FindConfigFile returns the default config file path if it exists in the
// current directory.
func FindConfigFile() (string, error) {
	if _, err := os.Stat(DefaultConfigFile); err != nil {
		return "", fmt.Errorf("%s not found in current directory", DefaultConfigFile)
	}
	return DefaultConfigFile, nil
}

// ApplyDefaults fills unset fields with their documented defaults.
func (c *Config) ApplyDefaults() {
	if c.Network.CIDR == "" {
		c.Network.CIDR = DefaultNetworkCIDR
	}
	if c.Network.PodsCIDR == "" {
		c.Network.PodsCIDR = DefaultPodsCIDR
	}
	if c.Network.ServicesCIDR == "" {
		c.Network.ServicesCIDR = DefaultServicesCIDR
	}
	if c.Network.MasterCIDR == "" {
		c.Network.MasterCIDR = DefaultMasterCIDR
	}

	if c.Cluster.ReleaseChannel == "" {
		c.Cluster.ReleaseChannel = "REGULAR"
	}
	if c.Cluster.MaintenanceStart == "" {
		c.Cluster.MaintenanceStart = "03:00"
	}

	if len(c.NodePools) == 0 {
		c.NodePools = DefaultNodePools()
	}
	for i := range c.NodePools {
		if c.NodePools[i].DiskSizeGB == 0 {
			c.NodePools[i].DiskSizeGB = 100
		}
	}

	if c.Registry.Format == "" {
		c.Registry.Format = "DOCKER"
	}

	if c.State.Prefix == "" {
		c.State.Prefix = "gkestack"
	}
	if c.State.Location == "" {
		c.State.Location = "EU"
	}

	if c.KubeconfigPath == "" {
		c.KubeconfigPath = "kubeconfig"
	}
}

// DefaultNodePools returns the standard two-pool layout: a small
// always-on pool and a spot pool that scales from zero.
func DefaultNodePools() []NodePoolConfig {
	return []NodePoolConfig{
		{
			Name:        "default",
			MachineType: "e2-medium",
			MinNodes:    1,
			MaxNodes:    5,
		},
		{
			Name:        "spot",
			MachineType: "e2-standard-4",
			MinNodes:    0,
			MaxNodes:    3,
			Spot:        true,
		},
	}
}
