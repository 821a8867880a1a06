// Package config defines the platform configuration structure and methods
// for loading, defaulting and validating it.
package config

// Config holds the full platform configuration.
type Config struct {
	// Name is the platform name. It prefixes every cloud resource and is
	// also the stack name in the state backend.
	Name string `mapstructure:"name" yaml:"name"`

	// Project is the Google Cloud project ID to provision into.
	Project string `mapstructure:"project" yaml:"project"`

	// Region is the Google Cloud region for all regional resources
	// (subnetwork, cluster, registry). e.g. europe-west3
	Region string `mapstructure:"region" yaml:"region"`

	// Network Configuration
	Network NetworkConfig `mapstructure:"network" yaml:"network"`

	// Cluster Configuration
	Cluster ClusterConfig `mapstructure:"cluster" yaml:"cluster"`

	// NodePools describes the cluster's worker pools. Defaults to a
	// standard pool plus a spot pool when empty.
	NodePools []NodePoolConfig `mapstructure:"node_pools" yaml:"node_pools"`

	// Registry Configuration
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`

	// State describes the remote state backend (bucket and key prefix).
	State StateConfig `mapstructure:"state" yaml:"state"`

	// KubeconfigPath specifies where apply writes the kubeconfig file.
	// Default: kubeconfig
	KubeconfigPath string `mapstructure:"kubeconfig_path" yaml:"kubeconfig_path"`
}

// NetworkConfig defines the VPC-related configuration.
type NetworkConfig struct {
	// CIDR is the primary range of the cluster subnetwork.
	CIDR string `mapstructure:"cidr" yaml:"cidr"`

	// PodsCIDR and ServicesCIDR are the secondary ranges used for
	// VPC-native (alias IP) cluster networking.
	PodsCIDR     string `mapstructure:"pods_cidr" yaml:"pods_cidr"`
	ServicesCIDR string `mapstructure:"services_cidr" yaml:"services_cidr"`

	// MasterCIDR is the control plane peering range. Only used when
	// PrivateNodes is set.
	MasterCIDR string `mapstructure:"master_cidr" yaml:"master_cidr"`

	// AuthorizedNetworks restricts access to the cluster control plane.
	// Empty means 0.0.0.0/0 (public control plane endpoint).
	AuthorizedNetworks []AuthorizedNetwork `mapstructure:"authorized_networks" yaml:"authorized_networks"`

	// PrivateNodes removes public IPs from cluster nodes. A Cloud Router
	// and NAT gateway are provisioned for egress when set.
	PrivateNodes bool `mapstructure:"private_nodes" yaml:"private_nodes"`
}

// AuthorizedNetwork is a named CIDR block allowed to reach the control plane.
type AuthorizedNetwork struct {
	Name string `mapstructure:"name" yaml:"name"`
	CIDR string `mapstructure:"cidr" yaml:"cidr"`
}

// ClusterConfig defines cluster-level settings.
type ClusterConfig struct {
	// ReleaseChannel is one of RAPID, REGULAR, STABLE.
	// Default: REGULAR
	ReleaseChannel string `mapstructure:"release_channel" yaml:"release_channel"`

	// DeletionProtection prevents accidental cluster deletion through the
	// engine. Must be disabled before destroy succeeds.
	// Default: false
	DeletionProtection bool `mapstructure:"deletion_protection" yaml:"deletion_protection"`

	// MaintenanceStart is the daily maintenance window start time (UTC).
	// Default: "03:00"
	MaintenanceStart string `mapstructure:"maintenance_start" yaml:"maintenance_start"`

	// Namespaces are created in the cluster after provisioning. The
	// workload service account's identity binding targets the first one.
	Namespaces []string `mapstructure:"namespaces" yaml:"namespaces"`
}

// NodePoolConfig defines a single worker pool.
type NodePoolConfig struct {
	Name        string            `mapstructure:"name" yaml:"name"`
	MachineType string            `mapstructure:"machine_type" yaml:"machine_type"`
	MinNodes    int               `mapstructure:"min_nodes" yaml:"min_nodes"`
	MaxNodes    int               `mapstructure:"max_nodes" yaml:"max_nodes"`
	DiskSizeGB  int               `mapstructure:"disk_size_gb" yaml:"disk_size_gb"`
	Spot        bool              `mapstructure:"spot" yaml:"spot"`
	Labels      map[string]string `mapstructure:"labels" yaml:"labels"`
}

// RegistryConfig defines the Artifact Registry repository.
type RegistryConfig struct {
	// ID is the repository identifier, e.g. "apps".
	ID string `mapstructure:"id" yaml:"id"`

	// Format of the repository. Default: DOCKER
	Format string `mapstructure:"format" yaml:"format"`

	// ImmutableTags rejects tag overwrites when set.
	ImmutableTags bool `mapstructure:"immutable_tags" yaml:"immutable_tags"`
}

// StateConfig describes the remote state backend.
type StateConfig struct {
	// Bucket is the object-storage bucket holding engine state.
	Bucket string `mapstructure:"bucket" yaml:"bucket"`

	// Prefix is the key prefix inside the bucket. Default: gkestack
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	// Location is the bucket location used by bootstrap. Default: EU
	Location string `mapstructure:"location" yaml:"location"`
}

// WorkloadNamespace returns the namespace the workload service account is
// bound to via Workload Identity.
func (c *Config) WorkloadNamespace() string {
	if len(c.Cluster.Namespaces) > 0 {
		return c.Cluster.Namespaces[0]
	}
	return "default"
}
