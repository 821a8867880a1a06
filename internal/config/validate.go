package config

import (
	"fmt"
	"net"
	"regexp"
	"sort"
)

// ValidRegions contains the Google Cloud regions the platform may be
// provisioned into.
var ValidRegions = map[string]bool{
	"asia-east1":              true,
	"asia-northeast1":         true,
	"asia-southeast1":         true,
	"australia-southeast1":    true,
	"europe-central2":         true,
	"europe-north1":           true,
	"europe-west1":            true,
	"europe-west3":            true,
	"europe-west4":            true,
	"europe-west6":            true,
	"northamerica-northeast1": true,
	"southamerica-east1":      true,
	"us-central1":             true,
	"us-east1":                true,
	"us-east4":                true,
	"us-west1":                true,
	"us-west2":                true,
}

// ValidReleaseChannels contains the accepted GKE release channels.
var ValidReleaseChannels = map[string]bool{
	"RAPID":   true,
	"REGULAR": true,
	"STABLE":  true,
}

// namePattern matches names usable as a GCP resource name prefix.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)

// Platform name length cap keeps derived resource names (e.g.
// "<name>-<pool>-nodes") under the provider's 63-character limits.
const maxNameLength = 18

// Validate checks the configuration for common errors and returns a
// detailed error if validation fails.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(c.Name) > maxNameLength {
		return fmt.Errorf("name %q exceeds %d characters", c.Name, maxNameLength)
	}
	if !namePattern.MatchString(c.Name) {
		return fmt.Errorf("name %q must start with a letter and contain only lowercase letters, digits and hyphens", c.Name)
	}
	if c.Project == "" {
		return fmt.Errorf("project is required")
	}
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if !ValidRegions[c.Region] {
		return fmt.Errorf("invalid region %q: must be one of %v", c.Region, getMapKeys(ValidRegions))
	}

	if err := c.validateNetwork(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}
	if err := c.validateCluster(); err != nil {
		return fmt.Errorf("cluster validation failed: %w", err)
	}
	if err := c.validateNodePools(); err != nil {
		return fmt.Errorf("node pool validation failed: %w", err)
	}
	if err := c.validateRegistry(); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}
	if err := c.validateState(); err != nil {
		return fmt.Errorf("state validation failed: %w", err)
	}

	return nil
}

// validateNetwork checks that every CIDR parses and that the node, pod,
// service and master ranges do not overlap each other.
func (c *Config) validateNetwork() error {
	ranges := []struct {
		name string
		cidr string
	}{
		{"cidr", c.Network.CIDR},
		{"pods_cidr", c.Network.PodsCIDR},
		{"services_cidr", c.Network.ServicesCIDR},
		{"master_cidr", c.Network.MasterCIDR},
	}

	nets := make([]*net.IPNet, len(ranges))
	for i, r := range ranges {
		_, n, err := net.ParseCIDR(r.cidr)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", r.name, r.cidr, err)
		}
		nets[i] = n
	}

	for i := 0; i < len(nets); i++ {
		for j := i + 1; j < len(nets); j++ {
			if cidrsOverlap(nets[i], nets[j]) {
				return fmt.Errorf("%s (%s) overlaps %s (%s)",
					ranges[i].name, ranges[i].cidr, ranges[j].name, ranges[j].cidr)
			}
		}
	}

	for _, an := range c.Network.AuthorizedNetworks {
		if an.Name == "" {
			return fmt.Errorf("authorized network %q needs a name", an.CIDR)
		}
		if _, _, err := net.ParseCIDR(an.CIDR); err != nil {
			return fmt.Errorf("authorized network %q has invalid cidr %q: %w", an.Name, an.CIDR, err)
		}
	}

	return nil
}

func (c *Config) validateCluster() error {
	if !ValidReleaseChannels[c.Cluster.ReleaseChannel] {
		return fmt.Errorf("invalid release channel %q: must be one of %v",
			c.Cluster.ReleaseChannel, getMapKeys(ValidReleaseChannels))
	}
	if !regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`).MatchString(c.Cluster.MaintenanceStart) {
		return fmt.Errorf("invalid maintenance_start %q: expected HH:MM", c.Cluster.MaintenanceStart)
	}
	seen := map[string]bool{}
	for _, ns := range c.Cluster.Namespaces {
		if !namePattern.MatchString(ns) {
			return fmt.Errorf("invalid namespace %q", ns)
		}
		if seen[ns] {
			return fmt.Errorf("duplicate namespace %q", ns)
		}
		seen[ns] = true
	}
	return nil
}

func (c *Config) validateNodePools() error {
	if len(c.NodePools) == 0 {
		return fmt.Errorf("at least one node pool is required")
	}
	seen := map[string]bool{}
	for _, pool := range c.NodePools {
		if pool.Name == "" {
			return fmt.Errorf("node pool name is required")
		}
		if seen[pool.Name] {
			return fmt.Errorf("duplicate node pool name %q", pool.Name)
		}
		seen[pool.Name] = true

		if pool.MachineType == "" {
			return fmt.Errorf("node pool %q: machine_type is required", pool.Name)
		}
		if pool.MinNodes < 0 {
			return fmt.Errorf("node pool %q: min_nodes must be >= 0", pool.Name)
		}
		if pool.MaxNodes < 1 {
			return fmt.Errorf("node pool %q: max_nodes must be >= 1", pool.Name)
		}
		if pool.MinNodes > pool.MaxNodes {
			return fmt.Errorf("node pool %q: min_nodes (%d) exceeds max_nodes (%d)",
				pool.Name, pool.MinNodes, pool.MaxNodes)
		}
	}
	return nil
}

func (c *Config) validateRegistry() error {
	if c.Registry.ID == "" {
		return fmt.Errorf("registry id is required")
	}
	if !namePattern.MatchString(c.Registry.ID) {
		return fmt.Errorf("invalid registry id %q", c.Registry.ID)
	}
	if c.Registry.Format != "DOCKER" {
		return fmt.Errorf("unsupported registry format %q: only DOCKER is supported", c.Registry.Format)
	}
	return nil
}

func (c *Config) validateState() error {
	if c.State.Bucket == "" {
		return fmt.Errorf("state bucket is required")
	}
	if c.State.Prefix == "" {
		return fmt.Errorf("state prefix is required")
	}
	return nil
}

// cidrsOverlap reports whether two ranges share any addresses.
func cidrsOverlap(a, b *net.IPNet) bool {
	return a.Contains(b.IP) || b.Contains(a.IP)
}

// getMapKeys returns sorted keys for error messages.
func getMapKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
