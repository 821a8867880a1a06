package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template is the commented starter configuration written by
// 'gkestack init --non-interactive'.
const Template = `# gkestack platform configuration
name: my-platform
project: my-gcp-project
region: europe-west3

network:
  cidr: 10.128.0.0/20
  pods_cidr: 10.8.0.0/14
  services_cidr: 10.12.0.0/20
  # master_cidr: 172.16.0.0/28
  # private_nodes: true
  authorized_networks:
    - name: everywhere
      cidr: 0.0.0.0/0

cluster:
  release_channel: REGULAR
  deletion_protection: false
  maintenance_start: "03:00"
  namespaces:
    - apps

node_pools:
  - name: default
    machine_type: e2-medium
    min_nodes: 1
    max_nodes: 5
  - name: spot
    machine_type: e2-standard-4
    min_nodes: 0
    max_nodes: 3
    spot: true

registry:
  id: apps
  format: DOCKER

state:
  bucket: my-platform-state
  prefix: gkestack
  location: EU
`

// WriteFile marshals the configuration to YAML and writes it to path.
// Refuses to overwrite an existing file.
func WriteFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// WriteTemplate writes the commented starter configuration to path.
// Refuses to overwrite an existing file.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}
	if err := os.WriteFile(path, []byte(Template), 0o600); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}
	return nil
}
