package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Env holds runner-environment settings. In CI these come from pipeline
// secrets; locally from the developer's shell.
type Env struct {
	// Credentials is the service account key JSON used to authenticate
	// the engine against Google Cloud. Either inline JSON
	// (GOOGLE_CREDENTIALS, the CI secret) or a file path
	// (GOOGLE_APPLICATION_CREDENTIALS).
	Credentials     string `envconfig:"GOOGLE_CREDENTIALS"`
	CredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Project overrides the configured project ID when set.
	Project string `envconfig:"GOOGLE_PROJECT"`

	// BackendURL overrides the state backend derived from the config
	// (gs://<bucket>/<prefix>). Useful for local file backends in tests.
	BackendURL string `envconfig:"GKESTACK_BACKEND_URL"`

	// Passphrase protects stack secrets in the state backend.
	Passphrase string `envconfig:"PULUMI_CONFIG_PASSPHRASE"`
}

// LoadEnv reads runner-environment settings from the process environment.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &env, nil
}

// HasCredentials reports whether any Google credential source is set.
func (e *Env) HasCredentials() bool {
	return e.Credentials != "" || e.CredentialsFile != ""
}
