// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/lkhq/gkestack/internal/config"
	"github.com/lkhq/gkestack/internal/infra"
	"github.com/lkhq/gkestack/internal/observe"
	"github.com/lkhq/gkestack/internal/stack"
)

// Engine interface for testing - matches *stack.Stack.
type Engine interface {
	Preview(ctx context.Context) (stack.PlanSummary, error)
	Up(ctx context.Context) (stack.Outputs, error)
	Destroy(ctx context.Context) error
	Refresh(ctx context.Context) error
	Outputs(ctx context.Context) (stack.Outputs, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newEngine creates a stack handle against the state backend.
	newEngine = func(ctx context.Context, opts stack.Options) (Engine, error) {
		return stack.New(ctx, opts)
	}

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.LoadFile

	// findConfigFile finds the default config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// loadEnv reads the runner environment (for testing injection).
	loadEnv = config.LoadEnv

	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfig writes a configuration file.
	writeConfig = config.WriteFile

	// writeTemplate writes the commented configuration template.
	writeTemplate = config.WriteTemplate

	// writeFile writes data to a file (for testing injection).
	writeFile = os.WriteFile

	// observer receives structured operation events.
	observer observe.Observer = observe.NewConsoleObserver()
)

// loadConfig loads and validates the platform configuration.
// If configPath is empty, it looks for gkestack.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'gkestack init' to create one", err)
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// openPlatform loads the runner environment and opens the platform stack
// in the remote backend with the full platform program attached.
func openPlatform(ctx context.Context, cfg *config.Config) (Engine, error) {
	env, err := loadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if !env.HasCredentials() {
		observer.Printf("no Google credentials in environment; relying on ambient gcloud auth")
	}

	engine, err := newEngine(ctx, stack.Options{
		Config:  cfg,
		Env:     env,
		Program: infra.Program(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open stack for platform %q: %w", cfg.Name, err)
	}

	return engine, nil
}
