package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/lkhq/gkestack/internal/observe"
)

// Refresh reconciles the recorded state with the actual cloud resources.
// No resource is created, changed or deleted; only the state file moves.
func Refresh(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	engine, err := openPlatform(ctx, cfg)
	if err != nil {
		return err
	}

	obs := observer.WithFields(map[string]string{"stack": cfg.Name})
	observe.LogOperationStart(obs, "refresh")
	start := time.Now()

	if err := engine.Refresh(ctx); err != nil {
		observe.LogOperationFailed(obs, "refresh", err)
		return err
	}

	observe.LogOperationComplete(obs, "refresh", time.Since(start))

	fmt.Printf("State for platform %q refreshed.\n", cfg.Name)
	return nil
}
