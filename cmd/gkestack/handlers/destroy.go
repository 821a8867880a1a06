package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/lkhq/gkestack/internal/observe"
)

// Destroy handles the destroy command.
//
// It loads the platform configuration and deletes all associated
// resources from Google Cloud. The engine removes resources in reverse
// dependency order. The state bucket itself survives so the (now empty)
// stack history remains inspectable.
//
// Destruction is refused unless confirm equals the platform name from
// the configuration. The check happens before any engine or cloud call.
func Destroy(ctx context.Context, configPath, confirm string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	obs := observer.WithFields(map[string]string{"stack": cfg.Name})

	if confirm != cfg.Name {
		obs.Event(observe.Event{
			Type:      observe.EventOperationRefused,
			Operation: "destroy",
			Message:   "confirmation does not match platform name",
		})
		return fmt.Errorf("refusing to destroy: --confirm must be the exact platform name %q", cfg.Name)
	}

	engine, err := openPlatform(ctx, cfg)
	if err != nil {
		return err
	}

	observe.LogOperationStart(obs, "destroy")
	start := time.Now()

	if err := engine.Destroy(ctx); err != nil {
		observe.LogOperationFailed(obs, "destroy", err)
		return err
	}

	observe.LogOperationComplete(obs, "destroy", time.Since(start))

	fmt.Printf("\nPlatform %q destroyed.\n", cfg.Name)
	fmt.Printf("The state bucket gs://%s was kept; delete it manually if no longer needed.\n", cfg.State.Bucket)
	return nil
}
