package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/lkhq/gkestack/internal/observe"
)

// Plan previews the changes an apply would make.
//
// The preview runs against the state recorded in the backend bucket and
// never mutates cloud resources or state. The change summary is printed
// so reviewers can inspect it before approving an apply.
func Plan(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	engine, err := openPlatform(ctx, cfg)
	if err != nil {
		return err
	}

	obs := observer.WithFields(map[string]string{"stack": cfg.Name})
	observe.LogOperationStart(obs, "plan")
	start := time.Now()

	summary, err := engine.Preview(ctx)
	if err != nil {
		observe.LogOperationFailed(obs, "plan", err)
		return err
	}

	observe.LogOperationComplete(obs, "plan", time.Since(start))

	fmt.Printf("\nPlan for platform %q: %s\n", cfg.Name, summary)
	if !summary.HasChanges() {
		fmt.Println("No changes. The platform matches the configuration.")
	}
	return nil
}
