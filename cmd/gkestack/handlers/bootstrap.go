package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/lkhq/gkestack/internal/infra"
	"github.com/lkhq/gkestack/internal/observe"
	"github.com/lkhq/gkestack/internal/stack"
)

// localBackendURL is the engine's local file backend. Bootstrap state
// cannot live in the bucket it creates.
const localBackendURL = "file://~"

// Bootstrap creates the state backend bucket for a platform.
//
// The bucket is provisioned through a separate micro-stack whose state
// is kept in the local engine backend. Once the bucket exists, every
// other command stores its state remotely under gs://<bucket>/<prefix>.
func Bootstrap(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	env, err := loadEnv()
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	engine, err := newEngine(ctx, stack.Options{
		Config:     cfg,
		Env:        env,
		Program:    infra.BootstrapProgram(cfg),
		StackName:  cfg.Name + "-bootstrap",
		BackendURL: localBackendURL,
	})
	if err != nil {
		return fmt.Errorf("failed to open bootstrap stack: %w", err)
	}

	obs := observer.WithFields(map[string]string{"stack": cfg.Name})
	observe.LogOperationStart(obs, "bootstrap")
	start := time.Now()

	outputs, err := engine.Up(ctx)
	if err != nil {
		observe.LogOperationFailed(obs, "bootstrap", err)
		return err
	}

	observe.LogOperationComplete(obs, "bootstrap", time.Since(start))

	fmt.Printf("\nState bucket ready: %v\n", outputs["stateBucketURL"].Value)
	fmt.Printf("Engine state for this platform will be stored under %s\n", stack.BackendURL(cfg))
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  gkestack plan\n")
	fmt.Printf("  gkestack apply\n")
	return nil
}
