package handlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lkhq/gkestack/internal/config"
	"github.com/lkhq/gkestack/internal/infra"
	"github.com/lkhq/gkestack/internal/observe"
	"github.com/lkhq/gkestack/internal/stack"
	"github.com/lkhq/gkestack/internal/util/naming"
)

// Apply provisions or updates the platform on Google Cloud.
//
// This function orchestrates the complete provisioning workflow:
//  1. Loads and validates the platform configuration
//  2. Opens the stack in the remote state backend
//  3. Converges network, service accounts, cluster, registry and
//     namespaces to the desired state
//  4. Writes the kubeconfig output to disk for kubectl access
//  5. Prints the remaining outputs
//
// Apply is idempotent: re-running it after a partial failure resumes
// from the recorded state rather than starting over.
func Apply(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	engine, err := openPlatform(ctx, cfg)
	if err != nil {
		return err
	}

	obs := observer.WithFields(map[string]string{"stack": cfg.Name})
	observe.LogOperationStart(obs, "apply")
	start := time.Now()

	outputs, err := engine.Up(ctx)
	if err != nil {
		observe.LogOperationFailed(obs, "apply", err)
		return err
	}

	observe.LogOperationComplete(obs, "apply", time.Since(start))

	if err := writeKubeconfig(cfg.KubeconfigPath, outputs); err != nil {
		return err
	}

	printApplySuccess(cfg, outputs)
	return nil
}

// writeKubeconfig persists the kubeconfig output to disk.
// Only writes if the output is present and non-empty.
func writeKubeconfig(path string, outputs stack.Outputs) error {
	out, ok := outputs["kubeconfig"]
	if !ok {
		return nil
	}
	kubeconfig, ok := out.Value.(string)
	if !ok || kubeconfig == "" {
		return nil
	}

	if err := writeFile(path, []byte(kubeconfig), 0600); err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}

	return nil
}

// printApplySuccess outputs completion message and next steps for the user.
func printApplySuccess(cfg *config.Config, outputs stack.Outputs) {
	fmt.Printf("\nPlatform %q is up to date.\n\n", cfg.Name)

	names := make([]string, 0, len(outputs))
	for n := range outputs {
		if n == "kubeconfig" {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %s: %v\n", n, outputs[n].Value)
	}

	fmt.Printf("\nKubeconfig saved to: %s\n", cfg.KubeconfigPath)
	fmt.Printf("You can now access your cluster with:\n")
	fmt.Printf("  export KUBECONFIG=%s\n", cfg.KubeconfigPath)
	fmt.Printf("  kubectl get nodes\n")

	deployer := naming.ServiceAccountEmail(
		naming.ServiceAccountID(cfg.Name, infra.AccountDeployer), cfg.Project)
	fmt.Printf("\nFor the CI pipelines, create a key for %s\n", deployer)
	fmt.Printf("and store it as the GOOGLE_CREDENTIALS repository secret.\n")
}
