// Package stack drives the Pulumi engine through the Automation API.
//
// The package deliberately contains no provisioning logic: diffing, state
// locking, parallel resource creation and failure recovery are the engine's
// responsibility. What lives here is workspace setup (remote backend,
// credentials, plugins) and thin wrappers over the engine operations the
// CLI exposes.
package stack

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optrefresh"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
	"github.com/pulumi/pulumi/sdk/v3/go/common/apitype"
	"github.com/pulumi/pulumi/sdk/v3/go/common/tokens"
	"github.com/pulumi/pulumi/sdk/v3/go/common/workspace"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
)

// ProjectName is the engine project all platform stacks belong to.
const ProjectName = "gkestack"

// Plugin versions installed into the workspace. Must track the SDK
// versions in go.mod.
const (
	gcpPluginVersion        = "v6.67.1"
	kubernetesPluginVersion = "v4.5.4"
)

// Output is a single stack output value.
type Output struct {
	Value  interface{}
	Secret bool
}

// Outputs maps output names to values.
type Outputs map[string]Output

// PlanSummary aggregates the engine's preview change counts.
type PlanSummary struct {
	Creates   int
	Updates   int
	Deletes   int
	Unchanged int
}

// HasChanges reports whether applying would change anything.
func (s PlanSummary) HasChanges() bool {
	return s.Creates+s.Updates+s.Deletes > 0
}

func (s PlanSummary) String() string {
	return fmt.Sprintf("%d to create, %d to update, %d to delete, %d unchanged",
		s.Creates, s.Updates, s.Deletes, s.Unchanged)
}

// Options configures a stack handle.
type Options struct {
	// Config is the validated platform configuration.
	Config *config.Config

	// Env is the runner environment (credentials, passphrase, overrides).
	Env *config.Env

	// Program is the inline engine program to run.
	Program pulumi.RunFunc

	// StackName overrides the stack name (default: platform name).
	StackName string

	// BackendURL overrides the state backend (default: derived from the
	// platform's state bucket and prefix).
	BackendURL string

	// ProgressOutput receives the engine's streamed progress. Default:
	// os.Stdout.
	ProgressOutput io.Writer
}

// Stack is a handle on one platform stack in the remote state backend.
type Stack struct {
	stack    auto.Stack
	progress io.Writer
}

// BackendURL returns the object-storage state backend URL for a platform:
// gs://<bucket>/<prefix>.
func BackendURL(cfg *config.Config) string {
	return fmt.Sprintf("gs://%s/%s", cfg.State.Bucket, cfg.State.Prefix)
}

// New creates or selects the platform stack in the configured backend and
// prepares the workspace: credentials, secrets provider, provider plugins
// and engine configuration.
func New(ctx context.Context, opts Options) (*Stack, error) {
	cfg := opts.Config
	env := opts.Env

	stackName := opts.StackName
	if stackName == "" {
		stackName = cfg.Name
	}
	backendURL := opts.BackendURL
	if backendURL == "" {
		backendURL = BackendURL(cfg)
	}
	if env.BackendURL != "" {
		backendURL = env.BackendURL
	}
	progress := opts.ProgressOutput
	if progress == nil {
		progress = os.Stdout
	}

	envVars := map[string]string{
		"PULUMI_CONFIG_PASSPHRASE": env.Passphrase,
	}
	if env.Credentials != "" {
		envVars["GOOGLE_CREDENTIALS"] = env.Credentials
	}
	if env.CredentialsFile != "" {
		envVars["GOOGLE_APPLICATION_CREDENTIALS"] = env.CredentialsFile
	}

	project := workspace.Project{
		Name:    tokens.PackageName(ProjectName),
		Runtime: workspace.NewProjectRuntimeInfo("go", nil),
		Backend: &workspace.ProjectBackend{URL: backendURL},
	}

	s, err := auto.UpsertStackInlineSource(ctx, stackName, ProjectName, opts.Program,
		auto.Project(project),
		auto.EnvVars(envVars),
		auto.SecretsProvider("passphrase"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stack %q: %w", stackName, err)
	}

	w := s.Workspace()
	if err := w.InstallPlugin(ctx, "gcp", gcpPluginVersion); err != nil {
		return nil, fmt.Errorf("failed to install gcp plugin: %w", err)
	}
	if err := w.InstallPlugin(ctx, "kubernetes", kubernetesPluginVersion); err != nil {
		return nil, fmt.Errorf("failed to install kubernetes plugin: %w", err)
	}

	gcpProject := cfg.Project
	if env.Project != "" {
		gcpProject = env.Project
	}
	if err := s.SetConfig(ctx, "gcp:project", auto.ConfigValue{Value: gcpProject}); err != nil {
		return nil, fmt.Errorf("failed to set gcp:project: %w", err)
	}
	if err := s.SetConfig(ctx, "gcp:region", auto.ConfigValue{Value: cfg.Region}); err != nil {
		return nil, fmt.Errorf("failed to set gcp:region: %w", err)
	}

	return &Stack{stack: s, progress: progress}, nil
}

// Preview computes the changes an apply would make, without mutating any
// state.
func (s *Stack) Preview(ctx context.Context) (PlanSummary, error) {
	result, err := s.stack.Preview(ctx,
		optpreview.ProgressStreams(s.progress),
		optpreview.Diff(),
	)
	if err != nil {
		return PlanSummary{}, fmt.Errorf("preview failed: %w", err)
	}
	return summarize(result.ChangeSummary), nil
}

// Up provisions or updates the platform and returns the stack outputs.
func (s *Stack) Up(ctx context.Context) (Outputs, error) {
	result, err := s.stack.Up(ctx, optup.ProgressStreams(s.progress))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return convertOutputs(result.Outputs), nil
}

// Destroy deletes every resource in the stack.
func (s *Stack) Destroy(ctx context.Context) error {
	if _, err := s.stack.Destroy(ctx, optdestroy.ProgressStreams(s.progress)); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}
	return nil
}

// Refresh reconciles the state file with the actual cloud resources.
func (s *Stack) Refresh(ctx context.Context) error {
	if _, err := s.stack.Refresh(ctx, optrefresh.ProgressStreams(s.progress)); err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}
	return nil
}

// Outputs returns the current stack outputs without running an update.
func (s *Stack) Outputs(ctx context.Context) (Outputs, error) {
	outputs, err := s.stack.Outputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read outputs: %w", err)
	}
	return convertOutputs(outputs), nil
}

func summarize(changes map[apitype.OpType]int) PlanSummary {
	var summary PlanSummary
	for op, count := range changes {
		switch op {
		case apitype.OpCreate, apitype.OpCreateReplacement:
			summary.Creates += count
		case apitype.OpUpdate, apitype.OpReplace:
			summary.Updates += count
		case apitype.OpDelete, apitype.OpDeleteReplaced:
			summary.Deletes += count
		case apitype.OpSame:
			summary.Unchanged += count
		}
	}
	return summary
}

func convertOutputs(outputs auto.OutputMap) Outputs {
	converted := make(Outputs, len(outputs))
	for name, value := range outputs {
		converted[name] = Output{Value: value.Value, Secret: value.Secret}
	}
	return converted
}
