package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lkhq/gkestack/internal/config"
	"github.com/lkhq/gkestack/internal/observe"
	"github.com/lkhq/gkestack/internal/stack"
)

// fakeEngine implements Engine for handler tests.
type fakeEngine struct {
	previewSummary stack.PlanSummary
	previewErr     error

	upOutputs stack.Outputs
	upErr     error

	destroyErr error
	refreshErr error

	outputs    stack.Outputs
	outputsErr error

	previewed bool
	upped     bool
	destroyed bool
	refreshed bool
}

func (f *fakeEngine) Preview(_ context.Context) (stack.PlanSummary, error) {
	f.previewed = true
	return f.previewSummary, f.previewErr
}

func (f *fakeEngine) Up(_ context.Context) (stack.Outputs, error) {
	f.upped = true
	return f.upOutputs, f.upErr
}

func (f *fakeEngine) Destroy(_ context.Context) error {
	f.destroyed = true
	return f.destroyErr
}

func (f *fakeEngine) Refresh(_ context.Context) error {
	f.refreshed = true
	return f.refreshErr
}

func (f *fakeEngine) Outputs(_ context.Context) (stack.Outputs, error) {
	return f.outputs, f.outputsErr
}

// testConfig returns a minimal valid platform configuration.
func testConfig() *config.Config {
	return &config.Config{
		Name:    "acme",
		Project: "acme-prod-123",
		Region:  "europe-west3",
		State: config.StateConfig{
			Bucket: "acme-state",
			Prefix: "gkestack",
		},
		KubeconfigPath: "kubeconfig",
	}
}

// withFakes swaps the handler factory functions for test doubles and
// returns a restore function for defer.
func withFakes(engine *fakeEngine, engineErr error) func() {
	origLoad := loadConfigFile
	origEnv := loadEnv
	origEngine := newEngine
	origWrite := writeFile

	loadConfigFile = func(_ string) (*config.Config, error) {
		return testConfig(), nil
	}
	loadEnv = func() (*config.Env, error) {
		return &config.Env{Passphrase: "test"}, nil
	}
	newEngine = func(_ context.Context, _ stack.Options) (Engine, error) {
		if engineErr != nil {
			return nil, engineErr
		}
		return engine, nil
	}
	writeFile = func(_ string, _ []byte, _ os.FileMode) error { return nil }

	return func() {
		loadConfigFile = origLoad
		loadEnv = origEnv
		newEngine = origEngine
		writeFile = origWrite
	}
}

// recordingObserver captures observer traffic for assertions.
type recordingObserver struct {
	messages []string
	events   []observe.Event
	fields   map[string]string
}

func (r *recordingObserver) Printf(format string, v ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, v...))
}

func (r *recordingObserver) Event(event observe.Event) {
	r.events = append(r.events, event)
}

func (r *recordingObserver) WithFields(fields map[string]string) observe.Observer {
	if r.fields == nil {
		r.fields = make(map[string]string)
	}
	for k, v := range fields {
		r.fields[k] = v
	}
	return r
}

// withObserver swaps the package observer and returns a restore function.
func withObserver(rec *recordingObserver) func() {
	orig := observer
	observer = rec
	return func() { observer = orig }
}

var errBoom = errors.New("boom")
