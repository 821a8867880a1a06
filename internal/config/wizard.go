package config

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/huh"
)

// machineTypeOptions are the options shown in the wizard node pool selector.
// A curated subset of shared-core and standard machine families; anything
// else can be set by editing the generated file.
var machineTypeOptions = []huh.Option[string]{
	huh.NewOption("e2-small - 2 vCPU (shared), 2GB RAM", "e2-small"),
	huh.NewOption("e2-medium - 2 vCPU (shared), 4GB RAM", "e2-medium"),
	huh.NewOption("e2-standard-2 - 2 vCPU, 8GB RAM", "e2-standard-2"),
	huh.NewOption("e2-standard-4 - 4 vCPU, 16GB RAM", "e2-standard-4"),
	huh.NewOption("n2-standard-4 - 4 vCPU, 16GB RAM", "n2-standard-4"),
	huh.NewOption("n2-standard-8 - 8 vCPU, 32GB RAM", "n2-standard-8"),
}

// RunWizard collects a platform configuration interactively and returns it
// with defaults applied. The result still passes through Validate in the
// loader when it is read back.
func RunWizard() (*Config, error) {
	cfg := &Config{}

	var machineType string
	privateNodes := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Platform name").
				Description("Prefixes every cloud resource (lowercase, max 18 chars)").
				Value(&cfg.Name).
				Validate(validateWizardName),
			huh.NewInput().
				Title("Google Cloud project ID").
				Value(&cfg.Project).
				Validate(requireValue("project")),
			huh.NewSelect[string]().
				Title("Region").
				Options(regionOptions()...).
				Value(&cfg.Region),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default node pool machine type").
				Options(machineTypeOptions...).
				Value(&machineType),
			huh.NewConfirm().
				Title("Private nodes (no public node IPs, NAT for egress)?").
				Value(&privateNodes),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Registry repository id").
				Placeholder("apps").
				Value(&cfg.Registry.ID).
				Validate(requireValue("registry id")),
			huh.NewInput().
				Title("State bucket").
				Description("Object-storage bucket for engine state (create with 'gkestack bootstrap')").
				Value(&cfg.State.Bucket).
				Validate(requireValue("state bucket")),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard aborted: %w", err)
	}

	cfg.Network.PrivateNodes = privateNodes
	cfg.ApplyDefaults()
	cfg.NodePools[0].MachineType = machineType

	return cfg, nil
}

func regionOptions() []huh.Option[string] {
	regions := getMapKeys(ValidRegions)
	sort.Strings(regions)
	opts := make([]huh.Option[string], 0, len(regions))
	for _, r := range regions {
		opts = append(opts, huh.NewOption(r, r))
	}
	return opts
}

func validateWizardName(s string) error {
	if s == "" {
		return fmt.Errorf("name is required")
	}
	if len(s) > maxNameLength {
		return fmt.Errorf("max %d characters", maxNameLength)
	}
	if !namePattern.MatchString(s) {
		return fmt.Errorf("lowercase letters, digits and hyphens only")
	}
	return nil
}

func requireValue(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
