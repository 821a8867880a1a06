package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// maskedValue replaces secret output values unless --show-secrets is set.
const maskedValue = "[secret]"

// Outputs prints the stack outputs recorded for the platform.
//
// Secret outputs are masked by default. With jsonOutput the outputs are
// printed as a single JSON object, suitable for piping into jq or for
// consumption by CI steps.
func Outputs(ctx context.Context, configPath string, jsonOutput, showSecrets bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	engine, err := openPlatform(ctx, cfg)
	if err != nil {
		return err
	}

	outputs, err := engine.Outputs(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		values := make(map[string]interface{}, len(outputs))
		for name, out := range outputs {
			if out.Secret && !showSecrets {
				values[name] = maskedValue
				continue
			}
			values[name] = out.Value
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(values)
	}

	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		out := outputs[name]
		if out.Secret && !showSecrets {
			fmt.Printf("%s: %s\n", name, maskedValue)
			continue
		}
		fmt.Printf("%s: %v\n", name, out.Value)
	}
	return nil
}
