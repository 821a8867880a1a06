package handlers

import (
	"context"
	"fmt"
)

// Init creates a platform configuration file.
//
// By default it runs the interactive wizard and writes the answers as
// YAML. With nonInteractive it writes a commented template instead,
// which is the right choice for CI or for teams that keep configs in
// review.
func Init(_ context.Context, outputPath string, nonInteractive bool) error {
	if nonInteractive {
		if err := writeTemplate(outputPath); err != nil {
			return fmt.Errorf("failed to write template: %w", err)
		}
		fmt.Printf("Wrote configuration template to %s\n", outputPath)
		fmt.Println("Edit it, then run 'gkestack bootstrap' followed by 'gkestack apply'.")
		return nil
	}

	cfg, err := runWizard()
	if err != nil {
		return fmt.Errorf("configuration wizard failed: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", outputPath)
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  gkestack bootstrap -c %s   # create the state bucket\n", outputPath)
	fmt.Printf("  gkestack plan -c %s        # preview the platform\n", outputPath)
	fmt.Printf("  gkestack apply -c %s       # provision it\n", outputPath)
	return nil
}
