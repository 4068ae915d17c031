package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/chaperone/vioctl/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// stdinIsTerminal reports whether stdin is an interactive terminal.
	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// runWizard runs the interactive wizard.
	runWizard = wizard.RunWizard

	// writeConfigFile writes the config to a file.
	writeConfigFile = wizard.WriteYAML
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("init needs an interactive terminal; write %s by hand instead", outputPath)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfigFile(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("vioctl - VIO environment configuration")
	fmt.Println("======================================")
	fmt.Println()
	fmt.Println("This wizard creates a configuration file for the project and vrops commands.")
	fmt.Println("Passwords may be left empty and supplied via OS_PASSWORD / VROPS_PASSWORD.")
	fmt.Println()
}

// printInitSuccess outputs completion message and next steps.
func printInitSuccess(outputPath string) {
	fmt.Printf("\nConfiguration written to: %s\n", outputPath)
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  vioctl project apply -c %s --state present\n", outputPath)
	fmt.Printf("  vioctl vrops configure -c %s\n", outputPath)
}
