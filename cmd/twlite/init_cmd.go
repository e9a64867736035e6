package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigPath + " config file",
	Long:  `Create a ` + defaultConfigPath + ` configuration file in the current directory with the built-in defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return writeDefaultConfig(defaultConfigPath, force)
	},
}

func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

const defaultConfig = `# twlite configuration

# Shared settings
verbose: false
quiet: false
color: false

# Generation settings
generate:
  sources:
    - index.html
    - pharmacy.html
  output: styles/tailwind-lite.css
  verify: true             # re-parse the stylesheet and warn on mismatch

# Coverage lint settings
lint:
  # sources: defaults to generate.sources
  strict: false
  threshold: 0.0
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
