package twlite

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteStylesheet writes rules to path, one per line with a trailing
// newline. The parent directory is created if needed and any existing file
// is overwritten.
func WriteStylesheet(path string, rules *RuleList) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	// #nosec G306 - stylesheets are public assets
	if err := os.WriteFile(path, []byte(rules.Render()), 0o644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}
