package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/config"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/preset"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigCmd(root.path())
		},
	}
}

func runConfigCmd(path string) error {
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template when path does not exist.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	basic := preset.Default()
	return fmt.Sprintf(`# passgen configuration
# Uncomment a value to enable it. PASSGEN_* variables and CLI flags override config values.

[generate]
# preset = %q             # One of: %s
# length = %d                 # Secret length (%d-%d)
# lowercase = %t
# uppercase = %t
# numbers = %t
# symbols = %t
# exclude-ambiguous = %t    # Drop l, I, O, 0 and 1
# mode = %q          # standard or passphrase
# scorer = "auto"             # auto, zxcvbn or heuristic
# wordlist = "en"             # Name of a file in %s, or a path

[history]
# enabled = true              # Keep the last masked secrets
# db-path = %q
`,
		preset.Basic,
		strings.Join(preset.Names(), ", "),
		basic.Length,
		model.MinLength,
		model.MaxLength,
		basic.Lowercase,
		basic.Uppercase,
		basic.Numbers,
		basic.Symbols,
		basic.ExcludeAmbiguous,
		basic.Mode.String(),
		config.DefaultWordListDir(),
		config.DefaultDBPath(),
	)
}
