// Package hooks provides pre and post sync hook functionality.
package hooks

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-andiamo/splitter"
)

// Hooks holds the configuration for pre and post sync hooks.
type Hooks struct {
	PreSync  string `env:"PRESYNC"  env-default:"" yaml:"presync"`
	PostSync string `env:"POSTSYNC" env-default:"" yaml:"postsync"`
}

// GeneratePreSyncCmd generates the pre sync command.
func (h *Hooks) GeneratePreSyncCmd() string {
	return h.PreSync
}

// GeneratePostSyncCmd generates the post sync command for the given working
// copy path. %PROJECTPATH% in the configured command is replaced with path.
func (h *Hooks) GeneratePostSyncCmd(path string) string {
	cmd := strings.ReplaceAll(h.PostSync, "%PROJECTPATH%", path)
	return cmd
}

// HasPreSync returns true if a pre sync command is defined.
func (h *Hooks) HasPreSync() bool {
	return h.PreSync != ""
}

// HasPostSync returns true if a post sync command is defined.
func (h *Hooks) HasPostSync() bool {
	return h.PostSync != ""
}

// ExecutePreSync executes the pre sync command.
func (h *Hooks) ExecutePreSync() error {
	return execute(h.GeneratePreSyncCmd())
}

// ExecutePostSync executes the post sync command for the given working copy path.
func (h *Hooks) ExecutePostSync(path string) error {
	return execute(h.GeneratePostSyncCmd(path))
}

// execute executes the given command.
func execute(command string) error {
	if command == "" {
		return nil
	}
	commandSplitter, err := splitter.NewSplitter(' ', splitter.SingleQuotes, splitter.DoubleQuotes)
	if err != nil {
		return fmt.Errorf("failed to create command splitter: %w", err)
	}
	trimmer := splitter.Trim("'\"")
	splitCmd, err := commandSplitter.Split(command, trimmer)
	if err != nil {
		return fmt.Errorf("failed to parse command '%s': %w", command, err)
	}
	if len(splitCmd) == 0 {
		return nil
	}
	//nolint:gosec,noctx // G204: Command execution with user input is intentional for hook functionality
	_, err = exec.Command(splitCmd[0], splitCmd[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to execute %s: %w", command, err)
	}
	return nil
}
