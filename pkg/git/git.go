// Package git shells out to the git binary for repository transfer.
// Protocol handling (HTTP/SSH credentials, transfer) stays with git itself.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner is the capability the sync executor needs from a version-control
// subsystem.
type Runner interface {
	// Clone performs a full clone of url into dest.
	Clone(ctx context.Context, url, dest string) error
	// Pull updates the existing working copy at dir.
	Pull(ctx context.Context, dir string) error
}

// CLI runs git commands through os/exec.
type CLI struct{}

// NewCLI returns a Runner backed by the git binary found in PATH.
func NewCLI() *CLI {
	return &CLI{}
}

// Clone runs "git clone url dest".
func (c *CLI) Clone(ctx context.Context, url, dest string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", url, dest)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git clone failed: %s: %w", string(output), err)
	}
	return nil
}

// Pull runs "git -C dir pull".
func (c *CLI) Pull(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "pull")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git pull failed: %s: %w", string(output), err)
	}
	return nil
}

// IsWorkingCopy reports whether path holds a git working copy, i.e. whether
// path/.git exists and is a directory.
func IsWorkingCopy(path string) bool {
	info, err := os.Stat(filepath.Join(filepath.Clean(path), ".git"))
	return err == nil && info.IsDir()
}
