package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgaunet/gitlab-mirror/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWorkingCopy(t *testing.T) {
	t.Run("directory with .git", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o750))
		assert.True(t, git.IsWorkingCopy(dir))
	})
	t.Run("directory without .git", func(t *testing.T) {
		assert.False(t, git.IsWorkingCopy(t.TempDir()))
	})
	t.Run("missing directory", func(t *testing.T) {
		assert.False(t, git.IsWorkingCopy(filepath.Join(t.TempDir(), "nope")))
	})
	t.Run(".git is a file", func(t *testing.T) {
		// worktrees and submodules use a .git file, not a directory
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: elsewhere"), 0o600))
		assert.False(t, git.IsWorkingCopy(dir))
	})
}
