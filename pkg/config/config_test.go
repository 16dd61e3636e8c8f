package config_test

import (
	"testing"

	"github.com/sgaunet/gitlab-mirror/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("normal case", func(t *testing.T) {
		cfg, err := config.NewConfigFromFile("testdata/good-cfg.yaml")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Equal(t, "https://gitlab.com", cfg.GitlabURI)
		require.Equal(t, "mytoken", cfg.GitlabToken)
		require.Equal(t, []string{"123", "my-group/subgroup"}, cfg.GroupIDs)
		require.Equal(t, "/data/repos", cfg.DestDir)
		require.Equal(t, true, cfg.UseSSH)
		require.Equal(t, 4, cfg.Parallelism)
		require.Equal(t, false, cfg.IncludeArchived)
		require.Equal(t, false, cfg.NoLogTime)
		require.Equal(t, "echo presync", cfg.Hooks.PreSync)
		require.Equal(t, "echo postsync %PROJECTPATH%", cfg.Hooks.PostSync)
	})
	t.Run("file not found", func(t *testing.T) {
		_, err := config.NewConfigFromFile("testdata/unknown.yaml")
		require.Error(t, err)
	})
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.NewConfigFromFile("testdata/invalid-cfg.yaml")
		require.Error(t, err)
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("valid environment variables", func(t *testing.T) {
		t.Setenv("GITLAB_URI", "https://gitlab.example.com")
		t.Setenv("GITLAB_TOKEN", "mytoken")
		t.Setenv("GITLAB_GROUP_IDS", "123,my-group/subgroup")
		t.Setenv("DESTDIR", "/data/repos")
		t.Setenv("USE_SSH", "true")
		t.Setenv("PARALLELISM", "8")
		t.Setenv("INCLUDE_ARCHIVED", "true")
		t.Setenv("NOLOGTIME", "true")

		cfg, err := config.NewConfigFromEnv()
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Equal(t, "https://gitlab.example.com", cfg.GitlabURI)
		require.Equal(t, "mytoken", cfg.GitlabToken)
		require.Equal(t, []string{"123", "my-group/subgroup"}, cfg.GroupIDs)
		require.Equal(t, "/data/repos", cfg.DestDir)
		require.Equal(t, true, cfg.UseSSH)
		require.Equal(t, 8, cfg.Parallelism)
		require.Equal(t, true, cfg.IncludeArchived)
		require.Equal(t, true, cfg.NoLogTime)
	})
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("GITLAB_TOKEN", "mytoken")
		t.Setenv("GITLAB_GROUP_IDS", "123")

		cfg, err := config.NewConfigFromEnv()
		require.NoError(t, err)
		require.Equal(t, "https://gitlab.com", cfg.GitlabURI)
		require.Equal(t, ".", cfg.DestDir)
		require.Equal(t, false, cfg.UseSSH)
		require.Equal(t, 1, cfg.Parallelism)
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &config.Config{GitlabToken: "tok", GroupIDs: []string{"123"}}
		require.NoError(t, cfg.Validate())
	})
	t.Run("missing token", func(t *testing.T) {
		cfg := &config.Config{GroupIDs: []string{"123"}}
		require.ErrorIs(t, cfg.Validate(), config.ErrNoToken)
	})
	t.Run("missing groups", func(t *testing.T) {
		cfg := &config.Config{GitlabToken: "tok"}
		require.ErrorIs(t, cfg.Validate(), config.ErrNoGroup)
	})
}

func TestRedacted(t *testing.T) {
	cfg := &config.Config{GitlabToken: "supersecret", GroupIDs: []string{"123"}}
	redacted := cfg.Redacted()
	require.NotContains(t, redacted, "supersecret")
	require.Contains(t, redacted, "***REDACTED***")
}
