// Package app wires the configuration, GitLab service and sync executor
// into the one-shot mirror run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sgaunet/gitlab-mirror/pkg/app/sync"
	"github.com/sgaunet/gitlab-mirror/pkg/config"
	"github.com/sgaunet/gitlab-mirror/pkg/git"
	"github.com/sgaunet/gitlab-mirror/pkg/gitlab"
)

// Logger interface defines the logging methods used by the application.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// App coordinates the discovery and synchronization phases.
type App struct {
	cfg           *config.Config
	gitlabService *gitlab.Service
	syncer        *sync.Syncer
	destRoot      string
	log           Logger
}

// NewApp creates the application from a validated configuration.
func NewApp(cfg *config.Config) (*App, error) {
	service, err := gitlab.NewService(cfg.GitlabURI, cfg.GitlabToken, nil)
	if err != nil {
		return nil, err
	}

	destRoot, err := filepath.Abs(cfg.DestDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve destination directory %s: %w", cfg.DestDir, err)
	}

	syncer := sync.NewSyncer(git.NewCLI(), destRoot)
	syncer.SetUseSSH(cfg.UseSSH)
	syncer.SetIncludeArchived(cfg.IncludeArchived)
	syncer.SetParallelism(cfg.Parallelism)
	syncer.SetHooks(cfg.Hooks)

	return &App{
		cfg:           cfg,
		gitlabService: service,
		syncer:        syncer,
		destRoot:      destRoot,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger and propagates it to the components.
func (a *App) SetLogger(l Logger) {
	if l == nil {
		return
	}
	a.log = l
	gitlab.SetLogger(l)
	a.syncer.SetLogger(l)
}

// SetHTTPClient overrides the HTTP client used against the GitLab API.
func (a *App) SetHTTPClient(httpClient *http.Client) error {
	service, err := gitlab.NewService(a.cfg.GitlabURI, a.cfg.GitlabToken, httpClient)
	if err != nil {
		return err
	}
	a.gitlabService = service
	return nil
}

// Run performs one mirror pass: discover every project below the configured
// groups, then clone or pull each one. Discovery errors abort the run;
// per-project sync errors are collected and reported at the end.
func (a *App) Run(ctx context.Context) error {
	projects, err := a.gitlabService.DiscoverProjects(ctx, a.cfg.GroupIDs)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if err := os.MkdirAll(a.destRoot, 0o750); err != nil {
		return fmt.Errorf("cannot create destination root %s: %w", a.destRoot, err)
	}

	report := a.syncer.Run(ctx, projects)

	a.log.Info("run finished",
		"total", len(report.Results),
		"cloned", report.Count(sync.StatusCloned),
		"updated", report.Count(sync.StatusUpdated),
		"skipped", report.Count(sync.StatusSkipped),
		"failed", report.Count(sync.StatusFailed),
	)
	for _, failure := range report.Failures() {
		a.log.Error("project failed", "project", failure.ProjectPath, "error", failure.Err)
	}

	if report.HasFailures() {
		return fmt.Errorf("%d project(s) failed to synchronize", report.Count(sync.StatusFailed))
	}
	return nil
}
