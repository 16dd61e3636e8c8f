package sync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/sgaunet/gitlab-mirror/pkg/git"
	"github.com/sgaunet/gitlab-mirror/pkg/gitlab"
	"github.com/sgaunet/gitlab-mirror/pkg/hooks"
)

// Logger interface defines the logging methods used by the syncer.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// Syncer clones or updates the working copies of a finalized project set.
type Syncer struct {
	runner          git.Runner
	destRoot        string
	useSSH          bool
	includeArchived bool
	parallelism     int
	hooks           hooks.Hooks
	log             Logger
}

// NewSyncer returns a sequential Syncer writing below destRoot.
func NewSyncer(runner git.Runner, destRoot string) *Syncer {
	return &Syncer{
		runner:      runner,
		destRoot:    destRoot,
		parallelism: 1,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger.
func (s *Syncer) SetLogger(l Logger) {
	if l != nil {
		s.log = l
	}
}

// SetUseSSH selects SSH clone URLs instead of HTTP ones.
func (s *Syncer) SetUseSSH(useSSH bool) {
	s.useSSH = useSSH
}

// SetIncludeArchived synchronizes archived projects too.
func (s *Syncer) SetIncludeArchived(include bool) {
	s.includeArchived = include
}

// SetParallelism bounds the number of concurrent clone/pull operations.
// Values below 1 are treated as 1.
func (s *Syncer) SetParallelism(n int) {
	if n < 1 {
		n = 1
	}
	s.parallelism = n
}

// SetHooks sets the pre/post sync hooks.
func (s *Syncer) SetHooks(h hooks.Hooks) {
	s.hooks = h
}

// DestinationPath derives the local directory for a project: destRoot joined
// with the namespace full path joined with the project path slug.
func DestinationPath(destRoot string, project gitlab.Project) string {
	return filepath.Join(destRoot, filepath.FromSlash(project.NamespaceFullPath), project.Path)
}

// Run synchronizes every project and returns the aggregated report. The
// project slice is read-only during the run; each worker writes only its own
// result slot and its own destination subtree. Run returns once every
// project has been attempted.
func (s *Syncer) Run(ctx context.Context, projects []gitlab.Project) *Report {
	results := make([]Result, len(projects))
	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for i, project := range projects {
		i, project := i, project
		g.Go(func() error {
			results[i] = s.SyncProject(ctx, project)
			return nil
		})
	}
	_ = g.Wait()
	return &Report{Results: results}
}

// SyncProject clones the project if its destination is not a working copy
// yet, pulls it otherwise. Failures are folded into the returned Result, the
// caller decides what to do with them.
func (s *Syncer) SyncProject(ctx context.Context, project gitlab.Project) Result {
	res := Result{
		ProjectID:   project.ID,
		ProjectPath: project.FullPath(),
		Destination: DestinationPath(s.destRoot, project),
	}

	if project.Archived && !s.includeArchived {
		s.log.Info("project is archived, skip", "project", res.ProjectPath)
		res.Status = StatusSkipped
		return res
	}

	if s.hooks.HasPreSync() {
		if err := s.hooks.ExecutePreSync(); err != nil {
			return s.fail(res, fmt.Errorf("presync hook failed: %w", err))
		}
	}

	url := project.HTTPURLToRepo
	if s.useSSH {
		url = project.SSHURLToRepo
	}

	if git.IsWorkingCopy(res.Destination) {
		s.log.Info("updating existing working copy", "project", res.ProjectPath, "path", res.Destination)
		if err := s.runner.Pull(ctx, res.Destination); err != nil {
			return s.fail(res, err)
		}
		res.Status = StatusUpdated
	} else {
		s.log.Info("cloning", "project", res.ProjectPath, "path", res.Destination)
		if err := os.MkdirAll(filepath.Dir(res.Destination), 0o750); err != nil {
			return s.fail(res, fmt.Errorf("cannot create destination directory: %w", err))
		}
		if err := s.runner.Clone(ctx, url, res.Destination); err != nil {
			return s.fail(res, err)
		}
		res.Status = StatusCloned
	}

	if s.hooks.HasPostSync() {
		if err := s.hooks.ExecutePostSync(res.Destination); err != nil {
			return s.fail(res, fmt.Errorf("postsync hook failed: %w", err))
		}
	}
	return res
}

func (s *Syncer) fail(res Result, err error) Result {
	s.log.Error("synchronization failed", "project", res.ProjectPath, "error", err)
	res.Status = StatusFailed
	res.Err = err
	return res
}
