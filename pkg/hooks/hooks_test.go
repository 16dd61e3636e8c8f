package hooks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgaunet/gitlab-mirror/pkg/hooks"
)

func TestGeneratePreSyncCmd(t *testing.T) {
	type args struct {
		h hooks.Hooks
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "presync",
			args: args{
				h: hooks.Hooks{
					PreSync: "echo 'presync'",
				},
			},
			want: "echo 'presync'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.h.GeneratePreSyncCmd(); got != tt.want {
				t.Errorf("GeneratePreSyncCmd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeneratePostSyncCmd(t *testing.T) {
	type args struct {
		path string
		h    hooks.Hooks
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "postsync",
			args: args{
				path: "/repos/g1/a",
				h: hooks.Hooks{
					PostSync: "echo 'postsync %PROJECTPATH% %PROJECTPATH%/README.md'",
				},
			},
			want: "echo 'postsync /repos/g1/a /repos/g1/a/README.md'",
		},
		{
			name: "no placeholder",
			args: args{
				path: "/repos/g1/a",
				h: hooks.Hooks{
					PostSync: "echo done",
				},
			},
			want: "echo done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.h.GeneratePostSyncCmd(tt.args.path); got != tt.want {
				t.Errorf("GeneratePostSyncCmd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasHooks(t *testing.T) {
	h := hooks.Hooks{}
	if h.HasPreSync() || h.HasPostSync() {
		t.Error("empty hooks must report no commands")
	}
	h = hooks.Hooks{PreSync: "echo a", PostSync: "echo b"}
	if !h.HasPreSync() || !h.HasPostSync() {
		t.Error("configured hooks must report commands")
	}
}

func TestExecutePostSync(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	h := hooks.Hooks{PostSync: "touch " + marker}

	if err := h.ExecutePostSync(dir); err != nil {
		t.Fatalf("ExecutePostSync() error = %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("hook did not run: %v", err)
	}
}

func TestExecutePreSync_CommandFails(t *testing.T) {
	h := hooks.Hooks{PreSync: "false"}
	if err := h.ExecutePreSync(); err == nil {
		t.Error("expected error from failing hook command")
	}
}
