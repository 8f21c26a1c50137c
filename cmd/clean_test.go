package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	"cleanup.dev/pkg/cleanup/internal/domain"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

func TestCleanCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	root := t.TempDir()

	cmd, _ := newTestCmd(newCleanCmd())

	mockWorkflow.EXPECT().Clean(mock.Anything, mock.MatchedBy(func(args domain.CleanArgs) bool {
		return args.Root == m.Path(root) &&
			args.Policy.Comments &&
			args.Policy.PreserveLicense &&
			!args.Policy.PreserveJSDoc &&
			args.Policy.Console.Mode == m.ConsoleNone &&
			!args.Policy.Emojis &&
			args.Checkpoint &&
			args.Retention == domain.DefaultRetention &&
			args.Parallel == 1 &&
			!args.DryRun &&
			slices.Equal(args.Files.Extensions, adapter.DefaultExtensions)
	})).Return(m.RunReport{}, nil).Once()

	cmd.SetArgs([]string{"clean", "--path", root, "--comments"})
	require.NoError(t, cmd.Execute())
}

func TestCleanCmd_All(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd, _ := newTestCmd(newCleanCmd())

	mockWorkflow.EXPECT().Clean(mock.Anything, mock.MatchedBy(func(args domain.CleanArgs) bool {
		return args.Policy.Comments &&
			args.Policy.Emojis &&
			args.Policy.Console.Mode == m.ConsoleAll
	})).Return(m.RunReport{}, nil).Once()

	cmd.SetArgs([]string{"clean", "--path", t.TempDir(), "--all"})
	require.NoError(t, cmd.Execute())
}

func TestCleanCmd_ConsoleSelection(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd, _ := newTestCmd(newCleanCmd())

	mockWorkflow.EXPECT().Clean(mock.Anything, mock.MatchedBy(func(args domain.CleanArgs) bool {
		return args.Policy.Console.Mode == m.ConsoleSet &&
			slices.Equal(args.Policy.Console.Methods, []string{"log", "debug"}) &&
			slices.Equal(args.Policy.ConsoleExclude, []string{"debug"}) &&
			!args.Policy.Comments
	})).Return(m.RunReport{}, nil).Once()

	cmd.SetArgs([]string{"clean", "--path", t.TempDir(), "--console", "log, debug", "--console-exclude", "debug"})
	require.NoError(t, cmd.Execute())
}

func TestCleanCmd_RunOptions(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd, _ := newTestCmd(newCleanCmd())

	mockWorkflow.EXPECT().Clean(mock.Anything, mock.MatchedBy(func(args domain.CleanArgs) bool {
		return args.DryRun &&
			args.Diff &&
			!args.Checkpoint &&
			args.Parallel == 4 &&
			args.Retention == 3 &&
			args.Policy.PreserveJSDoc &&
			!args.Policy.PreserveLicense &&
			slices.Equal(args.Files.Extensions, []string{"js", "ts"}) &&
			slices.Equal(args.Files.Ignore, []string{"vendor/", "*.min.js"})
	})).Return(m.RunReport{}, nil).Once()

	cmd.SetArgs([]string{
		"clean", "--path", t.TempDir(), "-e",
		"--dry-run", "--diff", "--no-checkpoint",
		"--parallel", "4", "--retention", "3",
		"--preserve-jsdoc", "--preserve-license=false",
		"--ext", "js,ts", "-x", "vendor/", "-x", "*.min.js",
	})
	require.NoError(t, cmd.Execute())
}

func TestCleanCmd_NothingToRemove(t *testing.T) {
	useMockWorkflow(t)

	cmd, _ := newTestCmd(newCleanCmd())
	cmd.SetArgs([]string{"clean", "--path", t.TempDir()})

	err := cmd.Execute()
	assert.ErrorIs(t, err, errNothingToRemove)
}

func TestCleanCmd_RejectsInvalidConfiguration(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.js")
	require.NoError(t, os.WriteFile(file, []byte("let a;\n"), 0o644))

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown console method",
			args:    []string{"--console", "shout"},
			wantErr: m.ErrInvalidPolicy,
		},
		{
			name:    "zero workers",
			args:    []string{"--comments", "--parallel", "0"},
			wantMsg: "invalid configuration",
		},
		{
			name:    "zero retention",
			args:    []string{"--comments", "--retention", "0"},
			wantMsg: "invalid configuration",
		},
		{
			name:    "root is a file",
			args:    []string{"--comments", "--path", file},
			wantMsg: "is not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMockWorkflow(t)

			cmd, _ := newTestCmd(newCleanCmd())
			cmd.SetArgs(append([]string{"clean", "--path", t.TempDir()}, tt.args...))

			err := cmd.Execute()
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestCleanCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd, _ := newTestCmd(newCleanCmd())

	mockWorkflow.EXPECT().Clean(mock.Anything, mock.Anything).
		Return(m.RunReport{}, errors.New("create checkpoint: disk full")).Once()

	cmd.SetArgs([]string{"clean", "--path", t.TempDir(), "--comments"})

	assert.ErrorContains(t, cmd.Execute(), "disk full")
}

func TestCleanCmd_ReadsConfigFileValues(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	t.Setenv("CLEANUP_EMOJIS", "true")
	t.Setenv("CLEANUP_CHECKPOINT_ENABLED", "false")

	cmd, _ := newTestCmd(newCleanCmd())

	mockWorkflow.EXPECT().Clean(mock.Anything, mock.MatchedBy(func(args domain.CleanArgs) bool {
		return args.Policy.Emojis && !args.Checkpoint
	})).Return(m.RunReport{}, nil).Once()

	cmd.SetArgs([]string{"clean", "--path", t.TempDir()})
	require.NoError(t, cmd.Execute())
}

func TestSplitListValues(t *testing.T) {
	assert.Equal(t, []string{"log", "debug", "warn"}, splitListValues([]string{"log, debug", "warn"}))
	assert.Empty(t, splitListValues(nil))
}
