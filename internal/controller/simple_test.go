package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_StartDryRun(t *testing.T) {
	ui, buf := newTestUI()

	require.NoError(t, ui.Start(context.Background(), WithDryRunMode()))
	assert.Contains(t, buf.String(), "Dry run")

	ui, buf = newTestUI()
	require.NoError(t, ui.Start(context.Background(), WithCleanMode()))
	assert.Empty(t, buf.String())
}

func TestSimpleUI_StartCancelled(t *testing.T) {
	ui, _ := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.Start(ctx), context.Canceled)
}

func TestSimpleUI_DisplayFileResult(t *testing.T) {
	tests := []struct {
		name         string
		dryRun       bool
		result       m.FileResult
		wantContains []string
		wantEmpty    bool
	}{
		{
			name: "modified file",
			result: m.FileResult{
				Path:         "src/app.js",
				Modified:     true,
				OriginalSize: 40,
				NewSize:      10,
				Outcome:      m.TransformOutcome{CommentsRemoved: 2, CallsRemoved: 1},
			},
			wantContains: []string{"cleaned", "src/app.js", "2 comment(s)", "1 console call(s)", "30 bytes saved"},
		},
		{
			name:   "dry run wording",
			dryRun: true,
			result: m.FileResult{
				Path:     "a.ts",
				Modified: true,
				Outcome:  m.TransformOutcome{EmojisRemoved: 3},
			},
			wantContains: []string{"would clean", "a.ts", "3 emoji(s)"},
		},
		{
			name:      "untouched file prints nothing",
			result:    m.FileResult{Path: "same.js"},
			wantEmpty: true,
		},
		{
			name:         "failure",
			result:       m.FileResult{Path: "bad.js", Err: errors.New("permission denied")},
			wantContains: []string{"failed", "bad.js", "permission denied"},
		},
		{
			name: "degraded and flagged",
			result: m.FileResult{
				Path: "legacy.js",
				Outcome: m.TransformOutcome{
					Degraded:       true,
					DegradedReason: "legacy.js:3:1: unexpected \"}\"",
					Flagged:        []m.CallSite{{Method: "log", Line: 4, Column: 9, Context: m.CallInArgument}},
				},
			},
			wantContains: []string{"warning", "plain text", "review", "legacy.js:4:9 console.log (argument)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestUI()

			mode := WithCleanMode()
			if tt.dryRun {
				mode = WithDryRunMode()
			}

			require.NoError(t, ui.Start(context.Background(), mode))
			buf.Reset()

			ui.DisplayFileResult(context.Background(), tt.result)

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUI_DisplayFileResultDiff(t *testing.T) {
	ui, buf := newTestUI()

	ui.DisplayFileResult(context.Background(), m.FileResult{
		Path:     "app.js",
		Modified: true,
		Original: []byte("// note\nrun();\n"),
		Outcome:  m.TransformOutcome{Code: []byte("run();\n"), CommentsRemoved: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "--- a/app.js")
	assert.Contains(t, out, "+++ b/app.js")
	assert.Contains(t, out, "-// note")
	assert.Contains(t, out, " run();")
}

func TestSimpleUI_DisplayRunReport(t *testing.T) {
	ui, buf := newTestUI()

	report := m.RunReport{
		CheckpointID: "checkpoint-1700000000000-abc123",
		Stats: m.RunStats{
			FilesProcessed:  3,
			FilesModified:   2,
			CommentsRemoved: 7,
			CallsRemoved:    4,
			BytesReduced:    120,
		},
	}

	require.NoError(t, ui.DisplayRunReport(context.Background(), report))

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "files processed")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "cleanup restore checkpoint-1700000000000-abc123")
}

func TestSimpleUI_DisplayRunReportDryRun(t *testing.T) {
	ui, buf := newTestUI()

	require.NoError(t, ui.DisplayRunReport(context.Background(), m.RunReport{DryRun: true}))

	assert.Contains(t, strings.ToLower(buf.String()), "files that would change")
	assert.NotContains(t, buf.String(), "cleanup restore")
}

func TestSimpleUI_DisplayCheckpoints(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ui, buf := newTestUI()

		require.NoError(t, ui.DisplayCheckpoints(context.Background(), nil))
		assert.Contains(t, buf.String(), "No checkpoints found")
	})

	t.Run("table", func(t *testing.T) {
		ui, buf := newTestUI()

		checkpoints := []m.Checkpoint{
			{
				ID:         "checkpoint-2-bbbbbb",
				Date:       "1/2/2024, 3:04:05 PM",
				FilesCount: 4,
				Options: m.OptionsSnapshot{
					Comments: true,
					Console:  m.ConsoleSnapshot{Remove: m.ConsoleSelection{Mode: m.ConsoleAll}},
				},
			},
			{ID: "checkpoint-1-aaaaaa", FilesCount: 1, Options: m.OptionsSnapshot{Emojis: true}},
		}

		require.NoError(t, ui.DisplayCheckpoints(context.Background(), checkpoints))

		out := buf.String()
		assert.Contains(t, out, "checkpoint-2-bbbbbb")
		assert.Contains(t, out, "checkpoint-1-aaaaaa")
		assert.Contains(t, out, "comments console:all")
		assert.Contains(t, out, "emojis")
		assert.Less(t, strings.Index(out, "checkpoint-2"), strings.Index(out, "checkpoint-1"))
	})
}

func TestSimpleUI_DisplayCheckpoint(t *testing.T) {
	ui, buf := newTestUI()

	cp := m.Checkpoint{
		ID:         "checkpoint-5-xyz789",
		Timestamp:  5,
		FilesCount: 1,
		Files:      []string{"src/a.js"},
		Options: m.OptionsSnapshot{
			Console: m.ConsoleSnapshot{Remove: m.ConsoleSelection{Mode: m.ConsoleSet, Methods: []string{"log", "debug"}}},
		},
	}

	require.NoError(t, ui.DisplayCheckpoint(context.Background(), cp))

	out := buf.String()
	assert.Contains(t, out, "id: checkpoint-5-xyz789")
	assert.Contains(t, out, "filesCount: 1")
	assert.Contains(t, out, "- src/a.js")
	assert.Contains(t, out, "- log")
	assert.Contains(t, out, "- debug")
}

func TestSimpleUI_DisplayRestore(t *testing.T) {
	ui, buf := newTestUI()

	result := m.RestoreResult{
		CheckpointID:  "checkpoint-1-aaaaaa",
		FilesRestored: 1,
		TotalFiles:    2,
		Missing:       []string{"src/gone.js"},
	}

	require.NoError(t, ui.DisplayRestore(context.Background(), result))

	out := buf.String()
	assert.Contains(t, out, "Restored 1/2 file(s) from checkpoint-1-aaaaaa")
	assert.Contains(t, out, "missing  src/gone.js")
}

func TestSimpleUI_DisplayDeleted(t *testing.T) {
	ui, buf := newTestUI()

	ui.DisplayDeleted(context.Background(), "checkpoint-1-aaaaaa")

	assert.Equal(t, "Deleted checkpoint checkpoint-1-aaaaaa\n", buf.String())
}

func TestSimpleUI_SelectCheckpoint(t *testing.T) {
	ui, _ := newTestUI()

	id, err := ui.SelectCheckpoint(context.Background(), []m.Checkpoint{{ID: "checkpoint-1-aaaaaa"}})

	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
