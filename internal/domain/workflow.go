package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	"cleanup.dev/pkg/cleanup/internal/controller"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

// CleanArgs contains the arguments for a cleanup run.
type CleanArgs struct {
	Root       m.Path
	Policy     m.RemovalPolicy
	Files      adapter.DiscoverOptions
	Checkpoint bool
	Retention  int
	Parallel   int
	DryRun     bool
	Diff       bool
}

// RestoreArgs selects the checkpoint to restore. An empty ID lets the UI
// pick one.
type RestoreArgs struct {
	Root m.Path
	ID   string
}

// ListArgs contains the arguments for listing checkpoints.
type ListArgs struct {
	Root m.Path
}

// ShowArgs selects the checkpoint to display.
type ShowArgs struct {
	Root m.Path
	ID   string
}

// DeleteArgs selects the checkpoint to delete.
type DeleteArgs struct {
	Root m.Path
	ID   string
}

// Workflow is the entry point used by the CLI commands.
type Workflow interface {
	Clean(ctx context.Context, args CleanArgs) (m.RunReport, error)
	Restore(ctx context.Context, args RestoreArgs) (m.RestoreResult, error)
	List(ctx context.Context, args ListArgs) ([]m.Checkpoint, error)
	Show(ctx context.Context, args ShowArgs) (m.Checkpoint, error)
	Delete(ctx context.Context, args DeleteArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
	Transformer
	checkpoints CheckpointManager
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	transformer Transformer,
	checkpoints CheckpointManager,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		Transformer:     transformer,
		checkpoints:     checkpoints,
	}
}

// Clean discovers the files under args.Root, snapshots them and rewrites
// each one. Per-file failures are recorded in the report; only an invalid
// policy, a failed discovery or a failed checkpoint abort the run.
func (w *workflow) Clean(ctx context.Context, args CleanArgs) (m.RunReport, error) {
	if err := args.Policy.Validate(); err != nil {
		return m.RunReport{}, err
	}

	mode := controller.WithCleanMode()
	if args.DryRun {
		mode = controller.WithDryRunMode()
	}

	if err := w.Start(ctx, mode); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.RunReport{}, err
	}
	defer w.Close(ctx)

	files, err := w.Discover(args.Root, args.Files)
	if err != nil {
		slog.Error("Failed to discover files", "root", args.Root, "error", err)
		return m.RunReport{}, fmt.Errorf("discover files: %w", err)
	}

	report := m.RunReport{DryRun: args.DryRun}

	w.DisplayRunStart(ctx, len(files), args.DryRun)

	if len(files) == 0 {
		return report, w.DisplayRunReport(ctx, report)
	}

	if args.Checkpoint && !args.DryRun {
		id, err := w.checkpoint(ctx, args, files)
		if err != nil {
			return report, err
		}

		report.CheckpointID = id
	}

	report.Files = w.processFiles(ctx, args, files)

	for _, result := range report.Files {
		report.Stats = report.Stats.Add(result)
		w.DisplayFileResult(ctx, result)
	}

	slog.Info("cleanup finished",
		"processed", report.Stats.FilesProcessed,
		"modified", report.Stats.FilesModified,
		"failed", report.Stats.FilesFailed,
		"dry_run", args.DryRun)

	return report, w.DisplayRunReport(ctx, report)
}

func (w *workflow) checkpoint(ctx context.Context, args CleanArgs, files []m.File) (string, error) {
	cp, err := w.checkpoints.Create(ctx, args.Root, files, m.SnapshotOf(args.Policy))
	if err != nil {
		slog.Error("Failed to create checkpoint", "error", err)
		return "", fmt.Errorf("create checkpoint: %w", err)
	}

	w.DisplayCheckpointCreated(ctx, cp)

	removed, err := w.checkpoints.Clean(ctx, args.Root, args.Retention)
	if err != nil {
		slog.Warn("Failed to apply checkpoint retention", "retention", args.Retention, "error", err)
	} else if removed > 0 {
		slog.Info("old checkpoints removed", "count", removed)
	}

	return cp.ID, nil
}

// processFiles transforms files with at most args.Parallel workers. Results
// keep the input order.
func (w *workflow) processFiles(ctx context.Context, args CleanArgs, files []m.File) []m.FileResult {
	results := make([]m.FileResult, len(files))

	var group errgroup.Group

	group.SetLimit(max(args.Parallel, 1))

	for i, file := range files {
		group.Go(func() error {
			results[i] = w.processFile(ctx, args, file)
			return nil
		})
	}

	_ = group.Wait()

	return results
}

func (w *workflow) processFile(ctx context.Context, args CleanArgs, file m.File) m.FileResult {
	result := m.FileResult{Path: file.ShortPath}

	fail := func(err error) m.FileResult {
		slog.Error("Failed to process file", "path", file.FullPath, "error", err)
		result.Err = &ProcessingError{Path: file.ShortPath, Err: err}

		return result
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	content, err := w.ReadFile(file.FullPath)
	if err != nil {
		return fail(fmt.Errorf("read: %w", err))
	}

	outcome, err := w.Transform(ctx, file.FullPath, content, args.Policy)
	if err != nil {
		return fail(fmt.Errorf("transform: %w", err))
	}

	result.Outcome = outcome
	result.OriginalSize = len(content)
	result.NewSize = len(outcome.Code)
	result.Modified = !bytes.Equal(content, outcome.Code)

	if !result.Modified {
		return result
	}

	if args.Diff {
		result.Original = content
	}

	if args.DryRun {
		return result
	}

	if err := w.WriteFile(file.FullPath, outcome.Code); err != nil {
		return fail(fmt.Errorf("write: %w", err))
	}

	slog.Debug("file cleaned", "path", file.ShortPath,
		"comments", outcome.CommentsRemoved, "calls", outcome.CallsRemoved, "emojis", outcome.EmojisRemoved)

	return result
}

// Restore copies a checkpoint back over the project.
func (w *workflow) Restore(ctx context.Context, args RestoreArgs) (m.RestoreResult, error) {
	id := args.ID

	if id == "" {
		checkpoints, err := w.checkpoints.List(ctx, args.Root)
		if err != nil {
			return m.RestoreResult{}, err
		}

		if len(checkpoints) == 0 {
			return m.RestoreResult{}, fmt.Errorf("%w: no checkpoints available", ErrCheckpointNotFound)
		}

		id, err = w.SelectCheckpoint(ctx, checkpoints)
		if err != nil {
			return m.RestoreResult{}, err
		}
	}

	result, err := w.checkpoints.Restore(ctx, args.Root, id)
	if err != nil {
		slog.Error("Failed to restore checkpoint", "id", id, "error", err)
		return result, fmt.Errorf("restore checkpoint: %w", err)
	}

	return result, w.DisplayRestore(ctx, result)
}

// List shows every checkpoint, newest first.
func (w *workflow) List(ctx context.Context, args ListArgs) ([]m.Checkpoint, error) {
	checkpoints, err := w.checkpoints.List(ctx, args.Root)
	if err != nil {
		return nil, err
	}

	return checkpoints, w.DisplayCheckpoints(ctx, checkpoints)
}

// Show displays a single checkpoint.
func (w *workflow) Show(ctx context.Context, args ShowArgs) (m.Checkpoint, error) {
	checkpoint, err := w.checkpoints.Get(ctx, args.Root, args.ID)
	if err != nil {
		return m.Checkpoint{}, err
	}

	return checkpoint, w.DisplayCheckpoint(ctx, checkpoint)
}

// Delete removes one checkpoint.
func (w *workflow) Delete(ctx context.Context, args DeleteArgs) error {
	if err := w.checkpoints.Delete(ctx, args.Root, args.ID); err != nil {
		if !errors.Is(err, ErrCheckpointNotFound) {
			slog.Error("Failed to delete checkpoint", "id", args.ID, "error", err)
		}

		return err
	}

	w.DisplayDeleted(ctx, args.ID)

	return nil
}
