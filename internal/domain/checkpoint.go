package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

const (
	// CheckpointDir is the directory under the project root holding snapshots.
	CheckpointDir = ".cleanup-checkpoints"

	// DefaultRetention is how many checkpoints are kept after a run.
	DefaultRetention = 10

	checkpointPrefix = "checkpoint-"
	idAlphabet       = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLength   = 6
	humanDateLayout  = "1/2/2006, 3:04:05 PM"
)

// CheckpointManager snapshots files before they are rewritten and copies
// them back on request.
type CheckpointManager interface {
	Create(ctx context.Context, root m.Path, files []m.File, options m.OptionsSnapshot) (m.Checkpoint, error)
	Restore(ctx context.Context, root m.Path, id string) (m.RestoreResult, error)
	List(ctx context.Context, root m.Path) ([]m.Checkpoint, error)
	Get(ctx context.Context, root m.Path, id string) (m.Checkpoint, error)
	Delete(ctx context.Context, root m.Path, id string) error
	Clean(ctx context.Context, root m.Path, retention int) (int, error)
}

type checkpointManager struct {
	adapter.SourceFSAdapter
	adapter.CheckpointStore
	now    func() time.Time
	suffix func() (string, error)
}

// NewCheckpointManager creates a CheckpointManager storing snapshots through fs
// and metadata through store.
func NewCheckpointManager(fs adapter.SourceFSAdapter, store adapter.CheckpointStore) CheckpointManager {
	return &checkpointManager{
		SourceFSAdapter: fs,
		CheckpointStore: store,
		now:             time.Now,
		suffix: func() (string, error) {
			return gonanoid.Generate(idAlphabet, idSuffixLength)
		},
	}
}

func (c *checkpointManager) dir(root m.Path) m.Path {
	return c.JoinPath(string(root), CheckpointDir)
}

// Create copies every file into a new snapshot directory and commits the
// metadata record last. A failed copy removes the partial snapshot and
// leaves the metadata untouched.
func (c *checkpointManager) Create(ctx context.Context, root m.Path, files []m.File, options m.OptionsSnapshot) (m.Checkpoint, error) {
	dir := c.dir(root)

	records, err := c.Load(dir)
	if err != nil {
		return m.Checkpoint{}, fmt.Errorf("load checkpoints: %w", err)
	}

	ts := c.now().UnixMilli()
	for _, r := range records {
		if r.Timestamp >= ts {
			ts = r.Timestamp + 1
		}
	}

	suffix, err := c.suffix()
	if err != nil {
		return m.Checkpoint{}, fmt.Errorf("generate checkpoint id: %w", err)
	}

	id := fmt.Sprintf("%s%d-%s", checkpointPrefix, ts, suffix)
	storage := c.JoinPath(string(dir), id)

	rels, err := c.snapshot(ctx, root, storage, files)
	if err != nil {
		c.discard(storage)
		return m.Checkpoint{}, fmt.Errorf("checkpoint %s: %w", id, err)
	}

	cp := m.Checkpoint{
		ID:         id,
		Timestamp:  ts,
		Date:       time.UnixMilli(ts).Format(humanDateLayout),
		FilesCount: len(rels),
		Files:      rels,
		Options:    options,
	}

	if err := c.Save(dir, append(records, cp)); err != nil {
		c.discard(storage)
		return m.Checkpoint{}, fmt.Errorf("checkpoint %s: save metadata: %w", id, err)
	}

	slog.Info("checkpoint created", "id", id, "files", len(rels))

	return cp, nil
}

func (c *checkpointManager) snapshot(ctx context.Context, root, storage m.Path, files []m.File) ([]string, error) {
	if err := c.MkdirAll(storage); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}

	rels := make([]string, 0, len(files))

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, err := c.relative(root, f)
		if err != nil {
			return nil, err
		}

		if err := c.CopyFile(f.FullPath, c.JoinPath(string(storage), rel)); err != nil {
			return nil, fmt.Errorf("copy %s: %w", rel, err)
		}

		rels = append(rels, filepath.ToSlash(rel))
	}

	return rels, nil
}

func (c *checkpointManager) relative(root m.Path, f m.File) (string, error) {
	rel := string(f.ShortPath)
	if rel == "" {
		r, err := c.RelPath(root, f.FullPath)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", f.FullPath, err)
		}

		rel = string(r)
	}

	if !insideRoot(rel) {
		return "", fmt.Errorf("%s is outside the project root", f.FullPath)
	}

	return rel, nil
}

// insideRoot reports whether the native relative path rel stays under the root.
func insideRoot(rel string) bool {
	clean := filepath.Clean(rel)

	return rel != "" && !filepath.IsAbs(rel) && filepath.VolumeName(rel) == "" &&
		clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}

func (c *checkpointManager) discard(storage m.Path) {
	if err := c.RemoveAll(storage); err != nil {
		slog.Warn("failed to remove partial checkpoint", "path", storage, "error", err)
	}
}

// Restore copies every snapshot file that still exists back into root.
// Missing snapshot files are skipped and reported in the result.
func (c *checkpointManager) Restore(ctx context.Context, root m.Path, id string) (m.RestoreResult, error) {
	cp, err := c.Get(ctx, root, id)
	if err != nil {
		return m.RestoreResult{}, err
	}

	storage := c.JoinPath(string(c.dir(root)), cp.ID)
	if _, err := c.FileInfo(storage); err != nil {
		return m.RestoreResult{}, fmt.Errorf("%w: %s", ErrCheckpointStorageMissing, cp.ID)
	}

	for _, rel := range cp.Files {
		if !insideRoot(filepath.FromSlash(rel)) {
			return m.RestoreResult{}, fmt.Errorf("checkpoint %s: %q is outside the project root", cp.ID, rel)
		}
	}

	result := m.RestoreResult{CheckpointID: cp.ID, TotalFiles: len(cp.Files)}

	for _, rel := range cp.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		native := filepath.FromSlash(rel)
		src := c.JoinPath(string(storage), native)

		if _, err := c.FileInfo(src); err != nil {
			slog.Warn("snapshot file missing, skipping", "checkpoint", cp.ID, "file", rel)
			result.Missing = append(result.Missing, rel)

			continue
		}

		if err := c.CopyFile(src, c.JoinPath(string(root), native)); err != nil {
			return result, fmt.Errorf("restore %s: %w", rel, err)
		}

		result.FilesRestored++
	}

	slog.Info("checkpoint restored", "id", cp.ID, "restored", result.FilesRestored, "total", result.TotalFiles)

	return result, nil
}

// List returns every checkpoint, newest first.
func (c *checkpointManager) List(_ context.Context, root m.Path) ([]m.Checkpoint, error) {
	records, err := c.Load(c.dir(root))
	if err != nil {
		return nil, fmt.Errorf("load checkpoints: %w", err)
	}

	sortNewestFirst(records)

	return records, nil
}

// Get returns the checkpoint with the given id.
func (c *checkpointManager) Get(_ context.Context, root m.Path, id string) (m.Checkpoint, error) {
	records, err := c.Load(c.dir(root))
	if err != nil {
		return m.Checkpoint{}, fmt.Errorf("load checkpoints: %w", err)
	}

	idx := indexOf(records, id)
	if idx < 0 {
		return m.Checkpoint{}, fmt.Errorf("%w: %s", ErrCheckpointNotFound, id)
	}

	return records[idx], nil
}

// Delete removes the snapshot directory first and the metadata record last,
// so an interrupted delete leaves an orphaned directory rather than a record
// pointing at nothing.
func (c *checkpointManager) Delete(_ context.Context, root m.Path, id string) error {
	if !validID(id) {
		return fmt.Errorf("%w: %s", ErrCheckpointNotFound, id)
	}

	dir := c.dir(root)

	records, err := c.Load(dir)
	if err != nil {
		return fmt.Errorf("load checkpoints: %w", err)
	}

	storage := c.JoinPath(string(dir), id)

	_, statErr := c.FileInfo(storage)
	hadStorage := statErr == nil

	if hadStorage {
		if err := c.RemoveAll(storage); err != nil {
			return fmt.Errorf("remove checkpoint %s: %w", id, err)
		}
	}

	idx := indexOf(records, id)
	if idx < 0 {
		if hadStorage {
			slog.Info("removed orphaned checkpoint directory", "id", id)
			return nil
		}

		return fmt.Errorf("%w: %s", ErrCheckpointNotFound, id)
	}

	if err := c.Save(dir, slices.Delete(records, idx, idx+1)); err != nil {
		return fmt.Errorf("save checkpoints: %w", err)
	}

	slog.Info("checkpoint deleted", "id", id)

	return nil
}

// Clean keeps the newest retention checkpoints and deletes the rest. Storage
// removal is best effort per checkpoint; the kept set is always persisted.
func (c *checkpointManager) Clean(_ context.Context, root m.Path, retention int) (int, error) {
	if retention < 0 {
		return 0, fmt.Errorf("retention must not be negative, got %d", retention)
	}

	dir := c.dir(root)

	records, err := c.Load(dir)
	if err != nil {
		return 0, fmt.Errorf("load checkpoints: %w", err)
	}

	if len(records) <= retention {
		return 0, nil
	}

	sortNewestFirst(records)

	keep, drop := records[:retention], records[retention:]

	for _, cp := range drop {
		if err := c.RemoveAll(c.JoinPath(string(dir), cp.ID)); err != nil {
			slog.Warn("failed to remove old checkpoint", "id", cp.ID, "error", err)
			continue
		}

		slog.Debug("removed old checkpoint", "id", cp.ID)
	}

	if err := c.Save(dir, keep); err != nil {
		return 0, fmt.Errorf("save checkpoints: %w", err)
	}

	return len(drop), nil
}

func sortNewestFirst(records []m.Checkpoint) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp > records[j].Timestamp
		}

		return records[i].ID > records[j].ID
	})
}

func indexOf(records []m.Checkpoint, id string) int {
	return slices.IndexFunc(records, func(cp m.Checkpoint) bool {
		return cp.ID == id
	})
}

// validID rejects ids that would escape the checkpoint directory.
func validID(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, `/\`)
}
