package domain

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

var checkpointIDPattern = regexp.MustCompile(`^checkpoint-\d+-[0-9a-z]{6}$`)

type checkpointFixture struct {
	root    string
	fs      *adapter.LocalSourceFSAdapter
	manager *checkpointManager
	clock   time.Time
}

func newCheckpointFixture(t *testing.T, files map[string]string) *checkpointFixture {
	t.Helper()

	root := t.TempDir()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	fs := adapter.NewLocalSourceFSAdapter()

	f := &checkpointFixture{
		root:  root,
		fs:    fs,
		clock: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	manager, ok := NewCheckpointManager(fs, adapter.NewLocalCheckpointStore()).(*checkpointManager)
	require.True(t, ok)

	manager.now = func() time.Time { return f.clock }
	f.manager = manager

	return f
}

func (f *checkpointFixture) discover(t *testing.T) []m.File {
	t.Helper()

	files, err := f.fs.Discover(m.Path(f.root), adapter.DiscoverOptions{})
	require.NoError(t, err)

	return files
}

func (f *checkpointFixture) create(t *testing.T) m.Checkpoint {
	t.Helper()

	cp, err := f.manager.Create(context.Background(), m.Path(f.root), f.discover(t), m.SnapshotOf(m.RemovalPolicy{Comments: true}))
	require.NoError(t, err)

	return cp
}

func (f *checkpointFixture) storage(id string) string {
	return filepath.Join(f.root, CheckpointDir, id)
}

func (f *checkpointFixture) read(t *testing.T, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(rel)))
	require.NoError(t, err)

	return string(data)
}

func (f *checkpointFixture) write(t *testing.T, rel, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(f.root, filepath.FromSlash(rel)), []byte(content), 0o644))
}

func TestCheckpointManager_CreateAndRestore(t *testing.T) {
	original := map[string]string{
		"src/app.js":   "// hello\nconsole.log(1);\n",
		"src/lib/x.ts": "export const x = 1; /* c */\n",
		"index.mjs":    "import './src/app.js';\n",
	}

	f := newCheckpointFixture(t, original)
	cp := f.create(t)

	assert.Regexp(t, checkpointIDPattern, cp.ID)
	assert.Equal(t, 3, cp.FilesCount)
	assert.ElementsMatch(t, []string{"index.mjs", "src/app.js", "src/lib/x.ts"}, cp.Files)
	assert.Equal(t, f.clock.UnixMilli(), cp.Timestamp)
	assert.True(t, cp.Options.Comments)

	for rel := range original {
		f.write(t, rel, "rewritten")
	}

	result, err := f.manager.Restore(context.Background(), m.Path(f.root), cp.ID)
	require.NoError(t, err)

	assert.Equal(t, cp.ID, result.CheckpointID)
	assert.Equal(t, 3, result.FilesRestored)
	assert.Equal(t, 3, result.TotalFiles)
	assert.False(t, result.Partial())

	for rel, content := range original {
		assert.Equal(t, content, f.read(t, rel), rel)
	}
}

func TestCheckpointManager_MetadataFormat(t *testing.T) {
	f := newCheckpointFixture(t, map[string]string{"a/b.js": "x"})
	cp := f.create(t)

	data, err := os.ReadFile(filepath.Join(f.root, CheckpointDir, adapter.MetadataFile))
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	for _, key := range []string{"id", "timestamp", "date", "filesCount", "files", "options"} {
		assert.Contains(t, raw[0], key)
	}

	assert.Equal(t, cp.ID, raw[0]["id"])
	assert.Equal(t, []any{"a/b.js"}, raw[0]["files"])

	_, err = os.Stat(filepath.Join(f.storage(cp.ID), "a", "b.js"))
	assert.NoError(t, err)
}

func TestCheckpointManager_TimestampsIncrease(t *testing.T) {
	f := newCheckpointFixture(t, map[string]string{"a.js": "x"})

	first := f.create(t)
	second := f.create(t)

	assert.Equal(t, first.Timestamp+1, second.Timestamp)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := f.manager.List(context.Background(), m.Path(f.root))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestCheckpointManager_CreateFailureLeavesNoTrace(t *testing.T) {
	f := newCheckpointFixture(t, map[string]string{"a.js": "x"})

	files := append(f.discover(t), m.File{
		FullPath:  m.Path(filepath.Join(f.root, "missing.js")),
		ShortPath: "missing.js",
	})

	_, err := f.manager.Create(context.Background(), m.Path(f.root), files, m.OptionsSnapshot{})
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(f.root, CheckpointDir, adapter.MetadataFile))
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(filepath.Join(f.root, CheckpointDir))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheckpointManager_CreateRejectsFilesOutsideRoot(t *testing.T) {
	f := newCheckpointFixture(t, map[string]string{"a.js": "x"})

	files := []m.File{{FullPath: "/elsewhere/a.js", ShortPath: "../elsewhere/a.js"}}

	_, err := f.manager.Create(context.Background(), m.Path(f.root), files, m.OptionsSnapshot{})

	assert.ErrorContains(t, err, "outside the project root")
}

func TestCheckpointManager_SuffixFailure(t *testing.T) {
	f := newCheckpointFixture(t, map[string]string{"a.js": "x"})
	f.manager.suffix = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := f.manager.Create(context.Background(), m.Path(f.root), f.discover(t), m.OptionsSnapshot{})

	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestCheckpointManager_Retention(t *testing.T) {
	const retention = 2

	f := newCheckpointFixture(t, map[string]string{"a.js": "x"})

	var created []m.Checkpoint

	for i := 0; i < retention+3; i++ {
		f.clock = f.clock.Add(time.Minute)
		created = append(created, f.create(t))
	}

	removed, err := f.manager.Clean(context.Background(), m.Path(f.root), retention)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	list, err := f.manager.List(context.Background(), m.Path(f.root))
	require.NoError(t, err)
	require.Len(t, list, retention)

	assert.Equal(t, created[4].ID, list[0].ID)
	assert.Equal(t, created[3].ID, list[1].ID)

	for _, cp := range created[:3] {
		_, err := os.Stat(f.storage(cp.ID))
		assert.True(t, os.IsNotExist(err), cp.ID)
	}

	removed, err = f.manager.Clean(context.Background(), m.Path(f.root), retention)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestCheckpointManager_CleanRejectsNegativeRetention(t *testing.T) {
	f := newCheckpointFixture(t, nil)

	_, err := f.manager.Clean(context.Background(), m.Path(f.root), -1)

	assert.Error(t, err)
}

func TestCheckpointManager_RestoreErrors(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		f := newCheckpointFixture(t, map[string]string{"a.js": "x"})

		_, err := f.manager.Restore(context.Background(), m.Path(f.root), "checkpoint-1-nope00")

		assert.ErrorIs(t, err, ErrCheckpointNotFound)
	})

	t.Run("storage missing", func(t *testing.T) {
		f := newCheckpointFixture(t, map[string]string{"a.js": "x"})
		cp := f.create(t)

		require.NoError(t, os.RemoveAll(f.storage(cp.ID)))

		_, err := f.manager.Restore(context.Background(), m.Path(f.root), cp.ID)

		assert.ErrorIs(t, err, ErrCheckpointStorageMissing)
	})

	t.Run("entry outside root", func(t *testing.T) {
		f := newCheckpointFixture(t, map[string]string{"a.js": "A"})
		cp := f.create(t)
		dir := f.manager.dir(m.Path(f.root))

		records, err := f.manager.Load(dir)
		require.NoError(t, err)
		require.Len(t, records, 1)

		records[0].Files = append(records[0].Files, "../escaped.js")
		require.NoError(t, f.manager.Save(dir, records))
		require.NoError(t, os.WriteFile(filepath.Join(f.root, CheckpointDir, "escaped.js"), []byte("evil"), 0o644))

		f.write(t, "a.js", "changed")

		_, err = f.manager.Restore(context.Background(), m.Path(f.root), cp.ID)
		assert.ErrorContains(t, err, "outside the project root")

		_, statErr := os.Stat(filepath.Join(f.root, "..", "escaped.js"))
		assert.True(t, os.IsNotExist(statErr))
		assert.Equal(t, "changed", f.read(t, "a.js"))
	})
}

func TestInsideRoot(t *testing.T) {
	for _, rel := range []string{"a.js", "src/a.js", "a/../b.js", "..foo/a.js"} {
		assert.True(t, insideRoot(filepath.FromSlash(rel)), rel)
	}

	for _, rel := range []string{"", "..", "../a.js", "src/../../a.js", "/etc/passwd"} {
		assert.False(t, insideRoot(filepath.FromSlash(rel)), rel)
	}
}

func TestCheckpointManager_PartialRestore(t *testing.T) {
	f := newCheckpointFixture(t, map[string]string{"a.js": "A", "b.ts": "B"})
	cp := f.create(t)

	require.NoError(t, os.Remove(filepath.Join(f.storage(cp.ID), "b.ts")))

	f.write(t, "a.js", "changed")
	f.write(t, "b.ts", "changed")

	result, err := f.manager.Restore(context.Background(), m.Path(f.root), cp.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesRestored)
	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, []string{"b.ts"}, result.Missing)
	assert.True(t, result.Partial())

	assert.Equal(t, "A", f.read(t, "a.js"))
	assert.Equal(t, "changed", f.read(t, "b.ts"))
}

func TestCheckpointManager_RestoreRecreatesDeletedFiles(t *testing.T) {
	f := newCheckpointFixture(t, map[string]string{"nested/dir/a.js": "A"})
	cp := f.create(t)

	require.NoError(t, os.RemoveAll(filepath.Join(f.root, "nested")))

	_, err := f.manager.Restore(context.Background(), m.Path(f.root), cp.ID)
	require.NoError(t, err)

	assert.Equal(t, "A", f.read(t, "nested/dir/a.js"))
}

func TestCheckpointManager_Get(t *testing.T) {
	f := newCheckpointFixture(t, map[string]string{"a.js": "x"})
	cp := f.create(t)

	got, err := f.manager.Get(context.Background(), m.Path(f.root), cp.ID)
	require.NoError(t, err)
	assert.Equal(t, cp, got)

	_, err = f.manager.Get(context.Background(), m.Path(f.root), "checkpoint-0-000000")
	assert.ErrorIs(t, err, ErrCheckpointNotFound)
}

func TestCheckpointManager_Delete(t *testing.T) {
	t.Run("record and storage", func(t *testing.T) {
		f := newCheckpointFixture(t, map[string]string{"a.js": "x"})
		cp := f.create(t)

		require.NoError(t, f.manager.Delete(context.Background(), m.Path(f.root), cp.ID))

		list, err := f.manager.List(context.Background(), m.Path(f.root))
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = os.Stat(f.storage(cp.ID))
		assert.True(t, os.IsNotExist(err))

		err = f.manager.Delete(context.Background(), m.Path(f.root), cp.ID)
		assert.ErrorIs(t, err, ErrCheckpointNotFound)
	})

	t.Run("orphaned directory", func(t *testing.T) {
		f := newCheckpointFixture(t, nil)

		orphan := f.storage("checkpoint-9-orphan")
		require.NoError(t, os.MkdirAll(orphan, 0o755))

		require.NoError(t, f.manager.Delete(context.Background(), m.Path(f.root), "checkpoint-9-orphan"))

		_, err := os.Stat(orphan)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("record without storage", func(t *testing.T) {
		f := newCheckpointFixture(t, map[string]string{"a.js": "x"})
		cp := f.create(t)

		require.NoError(t, os.RemoveAll(f.storage(cp.ID)))
		require.NoError(t, f.manager.Delete(context.Background(), m.Path(f.root), cp.ID))

		list, err := f.manager.List(context.Background(), m.Path(f.root))
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("path traversal", func(t *testing.T) {
		f := newCheckpointFixture(t, nil)

		for _, id := range []string{"", "..", "../x", `a\b`} {
			err := f.manager.Delete(context.Background(), m.Path(f.root), id)
			assert.ErrorIs(t, err, ErrCheckpointNotFound, id)
		}
	})
}
