package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

// MetadataFile is the name of the checkpoint index inside the checkpoint directory.
const MetadataFile = "metadata.json"

// ErrCorruptMetadata is returned when the checkpoint index cannot be decoded.
var ErrCorruptMetadata = errors.New("checkpoint metadata is corrupt")

// CheckpointStore persists the ordered list of checkpoint records.
type CheckpointStore interface {
	// Load returns the records stored under dir. A missing index is an empty list.
	Load(dir m.Path) ([]m.Checkpoint, error)
	// Save replaces the index under dir with checkpoints.
	Save(dir m.Path, checkpoints []m.Checkpoint) error
}

// LocalCheckpointStore keeps the index as a JSON array on disk.
type LocalCheckpointStore struct{}

// NewLocalCheckpointStore returns the disk-backed CheckpointStore.
func NewLocalCheckpointStore() *LocalCheckpointStore {
	return &LocalCheckpointStore{}
}

// Load reads dir/metadata.json.
func (s *LocalCheckpointStore) Load(dir m.Path) ([]m.Checkpoint, error) {
	path := filepath.Join(string(dir), MetadataFile)

	// #nosec G304 - path is inside the project's checkpoint directory
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []m.Checkpoint{}, nil
		}

		return nil, err
	}

	var checkpoints []m.Checkpoint
	if err := json.Unmarshal(raw, &checkpoints); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptMetadata, path, err)
	}

	if checkpoints == nil {
		checkpoints = []m.Checkpoint{}
	}

	return checkpoints, nil
}

// Save writes the index to a temporary file and renames it into place so a
// crash never leaves a half written document.
func (s *LocalCheckpointStore) Save(dir m.Path, checkpoints []m.Checkpoint) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return err
	}

	if checkpoints == nil {
		checkpoints = []m.Checkpoint{}
	}

	raw, err := json.MarshalIndent(checkpoints, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(string(dir), MetadataFile)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
