package model

import "time"

// ConsoleSnapshot records which console calls a run was asked to remove.
type ConsoleSnapshot struct {
	Remove ConsoleSelection `json:"remove" yaml:"remove"`
}

// OptionsSnapshot is the subset of run options stored with a checkpoint.
type OptionsSnapshot struct {
	Comments bool            `json:"comments" yaml:"comments"`
	Console  ConsoleSnapshot `json:"console" yaml:"console"`
	Emojis   bool            `json:"emojis" yaml:"emojis"`
}

// SnapshotOf captures the checkpoint-relevant part of a policy.
func SnapshotOf(policy RemovalPolicy) OptionsSnapshot {
	remove := policy.Console
	if remove.Mode == "" {
		remove.Mode = ConsoleNone
	}

	return OptionsSnapshot{
		Comments: policy.Comments,
		Console:  ConsoleSnapshot{Remove: remove},
		Emojis:   policy.Emojis,
	}
}

// Checkpoint is one metadata record of the checkpoint store.
type Checkpoint struct {
	ID         string          `json:"id" yaml:"id"`
	Timestamp  int64           `json:"timestamp" yaml:"timestamp"` // unix milliseconds
	Date       string          `json:"date" yaml:"date"`
	FilesCount int             `json:"filesCount" yaml:"filesCount"`
	Files      []string        `json:"files" yaml:"files"` // relative to the project root
	Options    OptionsSnapshot `json:"options" yaml:"options"`
}

// CreatedAt converts the stored timestamp.
func (c Checkpoint) CreatedAt() time.Time {
	return time.UnixMilli(c.Timestamp)
}

// RestoreResult reports how much of a checkpoint was copied back.
type RestoreResult struct {
	CheckpointID  string
	FilesRestored int
	TotalFiles    int
	Missing       []string
}

// Partial reports whether some snapshot files were missing.
func (r RestoreResult) Partial() bool {
	return r.FilesRestored != r.TotalFiles
}
