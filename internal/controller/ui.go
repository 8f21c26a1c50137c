// Package controller provides output adapters for displaying cleanup results.
package controller

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

// ErrNoSelection is returned when no checkpoint was chosen.
var ErrNoSelection = errors.New("no checkpoint selected")

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeClean StartMode = iota
	ModeDryRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCleanMode sets the UI to report files that are rewritten.
func WithCleanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeClean
	}
}

// WithDryRunMode sets the UI to report files that would be rewritten.
func WithDryRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDryRun
	}
}

// UI defines the interface for reporting runs and checkpoints.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayRunStart(ctx context.Context, files int, dryRun bool)
	DisplayCheckpointCreated(ctx context.Context, checkpoint m.Checkpoint)
	DisplayFileResult(ctx context.Context, result m.FileResult)
	DisplayRunReport(ctx context.Context, report m.RunReport) error
	DisplayCheckpoints(ctx context.Context, checkpoints []m.Checkpoint) error
	DisplayCheckpoint(ctx context.Context, checkpoint m.Checkpoint) error
	DisplayRestore(ctx context.Context, result m.RestoreResult) error
	DisplayDeleted(ctx context.Context, id string)
	// SelectCheckpoint asks the user to pick one of checkpoints and returns its id.
	SelectCheckpoint(ctx context.Context, checkpoints []m.Checkpoint) (string, error)
}

// NewUI returns the interactive UI on a terminal and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
