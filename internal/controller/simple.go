package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

const diffContextLines = 3

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	s.mode = cfg.mode

	if s.mode == ModeDryRun {
		s.printf("Dry run: no files will be written and no checkpoint will be taken\n")
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunStart announces how many files were found.
func (s *SimpleUI) DisplayRunStart(ctx context.Context, files int, _ bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d file(s) to process\n", files)
}

// DisplayCheckpointCreated prints the id of a new checkpoint.
func (s *SimpleUI) DisplayCheckpointCreated(ctx context.Context, checkpoint m.Checkpoint) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Checkpoint created: %s (%d file(s))\n", checkpoint.ID, checkpoint.FilesCount)
}

// DisplayFileResult prints one line per file that changed, failed or needs attention.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Err != nil {
		s.printf("failed   %s: %v\n", result.Path, result.Err)
		return
	}

	if result.Outcome.Degraded {
		s.printf("warning  %s: could not be parsed, comments removed as plain text (%s)\n",
			result.Path, result.Outcome.DegradedReason)
	}

	for _, site := range result.Outcome.Flagged {
		s.printf("review   %s:%s\n", result.Path, site)
	}

	if !result.Modified {
		return
	}

	verb := "cleaned "
	if s.mode == ModeDryRun {
		verb = "would clean"
	}

	s.printf("%s %s (%s)\n", verb, result.Path, describeOutcome(result))

	if result.Original != nil {
		s.printf("%s", renderDiff(string(result.Path), result.Original, result.Outcome.Code))
	}
}

func describeOutcome(result m.FileResult) string {
	var parts []string

	if n := result.Outcome.CommentsRemoved; n > 0 {
		parts = append(parts, fmt.Sprintf("%d comment(s)", n))
	}

	if n := result.Outcome.CallsRemoved; n > 0 {
		parts = append(parts, fmt.Sprintf("%d console call(s)", n))
	}

	if n := result.Outcome.EmojisRemoved; n > 0 {
		parts = append(parts, fmt.Sprintf("%d emoji(s)", n))
	}

	parts = append(parts, fmt.Sprintf("%d bytes saved", result.SizeReduced()))

	return strings.Join(parts, ", ")
}

func renderDiff(path string, before, after []byte) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("diff unavailable: %v\n", err)
	}

	return text
}

// DisplayRunReport prints the run totals.
func (s *SimpleUI) DisplayRunReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderStatsTable(report))

	if report.CheckpointID != "" {
		s.printf("Restore with: cleanup restore %s\n", report.CheckpointID)
	}

	return nil
}

func renderStatsTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	stats := report.Stats

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	modifiedLabel := "Files modified"
	if report.DryRun {
		modifiedLabel = "Files that would change"
	}

	table.AppendBulk([][]string{
		{"Files processed", strconv.Itoa(stats.FilesProcessed)},
		{modifiedLabel, strconv.Itoa(stats.FilesModified)},
		{"Comments removed", strconv.Itoa(stats.CommentsRemoved)},
		{"Console calls removed", strconv.Itoa(stats.CallsRemoved)},
		{"Emojis removed", strconv.Itoa(stats.EmojisRemoved)},
		{"Bytes reduced", strconv.Itoa(stats.BytesReduced)},
		{"Parsed as plain text", strconv.Itoa(stats.FilesDegraded)},
		{"Failed", strconv.Itoa(stats.FilesFailed)},
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayCheckpoints prints the checkpoint list as a table.
func (s *SimpleUI) DisplayCheckpoints(ctx context.Context, checkpoints []m.Checkpoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(checkpoints) == 0 {
		s.printf("No checkpoints found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Date", "Files", "Options"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, cp := range checkpoints {
		table.Append([]string{cp.ID, cp.Date, strconv.Itoa(cp.FilesCount), describeOptions(cp.Options)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(checkpoints)), "", "", ""})
	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

func describeOptions(o m.OptionsSnapshot) string {
	var parts []string

	if o.Comments {
		parts = append(parts, "comments")
	}

	if o.Console.Remove.Mode != m.ConsoleNone && o.Console.Remove.Mode != "" {
		parts = append(parts, "console:"+o.Console.Remove.String())
	}

	if o.Emojis {
		parts = append(parts, "emojis")
	}

	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, " ")
}

// DisplayCheckpoint prints one checkpoint as YAML.
func (s *SimpleUI) DisplayCheckpoint(ctx context.Context, checkpoint m.Checkpoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := yaml.Marshal(checkpoint)
	if err != nil {
		return fmt.Errorf("render checkpoint: %w", err)
	}

	s.printf("%s", out)

	return nil
}

// DisplayRestore prints how many files were copied back.
func (s *SimpleUI) DisplayRestore(ctx context.Context, result m.RestoreResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Restored %d/%d file(s) from %s\n", result.FilesRestored, result.TotalFiles, result.CheckpointID)

	for _, missing := range result.Missing {
		s.printf("missing  %s\n", missing)
	}

	return nil
}

// DisplayDeleted confirms a deletion.
func (s *SimpleUI) DisplayDeleted(ctx context.Context, id string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Deleted checkpoint %s\n", id)
}

// SelectCheckpoint cannot prompt without a terminal.
func (s *SimpleUI) SelectCheckpoint(ctx context.Context, _ []m.Checkpoint) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%w: pass a checkpoint id (see `cleanup list`)", ErrNoSelection)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
