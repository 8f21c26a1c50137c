package model

import "fmt"

// TransformResult is what a single pass reports.
type TransformResult struct {
	Code         string
	RemovalCount int
}

// CallContext names the syntactic position of a console call left in place.
type CallContext string

const (
	CallInArgument    CallContext = "argument"
	CallInAssignment  CallContext = "assignment"
	CallInInitializer CallContext = "initializer"
	CallInReturn      CallContext = "return value"
	CallInArrowBody   CallContext = "arrow body"
	CallInCondition   CallContext = "condition"
	CallInExpression  CallContext = "expression"
)

// CallSite is a console call the call pruner refused to touch.
type CallSite struct {
	Method  string
	Line    int
	Column  int
	Context CallContext
}

// String formats the call site for warnings.
func (c CallSite) String() string {
	return fmt.Sprintf("%d:%d console.%s (%s)", c.Line, c.Column, c.Method, c.Context)
}

// TransformOutcome is the result of running every enabled pass over one file.
type TransformOutcome struct {
	Code            []byte
	CommentsRemoved int
	CallsRemoved    int
	EmojisRemoved   int
	Degraded        bool
	DegradedReason  string
	Flagged         []CallSite
}

// FileResult records what happened to one file during a run.
type FileResult struct {
	Path         Path
	Modified     bool
	OriginalSize int
	NewSize      int
	Outcome      TransformOutcome
	Original     []byte
	Err          error
}

// SizeReduced is the number of bytes saved for this file.
func (f FileResult) SizeReduced() int {
	return f.OriginalSize - f.NewSize
}

// RunStats aggregates counters across a run.
type RunStats struct {
	FilesProcessed  int
	FilesModified   int
	FilesDegraded   int
	FilesFailed     int
	CommentsRemoved int
	CallsRemoved    int
	EmojisRemoved   int
	BytesReduced    int
}

// Add folds a single file result into the totals.
func (s RunStats) Add(f FileResult) RunStats {
	if f.Err != nil {
		s.FilesFailed++
		return s
	}

	s.FilesProcessed++

	if f.Outcome.Degraded {
		s.FilesDegraded++
	}

	if !f.Modified {
		return s
	}

	s.FilesModified++
	s.CommentsRemoved += f.Outcome.CommentsRemoved
	s.CallsRemoved += f.Outcome.CallsRemoved
	s.EmojisRemoved += f.Outcome.EmojisRemoved
	s.BytesReduced += f.SizeReduced()

	return s
}

// RunReport is the full outcome of a cleanup run.
type RunReport struct {
	Stats        RunStats
	CheckpointID string
	DryRun       bool
	Files        []FileResult
}
