package adapter

import (
	"context"

	"cleanup.dev/pkg/cleanup/internal/syntax"
)

// SourceParser turns JavaScript/TypeScript text into a tree the passes can
// edit, or reports why the file has to be handled as plain text.
type SourceParser interface {
	// Analyze returns syntax.Parsed or syntax.Degraded. Only failures that
	// are not about the source itself (e.g. cancellation) are returned as
	// errors.
	Analyze(ctx context.Context, path string, src []byte) (syntax.Outcome, error)
}

// LocalSourceParser provides a concrete SourceParser backed by tree-sitter.
type LocalSourceParser struct{}

// NewLocalSourceParser constructs a LocalSourceParser.
func NewLocalSourceParser() *LocalSourceParser {
	return &LocalSourceParser{}
}

// Analyze parses src with the grammars matching path.
func (p *LocalSourceParser) Analyze(ctx context.Context, path string, src []byte) (syntax.Outcome, error) {
	return syntax.Analyze(ctx, path, src)
}
