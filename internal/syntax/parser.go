package syntax

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ParseError is returned when no grammar produced an error-free tree.
type ParseError struct {
	Path    string
	Grammar string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}

	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
}

// Outcome is either Parsed or Degraded.
type Outcome interface {
	isOutcome()
}

// Parsed carries a tree that every structural pass can work on.
type Parsed struct {
	Tree *Tree
}

// Degraded carries the raw text when structural parsing was not possible.
type Degraded struct {
	Text   []byte
	Reason error
}

func (Parsed) isOutcome()   {}
func (Degraded) isOutcome() {}

// Analyze parses src and folds a parse failure into the Degraded variant.
// Any error other than *ParseError (e.g. cancellation) is returned as is.
func Analyze(ctx context.Context, path string, src []byte) (Outcome, error) {
	tree, err := Parse(ctx, path, src)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return Degraded{Text: src, Reason: perr}, nil
		}

		return nil, err
	}

	return Parsed{Tree: tree}, nil
}

// Parse builds a Tree for src. The grammar is chosen from the file extension
// and widened to the other grammars when the primary one reports errors.
func Parse(ctx context.Context, path string, src []byte) (*Tree, error) {
	surface, ok := SurfaceFor(path)
	if !ok {
		return nil, &ParseError{Path: path, Message: "no grammar available for this file type"}
	}

	var first *ParseError

	for _, g := range candidates(surface) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tree, perr := parseWith(g, path, src)
		if perr == nil {
			tree.Surface = surface
			slog.Debug("parsed source", "path", path, "grammar", g.name, "comments", tree.Comments.Len())

			return tree, nil
		}

		slog.Debug("grammar rejected source", "path", path, "grammar", g.name, "error", perr)

		if first == nil {
			first = perr
		}
	}

	return nil, first
}

func parseWith(g grammar, path string, src []byte) (*Tree, *ParseError) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(g.language()); err != nil {
		return nil, &ParseError{Path: path, Grammar: g.name, Message: err.Error()}
	}

	ts := parser.Parse(src, nil)
	if ts == nil {
		if len(src) == 0 {
			return newTree(path, src, nil, nil), nil
		}

		return nil, &ParseError{Path: path, Grammar: g.name, Message: "parser returned no tree"}
	}

	root := ts.RootNode()
	if root == nil {
		ts.Close()
		return nil, &ParseError{Path: path, Grammar: g.name, Message: "parser returned no root node"}
	}

	if root.HasError() {
		perr := describeError(path, g.name, root, src)
		ts.Close()

		return nil, perr
	}

	return newTree(path, src, ts, root), nil
}

// describeError points at the first ERROR or MISSING node.
func describeError(path, grammarName string, root *sitter.Node, src []byte) *ParseError {
	perr := &ParseError{Path: path, Grammar: grammarName, Message: "syntax error"}

	var found *sitter.Node

	Walk(root, func(n *sitter.Node) bool {
		if found != nil {
			return false
		}

		if n.IsError() || n.IsMissing() {
			found = n
			return false
		}

		return n.HasError()
	})

	if found == nil {
		return perr
	}

	pos := found.StartPosition()
	perr.Line = int(pos.Row) + 1
	perr.Column = int(pos.Column) + 1

	if found.IsMissing() {
		perr.Message = fmt.Sprintf("missing %q", found.Kind())
	} else {
		snippet := found.Utf8Text(src)
		if len(snippet) > 20 {
			snippet = snippet[:20] + "..."
		}

		perr.Message = fmt.Sprintf("unexpected %q", snippet)
	}

	return perr
}
