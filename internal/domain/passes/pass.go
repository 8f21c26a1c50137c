// Package passes holds the removal steps applied to a source file: the
// structural comment and call pruners that work on a parsed tree, and the
// text-level emoji and fallback comment pruners.
package passes

import (
	"cleanup.dev/pkg/cleanup/internal/syntax"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

// Report is what a structural pass did to a tree.
type Report struct {
	Removed int
	Flagged []m.CallSite
}

// Pass is one structural removal step. Passes only record edits on the tree;
// nothing is rendered until every pass has run.
type Pass interface {
	Name() string
	Apply(tree *syntax.Tree, policy m.RemovalPolicy) Report
}

// Structural returns the tree passes in the order they must run.
func Structural() []Pass {
	return []Pass{CommentPruner{}, CallPruner{}}
}
