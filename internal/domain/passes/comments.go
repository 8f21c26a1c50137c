package passes

import (
	"strings"

	"cleanup.dev/pkg/cleanup/internal/syntax"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

var licenseMarkers = []string{"@license", "copyright", "(c)", "license"}

// CommentPruner drops comments that the policy does not preserve.
type CommentPruner struct{}

// Name implements Pass.
func (CommentPruner) Name() string { return "comments" }

// Apply drops every comment that is neither a preserved license header nor a
// preserved doc block. The count is the number of views each comment was
// removed from.
func (CommentPruner) Apply(tree *syntax.Tree, policy m.RemovalPolicy) Report {
	if !policy.Comments {
		return Report{}
	}

	var r Report

	for _, i := range tree.Comments.Live() {
		if KeepComment(tree.Comments.Record(i), policy) {
			continue
		}

		r.Removed += tree.Comments.Drop(i)
	}

	return r
}

// KeepComment applies the preservation rules in order: license first, then
// doc blocks.
func KeepComment(c m.CommentRecord, policy m.RemovalPolicy) bool {
	if policy.PreserveLicense && IsLicense(c.Text) {
		return true
	}

	if policy.PreserveJSDoc && IsDocBlock(c) {
		return true
	}

	return false
}

// IsLicense reports whether text looks like a license or copyright notice.
func IsLicense(text string) bool {
	lower := strings.ToLower(text)

	for _, marker := range licenseMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

// IsDocBlock reports whether c is a `/** ... */` comment.
func IsDocBlock(c m.CommentRecord) bool {
	return c.Kind == m.CommentBlock && strings.HasPrefix(c.Text, "*")
}
