package syntax

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Tree is a parsed source file plus the pending edits recorded by the passes.
// A Tree is not safe for concurrent use.
type Tree struct {
	Path     string
	Source   []byte
	Surface  Surface
	Comments *CommentTable

	ts    *sitter.Tree
	root  *sitter.Node
	edits []edit
	gone  map[uintptr]struct{}
}

type edit struct {
	start uint
	end   uint
	text  string
}

func newTree(path string, src []byte, ts *sitter.Tree, root *sitter.Node) *Tree {
	t := &Tree{
		Path:   path,
		Source: src,
		ts:     ts,
		root:   root,
		gone:   make(map[uintptr]struct{}),
	}
	t.Comments = buildCommentTable(root, src)

	return t
}

// Root returns the program node, nil for an empty file.
func (t *Tree) Root() *sitter.Node {
	return t.root
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.ts != nil {
		t.ts.Close()
		t.ts = nil
	}
}

// Text returns the source text of n.
func (t *Tree) Text(n *sitter.Node) string {
	return string(t.Source[n.StartByte():n.EndByte()])
}

// Position returns the 1-based line and column of n.
func (t *Tree) Position(n *sitter.Node) (line, column int) {
	p := n.StartPosition()
	return int(p.Row) + 1, int(p.Column) + 1
}

// Delete removes n from the rendered output.
func (t *Tree) Delete(n *sitter.Node) {
	t.Replace(n, "")
}

// Replace substitutes text for n in the rendered output.
func (t *Tree) Replace(n *sitter.Node, text string) {
	t.edits = append(t.edits, edit{start: n.StartByte(), end: n.EndByte(), text: text})
	t.gone[n.Id()] = struct{}{}
}

// Removed reports whether n was deleted or replaced.
func (t *Tree) Removed(n *sitter.Node) bool {
	_, ok := t.gone[n.Id()]
	return ok
}

// Edits reports how many structural edits are pending.
func (t *Tree) Edits() int {
	return len(t.edits)
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the children of the visited node.
func Walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil {
		return
	}

	if !fn(n) {
		return
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		Walk(n.Child(i), fn)
	}
}

// IsComment reports whether n is a comment node.
func IsComment(n *sitter.Node) bool {
	return n != nil && n.Kind() == "comment"
}
