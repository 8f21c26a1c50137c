package syntax

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

// CommentTable is the single source of truth for the comments of a file.
// Every comment has one record; node-local leading and trailing lists hold
// indices into it, so dropping a record removes the comment from every view
// at once.
type CommentTable struct {
	records  []m.CommentRecord
	removed  []bool
	views    []int
	leading  map[uintptr][]int
	trailing map[uintptr][]int
}

func buildCommentTable(root *sitter.Node, src []byte) *CommentTable {
	c := &CommentTable{
		leading:  make(map[uintptr][]int),
		trailing: make(map[uintptr][]int),
	}

	if root != nil {
		c.collect(root, src)
	}

	return c
}

func (c *CommentTable) collect(n *sitter.Node, src []byte) {
	count := n.ChildCount()

	for i := uint(0); i < count; i++ {
		child := n.Child(i)
		if !IsComment(child) {
			c.collect(child, src)
			continue
		}

		idx := c.add(child, src)

		if prev := siblingBefore(n, i); prev != nil {
			c.trailing[prev.Id()] = append(c.trailing[prev.Id()], idx)
			c.views[idx]++
		}

		if next := siblingAfter(n, i, count); next != nil {
			c.leading[next.Id()] = append(c.leading[next.Id()], idx)
			c.views[idx]++
		}
	}
}

func (c *CommentTable) add(n *sitter.Node, src []byte) int {
	raw := n.Utf8Text(src)
	rec := m.CommentRecord{
		Start: n.StartByte(),
		End:   n.EndByte(),
	}

	pos := n.StartPosition()
	rec.Line = int(pos.Row) + 1
	rec.Column = int(pos.Column) + 1

	switch {
	case strings.HasPrefix(raw, "/*"):
		rec.Kind = m.CommentBlock
		rec.Text = strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
	case strings.HasPrefix(raw, "//"):
		rec.Kind = m.CommentLine
		rec.Text = strings.TrimPrefix(raw, "//")
	default:
		rec.Kind = m.CommentLine
		rec.Text = raw
	}

	c.records = append(c.records, rec)
	c.removed = append(c.removed, false)
	// the global list is always a view
	c.views = append(c.views, 1)

	return len(c.records) - 1
}

func siblingBefore(parent *sitter.Node, i uint) *sitter.Node {
	for j := int(i) - 1; j >= 0; j-- {
		s := parent.Child(uint(j))
		if s.IsNamed() && !IsComment(s) {
			return s
		}
	}

	return nil
}

func siblingAfter(parent *sitter.Node, i, count uint) *sitter.Node {
	for j := i + 1; j < count; j++ {
		s := parent.Child(j)
		if s.IsNamed() && !IsComment(s) {
			return s
		}
	}

	return nil
}

// Len is the number of comments found in the file, removed or not.
func (c *CommentTable) Len() int {
	return len(c.records)
}

// Record returns the i-th comment in document order.
func (c *CommentTable) Record(i int) m.CommentRecord {
	return c.records[i]
}

// Removed reports whether record i was dropped.
func (c *CommentTable) Removed(i int) bool {
	return c.removed[i]
}

// Live returns the indices of comments that have not been dropped.
func (c *CommentTable) Live() []int {
	out := make([]int, 0, len(c.records))

	for i := range c.records {
		if !c.removed[i] {
			out = append(out, i)
		}
	}

	return out
}

// Leading returns the live comments attached before n.
func (c *CommentTable) Leading(n *sitter.Node) []m.CommentRecord {
	return c.liveRecords(c.leading[n.Id()])
}

// Trailing returns the live comments attached after n.
func (c *CommentTable) Trailing(n *sitter.Node) []m.CommentRecord {
	return c.liveRecords(c.trailing[n.Id()])
}

func (c *CommentTable) liveRecords(idx []int) []m.CommentRecord {
	var out []m.CommentRecord

	for _, i := range idx {
		if !c.removed[i] {
			out = append(out, c.records[i])
		}
	}

	return out
}

// Drop removes record i from every view and returns how many views it was
// removed from. Dropping an already removed record returns 0.
func (c *CommentTable) Drop(i int) int {
	if c.removed[i] {
		return 0
	}

	c.removed[i] = true

	return c.views[i]
}
