package model

// CommentKind distinguishes line comments from block comments.
type CommentKind string

const (
	// CommentLine is a `// ...` comment.
	CommentLine CommentKind = "line"
	// CommentBlock is a `/* ... */` comment.
	CommentBlock CommentKind = "block"
)

// CommentRecord is one comment extracted at parse time.
type CommentRecord struct {
	Kind   CommentKind
	Text   string // value without the comment delimiters
	Start  uint   // byte offset of the first delimiter
	End    uint   // byte offset just past the last delimiter
	Line   int    // 1-based
	Column int    // 1-based
}
