package passes

import (
	"regexp"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

// String literals are matched first so comment markers inside them survive.
var commentOrString = regexp.MustCompile(
	`("(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'|` + "`" + `(?:\\.|[^` + "`" + `\\])*` + "`" + `)` +
		`|(//[^\r\n]*|/\*[\s\S]*?\*/)`,
)

// PruneCommentsText is the text-level comment remover used when a file
// cannot be parsed. It has no notion of license or doc comments and may
// misread regular expression literals.
func PruneCommentsText(text []byte) ([]byte, m.TransformResult) {
	count := 0

	out := commentOrString.ReplaceAllFunc(text, func(match []byte) []byte {
		switch match[0] {
		case '"', '\'', '`':
			return match
		}

		count++

		return nil
	})

	return out, m.TransformResult{Code: string(out), RemovalCount: count}
}
