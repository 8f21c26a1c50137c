// Package syntax turns JavaScript/TypeScript source into a tree-sitter backed
// SourceTree, tracks structural edits against it and renders it back to text.
package syntax

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Surface is the set of language extensions a file is expected to use.
type Surface uint8

const (
	// SurfaceJSX enables JSX elements.
	SurfaceJSX Surface = 1 << iota
	// SurfaceTyped enables type annotations.
	SurfaceTyped
	// SurfaceDecorators enables decorators.
	SurfaceDecorators
)

// Has reports whether every flag in f is set.
func (s Surface) Has(f Surface) bool {
	return s&f == f
}

// String lists the enabled flags.
func (s Surface) String() string {
	var parts []string

	if s.Has(SurfaceJSX) {
		parts = append(parts, "jsx")
	}

	if s.Has(SurfaceTyped) {
		parts = append(parts, "typed")
	}

	if s.Has(SurfaceDecorators) {
		parts = append(parts, "decorators")
	}

	if len(parts) == 0 {
		return "plain"
	}

	return strings.Join(parts, "+")
}

var surfaceByExt = map[string]Surface{
	".js":  SurfaceJSX | SurfaceDecorators,
	".mjs": SurfaceJSX | SurfaceDecorators,
	".cjs": SurfaceJSX | SurfaceDecorators,
	".jsx": SurfaceJSX | SurfaceDecorators,
	".ts":  SurfaceTyped | SurfaceDecorators,
	".mts": SurfaceTyped | SurfaceDecorators,
	".cts": SurfaceTyped | SurfaceDecorators,
	".tsx": SurfaceTyped | SurfaceJSX | SurfaceDecorators,
}

// SurfaceFor returns the language surface for a file name. The boolean is
// false when no grammar covers the extension.
func SurfaceFor(path string) (Surface, bool) {
	s, ok := surfaceByExt[strings.ToLower(filepath.Ext(path))]
	return s, ok
}

type grammar struct {
	name     string
	language func() *sitter.Language
}

var (
	languagesOnce sync.Once
	jsLanguage    *sitter.Language
	tsLanguage    *sitter.Language
	tsxLanguage   *sitter.Language
)

func initLanguages() {
	languagesOnce.Do(func() {
		jsLanguage = sitter.NewLanguage(javascript.Language())
		tsLanguage = sitter.NewLanguage(typescript.LanguageTypescript())
		tsxLanguage = sitter.NewLanguage(typescript.LanguageTSX())
	})
}

var (
	grammarJS  = grammar{name: "javascript", language: func() *sitter.Language { initLanguages(); return jsLanguage }}
	grammarTS  = grammar{name: "typescript", language: func() *sitter.Language { initLanguages(); return tsLanguage }}
	grammarTSX = grammar{name: "tsx", language: func() *sitter.Language { initLanguages(); return tsxLanguage }}
)

// candidates orders the grammars to try for a surface, most specific first.
// Later entries widen the accepted syntax so that e.g. a .js file carrying
// type annotations still parses.
func candidates(s Surface) []grammar {
	switch {
	case s.Has(SurfaceTyped | SurfaceJSX):
		return []grammar{grammarTSX, grammarTS}
	case s.Has(SurfaceTyped):
		return []grammar{grammarTS, grammarTSX}
	default:
		return []grammar{grammarJS, grammarTSX, grammarTS}
	}
}
