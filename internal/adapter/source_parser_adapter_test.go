package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"cleanup.dev/pkg/cleanup/internal/syntax"
)

func TestLocalSourceParser_Analyze(t *testing.T) {
	parser := NewLocalSourceParser()

	exampleFile := filepath.Join(examplePath(t, "basic"), "app.js")
	content := readFileBytes(t, exampleFile)

	outcome, err := parser.Analyze(context.Background(), exampleFile, content)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	parsed, ok := outcome.(syntax.Parsed)
	if !ok {
		t.Fatalf("Analyze() = %T, want syntax.Parsed", outcome)
	}
	defer parsed.Tree.Close()

	if parsed.Tree.Comments.Len() == 0 {
		t.Fatalf("Analyze() found no comments in %s", exampleFile)
	}
}

func TestLocalSourceParser_Analyze_InvalidSource(t *testing.T) {
	parser := NewLocalSourceParser()

	outcome, err := parser.Analyze(context.Background(), "broken.js", []byte("function (\n"))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if _, ok := outcome.(syntax.Degraded); !ok {
		t.Fatalf("Analyze() = %T, want syntax.Degraded for invalid source", outcome)
	}
}

func TestLocalSourceParser_Analyze_UnsupportedFile(t *testing.T) {
	parser := NewLocalSourceParser()

	exampleFile := filepath.Join(examplePath(t, "component"), "Widget.vue")

	outcome, err := parser.Analyze(context.Background(), exampleFile, readFileBytes(t, exampleFile))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if _, ok := outcome.(syntax.Degraded); !ok {
		t.Fatalf("Analyze() = %T, want syntax.Degraded for .vue", outcome)
	}
}

func TestLocalSourceParser_Analyze_ContextCancellation(t *testing.T) {
	parser := NewLocalSourceParser()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	if _, err := parser.Analyze(ctx, "example.js", []byte("run();")); err == nil {
		t.Fatalf("Analyze() expected error due to context cancellation")
	}
}
