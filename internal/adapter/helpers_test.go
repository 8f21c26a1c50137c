package adapter

import (
	"os"
	"path/filepath"
	"testing"
)

func examplePath(t *testing.T, name string) string {
	t.Helper()

	abs, err := filepath.Abs(filepath.Join("..", "..", "examples", name))
	if err != nil {
		t.Fatalf("failed to resolve example %s: %v", name, err)
	}

	return abs
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	return content
}
