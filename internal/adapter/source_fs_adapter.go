// Package adapter contains UI and infrastructure adapters for the cleanup CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	gitignore "github.com/sabhiram/go-gitignore"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

// DefaultIgnore lists the directories never scanned for sources, at any depth.
var DefaultIgnore = []string{
	"node_modules",
	"dist",
	"build",
	".git",
	".cleanup-checkpoints",
	"coverage",
	".next",
	"out",
}

// DefaultExtensions lists the file types processed when none are configured.
var DefaultExtensions = []string{"js", "jsx", "ts", "tsx", "vue", "mjs", "cjs"}

// DiscoverOptions narrows which files Discover returns.
type DiscoverOptions struct {
	Extensions []string // without the leading dot
	Ignore     []string // gitignore-style patterns, added to DefaultIgnore
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and rewriting user projects. It hides direct `os`
// access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Discover walks root and returns the source files to process, sorted by
	// their path relative to root.
	Discover(root m.Path, opts DiscoverOptions) ([]m.File, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the contents of path, keeping its permissions when
	// the file already exists.
	WriteFile(path m.Path, content []byte) error

	// CopyFile copies src to dst, creating the parent directories of dst.
	CopyFile(src, dst m.Path) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory and its parents.
	MkdirAll(path m.Path) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Discover walks root, skipping ignored paths, unknown extensions and binary
// content.
func (a *LocalSourceFSAdapter) Discover(root m.Path, opts DiscoverOptions) ([]m.File, error) {
	rootStr := string(root)

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return a.single(rootStr)
	}

	ignorer := gitignore.CompileIgnoreLines(append(slices.Clone(DefaultIgnore), opts.Ignore...)...)
	extensions := normalizeExtensions(opts.Extensions)

	var files []m.File

	err = filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(rootStr, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		slashed := filepath.ToSlash(rel)

		if d.IsDir() {
			if ignorer.MatchesPath(slashed + "/") {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() || ignorer.MatchesPath(slashed) {
			return nil
		}

		if !extensions[strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))] {
			return nil
		}

		text, err := isText(path)
		if err != nil {
			return fmt.Errorf("error detecting content type of %s: %w", rel, err)
		}

		if !text {
			return nil
		}

		files = append(files, m.File{FullPath: m.Path(path), ShortPath: m.Path(rel)})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", rootStr, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ShortPath < files[j].ShortPath
	})

	return files, nil
}

func (a *LocalSourceFSAdapter) single(path string) ([]m.File, error) {
	return []m.File{{FullPath: m.Path(path), ShortPath: m.Path(filepath.Base(path))}}, nil
}

func normalizeExtensions(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	out := make(map[string]bool, len(exts))
	for _, ext := range exts {
		out[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))] = true
	}

	return out
}

// isText accepts anything mimetype places under text/plain.
func isText(path string) (bool, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return false, err
	}

	for mt := mime; mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true, nil
		}
	}

	return false, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content, keeping the mode of an existing file.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	perm := os.FileMode(0o644)

	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// CopyFile copies a single file, preserving its mode.
func (a *LocalSourceFSAdapter) CopyFile(src, dst m.Path) error {
	// #nosec G304 - src is a project file selected by discovery
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is inside the checkpoint area or the project root
	destFile, err := os.OpenFile(string(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chmod(string(dst), info.Mode().Perm())
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates path and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
