// Package domain contains the cleanup workflow: per-file transformation,
// checkpoint management and the run orchestration tying them together.
package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	"cleanup.dev/pkg/cleanup/internal/domain/passes"
	m "cleanup.dev/pkg/cleanup/internal/model"
	"cleanup.dev/pkg/cleanup/internal/syntax"
)

// DefaultTransformCacheSize bounds the number of memoised file outcomes.
const DefaultTransformCacheSize = 256

// Transformer runs the removal passes over one file's content.
type Transformer interface {
	Transform(ctx context.Context, path m.Path, content []byte, policy m.RemovalPolicy) (m.TransformOutcome, error)
}

// TransformOptions tunes how transformed code is rendered.
type TransformOptions struct {
	RetainLines bool
	CacheSize   int
}

type transformer struct {
	adapter.SourceParser
	opts   TransformOptions
	passes []passes.Pass
	cache  *lru.Cache[string, m.TransformOutcome]
}

// NewTransformer creates a Transformer backed by parser.
func NewTransformer(parser adapter.SourceParser, opts TransformOptions) (Transformer, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultTransformCacheSize
	}

	cache, err := lru.New[string, m.TransformOutcome](size)
	if err != nil {
		return nil, fmt.Errorf("create transform cache: %w", err)
	}

	return &transformer{
		SourceParser: parser,
		opts:         opts,
		passes:       passes.Structural(),
		cache:        cache,
	}, nil
}

// Transform parses content and applies the structural passes, falling back
// to text-level comment removal when the file cannot be parsed. Emojis are
// removed from the final text.
func (t *transformer) Transform(ctx context.Context, path m.Path, content []byte, policy m.RemovalPolicy) (m.TransformOutcome, error) {
	if err := policy.Validate(); err != nil {
		return m.TransformOutcome{}, err
	}

	key := t.cacheKey(path, content, policy)
	if cached, ok := t.cache.Get(key); ok {
		slog.Debug("transform cache hit", "path", path)
		return cached, nil
	}

	out := m.TransformOutcome{Code: content}

	if policy.NeedsTree() {
		outcome, err := t.Analyze(ctx, string(path), content)
		if err != nil {
			return m.TransformOutcome{}, err
		}

		switch o := outcome.(type) {
		case syntax.Parsed:
			out = t.structural(o.Tree, policy)
		case syntax.Degraded:
			out = t.degraded(path, o, policy)
		default:
			return m.TransformOutcome{}, fmt.Errorf("unexpected parse outcome %T", outcome)
		}
	}

	if policy.Emojis {
		code, res := passes.PruneEmojis(out.Code)
		out.Code = code
		out.EmojisRemoved = res.RemovalCount
	}

	t.cache.Add(key, out)

	return out, nil
}

func (t *transformer) structural(tree *syntax.Tree, policy m.RemovalPolicy) m.TransformOutcome {
	defer tree.Close()

	var out m.TransformOutcome

	for _, pass := range t.passes {
		report := pass.Apply(tree, policy)

		switch pass.(type) {
		case passes.CommentPruner:
			out.CommentsRemoved += report.Removed
		case passes.CallPruner:
			out.CallsRemoved += report.Removed
		}

		for _, site := range report.Flagged {
			slog.Warn("console call left in place", "path", tree.Path, "site", site.String())
		}

		out.Flagged = append(out.Flagged, report.Flagged...)
	}

	out.Code = syntax.Render(tree, syntax.RenderOptions{
		Comments:    policy.KeepsComments(),
		RetainLines: t.opts.RetainLines,
	})

	return out
}

// degraded handles files without a usable tree: comments are removed by the
// text pruner, calls are left alone.
func (t *transformer) degraded(path m.Path, d syntax.Degraded, policy m.RemovalPolicy) m.TransformOutcome {
	out := m.TransformOutcome{
		Code:           d.Text,
		Degraded:       true,
		DegradedReason: d.Reason.Error(),
	}

	slog.Warn("falling back to text cleanup", "path", path, "reason", d.Reason)

	if policy.Comments {
		code, res := passes.PruneCommentsText(d.Text)
		out.Code = code
		out.CommentsRemoved = res.RemovalCount
	}

	return out
}

func (t *transformer) cacheKey(path m.Path, content []byte, policy m.RemovalPolicy) string {
	sum := sha256.Sum256(content)

	return strings.Join([]string{
		hex.EncodeToString(sum[:]),
		strings.ToLower(filepath.Ext(string(path))),
		policy.Fingerprint(),
		fmt.Sprintf("r=%t", t.opts.RetainLines),
	}, "|")
}
