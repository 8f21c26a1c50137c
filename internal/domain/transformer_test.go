package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	adaptermocks "cleanup.dev/pkg/cleanup/internal/adapter/mocks"
	"cleanup.dev/pkg/cleanup/internal/domain"
	m "cleanup.dev/pkg/cleanup/internal/model"
	"cleanup.dev/pkg/cleanup/internal/syntax"
)

func newTransformer(t *testing.T, parser adapter.SourceParser, opts domain.TransformOptions) domain.Transformer {
	t.Helper()

	tr, err := domain.NewTransformer(parser, opts)
	require.NoError(t, err)

	return tr
}

func allPolicy() m.RemovalPolicy {
	return m.RemovalPolicy{
		Comments: true,
		Console:  m.ConsoleSelection{Mode: m.ConsoleAll},
		Emojis:   true,
	}
}

func TestTransformer_Parsed(t *testing.T) {
	tr := newTransformer(t, adapter.NewLocalSourceParser(), domain.TransformOptions{})

	src := "// a\nconst x = 1;\nconsole.log(x);\n"

	out, err := tr.Transform(context.Background(), "app.js", []byte(src), allPolicy())
	require.NoError(t, err)

	assert.Equal(t, "const x = 1;\n", string(out.Code))
	assert.Equal(t, 2, out.CommentsRemoved)
	assert.Equal(t, 1, out.CallsRemoved)
	assert.False(t, out.Degraded)
}

func TestTransformer_RetainLines(t *testing.T) {
	tr := newTransformer(t, adapter.NewLocalSourceParser(), domain.TransformOptions{RetainLines: true})

	out, err := tr.Transform(context.Background(), "app.js", []byte("// a\nlet x;\n"), m.RemovalPolicy{Comments: true})
	require.NoError(t, err)

	assert.Equal(t, "\nlet x;\n", string(out.Code))
}

func TestTransformer_InlineCommentsKeepTokensApart(t *testing.T) {
	tr := newTransformer(t, adapter.NewLocalSourceParser(), domain.TransformOptions{})
	policy := m.RemovalPolicy{Comments: true}

	tests := []struct {
		src  string
		want string
	}{
		{"function f(a){return/*x*/a}\n", "function f(a){return a}\n"},
		{"let/**/x = 1;\n", "let x = 1;\n"},
		{"y = a+/**/+b;\n", "y = a+ +b;\n"},
		{"const x = typeof/**/v;\n", "const x = typeof v;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out, err := tr.Transform(context.Background(), "app.js", []byte(tt.src), policy)
			require.NoError(t, err)

			assert.Equal(t, tt.want, string(out.Code))
			assert.Positive(t, out.CommentsRemoved)

			reparsed, err := syntax.Analyze(context.Background(), "app.js", out.Code)
			require.NoError(t, err)
			assert.IsType(t, syntax.Parsed{}, reparsed)
		})
	}
}

func TestTransformer_KeepsNonEmojiSymbols(t *testing.T) {
	tr := newTransformer(t, adapter.NewLocalSourceParser(), domain.TransformOptions{})

	src := "const s = \"\u2713 done \u2605 \u2192 \u00a9\";\n"

	out, err := tr.Transform(context.Background(), "app.js", []byte(src), m.RemovalPolicy{Emojis: true})
	require.NoError(t, err)

	assert.Equal(t, src, string(out.Code))
	assert.Zero(t, out.EmojisRemoved)
}

func TestTransformer_FlaggedCallsAreReported(t *testing.T) {
	tr := newTransformer(t, adapter.NewLocalSourceParser(), domain.TransformOptions{})

	src := "const v = console.log(1);\n"

	out, err := tr.Transform(context.Background(), "app.ts", []byte(src), allPolicy())
	require.NoError(t, err)

	assert.Equal(t, src, string(out.Code))
	require.Len(t, out.Flagged, 1)
	assert.Equal(t, "log", out.Flagged[0].Method)
	assert.Equal(t, m.CallInInitializer, out.Flagged[0].Context)
}

func TestTransformer_Degraded(t *testing.T) {
	tr := newTransformer(t, adapter.NewLocalSourceParser(), domain.TransformOptions{})

	src := "function broken( {\n// note\nconsole.log(1);\n"

	out, err := tr.Transform(context.Background(), "broken.js", []byte(src), allPolicy())
	require.NoError(t, err)

	assert.True(t, out.Degraded)
	assert.NotEmpty(t, out.DegradedReason)
	assert.Equal(t, 1, out.CommentsRemoved)
	assert.Zero(t, out.CallsRemoved)
	assert.NotContains(t, string(out.Code), "// note")
	assert.Contains(t, string(out.Code), "console.log(1);")
}

func TestTransformer_EmojiOnlySkipsParsing(t *testing.T) {
	// No expectations: any call to the parser fails the test.
	parser := adaptermocks.NewMockSourceParser(t)
	tr := newTransformer(t, parser, domain.TransformOptions{})

	out, err := tr.Transform(context.Background(), "a.js", []byte("ok \u2705 // keep\n"), m.RemovalPolicy{Emojis: true})
	require.NoError(t, err)

	assert.Equal(t, "ok  // keep\n", string(out.Code))
	assert.Equal(t, 1, out.EmojisRemoved)
}

func TestTransformer_CachesOutcomes(t *testing.T) {
	parser := adaptermocks.NewMockSourceParser(t)
	tr := newTransformer(t, parser, domain.TransformOptions{CacheSize: 4})

	content := []byte("/* x */ broken(\n")

	parser.EXPECT().Analyze(mock.Anything, "a.js", content).
		Return(syntax.Degraded{Text: content, Reason: errors.New("syntax error")}, nil).
		Once()

	policy := m.RemovalPolicy{Comments: true}

	first, err := tr.Transform(context.Background(), "a.js", content, policy)
	require.NoError(t, err)

	second, err := tr.Transform(context.Background(), "a.js", content, policy)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, " broken(\n", string(second.Code))
}

func TestTransformer_ParserError(t *testing.T) {
	parser := adaptermocks.NewMockSourceParser(t)
	tr := newTransformer(t, parser, domain.TransformOptions{})

	parser.EXPECT().Analyze(mock.Anything, "a.js", mock.Anything).Return(nil, context.Canceled).Once()

	_, err := tr.Transform(context.Background(), "a.js", []byte("let a;"), m.RemovalPolicy{Comments: true})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransformer_InvalidPolicy(t *testing.T) {
	tr := newTransformer(t, adaptermocks.NewMockSourceParser(t), domain.TransformOptions{})

	policy := m.RemovalPolicy{Console: m.ConsoleSelection{Mode: m.ConsoleSet}}

	_, err := tr.Transform(context.Background(), "a.js", []byte("let a;"), policy)

	assert.ErrorIs(t, err, m.ErrInvalidPolicy)
}
