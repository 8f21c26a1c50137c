package syntax

import (
	"bytes"
	"sort"
)

// RenderOptions controls how a Tree is turned back into text.
type RenderOptions struct {
	// Comments keeps the comments that survived the passes. When false every
	// comment is dropped from the output.
	Comments bool
	// RetainLines keeps emptied lines so surviving code stays on its
	// original line number.
	RetainLines bool
}

// Render applies the pending edits to the source. Text outside the edited
// ranges is copied byte for byte. When two edits overlap the outermost wins.
func Render(t *Tree, opts RenderOptions) []byte {
	edits := collectEdits(t, opts)
	if len(edits) == 0 {
		return bytes.Clone(t.Source)
	}

	src := t.Source

	var out bytes.Buffer

	out.Grow(len(src))

	pos := uint(0)

	for k, e := range edits {
		hi := uint(len(src))
		if k+1 < len(edits) {
			hi = edits[k+1].start
		}

		start, end := e.start, e.end
		if e.text == "" {
			start, end = widen(src, &out, pos, hi, start, end, opts.RetainLines)
		}

		out.Write(src[pos:start])
		out.WriteString(e.text)

		newlines := 0
		if opts.RetainLines {
			newlines = bytes.Count(src[e.start:e.end], []byte{'\n'})
			for range newlines {
				out.WriteByte('\n')
			}
		}

		// Deleting `/*x*/` from `return/*x*/a` must not produce `returna`, and a
		// removed line break still ends the statement before it.
		if e.text == "" && newlines == 0 && end < uint(len(src)) {
			prev := lastByte(&out)

			switch {
			case bytes.IndexByte(src[e.start:e.end], '\n') >= 0 && prev != 0 && prev != '\n' && !atLineEnd(src, end):
				out.WriteByte('\n')
			case joins(prev, src[end]):
				out.WriteByte(' ')
			}
		}

		pos = end
	}

	out.Write(src[pos:])

	return out.Bytes()
}

// collectEdits merges structural edits with comment removals, sorted by
// position with nested edits discarded.
func collectEdits(t *Tree, opts RenderOptions) []edit {
	all := make([]edit, 0, len(t.edits)+t.Comments.Len())
	all = append(all, t.edits...)

	for i := 0; i < t.Comments.Len(); i++ {
		if t.Comments.Removed(i) || !opts.Comments {
			rec := t.Comments.Record(i)
			all = append(all, edit{start: rec.Start, end: rec.End})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].start != all[j].start {
			return all[i].start < all[j].start
		}

		return all[i].end > all[j].end
	})

	kept := all[:0]

	var last uint

	for _, e := range all {
		if len(kept) > 0 && e.start < last {
			continue
		}

		kept = append(kept, e)
		last = e.end
	}

	return kept
}

// widen grows a deletion over the blanks around it. A deletion that leaves
// its line empty takes the line break with it unless lines are retained.
func widen(src []byte, out *bytes.Buffer, lo, hi, start, end uint, retain bool) (uint, uint) {
	e := end
	for e < hi && isBlank(src[e]) {
		e++
	}

	if !atLineEnd(src, e) {
		return start, e
	}

	s := start
	for s > lo && isBlank(src[s-1]) {
		s--
	}

	var lineStart bool
	if s == lo {
		b := out.Bytes()
		lineStart = len(b) == 0 || b[len(b)-1] == '\n'
	} else {
		lineStart = src[s-1] == '\n'
	}

	if !lineStart || retain {
		return s, e
	}

	if e < hi && src[e] == '\r' {
		e++
	}

	if e < hi && src[e] == '\n' {
		e++
	}

	return s, e
}

// joins reports whether a and b would merge into one token when adjacent.
func joins(a, b byte) bool {
	return a != 0 && !isSeparator(a) && !isSeparator(b)
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '(', ')', '{', '}', '[', ']', ';', ',':
		return true
	}

	return false
}

func lastByte(out *bytes.Buffer) byte {
	b := out.Bytes()
	if len(b) == 0 {
		return 0
	}

	return b[len(b)-1]
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func atLineEnd(src []byte, i uint) bool {
	n := uint(len(src))
	return i == n || src[i] == '\n' || (src[i] == '\r' && i+1 < n && src[i+1] == '\n')
}
