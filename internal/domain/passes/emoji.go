package passes

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

// bmpEmojiPresentation holds the BMP code points that render as emoji on
// their own. Other BMP symbols (©, ↔, ☀) only do so when followed by VS16.
var bmpEmojiPresentation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x231A, Hi: 0x231B, Stride: 1},
		{Lo: 0x23E9, Hi: 0x23EC, Stride: 1},
		{Lo: 0x23F0, Hi: 0x23F3, Stride: 3},
		{Lo: 0x25FD, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2614, Hi: 0x2615, Stride: 1},
		{Lo: 0x2648, Hi: 0x2653, Stride: 1},
		{Lo: 0x267F, Hi: 0x267F, Stride: 1},
		{Lo: 0x2693, Hi: 0x2693, Stride: 1},
		{Lo: 0x26A1, Hi: 0x26A1, Stride: 1},
		{Lo: 0x26AA, Hi: 0x26AB, Stride: 1},
		{Lo: 0x26BD, Hi: 0x26BE, Stride: 1},
		{Lo: 0x26C4, Hi: 0x26C5, Stride: 1},
		{Lo: 0x26CE, Hi: 0x26CE, Stride: 1},
		{Lo: 0x26D4, Hi: 0x26D4, Stride: 1},
		{Lo: 0x26EA, Hi: 0x26EA, Stride: 1},
		{Lo: 0x26F2, Hi: 0x26F3, Stride: 1},
		{Lo: 0x26F5, Hi: 0x26F5, Stride: 1},
		{Lo: 0x26FA, Hi: 0x26FA, Stride: 1},
		{Lo: 0x26FD, Hi: 0x26FD, Stride: 1},
		{Lo: 0x2705, Hi: 0x2705, Stride: 1},
		{Lo: 0x270A, Hi: 0x270B, Stride: 1},
		{Lo: 0x2728, Hi: 0x2728, Stride: 1},
		{Lo: 0x274C, Hi: 0x274E, Stride: 2},
		{Lo: 0x2753, Hi: 0x2755, Stride: 1},
		{Lo: 0x2757, Hi: 0x2757, Stride: 1},
		{Lo: 0x2795, Hi: 0x2797, Stride: 1},
		{Lo: 0x27B0, Hi: 0x27B0, Stride: 1},
		{Lo: 0x27BF, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B55, Stride: 5},
	},
}

// PruneEmojis removes every emoji from text. The text is walked one grapheme
// cluster at a time, so a ZWJ sequence, a flag or a keycap counts as one
// emoji.
func PruneEmojis(text []byte) ([]byte, m.TransformResult) {
	var out bytes.Buffer

	out.Grow(len(text))

	count := 0
	state := -1
	rest := text

	var cluster []byte

	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.Step(rest, state)

		if isEmoji(cluster) {
			count++
			continue
		}

		out.Write(cluster)
	}

	return out.Bytes(), m.TransformResult{Code: out.String(), RemovalCount: count}
}

func isEmoji(cluster []byte) bool {
	r, size := utf8.DecodeRune(cluster)
	if size == len(cluster) && r <= 0xFFFF && !unicode.Is(bmpEmojiPresentation, r) {
		return false
	}

	_, err := gomoji.GetInfo(string(cluster))

	return err == nil
}
