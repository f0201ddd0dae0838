package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/readafter/internal/dict"
)

func vetoLexicon() *dict.Lexicon {
	return dict.NewLexicon(map[dict.Category][]string{
		dict.Proper:         {"德、智、体", "德智体", "北京"},
		dict.Number:         {"三", "十"},
		dict.NoNumberAfter:  {"个"},
		dict.NoNumberBefore: {"第"},
		dict.NoSplitBefore:  {"和"},
		dict.NoSplitAfter:   {"的"},
	})
}

func TestSegment_LongestMatch(t *testing.T) {
	segs := Segment("去北京德智体", vetoLexicon())

	var words []string
	for _, s := range segs {
		words = append(words, s.Word)
	}
	assert.Equal(t, []string{"去", "北京", "德智体"}, words)
	assert.Equal(t, WordSegment{Word: "德智体", Start: 3, End: 6}, segs[2])
}

func TestSegment_StrippedProperNoun(t *testing.T) {
	lex := dict.NewLexicon(map[dict.Category][]string{
		dict.PauseProper: {"投、编、评"},
	})

	segs := Segment("做投编评", lex)
	require.Len(t, segs, 2)
	assert.Equal(t, "投编评", segs[1].Word)
}

func TestCanSplitBetween(t *testing.T) {
	lex := vetoLexicon()

	tests := []struct {
		left, right string
		want        bool
	}{
		{"三", "个", false},
		{"第", "三", false},
		{"和", "你", false},
		{"我", "的", false},
		{"三", "人", true},
		{"我", "和", true},
		{"的", "书", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canSplitBetween(lex, tt.left, tt.right), tt.left+"|"+tt.right)
	}
}

func TestBestSplit(t *testing.T) {
	lex := vetoLexicon()

	pos, ok := bestSplit(lex, Segment("甲乙丙丁", lex), 4)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	// 三|个 is vetoed; the nearest legal boundaries tie and the left one wins.
	pos, ok = bestSplit(lex, Segment("甲乙三个丙丁", lex), 6)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	_, ok = bestSplit(lex, Segment("北京", lex), 2)
	assert.False(t, ok)
}

func TestMarkBoundaries(t *testing.T) {
	assert.Equal(t, "我|去|北京的|三个", MarkBoundaries("我去北京的三个", vetoLexicon(), "|"))
}

func TestProtectedSpans(t *testing.T) {
	doc := "投、编、评和投、编、评"
	spans := protectedSpans(doc, []string{"投、编、评"})

	require.Len(t, spans, 2)
	assert.Equal(t, span{0, len("投、编、评")}, spans[0])
	assert.Equal(t, len("投、编、评和"), spans[1].start)
}
