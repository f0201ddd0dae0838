package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/f3rmion/readafter/internal/segment"
)

func TestPreBreak(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single sentence", "今天天气很好。", "。▼今天天气很好。▼"},
		{"every major mark", "好，是：对；吗？行！", "。▼好，▼是：▼对；▼吗？▼行！▼"},
		{"pause mark untouched", "甲、乙", "。▼甲、乙"},
		{"lines trimmed", "  第一行  \n\n第二行", "。▼第一行\n\n。▼第二行"},
		{"blank line emptied", "甲\n   \n乙", "。▼甲\n\n。▼乙"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segment.PreBreak(tt.in))
		})
	}
}

func TestExtractSentences(t *testing.T) {
	doc := "。▼你好，▼ 世界 ▼\n。▼再见"
	sentences := segment.ExtractSentences(doc)

	var texts []string
	for _, s := range sentences {
		texts = append(texts, s.Text)
		assert.Equal(t, s.Text, doc[s.Start:s.End])
	}
	assert.Equal(t, []string{"你好", "世界", "再见"}, texts)
	assert.Equal(t, 2, sentences[0].Length)
}

func TestEffectiveLength(t *testing.T) {
	assert.Equal(t, 4, segment.EffectiveLength("你好，世界！"))
	assert.Equal(t, 0, segment.EffectiveLength("，。、"))
	assert.Equal(t, 3, segment.EffectiveLength("(a)b,c"))
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 5, segment.Priority('。'))
	assert.Equal(t, 4, segment.Priority('；'))
	assert.Equal(t, 3, segment.Priority('，'))
	assert.Equal(t, 2, segment.Priority('：'))
	assert.Equal(t, 1, segment.Priority('、'))
	assert.Equal(t, 0, segment.Priority('字'))
}

func TestMergeShort(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "stronger previous mark merges backward",
			in:   "今天天气很好。▼还行▼，我们出去走走吧。",
			want: "今天天气很好。还行▼，我们出去走走吧。",
		},
		{
			name: "stronger next mark merges forward",
			in:   "今天天气很好，▼还行▼。我们出去走走吧。",
			want: "今天天气很好，▼还行。我们出去走走吧。",
		},
		{
			name: "tie merges forward",
			in:   "今天天气很好，▼还行▼，我们出去走走吧",
			want: "今天天气很好，▼还行，我们出去走走吧",
		},
		{
			name: "leading fragment joins next",
			in:   "。▼今天天气很好。▼",
			want: "。今天天气很好。",
		},
		{
			name: "line opener stays on its line",
			in:   "甲乙丙丁戊己。▼\n。▼庚辛壬癸子丑。",
			want: "甲乙丙丁戊己。▼\n。庚辛壬癸子丑。",
		},
		{
			name: "sole short segment kept",
			in:   "好",
			want: "好",
		},
		{
			name: "chain of short segments",
			in:   "一▼二▼三▼四▼五▼六",
			want: "一二三四五六",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segment.MergeShort(tt.in, 6))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapse then trail", "abc▼▼▼def", "abc▼def▼"},
		{"trailing marker kept", "abc▼", "abc▼"},
		{"leading full stop per line", "。甲▼\n。乙", "甲▼\n乙▼"},
		{"only one full stop stripped", "。。甲", "。甲▼"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segment.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"abc▼▼▼def", "。甲▼\n。乙", "今天天气很好。▼", ""} {
		once := segment.Normalize(in)
		assert.Equal(t, once, segment.Normalize(once), in)
	}
}
