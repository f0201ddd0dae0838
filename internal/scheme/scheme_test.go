package scheme

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suffixProcessor struct{ calls int }

func (p *suffixProcessor) Process(_ context.Context, text string) string {
	p.calls++
	return text + Marker
}

func newTestBuilder(p Processor) *Builder {
	b := NewBuilder(p)
	b.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	n := 0
	b.newID = func() string {
		n++
		return fmt.Sprintf("scheme-%d", n)
	}
	return b
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"first sentence", "今天天气很好。我们出去走走吧。", "今天天气很好"},
		{"question mark", "你好吗？我很好", "你好吗"},
		{"newline ends title", "标题\n正文", "标题"},
		{"ascii full stop", "Hello. World", "Hello"},
		{"trimmed", "  标题  。", "标题"},
		{"truncated", strings.Repeat("长", 30), strings.Repeat("长", 20)},
		{"empty", "", UntitledTitle},
		{"only punctuation", "。正文", UntitledTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(tt.in))
		})
	}
}

func TestResolveTitle(t *testing.T) {
	title, edited := ResolveTitle("新的开头。", "我的标题", "旧标题")
	assert.Equal(t, "我的标题", title)
	assert.True(t, edited)

	title, edited = ResolveTitle("新的开头。", "旧标题", "旧标题")
	assert.Equal(t, "新的开头", title)
	assert.False(t, edited)
}

func TestBuilder_AddBreathingPoints(t *testing.T) {
	p := &suffixProcessor{}
	b := newTestBuilder(p)

	assert.Equal(t, "", b.AddBreathingPoints(context.Background(), ""))
	assert.Equal(t, 0, p.calls)
	assert.Equal(t, "文本▼", b.AddBreathingPoints(context.Background(), "文本"))
}

func TestBuilder_FromNotes(t *testing.T) {
	notes := []Note{
		{ID: "a", Title: "旧", Content: "第一篇。", Tags: []string{"朗读"}},
		{ID: "b", Content: "第二篇。"},
	}
	b := newTestBuilder(&suffixProcessor{})

	schemes, err := b.FromNotes(context.Background(), []string{"b", "missing", "a"}, notes)
	require.NoError(t, err)
	require.Len(t, schemes, 2)

	assert.Equal(t, Scheme{
		ID:        "scheme-1",
		NoteID:    "b",
		Text:      "第二篇。▼",
		Title:     "第二篇",
		Tags:      []string{},
		Timestamp: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}, schemes[0])
	assert.Equal(t, "a", schemes[1].NoteID)
	assert.Equal(t, []string{"朗读"}, schemes[1].Tags)
	assert.False(t, schemes[1].IsTitleEdited)
}

func TestBuilder_FromNotesAll(t *testing.T) {
	notes := []Note{{ID: "a", Content: "甲。"}, {ID: "b", Content: "乙。"}}

	schemes, err := newTestBuilder(&suffixProcessor{}).FromNotes(context.Background(), nil, notes)
	require.NoError(t, err)
	assert.Len(t, schemes, 2)
}

func TestBuilder_FromNotesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestBuilder(&suffixProcessor{}).FromNotes(ctx, nil, []Note{{ID: "a"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewBuilder_UUIDs(t *testing.T) {
	b := NewBuilder(&suffixProcessor{})
	s1 := b.FromNote(context.Background(), Note{ID: "a", Content: "甲。"})
	s2 := b.FromNote(context.Background(), Note{ID: "a", Content: "甲。"})

	assert.Len(t, s1.ID, 36)
	assert.NotEqual(t, s1.ID, s2.ID)
}

func TestReadWriteJSON(t *testing.T) {
	notes, err := ReadNotes(strings.NewReader(`[{"id":"n1","title":"t","content":"内容","tags":["x"],"timestamp":"2024-03-01T08:00:00Z"}]`))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "内容", notes[0].Content)

	_, err = ReadNotes(strings.NewReader(`{`))
	assert.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSchemes(&buf, []Scheme{{ID: "s1", Text: "好<b>▼"}}))
	assert.Contains(t, buf.String(), `"noteId": ""`)
	assert.Contains(t, buf.String(), "好<b>▼")
}
