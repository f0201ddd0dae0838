package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/readafter/internal/speech"
)

type fakeSink struct{ spoken []string }

func (s *fakeSink) Speak(_ context.Context, text string) error {
	s.spoken = append(s.spoken, text)
	return nil
}

func scripts() []Script {
	return []Script{
		{Title: "第一篇", Text: "今天天气很好，▼我们出去走走吧。▼"},
		{Title: "第二篇", Text: "春天来了。▼"},
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_Navigation(t *testing.T) {
	m := New(scripts(), Options{})
	require.Len(t, m.cues, 3)

	m = press(m, "right", "right", "right")
	assert.Equal(t, speech.Position{Text: 1, Segment: 0}, m.Position())

	m = press(m, "left", "left", "left", "left")
	assert.Equal(t, speech.Position{}, m.Position())
}

func TestModel_StartPosition(t *testing.T) {
	m := New(scripts(), Options{Start: speech.Position{Text: 0, Segment: 1}})
	assert.Equal(t, 1, m.pos)
}

func TestModel_Jump(t *testing.T) {
	m := New(scripts(), Options{})

	m = press(m, "g", "3", "enter")
	assert.False(t, m.jumping)
	assert.Equal(t, 2, m.pos)

	m = press(m, "g", "9", "enter")
	assert.Error(t, m.err)
	assert.Equal(t, 2, m.pos)

	m = press(m, "g", "esc")
	assert.False(t, m.jumping)
}

func TestModel_Toggles(t *testing.T) {
	m := New(scripts(), Options{})
	assert.True(t, m.showPinyin)

	m = press(m, "p", "b")
	assert.False(t, m.showPinyin)
	assert.True(t, m.showBanner)
}

func TestModel_Speak(t *testing.T) {
	sink := &fakeSink{}
	m := New(scripts(), Options{Sink: sink})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.speaking)

	next, _ = m.Update(cmd())
	m = next.(Model)
	assert.False(t, m.speaking)
	assert.Equal(t, []string{"今天天气很好"}, sink.spoken)
}

func TestModel_View(t *testing.T) {
	m := New(scripts(), Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = press(next.(Model), "right")

	view := m.View()
	assert.Contains(t, view, "2/3")
	assert.Contains(t, view, "我们出去走走吧。")
	assert.Contains(t, view, "今天天气很好，")
	assert.Contains(t, view, "wǒ")
}

func TestModel_Empty(t *testing.T) {
	m := New(nil, Options{})
	m = press(m, "right", "s")

	assert.Equal(t, speech.Position{}, m.Position())
	assert.Contains(t, m.View(), "Nothing to rehearse")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "今天\n天气\n很好", wrapText("今天天气很好", 4))
	assert.Equal(t, "ab今\n天", wrapText("ab今天", 4))
	assert.Equal(t, "原文", wrapText("原文", 0))
}
