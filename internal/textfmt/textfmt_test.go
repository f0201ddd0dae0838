package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "第一行\n第二行", Clean("  第一行 \n\n   \n第二行\t"))
	assert.Equal(t, "", Clean("\n \n"))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"full width letters", "Ｈｅｌｌｏ　ｗｏｒｌｄ", "Hello world。"},
		{"full width digits", "１２３", "123。"},
		{"ascii comma between han", "你好,世界", "你好，世界。"},
		{"ascii mark after han", "你好!", "你好！"},
		{"spaces around han dropped", "我 爱 你", "我爱你。"},
		{"digit next to han", "版本 2 发布", "版本2发布。"},
		{"letter and digit keep one space", "iPhone   15", "iPhone 15。"},
		{"decimal point untouched", "3.5", "3.5。"},
		{"blank lines dropped", "  第一行\n\n第二行！  ", "第一行。\n第二行！"},
		{"closing quote ends line", "他说“好”", "他说“好”"},
		{"sentence marks kept wide", "好吗？", "好吗？"},
		{"slash between han", "老师/学生", "老师、学生。"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestKeepSpace(t *testing.T) {
	assert.True(t, keepSpace('a', 'b'))
	assert.True(t, keepSpace('a', '1'))
	assert.True(t, keepSpace('1', 'a'))
	assert.False(t, keepSpace('1', '2'))
	assert.False(t, keepSpace('a', '中'))
	assert.False(t, keepSpace(',', 'a'))
}
