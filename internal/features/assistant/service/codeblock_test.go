package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCodeBlock(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "no code block",
			text: "Just a plain answer without any code.",
			want: "",
		},
		{
			name: "html block",
			text: "Here is your app:\n```html\n<div>hello</div>\n```\nEnjoy!",
			want: "<div>hello</div>\n",
		},
		{
			name: "uppercase language tag",
			text: "```HTML\n<p>hi</p>\n```",
			want: "<p>hi</p>\n",
		},
		{
			name: "bare fence",
			text: "```\nconsole.log(1)\n```",
			want: "console.log(1)\n",
		},
		{
			name: "javascript block",
			text: "```javascript\nalert('x')\n```",
			want: "alert('x')\n",
		},
		{
			name: "first of two blocks wins",
			text: "```css\nbody{}\n```\ntext\n```html\n<b>x</b>\n```",
			want: "body{}\n",
		},
		{
			name: "unterminated fence",
			text: "```html\n<div>never closed",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCodeBlock(tt.text))
		})
	}
}

func TestStripCodeBlocks(t *testing.T) {
	text := "Intro\n```html\n<div/>\n```\nOutro"
	assert.Equal(t, "Intro\n\nOutro", StripCodeBlocks(text))
}
