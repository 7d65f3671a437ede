package service

import "regexp"

// Первый fenced-блок (```html, ```javascript, ```css или без языка)
// трактуется как отображаемая разметка
var codeBlockRe = regexp.MustCompile("(?is)```(?:html|javascript|css)?\\s*(.*?)```")

// ExtractCodeBlock returns the contents of the first fenced code block in
// text, or the empty string when there is none.
func ExtractCodeBlock(text string) string {
	match := codeBlockRe.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}

// StripCodeBlocks removes all fenced code blocks, leaving the prose around
// them. Used for the plain-text rendering of a chat message.
func StripCodeBlocks(text string) string {
	return allCodeBlocksRe.ReplaceAllString(text, "")
}

var allCodeBlocksRe = regexp.MustCompile("(?s)```.*?```")
