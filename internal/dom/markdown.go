package dom

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// MarkdownText renders a node's inner HTML as Markdown. It falls back to the
// plain text when conversion fails or produces nothing.
func MarkdownText(n Node) string {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(n.HTML())
	if err != nil || strings.TrimSpace(markdown) == "" {
		return n.Text()
	}
	return markdown
}

// PlainText is the default text renderer.
func PlainText(n Node) string {
	return n.Text()
}
