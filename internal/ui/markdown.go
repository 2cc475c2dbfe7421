package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Cached glamour renderer, keyed by the width and style it was built with.
var (
	markdownRenderer *glamour.TermRenderer
	cachedWidth      int
	cachedStyle      string
)

// RenderMarkdown renders markdown content to a rich text string
// suitable for terminal display. Returns the content unchanged if
// rendering fails.
func RenderMarkdown(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	if markdownRenderer == nil || width != cachedWidth || style != cachedStyle {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return content
		}
		markdownRenderer = renderer
		cachedWidth = width
		cachedStyle = style
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
