package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/nousrire/backend/internal/logger"
)

// TextProcessor renders admin-authored news content (light markdown) to
// sanitized HTML for the public site.
type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)
	return &TextProcessor{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts markdown to HTML and sanitizes the result. On render
// failure the raw text is returned sanitized, never an error: a broken
// news body should not take the public page down.
func (tp *TextProcessor) Render(content string) string {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(content), &buf); err != nil {
		logger.Log.Warn("markdown render failed, falling back to plain text", "error", err)
		return tp.policy.Sanitize(content)
	}
	return tp.policy.Sanitize(buf.String())
}
