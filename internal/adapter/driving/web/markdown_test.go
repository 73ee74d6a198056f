package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderInline_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderInline(""))
}

func TestRenderInline_PlainText(t *testing.T) {
	assert.Equal(t, "hello world", RenderInline("hello world"))
}

func TestRenderInline_Strong(t *testing.T) {
	assert.Equal(t, "in <strong>60 seconds</strong>.", RenderInline("in **60 seconds**."))
}

func TestRenderInline_Emphasis(t *testing.T) {
	assert.Equal(t, "data <em>never</em> leaves", RenderInline("data *never* leaves"))
}

func TestRenderInline_StripsParagraphWrapper(t *testing.T) {
	result := RenderInline("one line")
	assert.NotContains(t, result, "<p>")
}

func TestRenderInline_DropsLinks(t *testing.T) {
	result := RenderInline("[click](https://example.com)")
	assert.NotContains(t, result, "<a")
	assert.Contains(t, result, "click")
}

func TestRenderInline_SanitizesScript(t *testing.T) {
	result := RenderInline(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}
