package blog_test

import (
	"strings"
	"testing"

	"portfolio_blog/blog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML_Paragraphs(t *testing.T) {
	out, err := blog.RenderHTML("Birinci paragraf.\n\nİkinci paragraf.\n\nÜçüncü paragraf.")

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<p>"))
	assert.Contains(t, out, "İkinci paragraf.")
}

func TestRenderHTML_StripsScripts(t *testing.T) {
	out, err := blog.RenderHTML("Merhaba <script>alert(1)</script>\n\n[link](javascript:alert(1))")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, "Merhaba")
}

func TestRenderHTML_Markdown(t *testing.T) {
	out, err := blog.RenderHTML("## Başlık\n\n- bir\n- iki")

	require.NoError(t, err)
	assert.Contains(t, out, "<h2>Başlık</h2>")
	assert.Contains(t, out, "<li>bir</li>")
}
