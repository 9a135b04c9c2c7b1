package blog_test

import (
	"testing"
	"time"

	"portfolio_blog/blog"
	"portfolio_blog/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFactory(locale string) *blog.Factory {
	f := blog.NewFactory("Rıdvan Haliloğlu", locale)
	f.Now = func() time.Time { return time.Date(2023, time.November, 5, 10, 0, 0, 0, time.UTC) }
	f.NewID = func() string { return "post-1" }
	return f
}

func TestFactory_FromResult(t *testing.T) {
	f := fixedFactory("tr")

	p := f.FromResult(generator.ContentResult{
		Title:   "T",
		Summary: "S",
		Content: "C",
		Tags:    []string{"a", "b"},
	})

	assert.Equal(t, "post-1", p.ID)
	assert.Equal(t, "Rıdvan Haliloğlu", p.Author)
	assert.Equal(t, "5 Kasım 2023", p.Date)
	assert.Equal(t, "https://picsum.photos/800/600?random=1699178400000", p.ImageURL)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
	assert.Equal(t, f.Now(), p.CreatedAt)
}

func TestFactory_FromResultCopiesTags(t *testing.T) {
	tags := []string{"a"}
	p := fixedFactory("tr").FromResult(generator.ContentResult{Title: "T", Summary: "S", Content: "C", Tags: tags})

	tags[0] = "changed"
	assert.Equal(t, "a", p.Tags[0])
}

func TestFactory_FromDraft(t *testing.T) {
	f := fixedFactory("en")

	p, err := f.FromDraft(blog.Draft{
		Title:    "Manual",
		Summary:  "S",
		Content:  "C",
		ImageURL: " https://example.com/cover.jpg ",
	})

	require.NoError(t, err)
	assert.Equal(t, "5 November 2023", p.Date)
	assert.Equal(t, "https://example.com/cover.jpg", p.ImageURL)
	assert.Equal(t, []string{"Genel"}, p.Tags)
}

func TestFactory_FromDraftKeepsGivenTags(t *testing.T) {
	p, err := fixedFactory("tr").FromDraft(blog.Draft{
		Title:   "Manual",
		Summary: "S",
		Content: "C",
		Tags:    []string{" Gümrük ", "", "Eğitim"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Gümrük", "Eğitim"}, p.Tags)
}

func TestFactory_FromDraftRequiresFields(t *testing.T) {
	_, err := fixedFactory("tr").FromDraft(blog.Draft{Title: " "})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "summary")
	assert.Contains(t, err.Error(), "content")
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "29 Şubat 2024", blog.FormatDate(d, "tr"))
	assert.Equal(t, "29 February 2024", blog.FormatDate(d, "en"))
	assert.Equal(t, "29 Şubat 2024", blog.FormatDate(d, "xx"))
	assert.False(t, blog.SupportedLocale("xx"))
}
