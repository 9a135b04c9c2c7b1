package blog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio_blog/generator"

	"github.com/google/uuid"
)

const placeholderImageURL = "https://picsum.photos/800/600?random=%d"

// defaultTags is what a manual post gets when the form leaves tags empty.
var defaultTags = []string{"Genel"}

// Factory stamps content with identity, date and image to form a Post.
type Factory struct {
	Author string
	Locale string
	Now    func() time.Time
	NewID  func() string
}

func NewFactory(author, locale string) *Factory {
	return &Factory{
		Author: author,
		Locale: locale,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

// FromResult wraps a generated draft into a publishable post.
func (f *Factory) FromResult(res generator.ContentResult) Post {
	return f.stamp(res.Title, res.Summary, res.Content, "", res.Tags)
}

// FromDraft builds a post from the admin form. Title, summary and content are required.
func (f *Factory) FromDraft(d Draft) (Post, error) {
	var errs []error
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(d.Summary) == "" {
		errs = append(errs, errors.New("summary is required"))
	}
	if strings.TrimSpace(d.Content) == "" {
		errs = append(errs, errors.New("content is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return Post{}, err
	}

	var tags []string
	for _, t := range d.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		tags = append([]string(nil), defaultTags...)
	}
	return f.stamp(d.Title, d.Summary, d.Content, strings.TrimSpace(d.ImageURL), tags), nil
}

func (f *Factory) stamp(title, summary, content, imageURL string, tags []string) Post {
	now := f.Now()
	if imageURL == "" {
		imageURL = fmt.Sprintf(placeholderImageURL, now.UnixMilli())
	}
	return Post{
		ID:        f.NewID(),
		Title:     title,
		Summary:   summary,
		Content:   content,
		Author:    f.Author,
		Date:      FormatDate(now, f.Locale),
		ImageURL:  imageURL,
		Tags:      append([]string(nil), tags...),
		CreatedAt: now,
	}
}
