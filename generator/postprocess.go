package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// wireResult uses pointers so an absent key is distinguishable from an empty one.
type wireResult struct {
	Title   *string   `json:"title"`
	Summary *string   `json:"summary"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// PostProcess decodes and validates the raw model text.
// The payload is never repaired: anything off-shape is a *ParseError.
func PostProcess(raw string) (ContentResult, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ContentResult{}, ErrEmptyResponse
	}

	var w wireResult
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		return ContentResult{}, &ParseError{Payload: raw, Err: err}
	}

	var missing []string
	if w.Title == nil {
		missing = append(missing, "title")
	}
	if w.Summary == nil {
		missing = append(missing, "summary")
	}
	if w.Content == nil {
		missing = append(missing, "content")
	}
	if w.Tags == nil {
		missing = append(missing, "tags")
	}
	if len(missing) > 0 {
		return ContentResult{}, &ParseError{
			Payload: raw,
			Err:     fmt.Errorf("missing required keys: %s", strings.Join(missing, ", ")),
		}
	}

	res := ContentResult{
		Title:   *w.Title,
		Summary: *w.Summary,
		Content: *w.Content,
		Tags:    *w.Tags,
	}
	if err := Validate(res); err != nil {
		return ContentResult{}, &ParseError{Payload: raw, Err: err}
	}
	return res, nil
}

// Validate checks the semantic shape of a result. Tag and paragraph counts are
// requested from the model but not enforced here.
func Validate(res ContentResult) error {
	var errs []error
	if strings.TrimSpace(res.Title) == "" {
		errs = append(errs, errors.New("title is empty"))
	}
	if strings.TrimSpace(res.Summary) == "" {
		errs = append(errs, errors.New("summary is empty"))
	}
	if strings.TrimSpace(res.Content) == "" {
		errs = append(errs, errors.New("content is empty"))
	}
	if len(res.Tags) == 0 {
		errs = append(errs, errors.New("tags is empty"))
	}
	for i, tag := range res.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, fmt.Errorf("tag %d is blank", i))
		}
	}
	return errors.Join(errs...)
}
