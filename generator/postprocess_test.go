package generator_test

import (
	"errors"
	"testing"

	"portfolio_blog/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostProcess_Valid(t *testing.T) {
	res, err := generator.PostProcess(`{"title":"T","summary":"S","content":"C","tags":["a","b","c"]}`)

	require.NoError(t, err)
	assert.Equal(t, generator.ContentResult{
		Title:   "T",
		Summary: "S",
		Content: "C",
		Tags:    []string{"a", "b", "c"},
	}, res)
}

func TestPostProcess_KeepsDuplicateTagsInOrder(t *testing.T) {
	res, err := generator.PostProcess(`{"title":"T","summary":"S","content":"C","tags":["b","a","b"]}`)

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "b"}, res.Tags)
}

func TestPostProcess_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: generator.ErrEmptyResponse},
		{name: "whitespace", input: " \n\t", wantErr: generator.ErrEmptyResponse},
		{name: "malformed json", input: "{not valid json", wantErr: generator.ErrParse},
		{name: "missing tags", input: `{"title":"T","summary":"S","content":"C"}`, wantErr: generator.ErrParse},
		{name: "null tags", input: `{"title":"T","summary":"S","content":"C","tags":null}`, wantErr: generator.ErrParse},
		{name: "missing title", input: `{"summary":"S","content":"C","tags":["a"]}`, wantErr: generator.ErrParse},
		{name: "tags not array", input: `{"title":"T","summary":"S","content":"C","tags":"a"}`, wantErr: generator.ErrParse},
		{name: "title not string", input: `{"title":1,"summary":"S","content":"C","tags":["a"]}`, wantErr: generator.ErrParse},
		{name: "blank summary", input: `{"title":"T","summary":"  ","content":"C","tags":["a"]}`, wantErr: generator.ErrParse},
		{name: "empty tags", input: `{"title":"T","summary":"S","content":"C","tags":[]}`, wantErr: generator.ErrParse},
		{name: "blank tag", input: `{"title":"T","summary":"S","content":"C","tags":["a",""]}`, wantErr: generator.ErrParse},
		{name: "fenced json", input: "```json\n{\"title\":\"T\",\"summary\":\"S\",\"content\":\"C\",\"tags\":[\"a\"]}\n```", wantErr: generator.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := generator.PostProcess(tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, generator.ContentResult{}, res)
		})
	}
}

func TestPostProcess_ParseErrorKeepsPayload(t *testing.T) {
	_, err := generator.PostProcess("{not valid json")

	var perr *generator.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "{not valid json", perr.Payload)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	err := generator.Validate(generator.ContentResult{Tags: []string{" "}})

	require.Error(t, err)
	for _, msg := range []string{"title", "summary", "content", "tag 0"} {
		assert.Contains(t, err.Error(), msg)
	}
}
