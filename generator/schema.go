package generator

// ResponseFormat is a named JSON schema the provider should constrain its output to.
type ResponseFormat struct {
	Name        string
	Description string
	Schema      map[string]any
}

// BlogPostFormat asks for exactly the four ContentResult fields.
var BlogPostFormat = ResponseFormat{
	Name:        "blog_post",
	Description: "Blog yazısı taslağı",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Blog yazısının başlığı",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Blog yazısının içeriği",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Kısa özet",
			},
			"tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Etiketler",
			},
		},
		"required":             []string{"title", "content", "summary", "tags"},
		"additionalProperties": false,
	},
}
