package generator

// ContentRequest is what a caller asks the composer for.
type ContentRequest struct {
	Topic string `json:"topic"`
}

// ContentResult is the structured draft returned by the model.
type ContentResult struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
