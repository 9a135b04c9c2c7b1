package blog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed seed/posts.json
var seedFS embed.FS

// SeedPosts returns the posts the site starts with.
func SeedPosts() ([]Post, error) {
	data, err := seedFS.ReadFile("seed/posts.json")
	if err != nil {
		return nil, fmt.Errorf("reading seed posts: %w", err)
	}
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing seed posts: %w", err)
	}
	return posts, nil
}
