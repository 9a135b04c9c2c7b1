package blog

import "time"

// Post is a published blog entry. JSON keys follow the front end's model.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	ImageURL  string    `json:"imageUrl"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// Draft is a manually written post coming from the admin form.
type Draft struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	ImageURL string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
}
