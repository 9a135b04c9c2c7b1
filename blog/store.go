package blog

import (
	"strings"
	"sync"
)

// Store holds posts in memory, newest first, for the process lifetime.
type Store struct {
	mu    sync.RWMutex
	posts []Post
}

// NewStore seeds the store; seed is kept in the given order.
func NewStore(seed ...Post) *Store {
	return &Store{posts: append([]Post(nil), seed...)}
}

// Prepend adds p as the newest post.
func (s *Store) Prepend(p Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]Post{p}, s.posts...)
}

// Remove deletes the post with id and reports whether it existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Get(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// List returns a copy of all posts, newest first.
func (s *Store) List() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Post(nil), s.posts...)
}

// Search matches query against titles, case-insensitively. An empty query lists everything.
func (s *Store) Search(query string) []Post {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.List()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Post
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// Latest returns up to n newest posts.
func (s *Store) Latest(n int) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.posts) {
		n = len(s.posts)
	}
	if n < 0 {
		n = 0
	}
	return append([]Post(nil), s.posts[:n]...)
}

// TagCounts counts how many posts carry each tag.
func (s *Store) TagCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, p := range s.posts {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	return counts
}
