package model

import "time"

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Replies   int       `json:"replies"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
	IsPinned  bool      `json:"isPinned"`
}

// FullPost is a post joined with its comments at read time. Comments are
// stored under their own keys, never inside the post record.
type FullPost struct {
	Post
	Comments []*Comment `json:"comments"`
}

// HasLiked reports whether userID is in the post's likedBy set.
func (p *Post) HasLiked(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
