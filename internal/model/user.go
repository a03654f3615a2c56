package model

import "time"

type UserProfile struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"createdAt"`
	PostsCount    int       `json:"postsCount"`
	CommentsCount int       `json:"commentsCount"`
}

// Author is the denormalized snapshot of a profile embedded into posts and
// comments at creation time. Profile edits never flow back into it.
type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Username string `json:"username"`
}

func (p *UserProfile) AuthorSnapshot() Author {
	return Author{
		ID:       p.ID,
		Name:     p.Name,
		Avatar:   p.Avatar,
		Username: p.Username,
	}
}
