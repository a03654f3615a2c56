package dto

import "github.com/TechForum/forum-service/internal/model"

// ErrorResponse is the error envelope every failing handler returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

type LikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

type ProfileResponse struct {
	Profile *model.UserProfile `json:"profile"`
}

type PostsResponse struct {
	Posts []*model.Post `json:"posts"`
}

type PostResponse struct {
	Post *model.FullPost `json:"post"`
}

type CreatedPostResponse struct {
	Post *model.Post `json:"post"`
}

type CommentResponse struct {
	Comment *model.Comment `json:"comment"`
}

type CategoriesResponse struct {
	Categories map[string]int `json:"categories"`
}

type TrendingResponse struct {
	Trending []string `json:"trending"`
}
