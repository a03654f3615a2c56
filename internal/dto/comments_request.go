package dto

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// LikeCommentRequest carries the post the comment lives under. The field is
// deliberately not required: a missing postId simply fails the lookup.
type LikeCommentRequest struct {
	PostID string `json:"postId"`
}
