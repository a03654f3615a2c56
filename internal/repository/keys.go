package repository

import "fmt"

const (
	USER_KEY    = "user:%s"       // <userID>
	POST_KEY    = "post:%s"       // <postID>
	COMMENT_KEY = "comment:%s:%s" // <postID>:<commentID>

	POST_PREFIX = "post:"
)

func UserKey(userID string) string {
	return fmt.Sprintf(USER_KEY, userID)
}

func PostKey(postID string) string {
	return fmt.Sprintf(POST_KEY, postID)
}

func CommentKey(postID string, commentID string) string {
	return fmt.Sprintf(COMMENT_KEY, postID, commentID)
}

// CommentPrefix scans all comments of one post.
func CommentPrefix(postID string) string {
	return fmt.Sprintf("comment:%s:", postID)
}
