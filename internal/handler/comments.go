package handler

import (
	"net/http"
	"strings"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID := strings.TrimSpace(c.Param("postID"))

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("content is required"))
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), user, postID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CommentResponse{Comment: comment})
}

func (h *Handler) commentsToggleLike(c *gin.Context) {
	user := h.getUserFromRequest(c)

	commentID := strings.TrimSpace(c.Param("commentID"))

	// A missing or malformed body is not an error here: an empty postId just
	// fails the comment lookup below.
	var input dto.LikeCommentRequest
	_ = c.ShouldBindJSON(&input)

	result, err := h.services.Comment.ToggleLike(c.Request.Context(), input.PostID, commentID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
