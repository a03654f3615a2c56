package handler

import (
	"net/http"
	"strings"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsList(c *gin.Context) {
	posts, err := h.services.Post.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostsResponse{Posts: posts})
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostResponse{Post: post})
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("title, content, and category are required"))
		return
	}

	post, err := h.services.Post.Create(c.Request.Context(), user, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedPostResponse{Post: post})
}

func (h *Handler) postsToggleLike(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID := strings.TrimSpace(c.Param("postID"))

	result, err := h.services.Post.ToggleLike(c.Request.Context(), postID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
