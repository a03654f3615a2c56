package handler

import (
	"net/http"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) authSignUp(c *gin.Context) {
	var input dto.SignUpRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("email, password, and name are required"))
		return
	}

	user, profile, err := h.services.User.SignUp(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "profile": profile})
}

func (h *Handler) authProfile(c *gin.Context) {
	user := h.getUserFromRequest(c)

	profile, err := h.services.User.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Profile: profile})
}
