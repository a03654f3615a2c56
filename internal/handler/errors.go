package handler

import (
	"errors"
	"net/http"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/TechForum/forum-service/internal/identity"
	"github.com/TechForum/forum-service/internal/service"
	"github.com/gin-gonic/gin"
)

var errNotAuthorized = errors.New("user is not authorized")

// respondError maps service sentinels to status codes and writes the
// {error} envelope.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), dto.NewErrorResponse(err.Error()))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, identity.ErrRejected):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
