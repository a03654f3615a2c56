package handler

import (
	"net/http"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) categoriesGet(c *gin.Context) {
	categories, err := h.services.Stats.CategoryCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

func (h *Handler) trendingGet(c *gin.Context) {
	trending, err := h.services.Stats.TrendingTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TrendingResponse{Trending: trending})
}
