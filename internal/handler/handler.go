package handler

import (
	"fmt"
	"strings"

	"github.com/TechForum/forum-service/internal/identity"
	"github.com/TechForum/forum-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	p := ginprometheus.NewPrometheus("forum")
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := c.Request.URL.Path
		for _, param := range c.Params {
			url = strings.Replace(url, param.Value, fmt.Sprintf(":%s", param.Key), 1)
		}
		return url
	}
	p.Use(r)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", h.authSignUp)
			auth.GET("/profile", h.authMiddleware, h.authProfile)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", h.postsList)
			posts.POST("", h.authMiddleware, h.postsCreate)

			post := posts.Group("/:postID")
			{
				post.GET("", h.postsGetByID)
				post.POST("/like", h.authMiddleware, h.postsToggleLike)
				post.POST("/comments", h.authMiddleware, h.commentsCreate)
			}
		}

		comments := v1.Group("/comments")
		{
			comments.POST("/:commentID/like", h.authMiddleware, h.commentsToggleLike)
		}

		v1.GET("/categories", h.categoriesGet)
		v1.GET("/trending", h.trendingGet)
	}

	return r
}

func (h *Handler) getUserFromRequest(c *gin.Context) *identity.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(identity.User)
	if !ok {
		return nil
	}

	return &user
}
