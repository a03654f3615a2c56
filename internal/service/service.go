package service

import (
	"context"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/TechForum/forum-service/internal/identity"
	"github.com/TechForum/forum-service/internal/model"
	"github.com/TechForum/forum-service/internal/repository"
	"go.uber.org/zap"
)

type User interface {
	SignUp(ctx context.Context, input dto.SignUpRequest) (*identity.User, *model.UserProfile, error)
	ResolveToken(ctx context.Context, token string) (*identity.User, error)
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
}

type Post interface {
	List(ctx context.Context) ([]*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.FullPost, error)
	Create(ctx context.Context, author *identity.User, input dto.CreatePostRequest) (*model.Post, error)
	ToggleLike(ctx context.Context, postID string, userID string) (*dto.LikeResponse, error)
}

type Comment interface {
	Create(ctx context.Context, author *identity.User, postID string, input dto.CreateCommentRequest) (*model.Comment, error)
	ToggleLike(ctx context.Context, postID string, commentID string, userID string) (*dto.LikeResponse, error)
}

type Stats interface {
	CategoryCounts(ctx context.Context) (map[string]int, error)
	TrendingTags(ctx context.Context) ([]string, error)
}

// Publisher is the broker surface services need. A nil Publisher disables
// event publishing without touching any call site.
type Publisher interface {
	PublishJSON(ctx context.Context, queue string, v interface{}) error
}

type Service struct {
	User
	Post
	Comment
	Stats
}

func New(logger *zap.Logger, repo *repository.Repository, provider identity.Provider, mq Publisher) *Service {
	return &Service{
		User:    newUserService(logger, repo, provider, mq),
		Post:    newPostService(logger, repo, mq),
		Comment: newCommentService(logger, repo, mq),
		Stats:   newStatsService(logger, repo),
	}
}
