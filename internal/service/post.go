package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/TechForum/forum-service/internal/identity"
	"github.com/TechForum/forum-service/internal/model"
	"github.com/TechForum/forum-service/internal/rabbitmq"
	"github.com/TechForum/forum-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
	mq     Publisher
}

func newPostService(logger *zap.Logger, repo *repository.Repository, mq Publisher) Post {
	return &postService{
		logger: logger,
		repo:   repo,
		mq:     mq,
	}
}

// List returns every post, pinned first, then newest first. Comments are not
// joined in.
func (s *postService) List(ctx context.Context) ([]*model.Post, error) {
	raws, err := s.repo.KV.GetByPrefix(ctx, repository.POST_PREFIX)
	if err != nil {
		s.logger.Sugar().Errorf("failed to scan posts: %s", err.Error())
		return nil, ErrInternal
	}

	posts, err := repository.DecodeMany[model.Post](raws)
	if err != nil {
		s.logger.Sugar().Errorf("failed to decode posts: %s", err.Error())
		return nil, ErrInternal
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].IsPinned != posts[j].IsPinned {
			return posts[i].IsPinned
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	if posts == nil {
		posts = []*model.Post{}
	}

	return posts, nil
}

func (s *postService) FindByID(ctx context.Context, id string) (*model.FullPost, error) {
	post, err := repository.GetJSON[model.Post](ctx, s.repo.KV, repository.PostKey(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to get post(%s): %s", id, err.Error())
		return nil, ErrInternal
	}

	raws, err := s.repo.KV.GetByPrefix(ctx, repository.CommentPrefix(id))
	if err != nil {
		s.logger.Sugar().Errorf("failed to scan comments for post(%s): %s", id, err.Error())
		return nil, ErrInternal
	}

	comments, err := repository.DecodeMany[model.Comment](raws)
	if err != nil {
		s.logger.Sugar().Errorf("failed to decode comments for post(%s): %s", id, err.Error())
		return nil, ErrInternal
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})

	if comments == nil {
		comments = []*model.Comment{}
	}

	return &model.FullPost{
		Post:     *post,
		Comments: comments,
	}, nil
}

func (s *postService) Create(ctx context.Context, author *identity.User, input dto.CreatePostRequest) (*model.Post, error) {
	profile, err := s.getProfile(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &model.Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		Author:    profile.AuthorSnapshot(),
		Category:  input.Category,
		Tags:      tags,
		Replies:   0,
		Likes:     0,
		LikedBy:   []string{},
		CreatedAt: time.Now(),
		IsPinned:  false,
	}

	if err := s.repo.KV.Set(ctx, repository.PostKey(post.ID), post); err != nil {
		s.logger.Sugar().Errorf("failed to store post for user(%s): %s", author.ID, err.Error())
		return nil, ErrInternal
	}

	if err := s.incrPostsCount(ctx, author.ID); err != nil {
		s.logger.Sugar().Errorf("failed to increment posts count for user(%s): %s", author.ID, err.Error())
		return nil, ErrInternal
	}

	if s.mq != nil {
		msg := dto.MQPostCreatedMsg{
			PostID:    post.ID,
			AuthorID:  author.ID,
			Title:     post.Title,
			Category:  post.Category,
			CreatedAt: post.CreatedAt,
		}
		if err := s.mq.PublishJSON(ctx, rabbitmq.POST_CREATED_QUEUE, msg); err != nil {
			s.logger.Sugar().Errorf("failed to publish post(%s) created event: %s", post.ID, err.Error())
		}
	}

	postsCreatedTotal.Inc()

	return post, nil
}

func (s *postService) ToggleLike(ctx context.Context, postID string, userID string) (*dto.LikeResponse, error) {
	var result dto.LikeResponse

	err := s.repo.KV.Update(ctx, repository.PostKey(postID), func(raw []byte) (interface{}, error) {
		var post model.Post
		if err := json.Unmarshal(raw, &post); err != nil {
			return nil, err
		}

		result.Liked, result.Likes = toggleLike(&post.Likes, &post.LikedBy, userID)

		return post, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to toggle like on post(%s) for user(%s): %s", postID, userID, err.Error())
		return nil, ErrInternal
	}

	likesToggledTotal.WithLabelValues("post").Inc()

	return &result, nil
}

func (s *postService) getProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	profile, err := repository.GetJSON[model.UserProfile](ctx, s.repo.KV, repository.UserKey(userID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to get profile for user(%s): %s", userID, err.Error())
		return nil, ErrInternal
	}

	return profile, nil
}

func (s *postService) incrPostsCount(ctx context.Context, userID string) error {
	return s.repo.KV.Update(ctx, repository.UserKey(userID), func(raw []byte) (interface{}, error) {
		var profile model.UserProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			return nil, err
		}

		profile.PostsCount++

		return profile, nil
	})
}

// toggleLike flips userID's membership in likedBy and keeps likes in
// lock-step, clamped at zero. Returns the new liked state and count.
func toggleLike(likes *int, likedBy *[]string, userID string) (bool, int) {
	for i, id := range *likedBy {
		if id == userID {
			*likedBy = append((*likedBy)[:i], (*likedBy)[i+1:]...)
			if *likes > 0 {
				*likes--
			}
			return false, *likes
		}
	}

	*likedBy = append(*likedBy, userID)
	*likes++

	return true, *likes
}
