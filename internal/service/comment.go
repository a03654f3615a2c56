package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/TechForum/forum-service/internal/identity"
	"github.com/TechForum/forum-service/internal/model"
	"github.com/TechForum/forum-service/internal/rabbitmq"
	"github.com/TechForum/forum-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
	mq     Publisher
}

func newCommentService(logger *zap.Logger, repo *repository.Repository, mq Publisher) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
		mq:     mq,
	}
}

func (s *commentService) Create(ctx context.Context, author *identity.User, postID string, input dto.CreateCommentRequest) (*model.Comment, error) {
	if _, err := s.repo.KV.Get(ctx, repository.PostKey(postID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to get post(%s): %s", postID, err.Error())
		return nil, ErrInternal
	}

	profile, err := repository.GetJSON[model.UserProfile](ctx, s.repo.KV, repository.UserKey(author.ID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to get profile for user(%s): %s", author.ID, err.Error())
		return nil, ErrInternal
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		Content:   input.Content,
		Author:    profile.AuthorSnapshot(),
		CreatedAt: time.Now(),
		Likes:     0,
		LikedBy:   []string{},
	}

	if err := s.repo.KV.Set(ctx, repository.CommentKey(postID, comment.ID), comment); err != nil {
		s.logger.Sugar().Errorf("failed to store comment on post(%s): %s", postID, err.Error())
		return nil, ErrInternal
	}

	if err := s.incrReplies(ctx, postID); err != nil {
		s.logger.Sugar().Errorf("failed to increment replies on post(%s): %s", postID, err.Error())
		return nil, ErrInternal
	}

	if err := s.incrCommentsCount(ctx, author.ID); err != nil {
		s.logger.Sugar().Errorf("failed to increment comments count for user(%s): %s", author.ID, err.Error())
		return nil, ErrInternal
	}

	if s.mq != nil {
		msg := dto.MQCommentCreatedMsg{
			CommentID: comment.ID,
			PostID:    postID,
			AuthorID:  author.ID,
			CreatedAt: comment.CreatedAt,
		}
		if err := s.mq.PublishJSON(ctx, rabbitmq.COMMENT_CREATED_QUEUE, msg); err != nil {
			s.logger.Sugar().Errorf("failed to publish comment(%s) created event: %s", comment.ID, err.Error())
		}
	}

	commentsCreatedTotal.Inc()

	return comment, nil
}

func (s *commentService) ToggleLike(ctx context.Context, postID string, commentID string, userID string) (*dto.LikeResponse, error) {
	var result dto.LikeResponse

	err := s.repo.KV.Update(ctx, repository.CommentKey(postID, commentID), func(raw []byte) (interface{}, error) {
		var comment model.Comment
		if err := json.Unmarshal(raw, &comment); err != nil {
			return nil, err
		}

		result.Liked, result.Likes = toggleLike(&comment.Likes, &comment.LikedBy, userID)

		return comment, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to toggle like on comment(%s) for user(%s): %s", commentID, userID, err.Error())
		return nil, ErrInternal
	}

	likesToggledTotal.WithLabelValues("comment").Inc()

	return &result, nil
}

func (s *commentService) incrReplies(ctx context.Context, postID string) error {
	return s.repo.KV.Update(ctx, repository.PostKey(postID), func(raw []byte) (interface{}, error) {
		var post model.Post
		if err := json.Unmarshal(raw, &post); err != nil {
			return nil, err
		}

		post.Replies++

		return post, nil
	})
}

func (s *commentService) incrCommentsCount(ctx context.Context, userID string) error {
	return s.repo.KV.Update(ctx, repository.UserKey(userID), func(raw []byte) (interface{}, error) {
		var profile model.UserProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			return nil, err
		}

		profile.CommentsCount++

		return profile, nil
	})
}
