package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/TechForum/forum-service/internal/identity"
	"github.com/TechForum/forum-service/internal/model"
	"github.com/TechForum/forum-service/internal/rabbitmq"
	"github.com/TechForum/forum-service/internal/repository"
	"go.uber.org/zap"
)

// Placeholder avatar assigned to every new profile; users have no avatar
// upload flow.
const defaultAvatarURL = "https://images.unsplash.com/photo-1640960543409-dbe56ccc30e2?w=150&h=150&fit=crop&crop=face"

type userService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	provider identity.Provider
	mq       Publisher
}

func newUserService(logger *zap.Logger, repo *repository.Repository, provider identity.Provider, mq Publisher) User {
	return &userService{
		logger:   logger,
		repo:     repo,
		provider: provider,
		mq:       mq,
	}
}

func (s *userService) SignUp(ctx context.Context, input dto.SignUpRequest) (*identity.User, *model.UserProfile, error) {
	user, err := s.provider.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return nil, nil, err
		}
		s.logger.Sugar().Errorf("failed to create user with identity provider: %s", err.Error())
		return nil, nil, ErrInternal
	}

	profile := &model.UserProfile{
		ID:            user.ID,
		Email:         user.Email,
		Name:          input.Name,
		Avatar:        defaultAvatarURL,
		Username:      strings.Split(input.Email, "@")[0],
		CreatedAt:     time.Now(),
		PostsCount:    0,
		CommentsCount: 0,
	}

	if err := s.repo.KV.Set(ctx, repository.UserKey(user.ID), profile); err != nil {
		s.logger.Sugar().Errorf("failed to store profile for user(%s): %s", user.ID, err.Error())
		return nil, nil, ErrInternal
	}

	if s.mq != nil {
		msg := dto.MQUserRegisteredMsg{
			UserID:    user.ID,
			Email:     user.Email,
			CreatedAt: profile.CreatedAt,
		}
		if err := s.mq.PublishJSON(ctx, rabbitmq.USER_REGISTERED_QUEUE, msg); err != nil {
			s.logger.Sugar().Errorf("failed to publish user(%s) registered event: %s", user.ID, err.Error())
		}
	}

	signupsTotal.Inc()

	return user, profile, nil
}

func (s *userService) ResolveToken(ctx context.Context, token string) (*identity.User, error) {
	return s.provider.UserFromToken(ctx, token)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
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
