package service

import (
	"context"
	"sort"

	"github.com/TechForum/forum-service/internal/model"
	"github.com/TechForum/forum-service/internal/repository"
	"go.uber.org/zap"
)

// Categories is the fixed set the forum exposes. Posts outside it are
// excluded from the counts, not rejected.
var Categories = []string{
	"General Discussion",
	"Gaming",
	"Programming",
	"Design",
}

const trendingLimit = 5

type statsService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newStatsService(logger *zap.Logger, repo *repository.Repository) Stats {
	return &statsService{
		logger: logger,
		repo:   repo,
	}
}

func (s *statsService) CategoryCounts(ctx context.Context) (map[string]int, error) {
	posts, err := s.scanPosts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(Categories))
	for _, category := range Categories {
		counts[category] = 0
	}

	for _, post := range posts {
		if _, known := counts[post.Category]; known {
			counts[post.Category]++
		}
	}

	return counts, nil
}

func (s *statsService) TrendingTags(ctx context.Context) ([]string, error) {
	posts, err := s.scanPosts(ctx)
	if err != nil {
		return nil, err
	}

	tagCounts := make(map[string]int)
	var tags []string
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, seen := tagCounts[tag]; !seen {
				tags = append(tags, tag)
			}
			tagCounts[tag]++
		}
	}

	// Stable sort on count only: ties keep whatever order the scan produced,
	// which is unspecified and callers must not rely on.
	sort.SliceStable(tags, func(i, j int) bool {
		return tagCounts[tags[i]] > tagCounts[tags[j]]
	})

	if len(tags) > trendingLimit {
		tags = tags[:trendingLimit]
	}
	if tags == nil {
		tags = []string{}
	}

	return tags, nil
}

func (s *statsService) scanPosts(ctx context.Context) ([]*model.Post, error) {
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

	return posts, nil
}
