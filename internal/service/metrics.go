package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forum_signups_total",
			Help: "Total number of successful signups.",
		})
	postsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forum_posts_created_total",
			Help: "Total number of posts created.",
		})
	commentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forum_comments_created_total",
			Help: "Total number of comments created.",
		})
	likesToggledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_likes_toggled_total",
			Help: "Total number of like toggles.",
		}, []string{"target"})
)
