package service

import (
	"context"
	"errors"
	"testing"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/TechForum/forum-service/internal/identity"
)

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	services, _ := newTestService(t)
	alice := signUpUser(t, services, "alice@example.com", "Alice")
	bob := signUpUser(t, services, "bob@example.com", "Bob")
	postID := createPost(t, services, alice, "A", "Gaming")

	t.Run("persists the comment and bumps both counters", func(t *testing.T) {
		comment, err := services.Comment.Create(ctx, bob, postID, dto.CreateCommentRequest{Content: "nice"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if comment.PostID != postID {
			t.Errorf("PostID: got %q, want %q", comment.PostID, postID)
		}
		if comment.Likes != 0 || len(comment.LikedBy) != 0 {
			t.Errorf("fresh comment: likes=%d likedBy=%v", comment.Likes, comment.LikedBy)
		}
		if comment.Author.ID != bob.ID || comment.Author.Name != "Bob" {
			t.Errorf("author snapshot: got %+v", comment.Author)
		}

		post, err := services.Post.FindByID(ctx, postID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if len(post.Comments) != 1 {
			t.Fatalf("got %d comments, want 1", len(post.Comments))
		}
		if post.Replies != 1 {
			t.Errorf("Replies: got %d, want 1", post.Replies)
		}

		profile, err := services.User.GetProfile(ctx, bob.ID)
		if err != nil {
			t.Fatalf("GetProfile: %v", err)
		}
		if profile.CommentsCount != 1 {
			t.Errorf("CommentsCount: got %d, want 1", profile.CommentsCount)
		}
	})

	t.Run("missing post returns ErrPostNotFound", func(t *testing.T) {
		_, err := services.Comment.Create(ctx, bob, "no-such-post", dto.CreateCommentRequest{Content: "hi"})
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound, got %v", err)
		}
	})

	t.Run("author without a profile returns ErrProfileNotFound", func(t *testing.T) {
		_, err := services.Comment.Create(ctx, &identity.User{ID: "ghost"}, postID, dto.CreateCommentRequest{Content: "hi"})
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})
}

func TestCommentsSortedByCreatedAt(t *testing.T) {
	ctx := context.Background()
	services, _ := newTestService(t)
	alice := signUpUser(t, services, "alice@example.com", "Alice")
	postID := createPost(t, services, alice, "A", "Gaming")

	for _, content := range []string{"first", "second", "third"} {
		if _, err := services.Comment.Create(ctx, alice, postID, dto.CreateCommentRequest{Content: content}); err != nil {
			t.Fatalf("Create(%s): %v", content, err)
		}
	}

	post, err := services.Post.FindByID(ctx, postID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(post.Comments) != 3 {
		t.Fatalf("got %d comments, want 3", len(post.Comments))
	}
	for i, want := range []string{"first", "second", "third"} {
		if post.Comments[i].Content != want {
			t.Errorf("comments[%d]: got %q, want %q", i, post.Comments[i].Content, want)
		}
	}
}

func TestToggleLikeComment(t *testing.T) {
	ctx := context.Background()
	services, _ := newTestService(t)
	alice := signUpUser(t, services, "alice@example.com", "Alice")
	postID := createPost(t, services, alice, "A", "Gaming")

	comment, err := services.Comment.Create(ctx, alice, postID, dto.CreateCommentRequest{Content: "like me"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := services.Comment.ToggleLike(ctx, postID, comment.ID, alice.ID)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if !result.Liked || result.Likes != 1 {
		t.Errorf("first toggle: got liked=%v likes=%d, want true/1", result.Liked, result.Likes)
	}

	result, err = services.Comment.ToggleLike(ctx, postID, comment.ID, alice.ID)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if result.Liked || result.Likes != 0 {
		t.Errorf("second toggle: got liked=%v likes=%d, want false/0", result.Liked, result.Likes)
	}

	t.Run("wrong post scope returns ErrCommentNotFound", func(t *testing.T) {
		_, err := services.Comment.ToggleLike(ctx, "other-post", comment.ID, alice.ID)
		if !errors.Is(err, ErrCommentNotFound) {
			t.Fatalf("expected ErrCommentNotFound, got %v", err)
		}
	})
}
