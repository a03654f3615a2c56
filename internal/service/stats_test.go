package service

import (
	"context"
	"testing"
)

func TestCategoryCounts(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store maps every fixed category to zero", func(t *testing.T) {
		services, _ := newTestService(t)

		counts, err := services.Stats.CategoryCounts(ctx)
		if err != nil {
			t.Fatalf("CategoryCounts: %v", err)
		}
		if len(counts) != 4 {
			t.Fatalf("got %d categories, want 4", len(counts))
		}
		for _, category := range Categories {
			if counts[category] != 0 {
				t.Errorf("%s: got %d, want 0", category, counts[category])
			}
		}
	})

	t.Run("counts posts per category and ignores unknown ones", func(t *testing.T) {
		services, _ := newTestService(t)
		alice := signUpUser(t, services, "alice@example.com", "Alice")

		createPost(t, services, alice, "g1", "Gaming")
		createPost(t, services, alice, "g2", "Gaming")
		createPost(t, services, alice, "p1", "Programming")
		createPost(t, services, alice, "x1", "Off Topic")

		counts, err := services.Stats.CategoryCounts(ctx)
		if err != nil {
			t.Fatalf("CategoryCounts: %v", err)
		}
		if counts["Gaming"] != 2 {
			t.Errorf("Gaming: got %d, want 2", counts["Gaming"])
		}
		if counts["Programming"] != 1 {
			t.Errorf("Programming: got %d, want 1", counts["Programming"])
		}
		if counts["Design"] != 0 {
			t.Errorf("Design: got %d, want 0", counts["Design"])
		}
		if _, exists := counts["Off Topic"]; exists {
			t.Error("unknown category must not appear in the mapping")
		}
	})
}

func TestTrendingTags(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields no tags", func(t *testing.T) {
		services, _ := newTestService(t)

		trending, err := services.Stats.TrendingTags(ctx)
		if err != nil {
			t.Fatalf("TrendingTags: %v", err)
		}
		if trending == nil {
			t.Fatal("expected an empty slice, got nil")
		}
		if len(trending) != 0 {
			t.Fatalf("got %d tags, want 0", len(trending))
		}
	})

	t.Run("returns at most five tags ordered by frequency", func(t *testing.T) {
		services, _ := newTestService(t)
		alice := signUpUser(t, services, "alice@example.com", "Alice")

		createPost(t, services, alice, "p1", "Gaming", "go", "redis", "gin")
		createPost(t, services, alice, "p2", "Gaming", "go", "redis")
		createPost(t, services, alice, "p3", "Gaming", "go")
		createPost(t, services, alice, "p4", "Gaming", "zap", "viper", "pgx")

		trending, err := services.Stats.TrendingTags(ctx)
		if err != nil {
			t.Fatalf("TrendingTags: %v", err)
		}
		if len(trending) != 5 {
			t.Fatalf("got %d tags, want 5", len(trending))
		}
		if trending[0] != "go" {
			t.Errorf("trending[0]: got %q, want %q", trending[0], "go")
		}
		if trending[1] != "redis" {
			t.Errorf("trending[1]: got %q, want %q", trending[1], "redis")
		}
		// The remaining three all have count 1; their mutual order is
		// unspecified, but every one of them must beat nothing.
		seen := map[string]bool{}
		for _, tag := range trending[2:] {
			seen[tag] = true
		}
		if len(seen) != 3 {
			t.Errorf("tail tags: got %v", trending[2:])
		}
	})
}
