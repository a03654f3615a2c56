package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	// Go 1.21's ServeMux predates "METHOD /path" patterns, so split the
	// method out and enforce it in a wrapper instead.
	handle := func(pattern string, h http.HandlerFunc) {
		method, path, _ := strings.Cut(pattern, " ")
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.NotFound(w, r)
				return
			}
			h(w, r)
		})
	}

	handle("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("signup body: %v", err)
		}
		if body["email"] == "" || body["password"] == "" || body["name"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Email, password, and name are required"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":    map[string]string{"id": "u1", "email": body["email"]},
			"profile": map[string]interface{}{"id": "u1", "username": "alice", "postsCount": 0},
		})
	})

	handle("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"posts": []map[string]interface{}{
				{"id": "p1", "title": "hello", "likes": 2, "likedBy": []string{"a", "b"}},
			},
		})
	})

	handle("GET /posts/p1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"post": map[string]interface{}{
				"id":       "p1",
				"title":    "hello",
				"replies":  1,
				"comments": []map[string]interface{}{{"id": "c1", "postId": "p1", "content": "hi"}},
			},
		})
	})

	handle("GET /posts/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Post not found"})
	})

	handle("POST /posts/p1/like", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"liked": true, "likes": 3})
	})

	handle("GET /trending", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	return httptest.NewServer(mux)
}

func TestGatewayCalls(t *testing.T) {
	ctx := context.Background()
	srv := testServer(t)
	defer srv.Close()

	client := NewClient(srv.URL)

	t.Run("signup decodes user and profile", func(t *testing.T) {
		result, err := client.SignUp(ctx, "alice@example.com", "password123", "Alice")
		if err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		if result.Profile.Username != "alice" {
			t.Errorf("profile: got %+v", result.Profile)
		}
	})

	t.Run("posts list round-trips", func(t *testing.T) {
		posts, err := client.GetPosts(ctx)
		if err != nil {
			t.Fatalf("GetPosts: %v", err)
		}
		if len(posts) != 1 || posts[0].ID != "p1" || posts[0].Likes != 2 {
			t.Errorf("posts: got %+v", posts)
		}
	})

	t.Run("single post carries its comments", func(t *testing.T) {
		post, err := client.GetPost(ctx, "p1")
		if err != nil {
			t.Fatalf("GetPost: %v", err)
		}
		if len(post.Comments) != 1 || post.Comments[0].Content != "hi" {
			t.Errorf("comments: got %+v", post.Comments)
		}
	})

	t.Run("like sends the bearer token", func(t *testing.T) {
		result, err := client.LikePost(ctx, "good-token", "p1")
		if err != nil {
			t.Fatalf("LikePost: %v", err)
		}
		if !result.Liked || result.Likes != 3 {
			t.Errorf("result: got %+v", result)
		}
	})
}

func TestGatewayErrors(t *testing.T) {
	ctx := context.Background()
	srv := testServer(t)
	defer srv.Close()

	client := NewClient(srv.URL)

	t.Run("server message is surfaced", func(t *testing.T) {
		_, err := client.GetPost(ctx, "missing")
		if err == nil {
			t.Fatal("expected an error")
		}

		var gwErr *Error
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if gwErr.Status != http.StatusNotFound {
			t.Errorf("Status: got %d, want 404", gwErr.Status)
		}
		if gwErr.Message != "Post not found" {
			t.Errorf("Message: got %q", gwErr.Message)
		}
	})

	t.Run("missing token is surfaced as the server's message", func(t *testing.T) {
		_, err := client.LikePost(ctx, "bad-token", "p1")
		var gwErr *Error
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected *Error, got %v", err)
		}
		if gwErr.Status != http.StatusUnauthorized || gwErr.Message != "Unauthorized" {
			t.Errorf("got %+v", gwErr)
		}
	})

	t.Run("non-JSON error body falls back to the call's message", func(t *testing.T) {
		_, err := client.GetTrending(ctx)
		var gwErr *Error
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected *Error, got %v", err)
		}
		if gwErr.Message != "Failed to fetch trending" {
			t.Errorf("Message: got %q", gwErr.Message)
		}
	})
}
