// Package gateway is a thin client for the forum API. Each method issues a
// single HTTP call and decodes the JSON response; any non-2xx status becomes
// an *Error carrying the server's message. There is no retry, caching, or
// request coalescing.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error is returned for every non-2xx response. Message is the server's
// error field when present, otherwise a per-call fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Profile struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"createdAt"`
	PostsCount    int       `json:"postsCount"`
	CommentsCount int       `json:"commentsCount"`
}

type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Username string `json:"username"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
}

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Replies   int       `json:"replies"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
	IsPinned  bool      `json:"isPinned"`
	Comments  []Comment `json:"comments,omitempty"`
}

type SignUpResult struct {
	User    json.RawMessage `json:"user"`
	Profile Profile         `json:"profile"`
}

type LikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

type CreatePostInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) SignUp(ctx context.Context, email string, password string, name string) (*SignUpResult, error) {
	body := map[string]string{"email": email, "password": password, "name": name}

	var result SignUpResult
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", body, &result, "Signup failed"); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	var result struct {
		Profile Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", accessToken, nil, &result, "Failed to fetch profile"); err != nil {
		return nil, err
	}

	return &result.Profile, nil
}

func (c *Client) GetPosts(ctx context.Context) ([]Post, error) {
	var result struct {
		Posts []Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts", "", nil, &result, "Failed to fetch posts"); err != nil {
		return nil, err
	}

	return result.Posts, nil
}

func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	var result struct {
		Post Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts/"+postID, "", nil, &result, "Failed to fetch post"); err != nil {
		return nil, err
	}

	return &result.Post, nil
}

func (c *Client) CreatePost(ctx context.Context, accessToken string, input CreatePostInput) (*Post, error) {
	var result struct {
		Post Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/posts", accessToken, input, &result, "Failed to create post"); err != nil {
		return nil, err
	}

	return &result.Post, nil
}

func (c *Client) LikePost(ctx context.Context, accessToken string, postID string) (*LikeResult, error) {
	var result LikeResult
	if err := c.do(ctx, http.MethodPost, "/posts/"+postID+"/like", accessToken, nil, &result, "Failed to update like"); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) CreateComment(ctx context.Context, accessToken string, postID string, content string) (*Comment, error) {
	body := map[string]string{"content": content}

	var result struct {
		Comment Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, "/posts/"+postID+"/comments", accessToken, body, &result, "Failed to create comment"); err != nil {
		return nil, err
	}

	return &result.Comment, nil
}

func (c *Client) LikeComment(ctx context.Context, accessToken string, commentID string, postID string) (*LikeResult, error) {
	body := map[string]string{"postId": postID}

	var result LikeResult
	if err := c.do(ctx, http.MethodPost, "/comments/"+commentID+"/like", accessToken, body, &result, "Failed to update comment like"); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) GetCategories(ctx context.Context) (map[string]int, error) {
	var result struct {
		Categories map[string]int `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &result, "Failed to fetch categories"); err != nil {
		return nil, err
	}

	return result.Categories, nil
}

func (c *Client) GetTrending(ctx context.Context) ([]string, error) {
	var result struct {
		Trending []string `json:"trending"`
	}
	if err := c.do(ctx, http.MethodGet, "/trending", "", nil, &result, "Failed to fetch trending"); err != nil {
		return nil, err
	}

	return result.Trending, nil
}

func (c *Client) do(ctx context.Context, method string, path string, accessToken string, body interface{}, out interface{}, fallback string) error {
	var reqBody io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Add("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallback
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errBody); err == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &Error{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
