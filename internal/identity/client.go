package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type Config struct {
	// Origin is the base URL of the provider's admin API.
	Origin string
	// ServiceKey authorizes admin calls (user creation).
	ServiceKey string
	// JWTSecret is the shared secret the provider signs access tokens with.
	JWTSecret []byte
}

type Client struct {
	cfg        Config
	logger     *zap.Logger
	httpClient *http.Client
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		logger:     logger,
		httpClient: &http.Client{},
	}
}

type createUserRequest struct {
	Email        string            `json:"email"`
	Password     string            `json:"password"`
	EmailConfirm bool              `json:"email_confirm"`
	UserMetadata map[string]string `json:"user_metadata"`
}

// CreateUser registers an account with the provider. The email is confirmed
// immediately since no mail server is configured for this deployment.
func (c *Client) CreateUser(ctx context.Context, email string, password string, name string) (*User, error) {
	endpoint := "/admin/users"
	url := c.cfg.Origin + endpoint

	reqBody, err := json.Marshal(createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: map[string]string{"name": name},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		c.logger.Sugar().Errorf("failed to create request to identity provider: %s", err.Error())
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+c.cfg.ServiceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("failed to send request to identity provider: %s", err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Sugar().Errorf("failed to read response body from identity provider: %s", err.Error())
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var bodyJSON map[string]interface{}
		message := "failed to create user"
		if err := json.Unmarshal(body, &bodyJSON); err == nil {
			if msg, ok := bodyJSON["error"].(string); ok {
				message = msg
			} else if msg, ok := bodyJSON["msg"].(string); ok {
				message = msg
			}
		}
		c.logger.Sugar().Errorf("ERROR from identity provider endpoint(%s), code(%d): %s", endpoint, resp.StatusCode, message)
		return nil, fmt.Errorf("%w: %s", ErrRejected, message)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		c.logger.Sugar().Errorf("failed to decode user response from identity provider: %s", err.Error())
		return nil, err
	}

	return &user, nil
}

// UserFromToken verifies the provider's access token locally with the shared
// secret and extracts the identity from its claims.
func (c *Client) UserFromToken(ctx context.Context, token string) (*User, error) {
	parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.cfg.JWTSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &User{ID: sub, Email: email}, nil
}
