// Package identity talks to the external auth provider. The provider owns
// accounts and issues HS256 access tokens; this service only creates users
// and resolves tokens back to an identity.
package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrRejected     = errors.New("identity provider rejected the request")
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Provider interface {
	CreateUser(ctx context.Context, email string, password string, name string) (*User, error)
	UserFromToken(ctx context.Context, token string) (*User, error)
}
