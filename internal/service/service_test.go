package service

import (
	"context"
	"strings"
	"testing"

	"github.com/TechForum/forum-service/internal/dto"
	"github.com/TechForum/forum-service/internal/identity"
	"github.com/TechForum/forum-service/internal/repository"
	"github.com/TechForum/forum-service/internal/repository/memory"
	"go.uber.org/zap"
)

// fakeProvider hands out deterministic identities so tests can sign up users
// without a real auth service.
type fakeProvider struct {
	rejectCreate error
}

func (f *fakeProvider) CreateUser(ctx context.Context, email string, password string, name string) (*identity.User, error) {
	if f.rejectCreate != nil {
		return nil, f.rejectCreate
	}

	return &identity.User{ID: "id-" + strings.Split(email, "@")[0], Email: email}, nil
}

func (f *fakeProvider) UserFromToken(ctx context.Context, token string) (*identity.User, error) {
	return nil, identity.ErrInvalidToken
}

func newTestService(t *testing.T) (*Service, repository.Store) {
	t.Helper()

	store := memory.NewKV()
	services := New(zap.NewNop(), repository.New(store), &fakeProvider{}, nil)

	return services, store
}

func signUpUser(t *testing.T, services *Service, email string, name string) *identity.User {
	t.Helper()

	user, _, err := services.User.SignUp(context.Background(), dto.SignUpRequest{
		Email:    email,
		Password: "password123",
		Name:     name,
	})
	if err != nil {
		t.Fatalf("SignUp(%s): %v", email, err)
	}

	return user
}

func createPost(t *testing.T, services *Service, author *identity.User, title string, category string, tags ...string) string {
	t.Helper()

	post, err := services.Post.Create(context.Background(), author, dto.CreatePostRequest{
		Title:    title,
		Content:  "some content",
		Category: category,
		Tags:     tags,
	})
	if err != nil {
		t.Fatalf("Create post %q: %v", title, err)
	}

	return post.ID
}
