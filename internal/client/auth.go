package client

import (
	"context"

	"github.com/deskhub-io/deskhub-console/internal/models"
)

// AuthService handles session issuance against the backend.
type AuthService struct {
	client *Client
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

// Login exchanges credentials for a bearer token and user snapshot.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.AuthSession, error) {
	var result models.AuthSession
	err := s.client.post(ctx, "/auth/login", &loginRequest{
		Username: username,
		Password: password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account. New accounts get the USER role; the backend
// replies with a ready-to-use session.
func (s *AuthService) Register(ctx context.Context, username, email, password, fullName string) (*models.AuthSession, error) {
	var result models.AuthSession
	err := s.client.post(ctx, "/auth/register", &registerRequest{
		Username: username,
		Email:    email,
		Password: password,
		FullName: fullName,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
