package services

import (
	"context"

	"github.com/karimfs/skybook/internal/client/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

// AuthService talks to the authentication endpoints. Persisting the
// resulting session is the session manager's job, not this service's.
type AuthService struct {
	backend Backend
}

func NewAuthService(backend Backend) *AuthService {
	return &AuthService{backend: backend}
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.backend.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.backend.Post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.backend.Get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
