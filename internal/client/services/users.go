package services

import (
	"context"

	"github.com/karimfs/skybook/internal/client/models"
)

type UserRequest struct {
	Email     string      `json:"email,omitempty"`
	Password  string      `json:"password,omitempty"`
	FirstName string      `json:"firstName,omitempty"`
	LastName  string      `json:"lastName,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Role      models.Role `json:"role,omitempty"`
	IsActive  *bool       `json:"isActive,omitempty"`
}

type UsersService struct {
	backend Backend
}

func NewUsersService(backend Backend) *UsersService {
	return &UsersService{backend: backend}
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.backend.Get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UsersService) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.backend.Get(ctx, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersService) Create(ctx context.Context, req UserRequest) (*models.User, error) {
	var user models.User
	if err := s.backend.Post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersService) Update(ctx context.Context, id string, req UserRequest) (*models.User, error) {
	var user models.User
	if err := s.backend.Patch(ctx, "/users/"+id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersService) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, "/users/"+id)
}
