package services

import (
	"context"

	"github.com/karimfs/skybook/internal/client/models"
)

type PassengerProfileRequest struct {
	FirstName           string `json:"firstName,omitempty"`
	MiddleName          string `json:"middleName,omitempty"`
	LastName            string `json:"lastName,omitempty"`
	Suffix              string `json:"suffix,omitempty"`
	DateOfBirth         string `json:"dateOfBirth,omitempty"`
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	RedressNumber       string `json:"redressNumber,omitempty"`
	KnownTravelerNumber string `json:"knownTravelerNumber,omitempty"`
	PassportNumber      string `json:"passportNumber,omitempty"`
	IsDefault           *bool  `json:"isDefault,omitempty"`
}

type ProfilesService struct {
	backend Backend
}

func NewProfilesService(backend Backend) *ProfilesService {
	return &ProfilesService{backend: backend}
}

func (s *ProfilesService) List(ctx context.Context) ([]models.PassengerProfile, error) {
	var profiles []models.PassengerProfile
	if err := s.backend.Get(ctx, "/passenger-profiles", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetDefault returns (nil, nil) when no default profile exists; callers
// use the default only as a prefill convenience.
func (s *ProfilesService) GetDefault(ctx context.Context) (*models.PassengerProfile, error) {
	var profile models.PassengerProfile
	if err := s.backend.Get(ctx, "/passenger-profiles/default", nil, &profile); err != nil {
		return nil, nil
	}
	return &profile, nil
}

func (s *ProfilesService) Get(ctx context.Context, id string) (*models.PassengerProfile, error) {
	var profile models.PassengerProfile
	if err := s.backend.Get(ctx, "/passenger-profiles/"+id, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfilesService) Create(ctx context.Context, req PassengerProfileRequest) (*models.PassengerProfile, error) {
	var profile models.PassengerProfile
	if err := s.backend.Post(ctx, "/passenger-profiles", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfilesService) Update(ctx context.Context, id string, req PassengerProfileRequest) (*models.PassengerProfile, error) {
	var profile models.PassengerProfile
	if err := s.backend.Patch(ctx, "/passenger-profiles/"+id, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfilesService) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, "/passenger-profiles/"+id)
}
