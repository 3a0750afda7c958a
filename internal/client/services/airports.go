package services

import (
	"context"
	"strings"

	"github.com/karimfs/skybook/internal/client/models"
)

type AirportRequest struct {
	Name      string  `json:"name,omitempty"`
	Code      string  `json:"code,omitempty"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

type AirportsService struct {
	backend Backend
}

func NewAirportsService(backend Backend) *AirportsService {
	return &AirportsService{backend: backend}
}

func (s *AirportsService) List(ctx context.Context) ([]models.Airport, error) {
	var airports []models.Airport
	if err := s.backend.Get(ctx, "/airports", nil, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (s *AirportsService) Get(ctx context.Context, id string) (*models.Airport, error) {
	var airport models.Airport
	if err := s.backend.Get(ctx, "/airports/"+id, nil, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

// GetByCode resolves an IATA code (e.g. "JFK") by filtering the full list;
// the backend has no code lookup endpoint.
func (s *AirportsService) GetByCode(ctx context.Context, code string) (*models.Airport, error) {
	airports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range airports {
		if strings.EqualFold(airports[i].Code, code) {
			return &airports[i], nil
		}
	}
	return nil, nil
}

// Search filters airports by name, code or city, case-insensitively.
func (s *AirportsService) Search(ctx context.Context, query string) ([]models.Airport, error) {
	airports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := make([]models.Airport, 0, len(airports))
	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.City), q) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (s *AirportsService) Create(ctx context.Context, req AirportRequest) (*models.Airport, error) {
	var airport models.Airport
	if err := s.backend.Post(ctx, "/airports", req, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

func (s *AirportsService) Update(ctx context.Context, id string, req AirportRequest) (*models.Airport, error) {
	var airport models.Airport
	if err := s.backend.Patch(ctx, "/airports/"+id, req, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

func (s *AirportsService) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, "/airports/"+id)
}
