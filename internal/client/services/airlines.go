package services

import (
	"context"
	"strings"

	"github.com/karimfs/skybook/internal/client/models"
)

type AirlineRequest struct {
	Name     string `json:"name,omitempty"`
	Code     string `json:"code,omitempty"`
	Country  string `json:"country,omitempty"`
	Logo     string `json:"logo,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type AirlinesService struct {
	backend Backend
}

func NewAirlinesService(backend Backend) *AirlinesService {
	return &AirlinesService{backend: backend}
}

func (s *AirlinesService) List(ctx context.Context) ([]models.Airline, error) {
	var airlines []models.Airline
	if err := s.backend.Get(ctx, "/airlines", nil, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}

func (s *AirlinesService) Get(ctx context.Context, id string) (*models.Airline, error) {
	var airline models.Airline
	if err := s.backend.Get(ctx, "/airlines/"+id, nil, &airline); err != nil {
		return nil, err
	}
	return &airline, nil
}

func (s *AirlinesService) GetByCode(ctx context.Context, code string) (*models.Airline, error) {
	airlines, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range airlines {
		if strings.EqualFold(airlines[i].Code, code) {
			return &airlines[i], nil
		}
	}
	return nil, nil
}

func (s *AirlinesService) Create(ctx context.Context, req AirlineRequest) (*models.Airline, error) {
	var airline models.Airline
	if err := s.backend.Post(ctx, "/airlines", req, &airline); err != nil {
		return nil, err
	}
	return &airline, nil
}

func (s *AirlinesService) Update(ctx context.Context, id string, req AirlineRequest) (*models.Airline, error) {
	var airline models.Airline
	if err := s.backend.Patch(ctx, "/airlines/"+id, req, &airline); err != nil {
		return nil, err
	}
	return &airline, nil
}

func (s *AirlinesService) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, "/airlines/"+id)
}
