package services

import (
	"context"

	"github.com/karimfs/skybook/internal/client/models"
)

// TicketRequest uses the backend's French field names on the wire.
type TicketRequest struct {
	ReservationID string `json:"reservationId,omitempty"`
	TicketNumber  string `json:"numeroBillet,omitempty"`
	IssuedAt      string `json:"dateEmission,omitempty"`
	PDFPath       string `json:"fichierPDF,omitempty"`
}

type TicketsService struct {
	backend Backend
}

func NewTicketsService(backend Backend) *TicketsService {
	return &TicketsService{backend: backend}
}

func (s *TicketsService) ByReservation(ctx context.Context, reservationID string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := s.backend.Get(ctx, "/tickets/reservation/"+reservationID, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *TicketsService) Get(ctx context.Context, id string) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.backend.Get(ctx, "/tickets/"+id, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketsService) List(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := s.backend.Get(ctx, "/tickets", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *TicketsService) Create(ctx context.Context, req TicketRequest) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.backend.Post(ctx, "/tickets", req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketsService) Update(ctx context.Context, id string, req TicketRequest) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.backend.Patch(ctx, "/tickets/"+id, req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketsService) Remove(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, "/tickets/"+id)
}
