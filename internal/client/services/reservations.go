package services

import (
	"context"

	"github.com/karimfs/skybook/internal/client/models"
)

type CreateReservationRequest struct {
	FlightID             string           `json:"flightId"`
	PassengerFirstName   string           `json:"passengerFirstName"`
	PassengerLastName    string           `json:"passengerLastName"`
	PassengerPassport    string           `json:"passengerPassport"`
	PassengerDateOfBirth string           `json:"passengerDateOfBirth"`
	FlightClass          models.FareClass `json:"flightClass"`
}

type ReservationsService struct {
	backend Backend
}

func NewReservationsService(backend Backend) *ReservationsService {
	return &ReservationsService{backend: backend}
}

func (s *ReservationsService) Create(ctx context.Context, req CreateReservationRequest) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.backend.Post(ctx, "/reservations", req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// List returns the caller's reservations; the backend widens this to all
// reservations for admins.
func (s *ReservationsService) List(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.backend.Get(ctx, "/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationsService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.backend.Get(ctx, "/reservations/"+id, nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationsService) Update(ctx context.Context, id string, req CreateReservationRequest) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.backend.Patch(ctx, "/reservations/"+id, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationsService) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.backend.Post(ctx, "/reservations/"+id+"/cancel", nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationsService) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, "/reservations/"+id)
}
