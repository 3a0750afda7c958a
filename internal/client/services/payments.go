package services

import (
	"context"

	"github.com/karimfs/skybook/internal/client/models"
)

type CreatePaymentRequest struct {
	ReservationID string  `json:"reservationId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`
	CardNumber    string  `json:"cardNumber"`
	CardHolder    string  `json:"cardHolder"`
	ExpiryDate    string  `json:"expiryDate"`
	CVV           string  `json:"cvv"`
}

type PaymentsService struct {
	backend Backend
}

func NewPaymentsService(backend Backend) *PaymentsService {
	return &PaymentsService{backend: backend}
}

func (s *PaymentsService) Create(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	if err := s.backend.Post(ctx, "/payments", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentsService) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.backend.Get(ctx, "/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *PaymentsService) Get(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.backend.Get(ctx, "/payments/"+id, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentsService) UpdateStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Payment, error) {
	body := struct {
		Status models.PaymentStatus `json:"status"`
	}{Status: status}

	var payment models.Payment
	if err := s.backend.Patch(ctx, "/payments/"+id+"/status", body, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
