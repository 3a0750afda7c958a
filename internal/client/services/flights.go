package services

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/karimfs/skybook/internal/client/models"
)

type SearchFlightsRequest struct {
	DepartureAirportID string
	ArrivalAirportID   string
	DepartureDate      string
	ReturnDate         string
	FlightClass        models.FareClass
	Passengers         int
}

func (r SearchFlightsRequest) query() url.Values {
	q := url.Values{}
	q.Set("departureAirportId", r.DepartureAirportID)
	q.Set("arrivalAirportId", r.ArrivalAirportID)
	q.Set("departureDate", r.DepartureDate)
	if r.ReturnDate != "" {
		q.Set("returnDate", r.ReturnDate)
	}
	if r.FlightClass != "" {
		q.Set("flightClass", string(r.FlightClass))
	}
	if r.Passengers > 0 {
		q.Set("passengers", strconv.Itoa(r.Passengers))
	}
	return q
}

type FlightRequest struct {
	FlightNumber       string  `json:"flightNumber,omitempty"`
	AirlineID          string  `json:"airlineId,omitempty"`
	DepartureAirportID string  `json:"departureAirportId,omitempty"`
	ArrivalAirportID   string  `json:"arrivalAirportId,omitempty"`
	DepartureTime      string  `json:"departureTime,omitempty"`
	ArrivalTime        string  `json:"arrivalTime,omitempty"`
	DurationMinutes    int     `json:"durationMinutes,omitempty"`
	Stops              int     `json:"stops,omitempty"`
	EconomyPrice       float64 `json:"economyPrice,omitempty"`
	BusinessPrice      float64 `json:"businessPrice,omitempty"`
	FirstClassPrice    float64 `json:"firstClassPrice,omitempty"`
	EconomySeats       int     `json:"economySeats,omitempty"`
	BusinessSeats      int     `json:"businessSeats,omitempty"`
	FirstClassSeats    int     `json:"firstClassSeats,omitempty"`
	IsActive           *bool   `json:"isActive,omitempty"`
}

type FlightsService struct {
	backend Backend
}

func NewFlightsService(backend Backend) *FlightsService {
	return &FlightsService{backend: backend}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize condenses a raw flight into the shape the booking flow carries:
// a duration string, a local departure time and a price breakdown where
// taxes are 20% of the economy fare.
func Summarize(f models.Flight) models.FlightSummary {
	duration := fmt.Sprintf("%dh %dm", f.DurationMinutes/60, f.DurationMinutes%60)

	base := f.EconomyPrice
	taxes := base * 0.2

	return models.FlightSummary{
		ID:           f.ID,
		Airline:      f.Airline.Name,
		FlightNumber: f.FlightNumber,
		Duration:     duration,
		Time:         f.DepartureTime.Format("3:04 PM"),
		Price: models.PriceBreakdown{
			Subtotal: round2(base - taxes),
			Taxes:    round2(taxes),
			Total:    round2(base),
		},
	}
}

func (s *FlightsService) Search(ctx context.Context, req SearchFlightsRequest) ([]models.FlightSummary, error) {
	var flights []models.Flight
	if err := s.backend.Get(ctx, "/flights/search", req.query(), &flights); err != nil {
		return nil, err
	}
	summaries := make([]models.FlightSummary, len(flights))
	for i, f := range flights {
		summaries[i] = Summarize(f)
	}
	return summaries, nil
}

func (s *FlightsService) List(ctx context.Context) ([]models.FlightSummary, error) {
	flights, err := s.ListRaw(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.FlightSummary, len(flights))
	for i, f := range flights {
		summaries[i] = Summarize(f)
	}
	return summaries, nil
}

// ListRaw returns flights untransformed, the shape the admin pages need.
func (s *FlightsService) ListRaw(ctx context.Context) ([]models.Flight, error) {
	var flights []models.Flight
	if err := s.backend.Get(ctx, "/flights", nil, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (s *FlightsService) Get(ctx context.Context, id string) (*models.Flight, error) {
	var flight models.Flight
	if err := s.backend.Get(ctx, "/flights/"+id, nil, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// PriceFor fetches the current fare for one flight and cabin class. The
// booking flow calls this right before paying so stale draft prices never
// reach the payment endpoint.
func (s *FlightsService) PriceFor(ctx context.Context, flightID string, class models.FareClass) (float64, error) {
	flight, err := s.Get(ctx, flightID)
	if err != nil {
		return 0, err
	}
	switch class {
	case models.FareBusiness:
		return flight.BusinessPrice, nil
	case models.FareFirst:
		return flight.FirstClassPrice, nil
	default:
		return flight.EconomyPrice, nil
	}
}

func (s *FlightsService) Create(ctx context.Context, req FlightRequest) (*models.Flight, error) {
	var flight models.Flight
	if err := s.backend.Post(ctx, "/flights", req, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (s *FlightsService) Update(ctx context.Context, id string, req FlightRequest) (*models.Flight, error) {
	var flight models.Flight
	if err := s.backend.Patch(ctx, "/flights/"+id, req, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (s *FlightsService) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, "/flights/"+id)
}
