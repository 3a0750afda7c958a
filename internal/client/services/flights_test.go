package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/karimfs/skybook/internal/client/models"
)

func sampleFlight() models.Flight {
	return models.Flight{
		ID:              "f1",
		FlightNumber:    "SB101",
		Airline:         models.Airline{Name: "Sky Morocco"},
		DepartureTime:   time.Date(2025, 6, 1, 14, 5, 0, 0, time.UTC),
		DurationMinutes: 425,
		EconomyPrice:    199.99,
		BusinessPrice:   450,
		FirstClassPrice: 900,
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleFlight())

	require.Equal(t, "f1", s.ID)
	require.Equal(t, "Sky Morocco", s.Airline)
	require.Equal(t, "SB101", s.FlightNumber)
	require.Equal(t, "7h 5m", s.Duration)
	require.Equal(t, "2:05 PM", s.Time)

	// taxes are a fifth of the economy fare, everything rounded to cents
	require.InDelta(t, 40.00, s.Price.Taxes, 1e-9)
	require.InDelta(t, 159.99, s.Price.Subtotal, 1e-9)
	require.InDelta(t, 199.99, s.Price.Total, 1e-9)
}

func TestSummarize_WholeHourDuration(t *testing.T) {
	f := sampleFlight()
	f.DurationMinutes = 120
	require.Equal(t, "2h 0m", Summarize(f).Duration)
}

func TestFlightsService_Search_BuildsQuery(t *testing.T) {
	backend := &stubBackend{reply: `[]`}
	svc := NewFlightsService(backend)

	_, err := svc.Search(context.Background(), SearchFlightsRequest{
		DepartureAirportID: "dep",
		ArrivalAirportID:   "arr",
		DepartureDate:      "2025-06-01",
		ReturnDate:         "2025-06-08",
		FlightClass:        models.FareEconomy,
		Passengers:         2,
	})
	require.NoError(t, err)
	require.Equal(t, "/flights/search", backend.path)
	require.Equal(t, "dep", backend.query.Get("departureAirportId"))
	require.Equal(t, "arr", backend.query.Get("arrivalAirportId"))
	require.Equal(t, "2025-06-01", backend.query.Get("departureDate"))
	require.Equal(t, "2025-06-08", backend.query.Get("returnDate"))
	require.Equal(t, "ECONOMY", backend.query.Get("flightClass"))
	require.Equal(t, "2", backend.query.Get("passengers"))
}

func TestFlightsService_Search_OneWayOmitsReturnDate(t *testing.T) {
	backend := &stubBackend{reply: `[]`}
	svc := NewFlightsService(backend)

	_, err := svc.Search(context.Background(), SearchFlightsRequest{
		DepartureAirportID: "dep",
		ArrivalAirportID:   "arr",
		DepartureDate:      "2025-06-01",
	})
	require.NoError(t, err)
	require.False(t, backend.query.Has("returnDate"))
	require.False(t, backend.query.Has("passengers"))
}

func TestFlightsService_PriceFor(t *testing.T) {
	tests := []struct {
		class models.FareClass
		want  float64
	}{
		{models.FareEconomy, 199.99},
		{models.FareBusiness, 450},
		{models.FareFirst, 900},
		{"", 199.99},
	}

	for _, tt := range tests {
		backend := &stubBackend{reply: `{
			"id":"f1","economyPrice":199.99,"businessPrice":450,"firstClassPrice":900
		}`}
		svc := NewFlightsService(backend)

		price, err := svc.PriceFor(context.Background(), "f1", tt.class)
		require.NoError(t, err)
		require.Equal(t, "/flights/f1", backend.path)
		require.InDelta(t, tt.want, price, 1e-9)
	}
}
