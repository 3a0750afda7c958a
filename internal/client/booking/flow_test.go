package booking

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karimfs/skybook/internal/client/models"
	"github.com/karimfs/skybook/internal/client/services"
	"github.com/karimfs/skybook/internal/client/storage"
	"github.com/karimfs/skybook/internal/logging"
)

type fakeFlights struct {
	// results keyed by departure date so tests can shape per-date answers
	byDate map[string][]models.FlightSummary

	mu       sync.Mutex
	searches []services.SearchFlightsRequest
	err      error
}

func (f *fakeFlights) Search(_ context.Context, req services.SearchFlightsRequest) ([]models.FlightSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.byDate[req.DepartureDate], nil
}

type fakeReservations struct {
	mu      sync.Mutex
	created []services.CreateReservationRequest
	nextID  int
	price   float64
	err     error
}

func (f *fakeReservations) Create(_ context.Context, req services.CreateReservationRequest) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	f.nextID++
	return &models.Reservation{
		ID:         fmt.Sprintf("res-%d", f.nextID),
		TotalPrice: f.price,
		Status:     models.ReservationPending,
	}, nil
}

func (f *fakeReservations) Get(_ context.Context, id string) (*models.Reservation, error) {
	return &models.Reservation{ID: id, TotalPrice: f.price, Status: models.ReservationPending}, nil
}

type fakePayments struct {
	mu      sync.Mutex
	created []services.CreatePaymentRequest
	err     error
}

func (f *fakePayments) Create(_ context.Context, req services.CreatePaymentRequest) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &models.Payment{
		ID:            "pay-" + req.ReservationID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Status:        models.PaymentCompleted,
	}, nil
}

type fakeTickets struct {
	tickets map[string][]models.Ticket
	err     error
}

func (f *fakeTickets) ByReservation(_ context.Context, reservationID string) ([]models.Ticket, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tickets[reservationID], nil
}

type flowFixture struct {
	flow         *Flow
	flights      *fakeFlights
	reservations *fakeReservations
	payments     *fakePayments
	tickets      *fakeTickets
	ephemeral    storage.Store
	durable      storage.Store
}

func newFixture() *flowFixture {
	fx := &flowFixture{
		flights:      &fakeFlights{byDate: map[string][]models.FlightSummary{}},
		reservations: &fakeReservations{price: 199.99},
		payments:     &fakePayments{},
		tickets:      &fakeTickets{tickets: map[string][]models.Ticket{}},
		ephemeral:    storage.NewMemoryStore(),
		durable:      storage.NewMemoryStore(),
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	fx.flow = NewFlow(fx.flights, fx.reservations, fx.payments, fx.tickets, fx.ephemeral, fx.durable, log)
	return fx
}

func summary(id string) models.FlightSummary {
	return models.FlightSummary{ID: id, Airline: "Sky Morocco", FlightNumber: "SB" + id}
}

func oneWayCriteria() SearchCriteria {
	return SearchCriteria{
		Origin:        "JFK",
		Destination:   "LAX",
		TripType:      TripOneWay,
		DepartureDate: "2025-06-01",
		Adults:        1,
	}
}

// Scenario: one adult books a one-way flight end to end. The draft must be
// gone from both stores afterwards.
func TestFlow_OneWayBooking(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("f1")}
	fx.tickets.tickets["res-1"] = []models.Ticket{{ID: "t1", TicketNumber: "TKT-001"}}

	results, err := fx.flow.StartSearch(ctx, oneWayCriteria())
	require.NoError(t, err)
	require.Len(t, results.Departing, 1)

	require.NoError(t, fx.flow.SelectFlights(ctx, summary("f1"), nil))
	require.NoError(t, fx.flow.SetPassengers(ctx, []Passenger{completePassenger()}, completeContact(), []int{1}))
	require.NoError(t, fx.flow.AssignSeats(ctx, []string{"12A"}, nil))
	require.NoError(t, fx.flow.CompleteSeatSelection(ctx, models.FareEconomy))

	require.Equal(t, StatePaymentPending, fx.flow.Draft().State)
	require.Len(t, fx.reservations.created, 1)
	require.Equal(t, "1990-06-15", fx.reservations.created[0].PassengerDateOfBirth)

	confirmation, err := fx.flow.Pay(ctx, CardDetails{
		Number: "4111111111111111", Holder: "John Doe", Expiry: "12/25", CVV: "123",
	})
	require.NoError(t, err)
	require.Len(t, confirmation.Payments, 1)
	require.InDelta(t, 199.99, confirmation.Payments[0].Amount, 1e-9)
	require.Equal(t, "MAD", fx.payments.created[0].Currency)
	require.Equal(t, "credit_card", fx.payments.created[0].PaymentMethod)
	require.Len(t, confirmation.Tickets, 1)

	require.Nil(t, fx.flow.Draft())
	for _, store := range []storage.Store{fx.ephemeral, fx.durable} {
		data, err := store.Get(ctx, storage.KeyBookingDraft)
		require.NoError(t, err)
		require.Nil(t, data)
	}
}

// Scenario: a missing passenger email blocks the transition to seat
// selection with a message naming the field, and the draft is unchanged.
func TestFlow_MissingEmailBlocksPassengerGate(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("f1")}

	_, err := fx.flow.StartSearch(ctx, oneWayCriteria())
	require.NoError(t, err)
	require.NoError(t, fx.flow.SelectFlights(ctx, summary("f1"), nil))

	p := completePassenger()
	p.Email = ""
	err = fx.flow.SetPassengers(ctx, []Passenger{p}, completeContact(), []int{0})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"Passenger 1: Email is required"}, verr.Messages)
	require.Equal(t, StateFlightsSelected, fx.flow.Draft().State)
	require.Empty(t, fx.flow.Draft().Passengers)
}

// Scenario: a round-trip search with no return-date matches offers ±1 day
// alternatives, searched in the return direction.
func TestFlow_AlternativeReturnDates(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("out")}
	// nothing on 2025-06-08, but the day after has a flight
	fx.flights.byDate["2025-06-09"] = []models.FlightSummary{summary("alt")}

	criteria := oneWayCriteria()
	criteria.TripType = TripRoundTrip
	criteria.ReturnDate = "2025-06-08"

	results, err := fx.flow.StartSearch(ctx, criteria)
	require.NoError(t, err)
	require.Empty(t, results.Returning)
	require.Len(t, results.AlternativeReturns, 1)
	require.Equal(t, "2025-06-09", results.AlternativeReturns[0].Date)
	require.Len(t, results.AlternativeReturns[0].Flights, 1)

	// alternative searches run in the return direction
	last := fx.flights.searches[len(fx.flights.searches)-1]
	require.Equal(t, "LAX", last.DepartureAirportID)
	require.Equal(t, "JFK", last.ArrivalAirportID)

	require.NoError(t, fx.flow.ReplaceReturnDate(ctx, "2025-06-09"))
	require.Equal(t, "2025-06-09", fx.flow.Draft().Criteria.ReturnDate)
}

func TestFlow_RoundTripRequiresBothLegs(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("out")}
	fx.flights.byDate["2025-06-08"] = []models.FlightSummary{summary("ret")}

	criteria := oneWayCriteria()
	criteria.TripType = TripRoundTrip
	criteria.ReturnDate = "2025-06-08"

	_, err := fx.flow.StartSearch(ctx, criteria)
	require.NoError(t, err)

	var verr *ValidationError
	require.ErrorAs(t, fx.flow.SelectFlights(ctx, summary("out"), nil), &verr)

	ret := summary("ret")
	require.NoError(t, fx.flow.SelectFlights(ctx, summary("out"), &ret))
	require.Len(t, fx.flow.Draft().SelectedFlights, 2)
}

// Two legs and two passengers make four reservations, one per slot.
func TestFlow_ReservationFanOut(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("out")}
	fx.flights.byDate["2025-06-08"] = []models.FlightSummary{summary("ret")}

	criteria := oneWayCriteria()
	criteria.TripType = TripRoundTrip
	criteria.ReturnDate = "2025-06-08"
	criteria.Adults = 2

	_, err := fx.flow.StartSearch(ctx, criteria)
	require.NoError(t, err)
	ret := summary("ret")
	require.NoError(t, fx.flow.SelectFlights(ctx, summary("out"), &ret))

	second := completePassenger()
	second.FirstName = "Alice"
	second.Passport = "" // must be backfilled, backend requires one
	require.NoError(t, fx.flow.SetPassengers(ctx, []Passenger{completePassenger(), second}, completeContact(), []int{1, 0}))
	require.NoError(t, fx.flow.AssignSeats(ctx, []string{"12A", "12B"}, []string{"14C", "14D"}))
	require.NoError(t, fx.flow.CompleteSeatSelection(ctx, models.FareBusiness))

	require.Len(t, fx.reservations.created, 4)
	for _, req := range fx.reservations.created {
		require.NotEmpty(t, req.PassengerPassport)
		require.Equal(t, models.FareBusiness, req.FlightClass)
	}
	require.Len(t, fx.flow.Draft().ReservationIDs, 4)
}

func TestFlow_SeatGuardBlocksShortAssignment(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("f1")}

	criteria := oneWayCriteria()
	criteria.Adults = 2
	_, err := fx.flow.StartSearch(ctx, criteria)
	require.NoError(t, err)
	require.NoError(t, fx.flow.SelectFlights(ctx, summary("f1"), nil))
	require.NoError(t, fx.flow.SetPassengers(ctx, []Passenger{completePassenger(), completePassenger()}, completeContact(), nil))
	require.NoError(t, fx.flow.AssignSeats(ctx, []string{"12A"}, nil))

	var verr *ValidationError
	require.ErrorAs(t, fx.flow.CompleteSeatSelection(ctx, models.FareEconomy), &verr)
	require.Empty(t, fx.reservations.created)
}

// Completing seat selection moves the draft to the durable store so an
// interrupted checkout survives a restart.
func TestFlow_DraftPromotionAndResume(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("f1")}

	_, err := fx.flow.StartSearch(ctx, oneWayCriteria())
	require.NoError(t, err)
	require.NoError(t, fx.flow.SelectFlights(ctx, summary("f1"), nil))
	require.NoError(t, fx.flow.SetPassengers(ctx, []Passenger{completePassenger()}, completeContact(), nil))
	require.NoError(t, fx.flow.AssignSeats(ctx, []string{"12A"}, nil))
	require.NoError(t, fx.flow.CompleteSeatSelection(ctx, models.FareEconomy))

	ephData, err := fx.ephemeral.Get(ctx, storage.KeyBookingDraft)
	require.NoError(t, err)
	require.Nil(t, ephData)
	durData, err := fx.durable.Get(ctx, storage.KeyBookingDraft)
	require.NoError(t, err)
	require.NotNil(t, durData)

	// a fresh flow over the same durable store picks the checkout back up
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	resumed := NewFlow(fx.flights, fx.reservations, fx.payments, fx.tickets, storage.NewMemoryStore(), fx.durable, log)
	draft, err := resumed.Resume(ctx)
	require.NoError(t, err)
	require.Equal(t, StatePaymentPending, draft.State)
	require.Len(t, draft.ReservationIDs, 1)
}

func TestFlow_Resume_MalformedDraftDiscarded(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	require.NoError(t, fx.durable.Set(ctx, storage.KeyBookingDraft, []byte("{broken")))

	_, err := fx.flow.Resume(ctx)
	require.ErrorIs(t, err, ErrNoDraft)

	data, err := fx.durable.Get(ctx, storage.KeyBookingDraft)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestFlow_Resume_NoDraft(t *testing.T) {
	fx := newFixture()
	_, err := fx.flow.Resume(context.Background())
	require.ErrorIs(t, err, ErrNoDraft)
}

func TestFlow_Pay_RequiresCardFields(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("f1")}

	_, err := fx.flow.StartSearch(ctx, oneWayCriteria())
	require.NoError(t, err)
	require.NoError(t, fx.flow.SelectFlights(ctx, summary("f1"), nil))
	require.NoError(t, fx.flow.SetPassengers(ctx, []Passenger{completePassenger()}, completeContact(), nil))
	require.NoError(t, fx.flow.AssignSeats(ctx, []string{"12A"}, nil))
	require.NoError(t, fx.flow.CompleteSeatSelection(ctx, models.FareEconomy))

	_, err = fx.flow.Pay(ctx, CardDetails{Number: "4111111111111111"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Messages, 3)
	require.Empty(t, fx.payments.created)
}

// A failing ticket fetch must not fail the booking.
func TestFlow_Pay_TicketFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("f1")}
	fx.tickets.err = fmt.Errorf("tickets not ready")

	_, err := fx.flow.StartSearch(ctx, oneWayCriteria())
	require.NoError(t, err)
	require.NoError(t, fx.flow.SelectFlights(ctx, summary("f1"), nil))
	require.NoError(t, fx.flow.SetPassengers(ctx, []Passenger{completePassenger()}, completeContact(), nil))
	require.NoError(t, fx.flow.AssignSeats(ctx, []string{"12A"}, nil))
	require.NoError(t, fx.flow.CompleteSeatSelection(ctx, models.FareEconomy))

	confirmation, err := fx.flow.Pay(ctx, CardDetails{
		Number: "4111111111111111", Holder: "John Doe", Expiry: "12/25", CVV: "123",
	})
	require.NoError(t, err)
	require.Empty(t, confirmation.Tickets)
	require.Nil(t, fx.flow.Draft())
}

func TestFlow_NewSearchOverwritesStaleDraft(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	fx.flights.byDate["2025-06-01"] = []models.FlightSummary{summary("f1")}
	fx.flights.byDate["2025-07-01"] = []models.FlightSummary{summary("f2")}

	_, err := fx.flow.StartSearch(ctx, oneWayCriteria())
	require.NoError(t, err)
	require.NoError(t, fx.flow.SelectFlights(ctx, summary("f1"), nil))

	criteria := oneWayCriteria()
	criteria.DepartureDate = "2025-07-01"
	_, err = fx.flow.StartSearch(ctx, criteria)
	require.NoError(t, err)

	draft := fx.flow.Draft()
	require.Equal(t, StateSearching, draft.State)
	require.Empty(t, draft.SelectedFlights)
}
