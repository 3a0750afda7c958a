package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/karimfs/skybook/internal/client/models"
	"github.com/karimfs/skybook/internal/client/services"
	"github.com/karimfs/skybook/internal/client/storage"
	"github.com/karimfs/skybook/internal/logging"
)

var (
	// ErrNoDraft means no booking is in progress.
	ErrNoDraft = errors.New("no booking draft in progress")
	// ErrWrongState means the requested step does not follow the draft's
	// current state.
	ErrWrongState = errors.New("booking step out of order")
)

// FlightFinder is the slice of the flights service the flow needs.
type FlightFinder interface {
	Search(ctx context.Context, req services.SearchFlightsRequest) ([]models.FlightSummary, error)
}

type ReservationBooker interface {
	Create(ctx context.Context, req services.CreateReservationRequest) (*models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, error)
}

type PaymentMaker interface {
	Create(ctx context.Context, req services.CreatePaymentRequest) (*models.Payment, error)
}

type TicketFinder interface {
	ByReservation(ctx context.Context, reservationID string) ([]models.Ticket, error)
}

// AlternativeReturn is one substitute return date with its flights, offered
// when the requested return date has no matches.
type AlternativeReturn struct {
	Date    string
	Flights []models.FlightSummary
}

type SearchResults struct {
	Departing          []models.FlightSummary
	Returning          []models.FlightSummary
	AlternativeReturns []AlternativeReturn
}

type CardDetails struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

// Confirmation is the terminal result of a paid booking.
type Confirmation struct {
	Reservations []models.Reservation
	Payments     []models.Payment
	Tickets      []models.Ticket
}

// Flow drives the booking state machine. The draft lives in the ephemeral
// store while the user navigates search, passenger entry and seat
// selection, then moves to the durable store before payment so it survives
// a process restart mid-checkout. Payment success clears it everywhere.
type Flow struct {
	flights      FlightFinder
	reservations ReservationBooker
	payments     PaymentMaker
	tickets      TicketFinder

	ephemeral storage.Store
	durable   storage.Store
	log       logging.Logger

	mu    sync.Mutex
	draft *Draft
}

func NewFlow(
	flights FlightFinder,
	reservations ReservationBooker,
	payments PaymentMaker,
	tickets TicketFinder,
	ephemeral, durable storage.Store,
	log logging.Logger,
) *Flow {
	return &Flow{
		flights:      flights,
		reservations: reservations,
		payments:     payments,
		tickets:      tickets,
		ephemeral:    ephemeral,
		durable:      durable,
		log:          log,
	}
}

// Draft returns a copy of the current draft, or nil when none exists.
func (f *Flow) Draft() *Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft == nil {
		return nil
	}
	cp := *f.draft
	return &cp
}

// Resume rehydrates an in-progress draft, preferring the durable copy (a
// checkout interrupted mid-payment) over the ephemeral one. A draft that
// fails to decode is discarded and the caller starts over at search.
func (f *Flow) Resume(ctx context.Context) (*Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, store := range []storage.Store{f.durable, f.ephemeral} {
		data, err := store.Get(ctx, storage.KeyBookingDraft)
		if err != nil {
			return nil, fmt.Errorf("reading booking draft: %w", err)
		}
		if data == nil {
			continue
		}
		var draft Draft
		if err := json.Unmarshal(data, &draft); err != nil {
			f.log.Warn(ctx, "discarding malformed booking draft", "error", err)
			_ = store.Delete(ctx, storage.KeyBookingDraft)
			continue
		}
		f.draft = &draft
		cp := draft
		return &cp, nil
	}
	return nil, ErrNoDraft
}

// StartSearch begins a new booking, overwriting any stale draft, and
// returns matching flights. When a round trip finds no flights on the
// requested return date, flights one day either side are offered as
// independently selectable alternatives.
func (f *Flow) StartSearch(ctx context.Context, criteria SearchCriteria) (*SearchResults, error) {
	if criteria.TripType == "" {
		criteria.TripType = TripOneWay
	}
	if criteria.PassengerCount() < 1 {
		return nil, &ValidationError{Messages: []string{"At least one passenger is required"}}
	}

	results := &SearchResults{}

	departing, err := f.flights.Search(ctx, services.SearchFlightsRequest{
		DepartureAirportID: criteria.Origin,
		ArrivalAirportID:   criteria.Destination,
		DepartureDate:      criteria.DepartureDate,
		Passengers:         criteria.PassengerCount(),
	})
	if err != nil {
		return nil, err
	}
	results.Departing = departing

	if criteria.TripType == TripRoundTrip {
		returning, err := f.flights.Search(ctx, services.SearchFlightsRequest{
			DepartureAirportID: criteria.Destination,
			ArrivalAirportID:   criteria.Origin,
			DepartureDate:      criteria.ReturnDate,
			Passengers:         criteria.PassengerCount(),
		})
		if err != nil {
			return nil, err
		}
		results.Returning = returning

		if len(returning) == 0 {
			alts, err := f.alternativeReturns(ctx, criteria)
			if err != nil {
				// best effort, the exact-date result already stands
				f.log.Warn(ctx, "alternative return-date search failed", "error", err)
			} else {
				results.AlternativeReturns = alts
			}
		}
	}

	draft := &Draft{State: StateSearching, Criteria: criteria}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
	if err := f.saveDraft(ctx, f.ephemeral); err != nil {
		return nil, err
	}
	return results, nil
}

func (f *Flow) alternativeReturns(ctx context.Context, criteria SearchCriteria) ([]AlternativeReturn, error) {
	base, err := time.Parse("2006-01-02", criteria.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("parsing return date: %w", err)
	}

	dates := []string{
		base.AddDate(0, 0, -1).Format("2006-01-02"),
		base.AddDate(0, 0, 1).Format("2006-01-02"),
	}
	found := make([][]models.FlightSummary, len(dates))

	g, gctx := errgroup.WithContext(ctx)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			flights, err := f.flights.Search(gctx, services.SearchFlightsRequest{
				DepartureAirportID: criteria.Destination,
				ArrivalAirportID:   criteria.Origin,
				DepartureDate:      date,
				Passengers:         criteria.PassengerCount(),
			})
			if err != nil {
				return err
			}
			found[i] = flights
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var alts []AlternativeReturn
	for i, flights := range found {
		if len(flights) > 0 {
			alts = append(alts, AlternativeReturn{Date: dates[i], Flights: flights})
		}
	}
	return alts, nil
}

// SelectFlights records the chosen legs. A round trip requires both the
// outbound and the return leg; a one-way trip takes only the outbound.
func (f *Flow) SelectFlights(ctx context.Context, outbound models.FlightSummary, returnFlight *models.FlightSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft == nil {
		return ErrNoDraft
	}
	if f.draft.roundTrip() && returnFlight == nil {
		return &ValidationError{Messages: []string{"Please select a returning flight"}}
	}

	f.draft.SelectedFlights = []models.FlightSummary{outbound}
	if f.draft.roundTrip() {
		f.draft.SelectedFlights = append(f.draft.SelectedFlights, *returnFlight)
	}
	f.draft.State = StateFlightsSelected
	return f.saveDraft(ctx, f.ephemeral)
}

// ReplaceReturnDate swaps the return leg's travel date for one of the
// alternative dates offered by StartSearch.
func (f *Flow) ReplaceReturnDate(ctx context.Context, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft == nil {
		return ErrNoDraft
	}
	if !f.draft.roundTrip() {
		return ErrWrongState
	}
	f.draft.Criteria.ReturnDate = date
	return f.saveDraft(ctx, f.ephemeral)
}

// SetPassengers is the validation gate between passenger entry and seat
// selection. Every violated field produces its own message and the whole
// list is returned at once; the draft does not advance on failure.
func (f *Flow) SetPassengers(ctx context.Context, passengers []Passenger, emergency EmergencyContact, bagCounts []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft == nil {
		return ErrNoDraft
	}
	if len(f.draft.SelectedFlights) == 0 {
		return ErrWrongState
	}
	if msgs := validatePassengers(f.draft.Criteria.PassengerCount(), passengers, &emergency); len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}

	f.draft.Passengers = passengers
	f.draft.EmergencyContact = &emergency
	f.draft.BagCounts = bagCounts
	f.draft.State = StatePassengerInfo
	return f.saveDraft(ctx, f.ephemeral)
}

// AssignSeats stores per-leg seat choices, index-aligned with passengers.
func (f *Flow) AssignSeats(ctx context.Context, outboundSeats, returnSeats []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft == nil {
		return ErrNoDraft
	}
	if f.draft.State != StatePassengerInfo && f.draft.State != StateSeatsSelected {
		return ErrWrongState
	}
	f.draft.OutboundSeats = outboundSeats
	f.draft.ReturnSeats = returnSeats
	f.draft.State = StateSeatsSelected
	return f.saveDraft(ctx, f.ephemeral)
}

// CompleteSeatSelection checks the seat guard and performs the
// reservation-creation fan-out: one reservation per passenger per leg, all
// of which must succeed. Collected ids go into the draft, which is then
// promoted to durable storage so an interrupted checkout can resume.
func (f *Flow) CompleteSeatSelection(ctx context.Context, class models.FareClass) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft == nil {
		return ErrNoDraft
	}
	if f.draft.State != StateSeatsSelected {
		return ErrWrongState
	}

	want := f.draft.Criteria.PassengerCount()
	if len(f.draft.OutboundSeats) != want {
		return &ValidationError{Messages: []string{"Please select a seat for every passenger on the outbound flight"}}
	}
	if f.draft.roundTrip() && len(f.draft.ReturnSeats) != want {
		return &ValidationError{Messages: []string{"Please select a seat for every passenger on the returning flight"}}
	}
	if class == "" {
		class = models.FareEconomy
	}

	type slot struct{ leg, passenger int }
	var slots []slot
	for leg := range f.draft.SelectedFlights {
		for p := range f.draft.Passengers {
			slots = append(slots, slot{leg: leg, passenger: p})
		}
	}

	ids := make([]string, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range slots {
		i := i
		flight := f.draft.SelectedFlights[s.leg]
		passenger := f.draft.Passengers[s.passenger]
		g.Go(func() error {
			passport := passenger.Passport
			if passport == "" {
				passport = "PASS-" + uuid.NewString()
			}
			reservation, err := f.reservations.Create(gctx, services.CreateReservationRequest{
				FlightID:             flight.ID,
				PassengerFirstName:   passenger.FirstName,
				PassengerLastName:    passenger.LastName,
				PassengerPassport:    passport,
				PassengerDateOfBirth: NormalizeDOB(passenger.DOB),
				FlightClass:          class,
			})
			if err != nil {
				return err
			}
			ids[i] = reservation.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("creating reservations: %w", err)
	}

	f.draft.FlightClass = class
	f.draft.ReservationIDs = ids
	f.draft.State = StatePaymentPending

	if err := f.saveDraft(ctx, f.durable); err != nil {
		return err
	}
	_ = f.ephemeral.Delete(ctx, storage.KeyBookingDraft)
	return nil
}

// Pay creates one payment per reservation and finishes the booking. The
// amount for each payment is re-read from the backend reservation record,
// never taken from the draft. Tickets are fetched best-effort; their
// absence does not block confirmation. On full success the draft is
// cleared from storage.
func (f *Flow) Pay(ctx context.Context, card CardDetails) (*Confirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft == nil {
		return nil, ErrNoDraft
	}
	if f.draft.State != StatePaymentPending || len(f.draft.ReservationIDs) == 0 {
		return nil, ErrWrongState
	}
	if msgs := validateCard(card); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	reservations := make([]models.Reservation, len(f.draft.ReservationIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range f.draft.ReservationIDs {
		i, id := i, id
		g.Go(func() error {
			reservation, err := f.reservations.Get(gctx, id)
			if err != nil {
				return err
			}
			reservations[i] = *reservation
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching reservations: %w", err)
	}

	payments := make([]models.Payment, len(reservations))
	g, gctx = errgroup.WithContext(ctx)
	for i, reservation := range reservations {
		i, reservation := i, reservation
		g.Go(func() error {
			payment, err := f.payments.Create(gctx, services.CreatePaymentRequest{
				ReservationID: reservation.ID,
				Amount:        reservation.TotalPrice,
				Currency:      "MAD",
				PaymentMethod: "credit_card",
				CardNumber:    card.Number,
				CardHolder:    card.Holder,
				ExpiryDate:    card.Expiry,
				CVV:           card.CVV,
			})
			if err != nil {
				return err
			}
			payments[i] = *payment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("creating payments: %w", err)
	}

	var tickets []models.Ticket
	for _, reservation := range reservations {
		found, err := f.tickets.ByReservation(ctx, reservation.ID)
		if err != nil {
			f.log.Warn(ctx, "ticket fetch failed", "reservation_id", reservation.ID, "error", err)
			continue
		}
		tickets = append(tickets, found...)
	}

	f.draft.State = StateConfirmed
	if err := f.clearDraft(ctx); err != nil {
		return nil, err
	}
	f.draft = nil

	return &Confirmation{
		Reservations: reservations,
		Payments:     payments,
		Tickets:      tickets,
	}, nil
}

// Abandon drops the draft without touching any backend state.
func (f *Flow) Abandon(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = nil
	return f.clearDraft(ctx)
}

func (f *Flow) saveDraft(ctx context.Context, store storage.Store) error {
	data, err := json.Marshal(f.draft)
	if err != nil {
		return fmt.Errorf("encoding booking draft: %w", err)
	}
	if err := store.Set(ctx, storage.KeyBookingDraft, data); err != nil {
		return fmt.Errorf("saving booking draft: %w", err)
	}
	return nil
}

func (f *Flow) clearDraft(ctx context.Context) error {
	if err := f.ephemeral.Delete(ctx, storage.KeyBookingDraft); err != nil {
		return fmt.Errorf("clearing booking draft: %w", err)
	}
	if err := f.durable.Delete(ctx, storage.KeyBookingDraft); err != nil {
		return fmt.Errorf("clearing booking draft: %w", err)
	}
	return nil
}
