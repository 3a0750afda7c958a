package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/karimfs/skybook/internal/client/booking"
	"github.com/karimfs/skybook/internal/client/models"
)

// lastResults keeps the flights of the most recent search so "select" can
// refer to them by number.
type lastResults struct {
	departing    []models.FlightSummary
	returning    []models.FlightSummary
	alternatives []booking.AlternativeReturn
}

// searchFlights prompts for criteria, resolves the airport codes and runs
// the search. Results are numbered for the select step.
func (a *App) searchFlights(ctx context.Context) error {
	origin, err := getSimpleText(a.reader, "From (airport code)", a.out)
	if err != nil {
		return err
	}
	destination, err := getSimpleText(a.reader, "To (airport code)", a.out)
	if err != nil {
		return err
	}
	tripType, err := GetOptionalText(a.reader, "Trip type (one-way/round-trip)", string(booking.TripOneWay), a.out)
	if err != nil {
		return err
	}
	departureDate, err := getSimpleText(a.reader, "Departure date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	returnDate := ""
	if booking.TripType(tripType) == booking.TripRoundTrip {
		returnDate, err = getSimpleText(a.reader, "Return date (YYYY-MM-DD)", a.out)
		if err != nil {
			return err
		}
	}
	adults, err := GetInt(a.reader, "Adults", a.out)
	if err != nil {
		return err
	}
	minors, err := GetInt(a.reader, "Minors", a.out)
	if err != nil {
		return err
	}

	from, err := a.airports.GetByCode(ctx, origin)
	if err != nil {
		return err
	}
	if from == nil {
		return fmt.Errorf("unknown airport code %q", origin)
	}
	to, err := a.airports.GetByCode(ctx, destination)
	if err != nil {
		return err
	}
	if to == nil {
		return fmt.Errorf("unknown airport code %q", destination)
	}

	results, err := a.flow.StartSearch(ctx, booking.SearchCriteria{
		Origin:        from.ID,
		Destination:   to.ID,
		TripType:      booking.TripType(tripType),
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Adults:        adults,
		Minors:        minors,
	})
	if err != nil {
		return err
	}

	a.results = &lastResults{
		departing:    results.Departing,
		returning:    results.Returning,
		alternatives: results.AlternativeReturns,
	}
	a.NavigateTo(PageSearch)

	printlnFn("Departing flights:")
	printFlightList(results.Departing)
	if booking.TripType(tripType) == booking.TripRoundTrip {
		printlnFn("Returning flights:")
		printFlightList(results.Returning)
		if len(results.Returning) == 0 && len(results.AlternativeReturns) > 0 {
			printlnFn("No flights on that return date. Alternative dates:")
			for _, alt := range results.AlternativeReturns {
				printlnFn(" ", alt.Date)
				printFlightList(alt.Flights)
			}
			printlnFn("Use 'select' with an alternative date to swap the return leg.")
		}
	}
	return nil
}

func printFlightList(flights []models.FlightSummary) {
	if len(flights) == 0 {
		printlnFn("  (none)")
		return
	}
	for i, f := range flights {
		printlnFn(fmt.Sprintf("  %d. %s %s  %s  %s  $%.2f",
			i+1, f.Airline, f.FlightNumber, f.Time, f.Duration, f.Price.Total))
	}
}

// selectFlights picks the outbound (and for round trips the return) flight
// out of the last search results by number.
func (a *App) selectFlights(ctx context.Context) error {
	if a.results == nil {
		return errors.New("run 'search' first")
	}

	outbound, err := a.pickFlight("Outbound flight number", a.results.departing)
	if err != nil {
		return err
	}

	var returnFlight *models.FlightSummary
	draft := a.flow.Draft()
	if draft != nil && draft.Criteria.TripType == booking.TripRoundTrip {
		returning := a.results.returning
		if len(returning) == 0 && len(a.results.alternatives) > 0 {
			alt, err := a.pickAlternative()
			if err != nil {
				return err
			}
			if err := a.flow.ReplaceReturnDate(ctx, alt.Date); err != nil {
				return err
			}
			returning = alt.Flights
		}
		picked, err := a.pickFlight("Returning flight number", returning)
		if err != nil {
			return err
		}
		returnFlight = picked
	}

	if err := a.flow.SelectFlights(ctx, *outbound, returnFlight); err != nil {
		return err
	}
	printlnFn("Flights selected. Next: 'passengers'.")
	return nil
}

func (a *App) pickFlight(prompt string, flights []models.FlightSummary) (*models.FlightSummary, error) {
	if len(flights) == 0 {
		return nil, errors.New("no flights to choose from")
	}
	n, err := GetInt(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(flights) {
		return nil, fmt.Errorf("pick a number between 1 and %d", len(flights))
	}
	return &flights[n-1], nil
}

func (a *App) pickAlternative() (*booking.AlternativeReturn, error) {
	printlnFn("Alternative return dates:")
	for i, alt := range a.results.alternatives {
		printlnFn(fmt.Sprintf("  %d. %s (%d flights)", i+1, alt.Date, len(alt.Flights)))
	}
	n, err := GetInt(a.reader, "Alternative date number", a.out)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(a.results.alternatives) {
		return nil, fmt.Errorf("pick a number between 1 and %d", len(a.results.alternatives))
	}
	return &a.results.alternatives[n-1], nil
}

// enterPassengers collects one record per passenger plus the emergency
// contact, prefilling from the default traveler profile when available.
func (a *App) enterPassengers(ctx context.Context) error {
	draft := a.flow.Draft()
	if draft == nil {
		return errors.New("run 'search' first")
	}
	count := draft.Criteria.PassengerCount()

	var prefill *booking.Passenger
	if a.isLoggedIn() {
		if p, _ := a.profiles.GetDefault(ctx); p != nil {
			prefill = &booking.Passenger{
				FirstName: p.FirstName,
				LastName:  p.LastName,
				DOB:       p.DateOfBirth,
				Email:     p.Email,
				Phone:     p.Phone,
				Passport:  p.PassportNumber,
			}
		}
	}

	passengers := make([]booking.Passenger, 0, count)
	bagCounts := make([]int, 0, count)
	for i := 0; i < count; i++ {
		printlnFn(fmt.Sprintf("Passenger %d:", i+1))
		p, err := a.readPassenger(i == 0, prefill)
		if err != nil {
			return err
		}
		bags, err := GetInt(a.reader, "Checked bags", a.out)
		if err != nil {
			return err
		}
		passengers = append(passengers, *p)
		bagCounts = append(bagCounts, bags)
	}

	printlnFn("Emergency contact:")
	contact, err := a.readContact()
	if err != nil {
		return err
	}

	if err := a.flow.SetPassengers(ctx, passengers, *contact, bagCounts); err != nil {
		return err
	}
	printlnFn("Passenger information saved. Next: 'seats'.")
	return nil
}

func (a *App) readPassenger(allowPrefill bool, prefill *booking.Passenger) (*booking.Passenger, error) {
	def := booking.Passenger{}
	if allowPrefill && prefill != nil {
		def = *prefill
	}

	firstName, err := GetOptionalText(a.reader, "First name", def.FirstName, a.out)
	if err != nil {
		return nil, err
	}
	lastName, err := GetOptionalText(a.reader, "Last name", def.LastName, a.out)
	if err != nil {
		return nil, err
	}
	dob, err := GetOptionalText(a.reader, "Date of birth (MM/DD/YY)", def.DOB, a.out)
	if err != nil {
		return nil, err
	}
	passport, err := GetOptionalText(a.reader, "Passport number", def.Passport, a.out)
	if err != nil {
		return nil, err
	}
	email, err := GetOptionalText(a.reader, "Email", def.Email, a.out)
	if err != nil {
		return nil, err
	}
	phone, err := GetOptionalText(a.reader, "Phone", def.Phone, a.out)
	if err != nil {
		return nil, err
	}

	return &booking.Passenger{
		FirstName: firstName,
		LastName:  lastName,
		DOB:       dob,
		Passport:  passport,
		Email:     email,
		Phone:     phone,
	}, nil
}

func (a *App) readContact() (*booking.EmergencyContact, error) {
	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return nil, err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return nil, err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return nil, err
	}
	phone, err := getSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return nil, err
	}
	return &booking.EmergencyContact{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
	}, nil
}

// selectSeats assigns one seat per passenger per leg and completes seat
// selection, which creates the backend reservations.
func (a *App) selectSeats(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	draft := a.flow.Draft()
	if draft == nil {
		return errors.New("run 'search' first")
	}
	count := draft.Criteria.PassengerCount()

	outbound, err := a.readSeats("Outbound seats (comma separated)", count)
	if err != nil {
		return err
	}
	var returnSeats []string
	if draft.Criteria.TripType == booking.TripRoundTrip {
		returnSeats, err = a.readSeats("Return seats (comma separated)", count)
		if err != nil {
			return err
		}
	}

	class, err := GetOptionalText(a.reader, "Cabin class (ECONOMY/BUSINESS/FIRST)", string(models.FareEconomy), a.out)
	if err != nil {
		return err
	}

	if err := a.flow.AssignSeats(ctx, outbound, returnSeats); err != nil {
		return err
	}
	if err := a.flow.CompleteSeatSelection(ctx, models.FareClass(strings.ToUpper(class))); err != nil {
		return err
	}

	a.hub.Success("Reservations created successfully!")
	printlnFn("Seats locked in. Next: 'pay'.")
	return nil
}

func (a *App) readSeats(prompt string, count int) ([]string, error) {
	line, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	var seats []string
	for _, s := range strings.Split(line, ",") {
		if s = strings.TrimSpace(s); s != "" {
			seats = append(seats, s)
		}
	}
	if len(seats) != count {
		return nil, fmt.Errorf("expected %d seats, got %d", count, len(seats))
	}
	return seats, nil
}

// payBooking collects card details and finishes the booking.
func (a *App) payBooking(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	number, err := getSimpleText(a.reader, "Card number", a.out)
	if err != nil {
		return err
	}
	holder, err := getSimpleText(a.reader, "Card holder", a.out)
	if err != nil {
		return err
	}
	expiry, err := getSimpleText(a.reader, "Expiry (MM/YY)", a.out)
	if err != nil {
		return err
	}
	cvv, err := getSimpleText(a.reader, "CVV", a.out)
	if err != nil {
		return err
	}

	confirmation, err := a.flow.Pay(ctx, booking.CardDetails{
		Number: number,
		Holder: holder,
		Expiry: expiry,
		CVV:    cvv,
	})
	if err != nil {
		return err
	}

	a.hub.Success("Payment completed!")
	printlnFn("Booking confirmed.")
	for _, r := range confirmation.Reservations {
		printlnFn(fmt.Sprintf("  Reservation %s  %.2f MAD", r.ID, r.TotalPrice))
	}
	if len(confirmation.Tickets) == 0 {
		printlnFn("Tickets are still being issued; check 'tickets <reservation-id>' later.")
	}
	for _, t := range confirmation.Tickets {
		printlnFn(fmt.Sprintf("  Ticket %s issued %s  %s", t.TicketNumber, t.IssuedAt, t.PDFPath))
	}
	a.results = nil
	a.NavigateTo(PageHome)
	return nil
}

// resumeBooking picks up a draft left over from an interrupted session.
func (a *App) resumeBooking(ctx context.Context) error {
	draft, err := a.flow.Resume(ctx)
	if err != nil {
		if errors.Is(err, booking.ErrNoDraft) {
			printlnFn("No booking in progress. Start with 'search'.")
			a.NavigateTo(PageSearch)
			return nil
		}
		return err
	}
	printlnFn(fmt.Sprintf("Resumed booking at stage %s (%d reservations pending).",
		draft.State, len(draft.ReservationIDs)))
	return nil
}
