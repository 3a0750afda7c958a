package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/karimfs/skybook/internal/client/models"
	"github.com/karimfs/skybook/internal/client/services"
)

// adminCommand dispatches the admin surface. Every mutation follows the
// same pattern: call the backend, then refetch the full list; failures go
// to the notification hub, not inline.
func (a *App) adminCommand(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	a.NavigateTo(PageAdmin)

	if len(args) == 0 {
		printlnFn("usage: admin <airports|airlines|flights|users|reservations|payments|stats> [list|create|update|delete] ...")
		return nil
	}

	resource := args[0]
	action := "list"
	if len(args) > 1 {
		action = args[1]
	}
	rest := args[2:]

	var err error
	switch resource {
	case "airports":
		err = a.adminAirports(ctx, action, rest)
	case "airlines":
		err = a.adminAirlines(ctx, action, rest)
	case "flights":
		err = a.adminFlights(ctx, action, rest)
	case "users":
		err = a.adminUsers(ctx, action, rest)
	case "reservations":
		err = a.adminReservations(ctx, action, rest)
	case "payments":
		err = a.adminPayments(ctx, action, rest)
	case "stats":
		err = a.adminStats(ctx)
	default:
		return fmt.Errorf("unknown admin resource %q", resource)
	}

	if err != nil {
		for _, msg := range userMessages(err) {
			a.hub.Error(msg)
		}
		return nil
	}
	return nil
}

func (a *App) adminAirports(ctx context.Context, action string, args []string) error {
	switch action {
	case "list":
		return a.listAirports(ctx)
	case "create":
		req, err := a.readAirportForm()
		if err != nil {
			return err
		}
		if _, err := a.airports.Create(ctx, *req); err != nil {
			return err
		}
		a.hub.Success("Airport created")
		return a.listAirports(ctx)
	case "update":
		if len(args) != 1 {
			return errors.New("usage: admin airports update <id>")
		}
		req, err := a.readAirportForm()
		if err != nil {
			return err
		}
		if _, err := a.airports.Update(ctx, args[0], *req); err != nil {
			return err
		}
		a.hub.Success("Airport updated")
		return a.listAirports(ctx)
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: admin airports delete <id>")
		}
		if err := a.confirmDelete("airport " + args[0]); err != nil {
			return err
		}
		if err := a.airports.Delete(ctx, args[0]); err != nil {
			return err
		}
		a.hub.Success("Airport deleted")
		return a.listAirports(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (a *App) listAirports(ctx context.Context) error {
	airports, err := a.airports.List(ctx)
	if err != nil {
		return err
	}
	for _, ap := range airports {
		printlnFn(fmt.Sprintf("  %s  %s  %s, %s (%s)", ap.ID, ap.Code, ap.Name, ap.City, ap.Country))
	}
	return nil
}

func (a *App) readAirportForm() (*services.AirportRequest, error) {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return nil, err
	}
	code, err := getSimpleText(a.reader, "IATA code", a.out)
	if err != nil {
		return nil, err
	}
	city, err := getSimpleText(a.reader, "City", a.out)
	if err != nil {
		return nil, err
	}
	country, err := getSimpleText(a.reader, "Country", a.out)
	if err != nil {
		return nil, err
	}
	return &services.AirportRequest{Name: name, Code: code, City: city, Country: country}, nil
}

func (a *App) adminAirlines(ctx context.Context, action string, args []string) error {
	switch action {
	case "list":
		return a.listAirlines(ctx)
	case "create":
		req, err := a.readAirlineForm()
		if err != nil {
			return err
		}
		if _, err := a.airlines.Create(ctx, *req); err != nil {
			return err
		}
		a.hub.Success("Airline created")
		return a.listAirlines(ctx)
	case "update":
		if len(args) != 1 {
			return errors.New("usage: admin airlines update <id>")
		}
		req, err := a.readAirlineForm()
		if err != nil {
			return err
		}
		if _, err := a.airlines.Update(ctx, args[0], *req); err != nil {
			return err
		}
		a.hub.Success("Airline updated")
		return a.listAirlines(ctx)
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: admin airlines delete <id>")
		}
		if err := a.confirmDelete("airline " + args[0]); err != nil {
			return err
		}
		if err := a.airlines.Delete(ctx, args[0]); err != nil {
			return err
		}
		a.hub.Success("Airline deleted")
		return a.listAirlines(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (a *App) listAirlines(ctx context.Context) error {
	airlines, err := a.airlines.List(ctx)
	if err != nil {
		return err
	}
	for _, al := range airlines {
		printlnFn(fmt.Sprintf("  %s  %s  %s (%s)", al.ID, al.Code, al.Name, al.Country))
	}
	return nil
}

func (a *App) readAirlineForm() (*services.AirlineRequest, error) {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return nil, err
	}
	code, err := getSimpleText(a.reader, "Code", a.out)
	if err != nil {
		return nil, err
	}
	country, err := getSimpleText(a.reader, "Country", a.out)
	if err != nil {
		return nil, err
	}
	return &services.AirlineRequest{Name: name, Code: code, Country: country}, nil
}

// adminFlights needs airlines and airports alongside the flights, so the
// three lists are fetched in parallel.
func (a *App) adminFlights(ctx context.Context, action string, args []string) error {
	switch action {
	case "list":
		return a.listFlightsAdmin(ctx)
	case "create":
		req, err := a.readFlightForm()
		if err != nil {
			return err
		}
		if _, err := a.flights.Create(ctx, *req); err != nil {
			return err
		}
		a.hub.Success("Flight created")
		return a.listFlightsAdmin(ctx)
	case "update":
		if len(args) != 1 {
			return errors.New("usage: admin flights update <id>")
		}
		req, err := a.readFlightForm()
		if err != nil {
			return err
		}
		if _, err := a.flights.Update(ctx, args[0], *req); err != nil {
			return err
		}
		a.hub.Success("Flight updated")
		return a.listFlightsAdmin(ctx)
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: admin flights delete <id>")
		}
		if err := a.confirmDelete("flight " + args[0]); err != nil {
			return err
		}
		if err := a.flights.Delete(ctx, args[0]); err != nil {
			return err
		}
		a.hub.Success("Flight deleted")
		return a.listFlightsAdmin(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (a *App) listFlightsAdmin(ctx context.Context) error {
	var (
		flights  []models.Flight
		airlines []models.Airline
		airports []models.Airport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flights, err = a.flights.ListRaw(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		airlines, err = a.airlines.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		airports, err = a.airports.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("%d flights, %d airlines, %d airports", len(flights), len(airlines), len(airports)))
	for _, f := range flights {
		printlnFn(fmt.Sprintf("  %s  %s %s  %s -> %s  eco %.2f / bus %.2f / first %.2f",
			f.ID, f.Airline.Code, f.FlightNumber,
			f.DepartureAirport.Code, f.ArrivalAirport.Code,
			f.EconomyPrice, f.BusinessPrice, f.FirstClassPrice))
	}
	return nil
}

func (a *App) readFlightForm() (*services.FlightRequest, error) {
	number, err := getSimpleText(a.reader, "Flight number", a.out)
	if err != nil {
		return nil, err
	}
	airlineID, err := getSimpleText(a.reader, "Airline id", a.out)
	if err != nil {
		return nil, err
	}
	depID, err := getSimpleText(a.reader, "Departure airport id", a.out)
	if err != nil {
		return nil, err
	}
	arrID, err := getSimpleText(a.reader, "Arrival airport id", a.out)
	if err != nil {
		return nil, err
	}
	depTime, err := getSimpleText(a.reader, "Departure time (RFC3339)", a.out)
	if err != nil {
		return nil, err
	}
	arrTime, err := getSimpleText(a.reader, "Arrival time (RFC3339)", a.out)
	if err != nil {
		return nil, err
	}
	duration, err := GetInt(a.reader, "Duration minutes", a.out)
	if err != nil {
		return nil, err
	}
	ecoPrice, err := getSimpleText(a.reader, "Economy price", a.out)
	if err != nil {
		return nil, err
	}
	price, err := strconv.ParseFloat(ecoPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("not a price: %q", ecoPrice)
	}

	return &services.FlightRequest{
		FlightNumber:       number,
		AirlineID:          airlineID,
		DepartureAirportID: depID,
		ArrivalAirportID:   arrID,
		DepartureTime:      depTime,
		ArrivalTime:        arrTime,
		DurationMinutes:    duration,
		EconomyPrice:       price,
	}, nil
}

func (a *App) adminUsers(ctx context.Context, action string, args []string) error {
	switch action {
	case "list":
		return a.listUsers(ctx)
	case "create":
		email, err := getSimpleText(a.reader, "Email", a.out)
		if err != nil {
			return err
		}
		firstName, err := getSimpleText(a.reader, "First name", a.out)
		if err != nil {
			return err
		}
		lastName, err := getSimpleText(a.reader, "Last name", a.out)
		if err != nil {
			return err
		}
		role, err := GetOptionalText(a.reader, "Role (ADMIN/CLIENT)", string(models.RoleClient), a.out)
		if err != nil {
			return err
		}
		password, err := getPassword(a.out)
		if err != nil {
			return err
		}
		if _, err := a.users.Create(ctx, services.UserRequest{
			Email:     email,
			Password:  password,
			FirstName: firstName,
			LastName:  lastName,
			Role:      models.Role(role),
		}); err != nil {
			return err
		}
		a.hub.Success("User created")
		return a.listUsers(ctx)
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: admin users delete <id>")
		}
		if err := a.confirmDelete("user " + args[0]); err != nil {
			return err
		}
		if err := a.users.Delete(ctx, args[0]); err != nil {
			return err
		}
		a.hub.Success("User deleted")
		return a.listUsers(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (a *App) listUsers(ctx context.Context) error {
	users, err := a.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		active := "active"
		if !u.IsActive {
			active = "inactive"
		}
		printlnFn(fmt.Sprintf("  %s  %s %s <%s>  %s  %s", u.ID, u.FirstName, u.LastName, u.Email, u.Role, active))
	}
	return nil
}

func (a *App) adminReservations(ctx context.Context, action string, args []string) error {
	switch action {
	case "list":
		return a.listReservationsAdmin(ctx)
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: admin reservations delete <id>")
		}
		if err := a.confirmDelete("reservation " + args[0]); err != nil {
			return err
		}
		if err := a.reservations.Delete(ctx, args[0]); err != nil {
			return err
		}
		a.hub.Success("Reservation deleted")
		return a.listReservationsAdmin(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (a *App) listReservationsAdmin(ctx context.Context) error {
	reservations, err := a.reservations.List(ctx)
	if err != nil {
		return err
	}
	for _, r := range reservations {
		email := ""
		if r.User != nil {
			email = r.User.Email
		}
		printlnFn(fmt.Sprintf("  %s  %s  %s  %.2f MAD  %s", r.ID, r.BookingReference, email, r.TotalPrice, r.Status))
	}
	return nil
}

func (a *App) adminPayments(ctx context.Context, action string, args []string) error {
	switch action {
	case "list":
		return a.listPayments(ctx)
	case "status":
		if len(args) != 2 {
			return errors.New("usage: admin payments status <id> <PENDING|COMPLETED|FAILED|REFUNDED>")
		}
		if _, err := a.payments.UpdateStatus(ctx, args[0], models.PaymentStatus(args[1])); err != nil {
			return err
		}
		a.hub.Success("Payment status updated")
		return a.listPayments(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (a *App) listPayments(ctx context.Context) error {
	payments, err := a.payments.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range payments {
		// reservation can be null on the wire
		ref := "-"
		if p.Reservation != nil {
			ref = p.Reservation.BookingReference
		}
		printlnFn(fmt.Sprintf("  %s  %s  %.2f %s  %s  %s", p.ID, ref, p.Amount, p.Currency, p.PaymentMethod, p.Status))
	}
	return nil
}

func (a *App) adminStats(ctx context.Context) error {
	stats, err := a.dashboard.Statistics(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("  reservations: %d (active %d, cancelled %d, completed %d)",
		stats.TotalReservations, stats.ActiveReservations, stats.CancelledReservations, stats.CompletedReservations))
	printlnFn(fmt.Sprintf("  revenue: %.2f MAD  users: %d  flights: %d  pending payments: %d",
		stats.TotalRevenue, stats.TotalUsers, stats.TotalFlights, stats.PendingPayments))
	for _, m := range stats.MonthlyRevenue {
		printlnFn(fmt.Sprintf("    %s  %.2f", m.Month, m.Revenue))
	}
	for _, d := range stats.PopularDestinations {
		printlnFn(fmt.Sprintf("    %s  %d bookings", d.Airport, d.Count))
	}
	return nil
}

func (a *App) confirmDelete(what string) error {
	answer, err := GetOptionalText(a.reader, fmt.Sprintf("Delete %s? (y/N)", what), "n", a.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return errors.New("cancelled")
	}
	return nil
}
