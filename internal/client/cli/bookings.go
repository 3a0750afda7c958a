package cli

import (
	"context"
	"errors"
	"fmt"
)

// myBookings lists the user's reservations, newest shape straight from the
// backend.
func (a *App) myBookings(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	a.NavigateTo(PageBookings)

	reservations, err := a.reservations.List(ctx)
	if err != nil {
		return err
	}
	if len(reservations) == 0 {
		printlnFn("No bookings yet.")
		return nil
	}
	for _, r := range reservations {
		flight := ""
		if r.Flight != nil {
			flight = r.Flight.FlightNumber
		}
		paid := ""
		if r.Payment != nil {
			paid = fmt.Sprintf("  paid(%s)", r.Payment.Status)
		}
		printlnFn(fmt.Sprintf("  %s  %s  %s %s  %.2f MAD  %s%s",
			r.ID, r.BookingReference, flight, r.FlightClass, r.TotalPrice, r.Status, paid))
	}
	return nil
}

// cancelBooking cancels one reservation by id and shows the refreshed
// record returned by the backend.
func (a *App) cancelBooking(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: cancel <reservation-id>")
	}

	reservation, err := a.reservations.Cancel(ctx, args[0])
	if err != nil {
		return err
	}
	a.hub.Success("Reservation cancelled")
	printlnFn(fmt.Sprintf("  %s is now %s", reservation.ID, reservation.Status))
	return nil
}

// showInbox lists the backend notifications addressed to the current user.
func (a *App) showInbox(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	notifications, err := a.notifications.ByUser(ctx, a.session.User().ID)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		printlnFn("Inbox is empty.")
		return nil
	}
	for _, n := range notifications {
		read := " "
		if !n.IsRead {
			read = "*"
		}
		printlnFn(fmt.Sprintf("  %s %s  [%s] %s", read, n.CreatedAt, n.Type, n.Message))
	}
	return nil
}

// showTickets fetches the tickets for a reservation.
func (a *App) showTickets(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: tickets <reservation-id>")
	}

	tickets, err := a.tickets.ByReservation(ctx, args[0])
	if err != nil {
		return err
	}
	if len(tickets) == 0 {
		printlnFn("No tickets issued yet.")
		return nil
	}
	for _, t := range tickets {
		printlnFn(fmt.Sprintf("  %s issued %s  %s", t.TicketNumber, t.IssuedAt, t.PDFPath))
	}
	return nil
}
