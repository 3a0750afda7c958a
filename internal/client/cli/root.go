package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

func (a *App) prompt() string {
	status := ""
	if user := a.session.User(); user != nil {
		status = user.Email
		if a.isAdmin() {
			status += " admin"
		}
	}
	if status != "" {
		status = fmt.Sprintf("(%s) ", status)
	}
	return fmt.Sprintf("skybook %s%s> ", status, a.CurrentPage())
}

func (a *App) root(ctx context.Context, scanner *bufio.Scanner) {
	printlnFn("Welcome to SkyBook (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, a.prompt())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.runCommand(a.register(ctx))
		case "login":
			a.runCommand(a.login(ctx))
		case "logout":
			a.runCommand(a.logout(ctx))
		case "search":
			a.runCommand(a.searchFlights(ctx))
		case "select":
			a.runCommand(a.selectFlights(ctx))
		case "passengers":
			a.runCommand(a.enterPassengers(ctx))
		case "seats":
			a.runCommand(a.selectSeats(ctx))
		case "pay":
			a.runCommand(a.payBooking(ctx))
		case "resume":
			a.runCommand(a.resumeBooking(ctx))
		case "bookings":
			a.runCommand(a.myBookings(ctx))
		case "cancel":
			a.runCommand(a.cancelBooking(ctx, args))
		case "tickets":
			a.runCommand(a.showTickets(ctx, args))
		case "inbox":
			a.runCommand(a.showInbox(ctx))
		case "profile":
			a.runCommand(a.showProfile(ctx))
		case "travelers":
			a.runCommand(a.passengerProfiles(ctx, args))
		case "admin":
			a.runCommand(a.adminCommand(ctx, args))
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, search, select, passengers, exit")
		return
	}
	printlnFn("Available commands: search, select, passengers, seats, pay, resume, bookings, cancel, tickets, inbox, profile, travelers, logout, exit")
	if a.isAdmin() {
		printlnFn("Admin commands: admin <airports|airlines|flights|users|reservations|payments|stats> ...")
	}
}

// runCommand prints command errors in a user-facing shape; the REPL itself
// never dies on a failed command.
func (a *App) runCommand(err error) {
	if err == nil {
		return
	}
	for _, msg := range userMessages(err) {
		printlnFn(msg)
	}
}
