// Package cli is the interactive terminal frontend: a small REPL over the
// booking flow, the domain services and the auth session, with page-style
// navigation and role guards.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/karimfs/skybook/internal/client/api"
	"github.com/karimfs/skybook/internal/client/booking"
	"github.com/karimfs/skybook/internal/client/config"
	"github.com/karimfs/skybook/internal/client/notify"
	"github.com/karimfs/skybook/internal/client/services"
	"github.com/karimfs/skybook/internal/client/session"
	"github.com/karimfs/skybook/internal/client/storage"
	"github.com/karimfs/skybook/internal/logging"
)

// Page names the REPL can navigate between. The HTTP pipeline force-navigates
// to PageLogin (via the Navigator interface) when the session dies.
const (
	PageLogin    = api.PageLogin
	PageHome     = "home"
	PageSearch   = "search"
	PageBookings = "bookings"
	PageProfile  = "profile"
	PageAdmin    = "admin"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Manager
	hub     *notify.Hub

	auth          *services.AuthService
	airports      *services.AirportsService
	airlines      *services.AirlinesService
	flights       *services.FlightsService
	reservations  *services.ReservationsService
	payments      *services.PaymentsService
	tickets       *services.TicketsService
	users         *services.UsersService
	profiles      *services.ProfilesService
	dashboard     *services.DashboardService
	notifications *services.NotificationsService

	flow    *booking.Flow
	results *lastResults

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	page string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	a := &App{
		config: cfg,
		log:    log,
		hub:    notify.NewHub(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		page:   PageLogin,
	}

	a.session = session.NewManager(db, log)
	if err := a.session.Load(ctx); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	if a.session.IsAuthenticated() {
		a.page = PageHome
	}

	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, a.session, a, log)

	a.auth = services.NewAuthService(client)
	a.airports = services.NewAirportsService(client)
	a.airlines = services.NewAirlinesService(client)
	a.flights = services.NewFlightsService(client)
	a.reservations = services.NewReservationsService(client)
	a.payments = services.NewPaymentsService(client)
	a.tickets = services.NewTicketsService(client)
	a.users = services.NewUsersService(client)
	a.profiles = services.NewProfilesService(client)
	a.dashboard = services.NewDashboardService(client)
	a.notifications = services.NewNotificationsService(client)

	a.flow = booking.NewFlow(
		a.flights, a.reservations, a.payments, a.tickets,
		storage.NewMemoryStore(), storage.NewSQLiteStore(db), log,
	)

	return a, nil
}

// CurrentPage implements api.Navigator.
func (a *App) CurrentPage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

// NavigateTo implements api.Navigator. The HTTP pipeline calls it when a 401
// invalidates the session; the REPL calls it on user navigation.
func (a *App) NavigateTo(page string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.page != page {
		a.page = page
		a.log.Debug(context.Background(), "navigated", "page", page)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	events, cancel := a.hub.Subscribe()
	defer cancel()
	go func() {
		for n := range events {
			printlnFn(fmt.Sprintf("[%s] %s", n.Level, n.Message))
		}
	}()

	a.root(ctx, bufio.NewScanner(os.Stdin))
}
