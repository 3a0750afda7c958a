// Package booking implements the multi-step booking flow: it accumulates a
// draft across search, flight selection, passenger entry, seat assignment
// and payment, persisting the draft between steps and converting it into
// backend reservations and payments at the end.
package booking

import (
	"github.com/karimfs/skybook/internal/client/models"
)

// State marks how far a draft has progressed through the flow.
type State string

const (
	StateSearching       State = "SEARCHING"
	StateFlightsSelected State = "FLIGHTS_SELECTED"
	StatePassengerInfo   State = "PASSENGER_INFO"
	StateSeatsSelected   State = "SEATS_SELECTED"
	StatePaymentPending  State = "PAYMENT_PENDING"
	StateConfirmed       State = "CONFIRMED"
)

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

type SearchCriteria struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	TripType      TripType `json:"tripType"`
	DepartureDate string   `json:"departureDate"`
	ReturnDate    string   `json:"returnDate,omitempty"`
	Adults        int      `json:"adults"`
	Minors        int      `json:"minors"`
}

// PassengerCount is fixed once the search is submitted; every later step
// sizes its lists against it.
func (c SearchCriteria) PassengerCount() int {
	return c.Adults + c.Minors
}

type Passenger struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	DOB        string `json:"dob"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Passport   string `json:"passport"`
	AgeGroup   string `json:"ageGroup,omitempty"`
}

type EmergencyContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Draft is the not-yet-committed booking. It is read-modify-written as a
// whole object on every step and serialized to storage between steps.
type Draft struct {
	State            State                  `json:"state"`
	Criteria         SearchCriteria         `json:"criteria"`
	SelectedFlights  []models.FlightSummary `json:"selectedFlights,omitempty"`
	FlightClass      models.FareClass       `json:"flightClass,omitempty"`
	Passengers       []Passenger            `json:"passengers,omitempty"`
	EmergencyContact *EmergencyContact      `json:"emergencyContact,omitempty"`
	BagCounts        []int                  `json:"bagCounts,omitempty"`
	OutboundSeats    []string               `json:"outboundSeats,omitempty"`
	ReturnSeats      []string               `json:"returnSeats,omitempty"`
	ReservationIDs   []string               `json:"reservationIds,omitempty"`
}

func (d *Draft) roundTrip() bool {
	return d.Criteria.TripType == TripRoundTrip
}
