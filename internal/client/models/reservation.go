package models

// FareClass is the cabin class a reservation is booked in.
type FareClass string

const (
	FareEconomy  FareClass = "ECONOMY"
	FareBusiness FareClass = "BUSINESS"
	FareFirst    FareClass = "FIRST"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

// Reservation is backend-owned. The client never computes TotalPrice or
// Status itself; both are always read back after creation.
type Reservation struct {
	ID                     string            `json:"id"`
	BookingReference       string            `json:"bookingReference"`
	User                   *User             `json:"user,omitempty"`
	Flight                 *Flight           `json:"flight,omitempty"`
	PassengerFirstName     string            `json:"passengerFirstName"`
	PassengerLastName      string            `json:"passengerLastName"`
	PassengerPassport      string            `json:"passengerPassport"`
	PassengerDateOfBirth   string            `json:"passengerDateOfBirth"`
	FlightClass            FareClass         `json:"flightClass"`
	TotalPrice             float64           `json:"totalPrice"`
	Status                 ReservationStatus `json:"status"`
	TicketPDFPath          string            `json:"ticketPdfPath,omitempty"`
	Payment                *Payment          `json:"payment,omitempty"`
	CreatedAt              string            `json:"createdAt"`
	UpdatedAt              string            `json:"updatedAt"`
}
