package models

import "time"

// Flight is the raw flight entity as the backend returns it.
type Flight struct {
	ID                       string    `json:"id"`
	FlightNumber             string    `json:"flightNumber"`
	Airline                  Airline   `json:"airline"`
	DepartureAirport         Airport   `json:"departureAirport"`
	ArrivalAirport           Airport   `json:"arrivalAirport"`
	DepartureTime            time.Time `json:"departureTime"`
	ArrivalTime              time.Time `json:"arrivalTime"`
	DurationMinutes          int       `json:"durationMinutes"`
	Stops                    int       `json:"stops"`
	EconomyPrice             float64   `json:"economyPrice"`
	BusinessPrice            float64   `json:"businessPrice"`
	FirstClassPrice          float64   `json:"firstClassPrice"`
	EconomySeats             int       `json:"economySeats"`
	BusinessSeats            int       `json:"businessSeats"`
	FirstClassSeats          int       `json:"firstClassSeats"`
	AvailableEconomySeats    int       `json:"availableEconomySeats"`
	AvailableBusinessSeats   int       `json:"availableBusinessSeats"`
	AvailableFirstClassSeats int       `json:"availableFirstClassSeats"`
	IsActive                 bool      `json:"isActive"`
	CreatedAt                string    `json:"createdAt"`
	UpdatedAt                string    `json:"updatedAt"`
}

// PriceBreakdown is the computed display price for one flight leg.
type PriceBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	Taxes    float64 `json:"taxes"`
	Total    float64 `json:"total"`
}

// FlightSummary is the condensed shape the booking flow carries around:
// identity, schedule and a computed price breakdown.
type FlightSummary struct {
	ID           string         `json:"id"`
	Airline      string         `json:"airline"`
	FlightNumber string         `json:"flightNumber"`
	Duration     string         `json:"duration"`
	Time         string         `json:"time"`
	Price        PriceBreakdown `json:"price"`
}
