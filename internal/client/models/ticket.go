package models

// Ticket mirrors the backend's ticket entity. The backend exposes these
// fields with French names on the wire.
type Ticket struct {
	ID           string       `json:"id"`
	TicketNumber string       `json:"numeroBillet"`
	IssuedAt     string       `json:"dateEmission"`
	PDFPath      string       `json:"fichierPDF,omitempty"`
	Reservation  *Reservation `json:"reservation,omitempty"`
}
