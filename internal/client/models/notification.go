package models

// Notification is a backend-issued message tied to a user and, optionally,
// a reservation.
type Notification struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Message     string       `json:"message"`
	IsRead      bool         `json:"isRead"`
	User        *User        `json:"user,omitempty"`
	Reservation *Reservation `json:"reservation,omitempty"`
	CreatedAt   string       `json:"createdAt"`
}
