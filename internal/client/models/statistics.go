package models

// Statistics is the admin dashboard aggregate.
type Statistics struct {
	TotalReservations     int                  `json:"totalReservations"`
	TotalRevenue          float64              `json:"totalRevenue"`
	TotalUsers            int                  `json:"totalUsers"`
	TotalFlights          int                  `json:"totalFlights"`
	ActiveReservations    int                  `json:"activeReservations"`
	CancelledReservations int                  `json:"cancelledReservations"`
	CompletedReservations int                  `json:"completedReservations"`
	PendingPayments       int                  `json:"pendingPayments"`
	MonthlyRevenue        []MonthlyRevenue     `json:"monthlyRevenue"`
	PopularDestinations   []PopularDestination `json:"popularDestinations"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type PopularDestination struct {
	Airport string `json:"airport"`
	Count   int    `json:"count"`
}
