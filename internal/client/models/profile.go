package models

// PassengerProfile is a saved traveler identity the user can reuse to
// prefill passenger forms.
type PassengerProfile struct {
	ID                 string `json:"id"`
	FirstName          string `json:"firstName"`
	MiddleName         string `json:"middleName,omitempty"`
	LastName           string `json:"lastName"`
	Suffix             string `json:"suffix,omitempty"`
	DateOfBirth        string `json:"dateOfBirth"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	RedressNumber      string `json:"redressNumber,omitempty"`
	KnownTravelerNumber string `json:"knownTravelerNumber,omitempty"`
	PassportNumber     string `json:"passportNumber"`
	IsDefault          bool   `json:"isDefault"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}
