package booking

import (
	"fmt"
	"strings"
)

// ValidationError carries every violated field message at once, so the
// user sees the whole list rather than fixing fields one by one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// validatePassengers checks completeness of the passenger forms and the
// emergency contact. It collects all violations, never just the first.
func validatePassengers(want int, passengers []Passenger, emergency *EmergencyContact) []string {
	var errs []string

	if len(passengers) != want {
		errs = append(errs, "Please fill in all passenger information")
	}

	for i, p := range passengers {
		n := i + 1
		if p.FirstName == "" {
			errs = append(errs, fmt.Sprintf("Passenger %d: First name is required", n))
		}
		if p.LastName == "" {
			errs = append(errs, fmt.Sprintf("Passenger %d: Last name is required", n))
		}
		if p.DOB == "" {
			errs = append(errs, fmt.Sprintf("Passenger %d: Date of birth is required", n))
		}
		if p.Passport == "" {
			errs = append(errs, fmt.Sprintf("Passenger %d: Passport number is required", n))
		}
		if p.Email == "" {
			errs = append(errs, fmt.Sprintf("Passenger %d: Email is required", n))
		}
		if p.Phone == "" {
			errs = append(errs, fmt.Sprintf("Passenger %d: Phone number is required", n))
		}
	}

	if emergency == nil {
		emergency = &EmergencyContact{}
	}
	if emergency.FirstName == "" {
		errs = append(errs, "Emergency contact: First name is required")
	}
	if emergency.LastName == "" {
		errs = append(errs, "Emergency contact: Last name is required")
	}
	if emergency.Email == "" {
		errs = append(errs, "Emergency contact: Email is required")
	}
	if emergency.Phone == "" {
		errs = append(errs, "Emergency contact: Phone number is required")
	}

	return errs
}

// validateCard requires all four card fields. Format and Luhn checks are
// deliberately absent, the gateway is mocked.
func validateCard(card CardDetails) []string {
	var errs []string
	if card.Number == "" {
		errs = append(errs, "Card number is required")
	}
	if card.Holder == "" {
		errs = append(errs, "Card holder name is required")
	}
	if card.Expiry == "" {
		errs = append(errs, "Card expiry date is required")
	}
	if card.CVV == "" {
		errs = append(errs, "Card CVV is required")
	}
	return errs
}
