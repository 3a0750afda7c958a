package booking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func completePassenger() Passenger {
	return Passenger{
		FirstName: "John",
		LastName:  "Doe",
		DOB:       "06/15/90",
		Email:     "john@example.com",
		Phone:     "555-0100",
		Passport:  "X1234567",
	}
}

func completeContact() EmergencyContact {
	return EmergencyContact{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0101",
	}
}

func TestValidatePassengers_AllComplete(t *testing.T) {
	contact := completeContact()
	msgs := validatePassengers(1, []Passenger{completePassenger()}, &contact)
	require.Empty(t, msgs)
}

func TestValidatePassengers_CollectsEveryViolation(t *testing.T) {
	p := completePassenger()
	p.Email = ""
	p.Phone = ""
	contact := completeContact()
	contact.Phone = ""

	msgs := validatePassengers(1, []Passenger{p}, &contact)
	require.Equal(t, []string{
		"Passenger 1: Email is required",
		"Passenger 1: Phone number is required",
		"Emergency contact: Phone number is required",
	}, msgs)
}

func TestValidatePassengers_CountMismatch(t *testing.T) {
	contact := completeContact()
	msgs := validatePassengers(2, []Passenger{completePassenger()}, &contact)
	require.Contains(t, msgs, "Please fill in all passenger information")
}

func TestValidatePassengers_NumbersPerPassenger(t *testing.T) {
	first := completePassenger()
	second := completePassenger()
	second.Passport = ""

	contact := completeContact()
	msgs := validatePassengers(2, []Passenger{first, second}, &contact)
	require.Equal(t, []string{"Passenger 2: Passport number is required"}, msgs)
}

func TestValidateCard(t *testing.T) {
	require.Empty(t, validateCard(CardDetails{
		Number: "4111111111111111", Holder: "John Doe", Expiry: "12/25", CVV: "123",
	}))

	msgs := validateCard(CardDetails{Holder: "John Doe"})
	require.Equal(t, []string{
		"Card number is required",
		"Card expiry date is required",
		"Card CVV is required",
	}, msgs)
}
