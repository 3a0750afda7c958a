package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karimfs/skybook/internal/client/booking"
)

func TestUserMessages_ValidationError(t *testing.T) {
	err := fmt.Errorf("entering passengers: %w", &booking.ValidationError{
		Messages: []string{"Passenger 1: Email is required", "Emergency contact: Phone number is required"},
	})
	require.Equal(t, []string{
		"Passenger 1: Email is required",
		"Emergency contact: Phone number is required",
	}, userMessages(err))
}

func TestUserMessages_PlainError(t *testing.T) {
	require.Equal(t, []string{"boom"}, userMessages(errors.New("boom")))
}
