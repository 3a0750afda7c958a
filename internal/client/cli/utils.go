package cli

import (
	"errors"

	"github.com/karimfs/skybook/internal/client/api"
	"github.com/karimfs/skybook/internal/client/booking"
)

// userMessages flattens an error into display lines. Validation failures
// (local or backend) carry several messages; everything else is one line.
func userMessages(err error) []string {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		return verr.Messages
	}
	var aerr *api.Error
	if errors.As(err, &aerr) {
		return aerr.Messages
	}
	return []string{err.Error()}
}
