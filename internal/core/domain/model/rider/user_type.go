package rider

import (
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
)

// UserType classifies the account behind a profile. Only RiderUser accounts
// are eligible for delivery assignment.
type UserType int

const (
	// UserTypeUnknown represents an invalid or undefined user type.
	UserTypeUnknown UserType = iota

	// RiderUser is a courier account that can carry deliveries.
	RiderUser

	// CustomerUser is a sender/recipient account.
	CustomerUser

	// DispatcherUser owns rider accounts and receives their payouts.
	DispatcherUser
)

// Validate checks if the UserType value is valid.
func (u UserType) Validate() error {
	if u != RiderUser && u != CustomerUser && u != DispatcherUser {
		return errs.NewValueIsInvalidError("user type")
	}
	return nil
}

// String returns the human-readable name of the user type.
func (u UserType) String() string {
	switch u {
	case RiderUser:
		return "Rider"
	case CustomerUser:
		return "Customer"
	case DispatcherUser:
		return "Dispatcher"
	default:
		return "Unknown"
	}
}
