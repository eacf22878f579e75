// Package rider contains the RiderProfile aggregate. It owns the rider's
// availability flags (online, busy, blocked) and the reliability counters,
// and encodes the single eligibility rule used at assignment time: a rider
// may take a new delivery only when they are a rider-type user, online,
// not busy and not blocked.
//
// All other profile fields are owned by an external profile-management
// collaborator; this package never mutates them.
package rider
