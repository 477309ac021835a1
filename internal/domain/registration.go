package domain

import "time"

// Registration links a user to an exam.
type Registration struct {
	ID           string
	ExamID       string
	UserID       string
	Status       RegistrationStatus
	RegisteredAt time.Time
}

// RegistrationStatus represents the state of an exam registration.
type RegistrationStatus string

const (
	RegistrationConfirmed  RegistrationStatus = "confirmed"
	RegistrationWaitlisted RegistrationStatus = "waitlisted"
	RegistrationCancelled  RegistrationStatus = "cancelled"
)

// IsValid returns true if the status is one of the defined constants.
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationConfirmed, RegistrationWaitlisted, RegistrationCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s RegistrationStatus) String() string {
	return string(s)
}

// Active reports whether the registration still occupies a seat.
func (r *Registration) Active() bool {
	return r.Status == RegistrationConfirmed || r.Status == RegistrationWaitlisted
}
