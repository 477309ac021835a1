package domain

// Dashboard aggregates a user's profile with their exam registrations and
// the exams those registrations point at. It is assembled by the BFF from
// multiple upstream calls.
type Dashboard struct {
	User          User
	Registrations []RegistrationDetail
}

// RegistrationDetail pairs a registration with its exam. Exam is nil when
// the exam lookup failed; Unavailable carries the reason so the dashboard
// can still render the rest.
type RegistrationDetail struct {
	Registration Registration
	Exam         *Exam
	Unavailable  string
}
