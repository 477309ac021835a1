package domain

import "time"

// Exam represents a scheduled examination in the exam service.
type Exam struct {
	ID          string
	Title       string
	Subject     string
	Description string
	ScheduledAt time.Time
	Duration    time.Duration
	Capacity    int
	Registered  int
	Status      ExamStatus
}

// ExamStatus represents the lifecycle state of an exam.
type ExamStatus string

const (
	ExamScheduled ExamStatus = "scheduled"
	ExamOpen      ExamStatus = "open"
	ExamClosed    ExamStatus = "closed"
	ExamCancelled ExamStatus = "cancelled"
)

// IsValid returns true if the status is one of the defined constants.
func (s ExamStatus) IsValid() bool {
	switch s {
	case ExamScheduled, ExamOpen, ExamClosed, ExamCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s ExamStatus) String() string {
	return string(s)
}

// HasCapacity reports whether the exam can accept another registration.
func (e *Exam) HasCapacity() bool {
	return e.Capacity <= 0 || e.Registered < e.Capacity
}
