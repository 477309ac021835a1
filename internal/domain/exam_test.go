package domain

import "testing"

func TestExam_HasCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		capacity   int
		registered int
		want       bool
	}{
		{"seats remaining", 30, 12, true},
		{"full", 30, 30, false},
		{"over capacity", 30, 31, false},
		{"unlimited when capacity unset", 0, 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := &Exam{Capacity: tt.capacity, Registered: tt.registered}
			if got := e.HasCapacity(); got != tt.want {
				t.Errorf("HasCapacity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistration_Active(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status RegistrationStatus
		want   bool
	}{
		{RegistrationConfirmed, true},
		{RegistrationWaitlisted, true},
		{RegistrationCancelled, false},
	}

	for _, tt := range tests {
		r := &Registration{Status: tt.status}
		if got := r.Active(); got != tt.want {
			t.Errorf("Active() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}
