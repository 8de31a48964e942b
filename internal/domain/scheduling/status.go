package scheduling

import "fmt"

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusScheduled          Status = "SCHEDULED"
	StatusInTriage           Status = "IN_TRIAGE"
	StatusAwaitingAttendance Status = "AWAITING_ATTENDANCE"
	StatusInAttendance       Status = "IN_ATTENDANCE"
	StatusCompleted          Status = "COMPLETED"
	StatusCancelled          Status = "CANCELLED"
	StatusNoShow             Status = "NO_SHOW"
)

var statusDescriptions = map[Status]string{
	StatusScheduled:          "Scheduled",
	StatusInTriage:           "In triage",
	StatusAwaitingAttendance: "Awaiting attendance",
	StatusInAttendance:       "In attendance",
	StatusCompleted:          "Completed",
	StatusCancelled:          "Cancelled",
	StatusNoShow:             "No show",
}

// transitions describes the allowed status machine. COMPLETED, CANCELLED and
// NO_SHOW are terminal.
var transitions = map[Status][]Status{
	StatusScheduled:          {StatusInTriage, StatusAwaitingAttendance, StatusCancelled, StatusNoShow},
	StatusInTriage:           {StatusAwaitingAttendance, StatusCancelled, StatusNoShow},
	StatusAwaitingAttendance: {StatusInAttendance, StatusCancelled, StatusNoShow},
	StatusInAttendance:       {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted:          {},
	StatusCancelled:          {},
	StatusNoShow:             {},
}

// Valid reports whether s is one of the seven known statuses.
func (s Status) Valid() bool {
	_, ok := statusDescriptions[s]
	return ok
}

// Description returns the human-readable form of the status.
func (s Status) Description() string {
	return statusDescriptions[s]
}

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransitionTo reports whether the status machine allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports a status machine misuse.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

// TransitionTo moves the appointment to next, or fails with
// InvalidTransitionError if the status machine forbids it.
func (a *Appointment) TransitionTo(next Status) error {
	if !a.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{From: a.Status, To: next}
	}
	a.Status = next
	return nil
}
