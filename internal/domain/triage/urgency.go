package triage

import "fmt"

// Urgency is the five-level clinical priority assigned during triage.
// Rank 1 is the most urgent.
type Urgency string

const (
	UrgencyEmergency  Urgency = "EMERGENCY"
	UrgencyVeryUrgent Urgency = "VERY_URGENT"
	UrgencyUrgent     Urgency = "URGENT"
	UrgencyLessUrgent Urgency = "LESS_URGENT"
	UrgencyNonUrgent  Urgency = "NON_URGENT"
)

var urgencyRanks = map[Urgency]int{
	UrgencyEmergency:  1,
	UrgencyVeryUrgent: 2,
	UrgencyUrgent:     3,
	UrgencyLessUrgent: 4,
	UrgencyNonUrgent:  5,
}

var urgencyDescriptions = map[Urgency]string{
	UrgencyEmergency:  "Emergency",
	UrgencyVeryUrgent: "Very urgent",
	UrgencyUrgent:     "Urgent",
	UrgencyLessUrgent: "Less urgent",
	UrgencyNonUrgent:  "Non urgent",
}

// UnknownUrgencyError reports an urgency label outside the fixed five.
type UnknownUrgencyError struct {
	Label string
}

func (e *UnknownUrgencyError) Error() string {
	return fmt.Sprintf("unknown urgency label: %s", e.Label)
}

// ClassifyUrgency resolves a label to one of the five urgency levels.
func ClassifyUrgency(label string) (Urgency, error) {
	u := Urgency(label)
	if _, ok := urgencyRanks[u]; !ok {
		return "", &UnknownUrgencyError{Label: label}
	}
	return u, nil
}

// Rank returns the urgency's priority, 1 (emergency) through 5 (non urgent).
// Unknown urgencies rank 0.
func (u Urgency) Rank() int {
	return urgencyRanks[u]
}

// Description returns the human-readable form of the urgency.
func (u Urgency) Description() string {
	return urgencyDescriptions[u]
}
