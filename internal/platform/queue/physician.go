package queue

import (
	"sync"

	"github.com/google/uuid"
)

// Entry represents a patient waiting in a physician's work queue after
// triage. The same patient may appear more than once when distinct
// appointments enqueue them independently.
type Entry struct {
	PatientID     uuid.UUID `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	PhysicianID   uuid.UUID `json:"physician_id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	Urgency       string    `json:"urgency"`
}

// PhysicianQueue holds post-triage patients partitioned by physician,
// in arrival order. Urgency is carried on each entry for display but does
// not reorder the queue.
type PhysicianQueue struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewPhysicianQueue creates an empty physician queue.
func NewPhysicianQueue() *PhysicianQueue {
	return &PhysicianQueue{}
}

// Enqueue appends the entry. Entries without a patient id are ignored.
// Duplicate patient ids are allowed: distinct appointments may each enqueue
// the same patient.
func (q *PhysicianQueue) Enqueue(e Entry) {
	if e.PatientID == uuid.Nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, e)
}

// Remove drops every entry for the given patient id, regardless of which
// physician or appointment produced it.
func (q *PhysicianQueue) Remove(patientID uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.PatientID != patientID {
			kept = append(kept, e)
		}
	}
	q.entries = kept
}

// ListAll returns a copy of every entry across all physicians.
func (q *PhysicianQueue) ListAll() []Entry {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}

// ListForPhysician returns a copy of the entries for one physician,
// preserving relative arrival order.
func (q *PhysicianQueue) ListForPhysician(physicianID uuid.UUID) []Entry {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]Entry, 0)
	for _, e := range q.entries {
		if e.PhysicianID == physicianID {
			out = append(out, e)
		}
	}
	return out
}

// CountForPhysician returns the number of entries waiting for one physician.
func (q *PhysicianQueue) CountForPhysician(physicianID uuid.UUID) int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	n := 0
	for _, e := range q.entries {
		if e.PhysicianID == physicianID {
			n++
		}
	}
	return n
}
