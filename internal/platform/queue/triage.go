// Package queue holds the two shared in-memory hand-off queues: patients
// waiting for triage intake and patients waiting for a physician after
// triage. Both are process-wide resources injected into the services that
// mutate them; all operations are thread-safe via sync.RWMutex.
package queue

import (
	"sync"

	"github.com/google/uuid"
)

// PatientRef is the read-only patient projection held in the triage queue.
type PatientRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TriageQueue holds patients awaiting triage intake in arrival order.
// Membership is deduplicated by patient id: re-adding a queued patient is a
// no-op, not an error.
type TriageQueue struct {
	mu       sync.RWMutex
	patients []PatientRef
}

// NewTriageQueue creates an empty triage queue.
func NewTriageQueue() *TriageQueue {
	return &TriageQueue{}
}

// Enqueue appends the patient unless the reference is empty or the patient
// is already queued.
func (q *TriageQueue) Enqueue(p PatientRef) {
	if p.ID == uuid.Nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, existing := range q.patients {
		if existing.ID == p.ID {
			return
		}
	}
	q.patients = append(q.patients, p)
}

// Remove drops every entry for the given patient id. Absent ids are a no-op.
func (q *TriageQueue) Remove(patientID uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.patients[:0]
	for _, p := range q.patients {
		if p.ID != patientID {
			kept = append(kept, p)
		}
	}
	q.patients = kept
}

// List returns a copy of the queue in arrival order. Mutating the returned
// slice does not affect the queue.
func (q *TriageQueue) List() []PatientRef {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]PatientRef, len(q.patients))
	copy(out, q.patients)
	return out
}

// Contains reports whether the patient is currently queued.
func (q *TriageQueue) Contains(patientID uuid.UUID) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	for _, p := range q.patients {
		if p.ID == patientID {
			return true
		}
	}
	return false
}

// PeekNext returns the earliest-admitted patient without removing it.
// The second return is false on an empty queue.
func (q *TriageQueue) PeekNext() (PatientRef, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if len(q.patients) == 0 {
		return PatientRef{}, false
	}
	return q.patients[0], true
}

// Size returns the number of queued patients.
func (q *TriageQueue) Size() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.patients)
}
