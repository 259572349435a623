package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	// StatusBlocked marks a slot the doctor has taken off the calendar.
	// Blocked rows carry no patient and never complete.
	StatusBlocked AppointmentStatus = "blocked"
)

// validTransitions defines the allowed lifecycle transitions.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusBlocked:    {StatusCancelled},
}

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrSlotUnavailable = errors.New("slot unavailable")
var ErrPastSlot = errors.New("cannot book a slot in the past")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Occupies reports whether an appointment in this status still holds its
// slot for conflict purposes.
func (s AppointmentStatus) Occupies() bool {
	return s != StatusCancelled
}

// Appointment is the core scheduling aggregate.
type Appointment struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	DoctorID      string            `json:"doctor_id" bson:"doctor_id"`
	PatientID     string            `json:"patient_id,omitempty" bson:"patient_id,omitempty"`
	StartTime     time.Time         `json:"start_time" bson:"start_time"`
	EndTime       time.Time         `json:"end_time" bson:"end_time"`
	Status        AppointmentStatus `json:"status" bson:"status"`
	TreatmentType string            `json:"treatment_type,omitempty" bson:"treatment_type,omitempty"`
	Notes         string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
}

// Slot is a bookable interval produced by the slot engine.
type Slot struct {
	SlotID     string `json:"slot_id"`
	Start      string `json:"start"` // "HH:MM"
	End        string `json:"end"`   // "HH:MM"
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
}
