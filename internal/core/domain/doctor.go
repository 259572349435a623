package domain

import "errors"

var ErrDoctorNotFound = errors.New("doctor not found")

// Consultation styles map a doctor's high-level preference to a concrete
// slot length in minutes.
const (
	StyleFast     = "fast"     // high volume, 15 min
	StyleNormal   = "normal"   // standard checkup, 30 min
	StyleDetailed = "detailed" // comprehensive, 45 min
	StyleSurgery  = "surgery"  // procedures, 60 min
)

const (
	DefaultSlotMinutes = 30
	DefaultWorkStart   = "09:00"
	DefaultWorkEnd     = "17:00"
	BreakBufferMinutes = 10
)

// SlotMinutesForStyle resolves a consultation style to a slot duration.
// Unknown styles fall back to the standard 30-minute slot.
func SlotMinutesForStyle(style string) int {
	switch style {
	case StyleFast:
		return 15
	case StyleNormal:
		return 30
	case StyleDetailed:
		return 45
	case StyleSurgery:
		return 60
	default:
		return DefaultSlotMinutes
	}
}

// ScheduleConfig holds the per-doctor settings the slot engine runs on.
type ScheduleConfig struct {
	SlotMinutes  int    `json:"slot_minutes" bson:"slot_minutes"`
	BreakMinutes int    `json:"break_minutes" bson:"break_minutes"`
	WorkStart    string `json:"work_start" bson:"work_start"` // "HH:MM"
	WorkEnd      string `json:"work_end" bson:"work_end"`     // "HH:MM"
}

// DefaultScheduleConfig returns the config applied to newly registered doctors.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		SlotMinutes:  DefaultSlotMinutes,
		BreakMinutes: 0,
		WorkStart:    DefaultWorkStart,
		WorkEnd:      DefaultWorkEnd,
	}
}

// Doctor is the role profile attached to a user with role "doctor".
// A doctor is excluded from public listings and slot search until verified.
type Doctor struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	UserID         string         `json:"user_id" bson:"user_id"`
	HospitalID     string         `json:"hospital_id" bson:"hospital_id"`
	Specialization string         `json:"specialization" bson:"specialization"`
	LicenseNumber  string         `json:"license_number" bson:"license_number"`
	Verified       bool           `json:"verified" bson:"verified"`
	Schedule       ScheduleConfig `json:"schedule" bson:"schedule"`
}
