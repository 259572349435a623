package ports

import (
	"context"
	"time"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// BookAppointmentInput carries a patient booking request. Date is YYYY-MM-DD;
// Time accepts either "03:04 PM" or 24-hour "15:04".
type BookAppointmentInput struct {
	PatientUserID string
	DoctorID      string
	Date          string
	Time          string
	Reason        string
}

// PatientAppointmentView is the patient-facing appointment projection.
type PatientAppointmentView struct {
	ID        string `json:"id"`
	Treatment string `json:"treatment"`
	Doctor    string `json:"doctor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

// DoctorAppointmentView is the doctor-facing day schedule projection.
type DoctorAppointmentView struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Treatment   string    `json:"treatment"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
}

// PublicDoctor is the doctor card shown on the booking page.
type PublicDoctor struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
	HospitalName   string `json:"hospital_name"`
	Location       string `json:"location"`
}

// AppointmentService defines booking and lifecycle use cases.
type AppointmentService interface {
	ListPublicDoctors(ctx context.Context) ([]PublicDoctor, error)
	Book(ctx context.Context, in BookAppointmentInput) (*domain.Appointment, error)
	ListForPatient(ctx context.Context, patientUserID string) ([]PatientAppointmentView, error)
	// Cancel cancels the patient's own confirmed appointment.
	Cancel(ctx context.Context, patientUserID, appointmentID string) error
	// DoctorDay returns the doctor's schedule for a date (YYYY-MM-DD,
	// empty means today).
	DoctorDay(ctx context.Context, doctorUserID, date string) ([]DoctorAppointmentView, error)
	// Block reserves a slot on the doctor's own calendar with no patient.
	Block(ctx context.Context, doctorUserID, date, timeOfDay string) (*domain.Appointment, error)
	// UpdateStatus applies a lifecycle transition on behalf of the doctor.
	// Completing an appointment settles billing and inventory first; any
	// failure there leaves the appointment untouched.
	UpdateStatus(ctx context.Context, doctorUserID, appointmentID string, status domain.AppointmentStatus) error
}
