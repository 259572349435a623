package ports

import (
	"context"
	"time"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// ListByDoctorBetween returns the doctor's appointments with
	// start_time in [from, to), newest last.
	ListByDoctorBetween(ctx context.Context, doctorID string, from, to time.Time) ([]*domain.Appointment, error)
	// ListByPatient returns a patient's appointments, newest first.
	ListByPatient(ctx context.Context, patientID string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	// CountDistinctPatients counts unique patients a doctor has ever seen.
	CountDistinctPatients(ctx context.Context, doctorID string) (int64, error)
	// CountByDoctors counts all appointments across the given doctors.
	CountByDoctors(ctx context.Context, doctorIDs []string) (int64, error)
}
