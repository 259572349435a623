package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// AppointmentService implements booking and appointment lifecycle use cases.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	patients     ports.PatientRepository
	doctors      ports.DoctorRepository
	hospitals    ports.HospitalRepository
	users        ports.UserRepository
	billing      ports.BillingService
	log          zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	patients ports.PatientRepository,
	doctors ports.DoctorRepository,
	hospitals ports.HospitalRepository,
	users ports.UserRepository,
	billing ports.BillingService,
	log zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
		hospitals:    hospitals,
		users:        users,
		billing:      billing,
		log:          log,
	}
}

// ListPublicDoctors returns verified doctors with their hospital details for
// the booking page.
func (s *AppointmentService) ListPublicDoctors(ctx context.Context) ([]ports.PublicDoctor, error) {
	doctors, err := s.doctors.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.PublicDoctor, 0, len(doctors))
	for _, d := range doctors {
		card := ports.PublicDoctor{
			ID:             d.ID,
			FullName:       "Unknown",
			Specialization: d.Specialization,
			HospitalName:   "Unknown",
			Location:       "Unknown",
		}
		if u, err := s.users.FindByID(ctx, d.UserID); err == nil {
			card.FullName = u.FullName
		}
		if h, err := s.hospitals.FindByID(ctx, d.HospitalID); err == nil {
			card.HospitalName = h.Name
			card.Location = h.Location.Address
		}
		out = append(out, card)
	}
	return out, nil
}

// Book creates a confirmed appointment for a patient. Past datetimes and
// occupied slots are rejected.
func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	patient, err := s.patients.FindByUserID(ctx, in.PatientUserID)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctors.FindByID(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.Verified {
		return nil, domain.ErrDoctorNotFound
	}

	start, err := parseAppointmentTime(in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if start.Before(time.Now()) {
		return nil, domain.ErrPastSlot
	}

	slotMinutes := doctor.Schedule.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = domain.DefaultSlotMinutes
	}
	end := start.Add(time.Duration(slotMinutes) * time.Minute)

	if err := s.ensureSlotFree(ctx, doctor.ID, start, end); err != nil {
		return nil, err
	}

	appt, err := s.appointments.Create(ctx, &domain.Appointment{
		DoctorID:      doctor.ID,
		PatientID:     patient.ID,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.StatusConfirmed,
		TreatmentType: in.Reason,
		Notes:         "Booked via patient portal",
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("appointment_id", appt.ID).
		Str("doctor_id", doctor.ID).
		Str("patient_id", patient.ID).
		Time("start", start).
		Msg("appointment booked")
	return appt, nil
}

// ensureSlotFree rejects the interval if any non-cancelled appointment of
// the doctor overlaps it.
func (s *AppointmentService) ensureSlotFree(ctx context.Context, doctorID string, start, end time.Time) error {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	existing, err := s.appointments.ListByDoctorBetween(ctx, doctorID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	for _, a := range existing {
		if !a.Status.Occupies() {
			continue
		}
		if start.Before(a.EndTime) && end.After(a.StartTime) {
			return domain.ErrSlotUnavailable
		}
	}
	return nil
}

// ListForPatient returns the patient's appointment history, newest first.
func (s *AppointmentService) ListForPatient(ctx context.Context, patientUserID string) ([]ports.PatientAppointmentView, error) {
	patient, err := s.patients.FindByUserID(ctx, patientUserID)
	if err != nil {
		return nil, err
	}

	appts, err := s.appointments.ListByPatient(ctx, patient.ID)
	if err != nil {
		return nil, err
	}

	doctorNames := make(map[string]string)
	views := make([]ports.PatientAppointmentView, 0, len(appts))
	for _, a := range appts {
		name, ok := doctorNames[a.DoctorID]
		if !ok {
			name = "Unknown Doctor"
			if d, err := s.doctors.FindByID(ctx, a.DoctorID); err == nil {
				if u, err := s.users.FindByID(ctx, d.UserID); err == nil {
					name = u.FullName
				}
			}
			doctorNames[a.DoctorID] = name
		}
		views = append(views, ports.PatientAppointmentView{
			ID:        a.ID,
			Treatment: a.TreatmentType,
			Doctor:    name,
			Date:      a.StartTime.Format(dateLayout),
			Time:      a.StartTime.Format("03:04 PM"),
			Status:    string(a.Status),
		})
	}
	return views, nil
}

// Cancel cancels the patient's own appointment if its lifecycle allows it.
func (s *AppointmentService) Cancel(ctx context.Context, patientUserID, appointmentID string) error {
	patient, err := s.patients.FindByUserID(ctx, patientUserID)
	if err != nil {
		return err
	}
	appt, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.PatientID != patient.ID {
		return domain.ErrForbidden
	}
	if !appt.Status.CanTransitionTo(domain.StatusCancelled) {
		return domain.ErrInvalidTransition
	}
	return s.appointments.UpdateStatus(ctx, appt.ID, domain.StatusCancelled)
}

// DoctorDay returns the doctor's schedule for a date with patient names
// resolved.
func (s *AppointmentService) DoctorDay(ctx context.Context, doctorUserID, date string) ([]ports.DoctorAppointmentView, error) {
	doctor, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	appts, err := s.appointments.ListByDoctorBetween(ctx, doctor.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	views := make([]ports.DoctorAppointmentView, 0, len(appts))
	for _, a := range appts {
		view := ports.DoctorAppointmentView{
			ID:        a.ID,
			Treatment: a.TreatmentType,
			Start:     a.StartTime,
			End:       a.EndTime,
			Status:    string(a.Status),
		}
		if a.PatientID != "" {
			view.PatientName = "Unknown"
			if p, err := s.patients.FindByID(ctx, a.PatientID); err == nil {
				if u, err := s.users.FindByID(ctx, p.UserID); err == nil {
					view.PatientName = u.FullName
				}
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Block reserves a slot on the doctor's own calendar with no patient.
func (s *AppointmentService) Block(ctx context.Context, doctorUserID, date, timeOfDay string) (*domain.Appointment, error) {
	doctor, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	start, err := parseAppointmentTime(date, timeOfDay)
	if err != nil {
		return nil, err
	}
	if start.Before(time.Now()) {
		return nil, domain.ErrPastSlot
	}

	slotMinutes := doctor.Schedule.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = domain.DefaultSlotMinutes
	}
	end := start.Add(time.Duration(slotMinutes) * time.Minute)

	if err := s.ensureSlotFree(ctx, doctor.ID, start, end); err != nil {
		return nil, err
	}

	return s.appointments.Create(ctx, &domain.Appointment{
		DoctorID:  doctor.ID,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusBlocked,
		Notes:     "Blocked by doctor",
		CreatedAt: time.Now().UTC(),
	})
}

// UpdateStatus applies a lifecycle transition on behalf of the doctor.
// Completion settles billing and inventory before the status flips, so a
// failed settlement leaves the appointment in progress.
func (s *AppointmentService) UpdateStatus(ctx context.Context, doctorUserID, appointmentID string, status domain.AppointmentStatus) error {
	doctor, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return err
	}
	appt, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.DoctorID != doctor.ID {
		return domain.ErrForbidden
	}
	if !appt.Status.CanTransitionTo(status) {
		return domain.ErrInvalidTransition
	}

	if status == domain.StatusCompleted {
		invoice, err := s.billing.IssueForAppointment(ctx, appt)
		if err != nil {
			return err
		}
		s.log.Info().
			Str("appointment_id", appt.ID).
			Str("invoice", invoice.Number).
			Float64("amount", invoice.Amount).
			Msg("appointment completed")
	}

	return s.appointments.UpdateStatus(ctx, appt.ID, status)
}

// parseAppointmentTime accepts "YYYY-MM-DD" with either a 12-hour
// ("03:04 PM") or 24-hour ("15:04") clock.
func parseAppointmentTime(date, clock string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 03:04 PM", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, date+" "+clock, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date/time %q %q: use YYYY-MM-DD and HH:MM or HH:MM AM/PM", date, clock)
}
