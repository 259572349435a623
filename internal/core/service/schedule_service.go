package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ScheduleService generates bookable slots from each doctor's working
// window and existing appointments.
type ScheduleService struct {
	doctors      ports.DoctorRepository
	users        ports.UserRepository
	appointments ports.AppointmentRepository
	log          zerolog.Logger
}

func NewScheduleService(
	doctors ports.DoctorRepository,
	users ports.UserRepository,
	appointments ports.AppointmentRepository,
	log zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{doctors: doctors, users: users, appointments: appointments, log: log}
}

// AvailableSlots walks the doctor's working window in slot+break steps and
// drops every candidate that overlaps a non-cancelled appointment.
func (s *ScheduleService) AvailableSlots(ctx context.Context, doctorID, date string) ([]domain.Slot, error) {
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	doctorName := "Doctor"
	if u, err := s.users.FindByID(ctx, doctor.UserID); err == nil {
		doctorName = u.FullName
	}

	workStart, workEnd := workingWindow(day, doctor.Schedule)
	slotDur := time.Duration(doctor.Schedule.SlotMinutes) * time.Minute
	if slotDur <= 0 {
		slotDur = domain.DefaultSlotMinutes * time.Minute
	}
	breakDur := time.Duration(doctor.Schedule.BreakMinutes) * time.Minute

	busy, err := s.busyIntervals(ctx, doctor.ID, day)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0)
	for cur := workStart; !cur.Add(slotDur).After(workEnd); cur = cur.Add(slotDur + breakDur) {
		end := cur.Add(slotDur)
		if overlapsAny(cur, end, busy) {
			continue
		}
		slots = append(slots, domain.Slot{
			SlotID:     fmt.Sprintf("%s_%s", doctor.ID, cur.Format("1504")),
			Start:      cur.Format(clockLayout),
			End:        end.Format(clockLayout),
			DoctorID:   doctor.ID,
			DoctorName: doctorName,
		})
	}
	return slots, nil
}

type interval struct {
	start, end time.Time
}

func (s *ScheduleService) busyIntervals(ctx context.Context, doctorID string, day time.Time) ([]interval, error) {
	appts, err := s.appointments.ListByDoctorBetween(ctx, doctorID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	busy := make([]interval, 0, len(appts))
	for _, a := range appts {
		if !a.Status.Occupies() {
			continue
		}
		busy = append(busy, interval{start: a.StartTime, end: a.EndTime})
	}
	return busy, nil
}

// overlapsAny applies the standard interval overlap test:
// startA < endB && endA > startB.
func overlapsAny(start, end time.Time, busy []interval) bool {
	for _, b := range busy {
		if start.Before(b.end) && end.After(b.start) {
			return true
		}
	}
	return false
}

// workingWindow anchors the doctor's configured working hours on the given
// day, falling back to the default window on malformed config.
func workingWindow(day time.Time, cfg domain.ScheduleConfig) (time.Time, time.Time) {
	start, err1 := anchorClock(day, cfg.WorkStart)
	end, err2 := anchorClock(day, cfg.WorkEnd)
	if err1 != nil || err2 != nil || !end.After(start) {
		start, _ = anchorClock(day, domain.DefaultWorkStart)
		end, _ = anchorClock(day, domain.DefaultWorkEnd)
	}
	return start, end
}

func anchorClock(day time.Time, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(clockLayout, clock, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

// UpdateConfig resolves a doctor's high-level preferences into concrete
// slot timing and stores it on the profile.
func (s *ScheduleService) UpdateConfig(ctx context.Context, doctorUserID string, in ports.ScheduleConfigInput) (*domain.ScheduleConfig, error) {
	doctor, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	cfg := domain.ScheduleConfig{
		SlotMinutes: domain.SlotMinutesForStyle(in.ConsultationStyle),
		WorkStart:   domain.DefaultWorkStart,
		WorkEnd:     domain.DefaultWorkEnd,
	}
	if in.WantsBreaks {
		cfg.BreakMinutes = domain.BreakBufferMinutes
	}
	if in.WorkStart != "" {
		if _, err := time.Parse(clockLayout, in.WorkStart); err != nil {
			return nil, fmt.Errorf("parse work start: %w", err)
		}
		cfg.WorkStart = in.WorkStart
	}
	if in.WorkEnd != "" {
		if _, err := time.Parse(clockLayout, in.WorkEnd); err != nil {
			return nil, fmt.Errorf("parse work end: %w", err)
		}
		cfg.WorkEnd = in.WorkEnd
	}

	doctor.Schedule = cfg
	if err := s.doctors.Update(ctx, doctor); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("doctor_id", doctor.ID).
		Int("slot_minutes", cfg.SlotMinutes).
		Int("break_minutes", cfg.BreakMinutes).
		Msg("schedule config updated")
	return &cfg, nil
}
