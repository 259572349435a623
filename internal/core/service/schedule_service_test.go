package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

type scheduleFixture struct {
	svc     *ScheduleService
	users   *stubUserRepo
	doctors *stubDoctorRepo
	appts   *stubAppointmentRepo
}

func newScheduleFixture() *scheduleFixture {
	f := &scheduleFixture{
		users:   newStubUserRepo(),
		doctors: newStubDoctorRepo(),
		appts:   newStubAppointmentRepo(),
	}
	f.svc = NewScheduleService(f.doctors, f.users, f.appts, zerolog.Nop())
	return f
}

func (f *scheduleFixture) seedDoctor(t *testing.T, schedule domain.ScheduleConfig) *domain.Doctor {
	t.Helper()
	user, err := f.users.Create(context.Background(), &domain.User{
		Email:    "doc@example.com",
		FullName: "Dr. Karim",
		Role:     domain.RoleDoctor,
	})
	if err != nil {
		t.Fatal(err)
	}
	doctor, err := f.doctors.Create(context.Background(), &domain.Doctor{
		UserID:   user.ID,
		Verified: true,
		Schedule: schedule,
	})
	if err != nil {
		t.Fatal(err)
	}
	return doctor
}

// tomorrow keeps slot tests off today's clock.
func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func TestAvailableSlotsDefaultWindow(t *testing.T) {
	f := newScheduleFixture()
	doctor := f.seedDoctor(t, domain.DefaultScheduleConfig())

	slots, err := f.svc.AvailableSlots(context.Background(), doctor.ID, tomorrow())
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	// 09:00-17:00 in 30-minute steps with no breaks.
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}
	if slots[0].Start != "09:00" || slots[0].End != "09:30" {
		t.Fatalf("first slot %s-%s", slots[0].Start, slots[0].End)
	}
	last := slots[len(slots)-1]
	if last.Start != "16:30" || last.End != "17:00" {
		t.Fatalf("last slot %s-%s", last.Start, last.End)
	}
	if slots[0].DoctorName != "Dr. Karim" {
		t.Fatalf("doctor name %q", slots[0].DoctorName)
	}
}

func TestAvailableSlotsExcludesBookedAndKeepsCancelled(t *testing.T) {
	f := newScheduleFixture()
	doctor := f.seedDoctor(t, domain.DefaultScheduleConfig())
	date := tomorrow()
	day, _ := time.ParseInLocation("2006-01-02", date, time.Local)

	at := func(h, m int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.Local)
	}
	seed := []struct {
		start  time.Time
		status domain.AppointmentStatus
	}{
		{at(10, 0), domain.StatusConfirmed},
		{at(11, 0), domain.StatusBlocked},
		{at(14, 0), domain.StatusCancelled},
	}
	for _, s := range seed {
		if _, err := f.appts.Create(context.Background(), &domain.Appointment{
			DoctorID:  doctor.ID,
			StartTime: s.start,
			EndTime:   s.start.Add(30 * time.Minute),
			Status:    s.status,
		}); err != nil {
			t.Fatal(err)
		}
	}

	slots, err := f.svc.AvailableSlots(context.Background(), doctor.ID, date)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	starts := map[string]bool{}
	for _, s := range slots {
		starts[s.Start] = true
	}
	if starts["10:00"] {
		t.Fatal("confirmed appointment slot still offered")
	}
	if starts["11:00"] {
		t.Fatal("blocked slot still offered")
	}
	if !starts["14:00"] {
		t.Fatal("cancelled appointment should free its slot")
	}
	if len(slots) != 14 {
		t.Fatalf("got %d slots, want 14", len(slots))
	}
}

func TestAvailableSlotsWithBreaks(t *testing.T) {
	f := newScheduleFixture()
	doctor := f.seedDoctor(t, domain.ScheduleConfig{
		SlotMinutes:  30,
		BreakMinutes: 10,
		WorkStart:    "09:00",
		WorkEnd:      "11:00",
	})

	slots, err := f.svc.AvailableSlots(context.Background(), doctor.ID, tomorrow())
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	// 09:00, 09:40, 10:20; 11:00 would end at 11:30, past the window.
	want := []string{"09:00", "09:40", "10:20"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i, w := range want {
		if slots[i].Start != w {
			t.Fatalf("slot %d starts %s, want %s", i, slots[i].Start, w)
		}
	}
}

func TestAvailableSlotsMalformedWindowFallsBack(t *testing.T) {
	f := newScheduleFixture()
	doctor := f.seedDoctor(t, domain.ScheduleConfig{
		SlotMinutes: 60,
		WorkStart:   "17:00",
		WorkEnd:     "09:00", // inverted
	})

	slots, err := f.svc.AvailableSlots(context.Background(), doctor.ID, tomorrow())
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	// Default 09:00-17:00 window, 60-minute slots.
	if len(slots) != 8 {
		t.Fatalf("got %d slots, want 8", len(slots))
	}
}

func TestUpdateConfigResolvesStyle(t *testing.T) {
	f := newScheduleFixture()
	doctor := f.seedDoctor(t, domain.DefaultScheduleConfig())

	cfg, err := f.svc.UpdateConfig(context.Background(), doctor.UserID, ports.ScheduleConfigInput{
		ConsultationStyle: domain.StyleSurgery,
		WantsBreaks:       true,
		WorkStart:         "10:00",
		WorkEnd:           "16:00",
	})
	if err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	if cfg.SlotMinutes != 60 {
		t.Fatalf("surgery slot = %d minutes, want 60", cfg.SlotMinutes)
	}
	if cfg.BreakMinutes != domain.BreakBufferMinutes {
		t.Fatalf("break = %d minutes", cfg.BreakMinutes)
	}

	stored, err := f.doctors.FindByID(context.Background(), doctor.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Schedule.WorkStart != "10:00" || stored.Schedule.WorkEnd != "16:00" {
		t.Fatalf("window not persisted: %s-%s", stored.Schedule.WorkStart, stored.Schedule.WorkEnd)
	}
}

func TestUpdateConfigRejectsBadClock(t *testing.T) {
	f := newScheduleFixture()
	doctor := f.seedDoctor(t, domain.DefaultScheduleConfig())

	if _, err := f.svc.UpdateConfig(context.Background(), doctor.UserID, ports.ScheduleConfigInput{
		ConsultationStyle: domain.StyleNormal,
		WorkStart:         "9 in the morning",
	}); err == nil {
		t.Fatal("expected error for malformed work start")
	}
}
