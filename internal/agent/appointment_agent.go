package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// AppointmentAgent answers availability questions and books confirmed slots
// through the real scheduling services.
type AppointmentAgent struct {
	appointments ports.AppointmentService
	schedule     ports.ScheduleService
}

func NewAppointmentAgent(appointments ports.AppointmentService, schedule ports.ScheduleService) *AppointmentAgent {
	return &AppointmentAgent{appointments: appointments, schedule: schedule}
}

func (a *AppointmentAgent) Handle(ctx context.Context, in ChatInput) (*ChatReply, error) {
	// A confirmed booking carries doctor_id, date and time in context.
	doctorID := in.Context["doctor_id"]
	date := in.Context["date"]
	clock := in.Context["time"]

	if doctorID != "" && date != "" && clock != "" {
		return a.book(ctx, in, doctorID, date, clock)
	}

	if doctorID != "" && date != "" {
		slots, err := a.schedule.AvailableSlots(ctx, doctorID, date)
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			return &ChatReply{
				Response:    fmt.Sprintf("No free slots on %s. Would you like to try another date?", date),
				ActionTaken: "checked_availability",
			}, nil
		}
		return &ChatReply{
			Response:    fmt.Sprintf("%s has %d free slots on %s. Pick one and I will book it.", slots[0].DoctorName, len(slots), date),
			ActionTaken: "checked_availability",
			Data:        slots,
		}, nil
	}

	doctors, err := a.appointments.ListPublicDoctors(ctx)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return &ChatReply{
			Response:    "No doctors are available for booking yet. Please check back later.",
			ActionTaken: "checked_availability",
		}, nil
	}

	names := make([]string, 0, len(doctors))
	for _, d := range doctors {
		names = append(names, fmt.Sprintf("%s (%s)", d.FullName, d.Specialization))
	}
	return &ChatReply{
		Response:    fmt.Sprintf("Here are our available doctors: %s. Whom would you like to see, and on which date?", strings.Join(names, ", ")),
		ActionTaken: "checked_availability",
		Data:        doctors,
	}, nil
}

func (a *AppointmentAgent) book(ctx context.Context, in ChatInput, doctorID, date, clock string) (*ChatReply, error) {
	if in.Role != domain.RolePatient {
		return &ChatReply{
			Response:    "Only patients can book appointments through chat.",
			ActionTaken: "refused",
		}, nil
	}

	reason := in.Context["reason"]
	if reason == "" {
		reason = "Consultation"
	}

	appt, err := a.appointments.Book(ctx, ports.BookAppointmentInput{
		PatientUserID: in.UserID,
		DoctorID:      doctorID,
		Date:          date,
		Time:          clock,
		Reason:        reason,
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrSlotUnavailable):
		return &ChatReply{
			Response:    "That slot was just taken. Would you like to see what else is free?",
			ActionTaken: "slot_unavailable",
		}, nil
	case errors.Is(err, domain.ErrPastSlot):
		return &ChatReply{
			Response:    "That time is already in the past. Please pick an upcoming slot.",
			ActionTaken: "slot_unavailable",
		}, nil
	default:
		return nil, err
	}

	return &ChatReply{
		Response:    fmt.Sprintf("Done! Your appointment is booked for %s at %s. Please arrive 10 minutes early.", date, clock),
		ActionTaken: "booked",
		Data:        appt,
	}, nil
}
