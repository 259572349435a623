package ports

import (
	"context"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// ScheduleConfigInput carries a doctor's high-level scheduling preferences.
type ScheduleConfigInput struct {
	ConsultationStyle string // fast | normal | detailed | surgery
	WantsBreaks       bool
	WorkStart         string // "HH:MM", optional
	WorkEnd           string // "HH:MM", optional
}

// ScheduleService generates bookable slots and manages doctor schedule
// configuration.
type ScheduleService interface {
	// AvailableSlots returns the free slots for a doctor on a date
	// (YYYY-MM-DD; empty means today). Slots overlapping any non-cancelled
	// appointment are excluded.
	AvailableSlots(ctx context.Context, doctorID, date string) ([]domain.Slot, error)
	// UpdateConfig resolves the consultation style to concrete slot timing
	// and stores it on the doctor profile identified by user id.
	UpdateConfig(ctx context.Context, doctorUserID string, in ScheduleConfigInput) (*domain.ScheduleConfig, error)
}
