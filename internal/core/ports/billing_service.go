package ports

import (
	"context"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// FinancePeriod selects the reporting window for finance summaries.
type FinancePeriod string

const (
	PeriodDaily   FinancePeriod = "daily"
	PeriodWeekly  FinancePeriod = "weekly"
	PeriodMonthly FinancePeriod = "monthly"
)

// Normalize maps free-form period strings onto a supported window,
// defaulting to monthly.
func (p FinancePeriod) Normalize() FinancePeriod {
	switch p {
	case PeriodDaily, PeriodWeekly:
		return p
	default:
		return PeriodMonthly
	}
}

// DoctorRevenue is one row in the per-doctor finance breakdown.
type DoctorRevenue struct {
	DoctorID     string  `json:"doctor_id"`
	DoctorName   string  `json:"doctor_name"`
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

// FinanceSummary aggregates a hospital's invoices over a period.
type FinanceSummary struct {
	Period       FinancePeriod   `json:"period"`
	Currency     string          `json:"currency"`
	TotalRevenue float64         `json:"total_revenue"`
	PaidRevenue  float64         `json:"paid_revenue"`
	PendingCount int             `json:"pending_count"`
	PaidCount    int             `json:"paid_count"`
	Breakdown    []DoctorRevenue `json:"breakdown"`
	// Forecast projects next period's revenue from the current trend.
	Forecast float64 `json:"forecast"`
}

// BillingService raises and settles invoices and reports finance.
type BillingService interface {
	// IssueForAppointment deducts the treatment's linked inventory and
	// creates a pending invoice for a completing appointment. When the
	// treatment is not in the catalog, the default consultation fee is
	// charged and no inventory moves.
	IssueForAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Invoice, error)
	ListForPatient(ctx context.Context, patientUserID string) ([]*domain.Invoice, error)
	MarkPaid(ctx context.Context, doctorUserID, invoiceID string) error
	Finance(ctx context.Context, doctorUserID string, period FinancePeriod) (*FinanceSummary, error)
}
