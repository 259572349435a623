package ports

import (
	"context"
	"time"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListByPatient(ctx context.Context, patientID string) ([]*domain.Invoice, error)
	// ListByHospitalSince returns a hospital's invoices issued at or after
	// the given instant.
	ListByHospitalSince(ctx context.Context, hospitalID string, since time.Time) ([]*domain.Invoice, error)
	// MarkPaid transitions a pending invoice to paid. Non-pending invoices
	// fail with domain.ErrInvoiceNotPayable.
	MarkPaid(ctx context.Context, id string, at time.Time) error
}
