package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// BillingService raises invoices when appointments complete and reports
// hospital finance.
type BillingService struct {
	invoices   ports.InvoiceRepository
	treatments ports.TreatmentRepository
	items      ports.InventoryRepository
	doctors    ports.DoctorRepository
	hospitals  ports.HospitalRepository
	patients   ports.PatientRepository
	users      ports.UserRepository
	log        zerolog.Logger
}

func NewBillingService(
	invoices ports.InvoiceRepository,
	treatments ports.TreatmentRepository,
	items ports.InventoryRepository,
	doctors ports.DoctorRepository,
	hospitals ports.HospitalRepository,
	patients ports.PatientRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *BillingService {
	return &BillingService{
		invoices:   invoices,
		treatments: treatments,
		items:      items,
		doctors:    doctors,
		hospitals:  hospitals,
		patients:   patients,
		users:      users,
		log:        log,
	}
}

// IssueForAppointment deducts the treatment's linked inventory and raises a
// pending invoice. A treatment not in the hospital's catalog is billed at the
// default consultation fee with no inventory moves. Any deduction failure
// aborts the invoice.
func (s *BillingService) IssueForAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Invoice, error) {
	doctor, err := s.doctors.FindByID(ctx, appt.DoctorID)
	if err != nil {
		return nil, err
	}

	amount := float64(domain.DefaultConsultationFee)
	label := appt.TreatmentType
	if label == "" {
		label = "Consultation"
	}

	treatment, err := s.treatments.FindByName(ctx, doctor.HospitalID, appt.TreatmentType)
	switch {
	case err == nil:
		amount = treatment.Cost
		label = treatment.Name
		if err := s.consumeInventory(ctx, treatment); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrTreatmentNotFound):
		// Off-catalog visit, flat consultation fee.
	default:
		return nil, err
	}

	invoice, err := s.invoices.Create(ctx, &domain.Invoice{
		Number:        newInvoiceNumber(),
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorID:      doctor.ID,
		HospitalID:    doctor.HospitalID,
		Treatment:     label,
		Amount:        amount,
		Currency:      domain.DefaultCurrency,
		Status:        domain.InvoicePending,
		IssuedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("invoice", invoice.Number).
		Str("appointment_id", appt.ID).
		Float64("amount", invoice.Amount).
		Msg("invoice issued")
	return invoice, nil
}

// consumeInventory deducts every item linked to the treatment. The underlying
// adjustment is atomic per item, so a shortage on any line aborts the
// completion before billing.
func (s *BillingService) consumeInventory(ctx context.Context, t *domain.Treatment) error {
	for _, usage := range t.InventoryUsage {
		if usage.Quantity <= 0 {
			continue
		}
		item, err := s.items.AdjustQuantity(ctx, usage.ItemID, -usage.Quantity)
		if err != nil {
			return fmt.Errorf("deduct inventory for treatment %s: %w", t.Name, err)
		}
		if item.LowStock() {
			s.log.Warn().
				Str("item_id", item.ID).
				Str("name", item.Name).
				Int("quantity", item.Quantity).
				Msg("inventory item low on stock after treatment")
		}
	}
	return nil
}

// ListForPatient returns the patient's invoices, newest first.
func (s *BillingService) ListForPatient(ctx context.Context, patientUserID string) ([]*domain.Invoice, error) {
	patient, err := s.patients.FindByUserID(ctx, patientUserID)
	if err != nil {
		return nil, err
	}
	return s.invoices.ListByPatient(ctx, patient.ID)
}

// MarkPaid settles a pending invoice belonging to the doctor's hospital.
func (s *BillingService) MarkPaid(ctx context.Context, doctorUserID, invoiceID string) error {
	doctor, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return err
	}
	invoice, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice.HospitalID != doctor.HospitalID {
		return domain.ErrForbidden
	}
	return s.invoices.MarkPaid(ctx, invoiceID, time.Now().UTC())
}

// Finance aggregates the hospital's invoices over the period with a
// per-doctor breakdown and a simple trend forecast. The caller may be a
// doctor or the hospital's owner.
func (s *BillingService) Finance(ctx context.Context, userID string, period ports.FinancePeriod) (*ports.FinanceSummary, error) {
	hospitalID, err := s.callerHospital(ctx, userID)
	if err != nil {
		return nil, err
	}

	period = period.Normalize()
	invoices, err := s.invoices.ListByHospitalSince(ctx, hospitalID, periodStart(period, time.Now()))
	if err != nil {
		return nil, err
	}

	summary := &ports.FinanceSummary{
		Period:    period,
		Currency:  domain.DefaultCurrency,
		Breakdown: []ports.DoctorRevenue{},
	}
	perDoctor := make(map[string]*ports.DoctorRevenue)
	for _, inv := range invoices {
		if inv.Status == domain.InvoiceCancelled {
			continue
		}
		summary.TotalRevenue += inv.Amount
		if inv.Status == domain.InvoicePaid {
			summary.PaidRevenue += inv.Amount
			summary.PaidCount++
		} else {
			summary.PendingCount++
		}

		row, ok := perDoctor[inv.DoctorID]
		if !ok {
			row = &ports.DoctorRevenue{DoctorID: inv.DoctorID, DoctorName: s.doctorName(ctx, inv.DoctorID)}
			perDoctor[inv.DoctorID] = row
		}
		row.Appointments++
		row.Revenue += inv.Amount
	}

	for _, row := range perDoctor {
		summary.Breakdown = append(summary.Breakdown, *row)
	}

	// Naive projection: current period's revenue plus ten percent.
	summary.Forecast = summary.TotalRevenue * 1.10
	return summary, nil
}

// callerHospital resolves the acting user to their hospital: doctors through
// their profile, organization owners through the hospital they own.
func (s *BillingService) callerHospital(ctx context.Context, userID string) (string, error) {
	doctor, err := s.doctors.FindByUserID(ctx, userID)
	if err == nil {
		return doctor.HospitalID, nil
	}
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		return "", err
	}
	hospital, err := s.hospitals.FindByOwnerID(ctx, userID)
	if err != nil {
		return "", err
	}
	return hospital.ID, nil
}

func (s *BillingService) doctorName(ctx context.Context, doctorID string) string {
	d, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return "Unknown"
	}
	u, err := s.users.FindByID(ctx, d.UserID)
	if err != nil {
		return "Unknown"
	}
	return u.FullName
}

// periodStart returns the inclusive lower bound of the reporting window.
func periodStart(period ports.FinancePeriod, now time.Time) time.Time {
	switch period {
	case ports.PeriodDaily:
		return now.AddDate(0, 0, -1)
	case ports.PeriodWeekly:
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// newInvoiceNumber returns a short unique invoice reference such as
// "INV-7F3A91C2".
func newInvoiceNumber() string {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("INV-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("INV-%08X", binary.BigEndian.Uint32(buf[:]))
}
