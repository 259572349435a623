package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// DashboardService aggregates role-scoped landing-page data. Each branch
// loads independently; one failing branch degrades to its zero value instead
// of failing the whole view.
type DashboardService struct {
	appointments ports.AppointmentRepository
	doctors      ports.DoctorRepository
	hospitals    ports.HospitalRepository
	invoices     ports.InvoiceRepository
	items        ports.InventoryRepository
	appts        ports.AppointmentService
	log          zerolog.Logger
}

func NewDashboardService(
	appointments ports.AppointmentRepository,
	doctors ports.DoctorRepository,
	hospitals ports.HospitalRepository,
	invoices ports.InvoiceRepository,
	items ports.InventoryRepository,
	appts ports.AppointmentService,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		appointments: appointments,
		doctors:      doctors,
		hospitals:    hospitals,
		invoices:     invoices,
		items:        items,
		appts:        appts,
		log:          log,
	}
}

// Doctor builds the doctor's landing-page aggregate.
func (s *DashboardService) Doctor(ctx context.Context, doctorUserID string) (*ports.DoctorDashboard, error) {
	doctor, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	dash := &ports.DoctorDashboard{Appointments: []ports.DoctorAppointmentView{}}
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		views, err := s.appts.DoctorDay(ctx, doctorUserID, "")
		if err != nil {
			s.log.Warn().Err(err).Str("doctor_id", doctor.ID).Msg("dashboard: today's schedule unavailable")
			return
		}
		mu.Lock()
		dash.Appointments = views
		dash.TodayCount = len(views)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		n, err := s.appointments.CountDistinctPatients(ctx, doctor.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("doctor_id", doctor.ID).Msg("dashboard: patient count unavailable")
			return
		}
		mu.Lock()
		dash.TotalPatients = n
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		invoices, err := s.invoices.ListByHospitalSince(ctx, doctor.HospitalID, time.Now().AddDate(0, -1, 0))
		if err != nil {
			s.log.Warn().Err(err).Str("doctor_id", doctor.ID).Msg("dashboard: revenue unavailable")
			return
		}
		var revenue float64
		for _, inv := range invoices {
			if inv.DoctorID == doctor.ID && inv.Status != domain.InvoiceCancelled {
				revenue += inv.Amount
			}
		}
		mu.Lock()
		dash.Revenue = revenue
		mu.Unlock()
	}()
	wg.Wait()

	return dash, nil
}

// Organization builds the clinic owner's landing-page aggregate.
func (s *DashboardService) Organization(ctx context.Context, ownerUserID string) (*ports.OrganizationStats, error) {
	hospital, err := s.hospitals.FindByOwnerID(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	stats := &ports.OrganizationStats{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		doctors, err := s.doctors.ListByHospital(ctx, hospital.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("hospital_id", hospital.ID).Msg("dashboard: roster unavailable")
			return
		}
		ids := make([]string, 0, len(doctors))
		verified := 0
		for _, d := range doctors {
			ids = append(ids, d.ID)
			if d.Verified {
				verified++
			}
		}
		total, err := s.appointments.CountByDoctors(ctx, ids)
		if err != nil {
			s.log.Warn().Err(err).Str("hospital_id", hospital.ID).Msg("dashboard: appointment count unavailable")
		}
		mu.Lock()
		stats.DoctorCount = len(doctors)
		stats.VerifiedDoctors = verified
		stats.AppointmentsTotal = total
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		invoices, err := s.invoices.ListByHospitalSince(ctx, hospital.ID, time.Now().AddDate(0, -1, 0))
		if err != nil {
			s.log.Warn().Err(err).Str("hospital_id", hospital.ID).Msg("dashboard: revenue unavailable")
			return
		}
		var revenue float64
		for _, inv := range invoices {
			if inv.Status != domain.InvoiceCancelled {
				revenue += inv.Amount
			}
		}
		mu.Lock()
		stats.Revenue = revenue
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		low, err := s.items.ListLowStock(ctx, hospital.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("hospital_id", hospital.ID).Msg("dashboard: low stock unavailable")
			return
		}
		mu.Lock()
		stats.LowStockCount = len(low)
		mu.Unlock()
	}()
	wg.Wait()

	return stats, nil
}
