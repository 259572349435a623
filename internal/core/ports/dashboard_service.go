package ports

import "context"

// DoctorDashboard is the doctor's landing-page aggregate. Branches that fail
// to load degrade to their zero values rather than failing the whole view.
type DoctorDashboard struct {
	TodayCount    int                     `json:"today_count"`
	TotalPatients int64                   `json:"total_patients"`
	Revenue       float64                 `json:"revenue"`
	Appointments  []DoctorAppointmentView `json:"appointments"`
}

// OrganizationStats is the clinic owner's landing-page aggregate.
type OrganizationStats struct {
	DoctorCount       int     `json:"doctor_count"`
	VerifiedDoctors   int     `json:"verified_doctors"`
	AppointmentsTotal int64   `json:"appointments_total"`
	Revenue           float64 `json:"revenue"`
	LowStockCount     int     `json:"low_stock_count"`
}

// DashboardService aggregates role-scoped landing-page data.
type DashboardService interface {
	Doctor(ctx context.Context, doctorUserID string) (*DoctorDashboard, error)
	Organization(ctx context.Context, ownerUserID string) (*OrganizationStats, error)
}
