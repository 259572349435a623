package ports

import (
	"context"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// HospitalRepository defines persistence operations for hospitals.
type HospitalRepository interface {
	Create(ctx context.Context, h *domain.Hospital) (*domain.Hospital, error)
	FindByID(ctx context.Context, id string) (*domain.Hospital, error)
	FindByName(ctx context.Context, name string) (*domain.Hospital, error)
	FindByOwnerID(ctx context.Context, ownerID string) (*domain.Hospital, error)
	ListVerified(ctx context.Context) ([]*domain.Hospital, error)
	// ListPendingApproval returns hospitals awaiting first verification or
	// carrying a staged location change.
	ListPendingApproval(ctx context.Context) ([]*domain.Hospital, error)
	Update(ctx context.Context, h *domain.Hospital) error
	Delete(ctx context.Context, id string) error
}

// DoctorRepository defines persistence operations for doctor profiles.
type DoctorRepository interface {
	Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	FindByID(ctx context.Context, id string) (*domain.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Doctor, error)
	ListVerified(ctx context.Context) ([]*domain.Doctor, error)
	ListUnverified(ctx context.Context) ([]*domain.Doctor, error)
	ListByHospital(ctx context.Context, hospitalID string) ([]*domain.Doctor, error)
	Update(ctx context.Context, d *domain.Doctor) error
	Delete(ctx context.Context, id string) error
}
