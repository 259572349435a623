package ports

import (
	"context"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	SetEmailVerified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// PatientRepository defines persistence operations for patient profiles.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Patient, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
