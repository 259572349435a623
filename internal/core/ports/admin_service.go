package ports

import (
	"context"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

const (
	PendingTypeOrganization = "organization"
	PendingTypeDoctor       = "doctor"
)

// PendingVerification is one row in the admin approval queue.
type PendingVerification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"` // organization | doctor
	Detail string `json:"detail"`
}

// AdminService implements the account approval workflow.
type AdminService interface {
	PendingVerifications(ctx context.Context) ([]PendingVerification, error)
	// Approve verifies the entity; for hospitals it also promotes any
	// staged location change.
	Approve(ctx context.Context, entityID, entityType string) error
	// Reject deletes the profile and its owning user account.
	Reject(ctx context.Context, entityID, entityType string) error
}

// OrganizationRosterDoctor is one row in the clinic owner's doctor list.
type OrganizationRosterDoctor struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"license_number"`
	Verified       bool   `json:"verified"`
}

// OrganizationService covers clinic-owner account operations.
type OrganizationService interface {
	Doctors(ctx context.Context, ownerUserID string) ([]OrganizationRosterDoctor, error)
	// UpdateLocation stages a location change pending admin re-approval.
	UpdateLocation(ctx context.Context, ownerUserID string, loc domain.Location) error
}
