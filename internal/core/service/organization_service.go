package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// OrganizationService covers clinic-owner account operations.
type OrganizationService struct {
	hospitals ports.HospitalRepository
	doctors   ports.DoctorRepository
	users     ports.UserRepository
	log       zerolog.Logger
}

func NewOrganizationService(hospitals ports.HospitalRepository, doctors ports.DoctorRepository, users ports.UserRepository, log zerolog.Logger) *OrganizationService {
	return &OrganizationService{hospitals: hospitals, doctors: doctors, users: users, log: log}
}

// Doctors returns the owner's hospital roster, verified or not.
func (s *OrganizationService) Doctors(ctx context.Context, ownerUserID string) ([]ports.OrganizationRosterDoctor, error) {
	hospital, err := s.hospitals.FindByOwnerID(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	doctors, err := s.doctors.ListByHospital(ctx, hospital.ID)
	if err != nil {
		return nil, err
	}

	roster := make([]ports.OrganizationRosterDoctor, 0, len(doctors))
	for _, d := range doctors {
		name := "Unknown"
		if u, err := s.users.FindByID(ctx, d.UserID); err == nil {
			name = u.FullName
		}
		roster = append(roster, ports.OrganizationRosterDoctor{
			ID:             d.ID,
			FullName:       name,
			Specialization: d.Specialization,
			LicenseNumber:  d.LicenseNumber,
			Verified:       d.Verified,
		})
	}
	return roster, nil
}

// UpdateLocation stages a location change. The hospital stays live at its
// current address until an admin approves the new one.
func (s *OrganizationService) UpdateLocation(ctx context.Context, ownerUserID string, loc domain.Location) error {
	hospital, err := s.hospitals.FindByOwnerID(ctx, ownerUserID)
	if err != nil {
		return err
	}

	hospital.PendingLocation = &loc
	if err := s.hospitals.Update(ctx, hospital); err != nil {
		return err
	}

	s.log.Info().
		Str("hospital_id", hospital.ID).
		Str("address", loc.Address).
		Msg("hospital location change staged for review")
	return nil
}
