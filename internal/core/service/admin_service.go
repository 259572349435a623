package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/ports"
)

// AdminService implements the platform-wide account approval workflow.
type AdminService struct {
	hospitals ports.HospitalRepository
	doctors   ports.DoctorRepository
	users     ports.UserRepository
	log       zerolog.Logger
}

func NewAdminService(hospitals ports.HospitalRepository, doctors ports.DoctorRepository, users ports.UserRepository, log zerolog.Logger) *AdminService {
	return &AdminService{hospitals: hospitals, doctors: doctors, users: users, log: log}
}

// PendingVerifications merges unapproved hospitals (including staged
// location changes) and unverified doctors into one review queue.
func (s *AdminService) PendingVerifications(ctx context.Context) ([]ports.PendingVerification, error) {
	queue := []ports.PendingVerification{}

	hospitals, err := s.hospitals.ListPendingApproval(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range hospitals {
		detail := h.Location.Address
		if h.PendingLocation != nil {
			detail = fmt.Sprintf("location change: %s", h.PendingLocation.Address)
		}
		queue = append(queue, ports.PendingVerification{
			ID:     h.ID,
			Name:   h.Name,
			Type:   ports.PendingTypeOrganization,
			Detail: detail,
		})
	}

	doctors, err := s.doctors.ListUnverified(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range doctors {
		name := "Unknown"
		if u, err := s.users.FindByID(ctx, d.UserID); err == nil {
			name = u.FullName
		}
		queue = append(queue, ports.PendingVerification{
			ID:     d.ID,
			Name:   name,
			Type:   ports.PendingTypeDoctor,
			Detail: fmt.Sprintf("%s, license %s", d.Specialization, d.LicenseNumber),
		})
	}

	return queue, nil
}

// Approve verifies the entity. For hospitals a staged location change is
// promoted to the live location.
func (s *AdminService) Approve(ctx context.Context, entityID, entityType string) error {
	switch entityType {
	case ports.PendingTypeOrganization:
		hospital, err := s.hospitals.FindByID(ctx, entityID)
		if err != nil {
			return err
		}
		hospital.Verified = true
		if hospital.PendingLocation != nil {
			hospital.Location = *hospital.PendingLocation
			hospital.PendingLocation = nil
		}
		if err := s.hospitals.Update(ctx, hospital); err != nil {
			return err
		}
		s.log.Info().Str("hospital_id", hospital.ID).Msg("hospital approved")
		return nil

	case ports.PendingTypeDoctor:
		doctor, err := s.doctors.FindByID(ctx, entityID)
		if err != nil {
			return err
		}
		doctor.Verified = true
		if err := s.doctors.Update(ctx, doctor); err != nil {
			return err
		}
		s.log.Info().Str("doctor_id", doctor.ID).Msg("doctor approved")
		return nil

	default:
		return fmt.Errorf("unknown verification type %q", entityType)
	}
}

// Reject removes the profile and its owning user account.
func (s *AdminService) Reject(ctx context.Context, entityID, entityType string) error {
	switch entityType {
	case ports.PendingTypeOrganization:
		hospital, err := s.hospitals.FindByID(ctx, entityID)
		if err != nil {
			return err
		}
		// Rejecting a staged location change keeps the approved account.
		if hospital.Verified && hospital.PendingLocation != nil {
			hospital.PendingLocation = nil
			return s.hospitals.Update(ctx, hospital)
		}
		if err := s.hospitals.Delete(ctx, hospital.ID); err != nil {
			return err
		}
		if err := s.users.Delete(ctx, hospital.OwnerID); err != nil {
			s.log.Warn().Err(err).Str("user_id", hospital.OwnerID).Msg("orphaned user after hospital rejection")
		}
		s.log.Info().Str("hospital_id", hospital.ID).Msg("hospital rejected")
		return nil

	case ports.PendingTypeDoctor:
		doctor, err := s.doctors.FindByID(ctx, entityID)
		if err != nil {
			return err
		}
		if err := s.doctors.Delete(ctx, doctor.ID); err != nil {
			return err
		}
		if err := s.users.Delete(ctx, doctor.UserID); err != nil {
			s.log.Warn().Err(err).Str("user_id", doctor.UserID).Msg("orphaned user after doctor rejection")
		}
		s.log.Info().Str("doctor_id", doctor.ID).Msg("doctor rejected")
		return nil

	default:
		return fmt.Errorf("unknown verification type %q", entityType)
	}
}
