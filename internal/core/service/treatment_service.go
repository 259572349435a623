package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// TreatmentService manages a hospital's treatment catalog.
type TreatmentService struct {
	treatments ports.TreatmentRepository
	items      ports.InventoryRepository
	doctors    ports.DoctorRepository
	log        zerolog.Logger
}

func NewTreatmentService(treatments ports.TreatmentRepository, items ports.InventoryRepository, doctors ports.DoctorRepository, log zerolog.Logger) *TreatmentService {
	return &TreatmentService{treatments: treatments, items: items, doctors: doctors, log: log}
}

func (s *TreatmentService) hospitalScope(ctx context.Context, doctorUserID string) (string, error) {
	doctor, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return "", err
	}
	return doctor.HospitalID, nil
}

// validateUsage checks every linked inventory item exists in the hospital.
func (s *TreatmentService) validateUsage(ctx context.Context, hospitalID string, usage []domain.InventoryUsage) error {
	for _, u := range usage {
		item, err := s.items.FindByID(ctx, u.ItemID)
		if err != nil {
			return err
		}
		if item.HospitalID != hospitalID {
			return domain.ErrItemNotFound
		}
	}
	return nil
}

func (s *TreatmentService) List(ctx context.Context, doctorUserID string) ([]*domain.Treatment, error) {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}
	return s.treatments.ListByHospital(ctx, hospitalID)
}

func (s *TreatmentService) Create(ctx context.Context, doctorUserID string, in ports.TreatmentInput) (*domain.Treatment, error) {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}
	if err := s.validateUsage(ctx, hospitalID, in.InventoryUsage); err != nil {
		return nil, err
	}

	treatment, err := s.treatments.Create(ctx, &domain.Treatment{
		HospitalID:      hospitalID,
		Name:            in.Name,
		Cost:            in.Cost,
		DurationMinutes: in.DurationMinutes,
		InventoryUsage:  in.InventoryUsage,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("treatment_id", treatment.ID).
		Str("hospital_id", hospitalID).
		Str("name", treatment.Name).
		Msg("treatment created")
	return treatment, nil
}

func (s *TreatmentService) Update(ctx context.Context, doctorUserID, treatmentID string, in ports.TreatmentInput) (*domain.Treatment, error) {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	treatment, err := s.treatments.FindByID(ctx, treatmentID)
	if err != nil {
		return nil, err
	}
	if treatment.HospitalID != hospitalID {
		return nil, domain.ErrForbidden
	}
	if err := s.validateUsage(ctx, hospitalID, in.InventoryUsage); err != nil {
		return nil, err
	}

	treatment.Name = in.Name
	treatment.Cost = in.Cost
	treatment.DurationMinutes = in.DurationMinutes
	treatment.InventoryUsage = in.InventoryUsage
	if err := s.treatments.Update(ctx, treatment); err != nil {
		return nil, err
	}
	return treatment, nil
}

func (s *TreatmentService) Delete(ctx context.Context, doctorUserID, treatmentID string) error {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return err
	}

	treatment, err := s.treatments.FindByID(ctx, treatmentID)
	if err != nil {
		return err
	}
	if treatment.HospitalID != hospitalID {
		return domain.ErrForbidden
	}
	return s.treatments.Delete(ctx, treatmentID)
}
