package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// InventoryService manages hospital consumables scoped to the acting doctor's
// hospital.
type InventoryService struct {
	items   ports.InventoryRepository
	doctors ports.DoctorRepository
	log     zerolog.Logger
}

func NewInventoryService(items ports.InventoryRepository, doctors ports.DoctorRepository, log zerolog.Logger) *InventoryService {
	return &InventoryService{items: items, doctors: doctors, log: log}
}

// hospitalScope resolves the doctor's hospital, the tenant boundary for every
// inventory operation.
func (s *InventoryService) hospitalScope(ctx context.Context, doctorUserID string) (string, error) {
	doctor, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return "", err
	}
	return doctor.HospitalID, nil
}

func (s *InventoryService) List(ctx context.Context, doctorUserID string) ([]*domain.InventoryItem, error) {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}
	return s.items.ListByHospital(ctx, hospitalID)
}

func (s *InventoryService) Create(ctx context.Context, doctorUserID string, in ports.InventoryItemInput) (*domain.InventoryItem, error) {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, &domain.InventoryItem{
		HospitalID:  hospitalID,
		Name:        in.Name,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Threshold:   in.Threshold,
		LastUpdated: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("item_id", item.ID).
		Str("hospital_id", hospitalID).
		Str("name", item.Name).
		Msg("inventory item created")
	return item, nil
}

func (s *InventoryService) Update(ctx context.Context, doctorUserID, itemID string, in ports.InventoryItemInput) (*domain.InventoryItem, error) {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.HospitalID != hospitalID {
		return nil, domain.ErrForbidden
	}

	item.Name = in.Name
	item.Quantity = in.Quantity
	item.Unit = in.Unit
	item.Threshold = in.Threshold
	item.LastUpdated = time.Now().UTC()
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Adjust applies a signed quantity delta atomically; stock never drops below
// zero.
func (s *InventoryService) Adjust(ctx context.Context, doctorUserID, itemID string, delta int) (*domain.InventoryItem, error) {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.HospitalID != hospitalID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.items.AdjustQuantity(ctx, itemID, delta)
	if err != nil {
		return nil, err
	}
	if updated.LowStock() {
		s.log.Warn().
			Str("item_id", updated.ID).
			Str("name", updated.Name).
			Int("quantity", updated.Quantity).
			Int("threshold", updated.Threshold).
			Msg("inventory item low on stock")
	}
	return updated, nil
}

func (s *InventoryService) Delete(ctx context.Context, doctorUserID, itemID string) error {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return err
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.HospitalID != hospitalID {
		return domain.ErrForbidden
	}
	return s.items.Delete(ctx, itemID)
}

func (s *InventoryService) LowStock(ctx context.Context, doctorUserID string) ([]*domain.InventoryItem, error) {
	hospitalID, err := s.hospitalScope(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}
	return s.items.ListLowStock(ctx, hospitalID)
}
