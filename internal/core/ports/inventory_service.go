package ports

import (
	"context"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// InventoryItemInput carries inventory create/update fields.
type InventoryItemInput struct {
	Name      string
	Quantity  int
	Unit      string
	Threshold int
}

// InventoryService manages a hospital's consumables. All operations are
// scoped to the hospital of the acting doctor.
type InventoryService interface {
	List(ctx context.Context, doctorUserID string) ([]*domain.InventoryItem, error)
	Create(ctx context.Context, doctorUserID string, in InventoryItemInput) (*domain.InventoryItem, error)
	Update(ctx context.Context, doctorUserID, itemID string, in InventoryItemInput) (*domain.InventoryItem, error)
	// Adjust applies a signed quantity delta; stock never drops below zero.
	Adjust(ctx context.Context, doctorUserID, itemID string, delta int) (*domain.InventoryItem, error)
	Delete(ctx context.Context, doctorUserID, itemID string) error
	LowStock(ctx context.Context, doctorUserID string) ([]*domain.InventoryItem, error)
}

// TreatmentInput carries treatment catalog create/update fields.
type TreatmentInput struct {
	Name            string
	Cost            float64
	DurationMinutes int
	InventoryUsage  []domain.InventoryUsage
}

// TreatmentService manages a hospital's treatment catalog.
type TreatmentService interface {
	List(ctx context.Context, doctorUserID string) ([]*domain.Treatment, error)
	Create(ctx context.Context, doctorUserID string, in TreatmentInput) (*domain.Treatment, error)
	Update(ctx context.Context, doctorUserID, treatmentID string, in TreatmentInput) (*domain.Treatment, error)
	Delete(ctx context.Context, doctorUserID, treatmentID string) error
}
