package ports

import (
	"context"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// InventoryRepository defines persistence operations for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	FindByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	// SearchByName finds the first item in the hospital whose name contains
	// the given fragment, case-insensitively.
	SearchByName(ctx context.Context, hospitalID, name string) (*domain.InventoryItem, error)
	ListByHospital(ctx context.Context, hospitalID string) ([]*domain.InventoryItem, error)
	ListLowStock(ctx context.Context, hospitalID string) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	// AdjustQuantity atomically applies a delta to an item's quantity.
	// A negative delta that would take the quantity below zero fails with
	// domain.ErrInsufficientStock.
	AdjustQuantity(ctx context.Context, id string, delta int) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

// TreatmentRepository defines persistence operations for the treatment catalog.
type TreatmentRepository interface {
	Create(ctx context.Context, t *domain.Treatment) (*domain.Treatment, error)
	FindByID(ctx context.Context, id string) (*domain.Treatment, error)
	FindByName(ctx context.Context, hospitalID, name string) (*domain.Treatment, error)
	ListByHospital(ctx context.Context, hospitalID string) ([]*domain.Treatment, error)
	Update(ctx context.Context, t *domain.Treatment) error
	Delete(ctx context.Context, id string) error
}
