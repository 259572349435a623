package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("inventory item not found")
var ErrInsufficientStock = errors.New("insufficient stock")

// InventoryItem is a consumable tracked per hospital.
type InventoryItem struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	HospitalID  string    `json:"hospital_id" bson:"hospital_id"`
	Name        string    `json:"name" bson:"name"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	Unit        string    `json:"unit" bson:"unit"` // e.g. "boxes", "vials"
	Threshold   int       `json:"threshold" bson:"threshold"`
	LastUpdated time.Time `json:"last_updated" bson:"last_updated"`
}

// LowStock reports whether the item has fallen to or below its warning level.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.Threshold
}
