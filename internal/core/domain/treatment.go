package domain

import "errors"

var ErrTreatmentNotFound = errors.New("treatment not found")

// InventoryUsage links a treatment to the consumables one session uses.
type InventoryUsage struct {
	ItemID   string `json:"item_id" bson:"item_id"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Treatment is a catalog entry priced per session. Completing an appointment
// against a treatment deducts its linked inventory and raises an invoice for
// its cost.
type Treatment struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	HospitalID      string           `json:"hospital_id" bson:"hospital_id"`
	Name            string           `json:"name" bson:"name"`
	Cost            float64          `json:"cost" bson:"cost"`
	DurationMinutes int              `json:"duration_minutes" bson:"duration_minutes"`
	InventoryUsage  []InventoryUsage `json:"inventory_usage,omitempty" bson:"inventory_usage,omitempty"`
}
