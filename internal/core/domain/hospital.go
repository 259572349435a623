package domain

import "errors"

var ErrHospitalNotFound = errors.New("hospital not found")

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Location bundles a postal address with its coordinates.
type Location struct {
	Address     string      `json:"address" bson:"address"`
	Pincode     string      `json:"pincode" bson:"pincode"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}

// Hospital is a clinic account owned by an organization user. A hospital is
// invisible to booking and registration until an admin verifies it. Location
// changes after verification are staged in PendingLocation and require
// re-approval before they replace the live address.
type Hospital struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	OwnerID         string    `json:"owner_id" bson:"owner_id"`
	Name            string    `json:"name" bson:"name"`
	Location        Location  `json:"location" bson:"location"`
	Verified        bool      `json:"verified" bson:"verified"`
	PendingLocation *Location `json:"pending_location,omitempty" bson:"pending_location,omitempty"`
}
