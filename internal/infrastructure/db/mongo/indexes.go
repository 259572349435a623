package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every collection relies on. Called once
// at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionPatients: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		collectionHospitals: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		collectionDoctors: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "hospital_id", Value: 1}}},
		},
		collectionAppointments: {
			{Keys: bson.D{{Key: "doctor_id", Value: 1}, {Key: "start_time", Value: 1}}},
			{Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "start_time", Value: -1}}},
		},
		collectionInventory: {
			{Keys: bson.D{{Key: "hospital_id", Value: 1}, {Key: "name", Value: 1}}},
		},
		collectionTreatments: {
			{Keys: bson.D{{Key: "hospital_id", Value: 1}, {Key: "name", Value: 1}}},
		},
		collectionInvoices: {
			{Keys: bson.D{{Key: "hospital_id", Value: 1}, {Key: "issued_at", Value: -1}}},
			{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
