package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

const collectionTreatments = "treatments"

type TreatmentRepository struct {
	coll *mongo.Collection
}

func NewTreatmentRepository(db *mongo.Database) *TreatmentRepository {
	return &TreatmentRepository{coll: db.Collection(collectionTreatments)}
}

func (r *TreatmentRepository) Create(ctx context.Context, t *domain.Treatment) (*domain.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert treatment: %w", err)
	}
	return t, nil
}

func (r *TreatmentRepository) FindByID(ctx context.Context, id string) (*domain.Treatment, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByName matches the treatment name case-insensitively so free-text
// appointment reasons can still resolve to catalog entries.
func (r *TreatmentRepository) FindByName(ctx context.Context, hospitalID, name string) (*domain.Treatment, error) {
	return r.findOne(ctx, bson.M{
		"hospital_id": hospitalID,
		"name":        primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"},
	})
}

func (r *TreatmentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Treatment
	if err := r.coll.FindOne(ctx, filter).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTreatmentNotFound
		}
		return nil, fmt.Errorf("find treatment: %w", err)
	}
	return &t, nil
}

func (r *TreatmentRepository) ListByHospital(ctx context.Context, hospitalID string) ([]*domain.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"hospital_id": hospitalID},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}
	defer cur.Close(ctx)

	var treatments []*domain.Treatment
	if err := cur.All(ctx, &treatments); err != nil {
		return nil, fmt.Errorf("decode treatments: %w", err)
	}
	return treatments, nil
}

func (r *TreatmentRepository) Update(ctx context.Context, t *domain.Treatment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return fmt.Errorf("update treatment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTreatmentNotFound
	}
	return nil
}

func (r *TreatmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete treatment: %w", err)
	}
	return nil
}
