package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

const collectionHospitals = "hospitals"

type HospitalRepository struct {
	coll *mongo.Collection
}

func NewHospitalRepository(db *mongo.Database) *HospitalRepository {
	return &HospitalRepository{coll: db.Collection(collectionHospitals)}
}

func (r *HospitalRepository) Create(ctx context.Context, h *domain.Hospital) (*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if h.ID == "" {
		h.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, h); err != nil {
		return nil, fmt.Errorf("insert hospital: %w", err)
	}
	return h, nil
}

func (r *HospitalRepository) FindByID(ctx context.Context, id string) (*domain.Hospital, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *HospitalRepository) FindByName(ctx context.Context, name string) (*domain.Hospital, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *HospitalRepository) FindByOwnerID(ctx context.Context, ownerID string) (*domain.Hospital, error) {
	return r.findOne(ctx, bson.M{"owner_id": ownerID})
}

func (r *HospitalRepository) findOne(ctx context.Context, filter bson.M) (*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var h domain.Hospital
	if err := r.coll.FindOne(ctx, filter).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHospitalNotFound
		}
		return nil, fmt.Errorf("find hospital: %w", err)
	}
	return &h, nil
}

func (r *HospitalRepository) ListVerified(ctx context.Context) ([]*domain.Hospital, error) {
	return r.list(ctx, bson.M{"verified": true})
}

// ListPendingApproval returns hospitals awaiting first verification or
// carrying a staged location change.
func (r *HospitalRepository) ListPendingApproval(ctx context.Context) ([]*domain.Hospital, error) {
	return r.list(ctx, bson.M{"$or": bson.A{
		bson.M{"verified": false},
		bson.M{"pending_location": bson.M{"$ne": nil}},
	}})
}

func (r *HospitalRepository) list(ctx context.Context, filter bson.M) ([]*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer cur.Close(ctx)

	var hospitals []*domain.Hospital
	if err := cur.All(ctx, &hospitals); err != nil {
		return nil, fmt.Errorf("decode hospitals: %w", err)
	}
	return hospitals, nil
}

func (r *HospitalRepository) Update(ctx context.Context, h *domain.Hospital) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": h.ID}, h)
	if err != nil {
		return fmt.Errorf("update hospital: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHospitalNotFound
	}
	return nil
}

func (r *HospitalRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete hospital: %w", err)
	}
	return nil
}
