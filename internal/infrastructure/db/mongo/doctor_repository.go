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

const collectionDoctors = "doctors"

type DoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *DoctorRepository {
	return &DoctorRepository{coll: db.Collection(collectionDoctors)}
}

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if d.ID == "" {
		d.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	return d, nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, id string) (*domain.Doctor, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *DoctorRepository) FindByUserID(ctx context.Context, userID string) (*domain.Doctor, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *DoctorRepository) findOne(ctx context.Context, filter bson.M) (*domain.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Doctor
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return &d, nil
}

func (r *DoctorRepository) ListVerified(ctx context.Context) ([]*domain.Doctor, error) {
	return r.list(ctx, bson.M{"verified": true})
}

func (r *DoctorRepository) ListUnverified(ctx context.Context) ([]*domain.Doctor, error) {
	return r.list(ctx, bson.M{"verified": false})
}

func (r *DoctorRepository) ListByHospital(ctx context.Context, hospitalID string) ([]*domain.Doctor, error) {
	return r.list(ctx, bson.M{"hospital_id": hospitalID})
}

func (r *DoctorRepository) list(ctx context.Context, filter bson.M) ([]*domain.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer cur.Close(ctx)

	var doctors []*domain.Doctor
	if err := cur.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) Update(ctx context.Context, d *domain.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	return nil
}
