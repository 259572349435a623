package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

const collectionInvoices = "invoices"

type InvoiceRepository struct {
	coll *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{coll: db.Collection(collectionInvoices)}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if inv.ID == "" {
		inv.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inv domain.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) ListByPatient(ctx context.Context, patientID string) ([]*domain.Invoice, error) {
	return r.list(ctx, bson.M{"patient_id": patientID})
}

func (r *InvoiceRepository) ListByHospitalSince(ctx context.Context, hospitalID string, since time.Time) ([]*domain.Invoice, error) {
	return r.list(ctx, bson.M{
		"hospital_id": hospitalID,
		"issued_at":   bson.M{"$gte": since},
	})
}

func (r *InvoiceRepository) list(ctx context.Context, filter bson.M) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "issued_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer cur.Close(ctx)

	var invoices []*domain.Invoice
	if err := cur.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("decode invoices: %w", err)
	}
	return invoices, nil
}

// MarkPaid transitions a pending invoice to paid. The status is part of the
// filter so a paid or cancelled invoice cannot be settled twice.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": domain.InvoicePending},
		bson.M{"$set": bson.M{"status": domain.InvoicePaid, "paid_at": at}},
	)
	if err != nil {
		return fmt.Errorf("mark invoice paid: %w", err)
	}
	if res.MatchedCount == 0 {
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return findErr
		}
		return domain.ErrInvoiceNotPayable
	}
	return nil
}
