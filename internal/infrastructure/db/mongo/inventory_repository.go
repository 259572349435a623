package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

const collectionInventory = "inventory_items"

type InventoryRepository struct {
	coll *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{coll: db.Collection(collectionInventory)}
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return nil, fmt.Errorf("insert inventory item: %w", err)
	}
	return item, nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// SearchByName finds the first item in the hospital whose name contains the
// given fragment, case-insensitively.
func (r *InventoryRepository) SearchByName(ctx context.Context, hospitalID, name string) (*domain.InventoryItem, error) {
	return r.findOne(ctx, bson.M{
		"hospital_id": hospitalID,
		"name":        primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"},
	})
}

func (r *InventoryRepository) findOne(ctx context.Context, filter bson.M) (*domain.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.InventoryItem
	if err := r.coll.FindOne(ctx, filter).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find inventory item: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepository) ListByHospital(ctx context.Context, hospitalID string) ([]*domain.InventoryItem, error) {
	return r.list(ctx, bson.M{"hospital_id": hospitalID})
}

func (r *InventoryRepository) ListLowStock(ctx context.Context, hospitalID string) ([]*domain.InventoryItem, error) {
	return r.list(ctx, bson.M{
		"hospital_id": hospitalID,
		"$expr":       bson.M{"$lte": bson.A{"$quantity", "$threshold"}},
	})
}

func (r *InventoryRepository) list(ctx context.Context, filter bson.M) ([]*domain.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.InventoryItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	item.LastUpdated = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// AdjustQuantity atomically applies a delta to an item's quantity. For
// negative deltas the filter requires sufficient stock, so concurrent
// deductions can never drive the quantity below zero.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, id string, delta int) (*domain.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	}
	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"last_updated": time.Now().UTC()},
	}

	var item domain.InventoryItem
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&item)
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("adjust inventory: %w", err)
	}

	// Distinguish a missing item from insufficient stock.
	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, domain.ErrInsufficientStock
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}
