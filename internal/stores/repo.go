package stores

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
)

// Repository reads the stores collection.
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{coll: client.Collection(db.CollectionStores)}
}

// Filter narrows the store list. Empty fields are ignored.
type Filter struct {
	City    string
	Pincode string
}

// Document renders the filter: city is a case-insensitive literal substring,
// pincode an exact match.
func (f Filter) Document() bson.M {
	filter := bson.M{}
	if f.City != "" {
		filter["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.City), Options: "i"}
	}
	if f.Pincode != "" {
		filter["pincode"] = f.Pincode
	}
	return filter
}

func (r *Repository) List(ctx context.Context, f Filter) ([]models.Store, error) {
	cursor, err := r.coll.Find(ctx, f.Document(), options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("find stores: %w", err)
	}
	stores := make([]models.Store, 0)
	if err := cursor.All(ctx, &stores); err != nil {
		return nil, fmt.Errorf("decode stores: %w", err)
	}
	return stores, nil
}

// ReplaceAll swaps the store list for the provided records. Used by the seed
// tool only.
func (r *Repository) ReplaceAll(ctx context.Context, stores []models.Store) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear stores: %w", err)
	}
	if len(stores) == 0 {
		return nil
	}
	docs := make([]any, 0, len(stores))
	for _, s := range stores {
		docs = append(docs, s)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert stores: %w", err)
	}
	return nil
}
