package product

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
)

var (
	hideObjectID     = bson.M{"_id": 0}
	suggestionFields = bson.M{"_id": 0, "id": 1, "name": 1, "category": 1, "images": 1, "price": 1}
)

// Repository reads the products collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository binds a repository to the products collection.
func NewRepository(client *db.Client) *Repository {
	return &Repository{coll: client.Collection(db.CollectionProducts)}
}

// Find executes a catalog query.
func (r *Repository) Find(ctx context.Context, q Query) ([]models.Product, error) {
	opts := options.Find().SetProjection(hideObjectID)
	if sort := q.Sort.Document(); sort != nil {
		opts.SetSort(sort)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := r.coll.Find(ctx, q.Predicate.Document(), opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// Count returns the number of products matching the predicate, ignoring any
// page window.
func (r *Repository) Count(ctx context.Context, p Predicate) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, p.Document())
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// FindByID returns mongo.ErrNoDocuments when no product has the id.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.coll.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(hideObjectID)).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindSuggestions returns the reduced projection used by type-ahead search.
func (r *Repository) FindSuggestions(ctx context.Context, p Predicate, limit int64) ([]models.ProductSuggestion, error) {
	opts := options.Find().SetProjection(suggestionFields).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, p.Document(), opts)
	if err != nil {
		return nil, fmt.Errorf("find suggestions: %w", err)
	}
	suggestions := make([]models.ProductSuggestion, 0)
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return suggestions, nil
}

// DistinctCategories lists every category value present in the catalog.
func (r *Repository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// ReplaceAll swaps the catalog for the provided products. Used by the seed
// tool only.
func (r *Repository) ReplaceAll(ctx context.Context, products []models.Product) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	if len(products) == 0 {
		return nil
	}
	docs := make([]any, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}
