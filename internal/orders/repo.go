package orders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

// Repository persists orders.
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{coll: client.Collection(db.CollectionOrders)}
}

func (r *Repository) Create(ctx context.Context, order models.Order) error {
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByUser returns the user's orders in insertion order.
func (r *Repository) ListByUser(ctx context.Context, userID string, page pagination.Params) ([]models.Order, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
