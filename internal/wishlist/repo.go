package wishlist

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

// Repository persists wishlist rows.
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{coll: client.Collection(db.CollectionWishlist)}
}

// Insert stores the row unless (userId, productId) already exists. The
// existence check and insert are one upsert, so duplicates cannot slip in
// between them.
func (r *Repository) Insert(ctx context.Context, item models.WishlistItem) (bool, error) {
	filter := bson.M{"userId": item.UserID, "productId": item.ProductID}
	update := bson.M{"$setOnInsert": bson.M{"id": item.ID}}
	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if db.IsDuplicateKey(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("upsert wishlist item: %w", err)
	}
	return res.UpsertedCount > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete wishlist item: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, page pagination.Params) ([]models.WishlistItem, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	items := make([]models.WishlistItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	return items, nil
}
