package cart

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

// Repository persists cart lines in the cart collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository binds a repository to the cart collection.
func NewRepository(client *db.Client) *Repository {
	return &Repository{coll: client.Collection(db.CollectionCart)}
}

func lineKey(item models.CartItem) bson.M {
	return bson.M{"userId": item.UserID, "productId": item.ProductID, "size": item.Size}
}

// AddOrIncrement is a single upsert so concurrent adds of the same line never
// lose an increment. Two racing inserts collide on the unique line index; the
// loser retries once and lands on the increment path.
func (r *Repository) AddOrIncrement(ctx context.Context, item models.CartItem) (bool, error) {
	update := bson.M{
		"$inc":         bson.M{"quantity": item.Quantity},
		"$setOnInsert": bson.M{"id": item.ID},
	}
	opts := options.Update().SetUpsert(true)

	res, err := r.coll.UpdateOne(ctx, lineKey(item), update, opts)
	if db.IsDuplicateKey(err) {
		res, err = r.coll.UpdateOne(ctx, lineKey(item), update, opts)
	}
	if err != nil {
		return false, fmt.Errorf("upsert cart line: %w", err)
	}
	return res.UpsertedCount > 0, nil
}

func (r *Repository) SetQuantity(ctx context.Context, id string, quantity int) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return false, fmt.Errorf("update cart quantity: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete cart line: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *Repository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, page pagination.Params) ([]models.CartItem, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	items := make([]models.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}
