package leads

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
)

// Repository appends lead documents to their collections.
type Repository struct {
	database *mongo.Database
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{database: client.Database()}
}

// Insert appends doc to the named collection.
func (r *Repository) Insert(ctx context.Context, collection string, doc any) error {
	if _, err := r.database.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

// InsertSubscription stores the subscription unless the email is already
// subscribed, in which case it reports false.
func (r *Repository) InsertSubscription(ctx context.Context, sub models.NewsletterSubscription) (bool, error) {
	filter := bson.M{"email": sub.Email}
	update := bson.M{"$setOnInsert": bson.M{"id": sub.ID, "createdAt": sub.CreatedAt}}
	res, err := r.database.Collection(db.CollectionNewsletter).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if db.IsDuplicateKey(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("upsert subscription: %w", err)
	}
	return res.UpsertedCount > 0, nil
}
