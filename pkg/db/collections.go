package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionProducts      = "products"
	CollectionCart          = "cart"
	CollectionWishlist      = "wishlist"
	CollectionAppointments  = "appointments"
	CollectionExchangeLeads = "exchange_leads"
	CollectionStores        = "stores"
	CollectionStoreQueries  = "store_queries"
	CollectionOrders        = "orders"
	CollectionNewsletter    = "newsletter"
	CollectionContactForms  = "contact_forms"
)

// IndexSpec pairs a collection with the indexes it needs.
type IndexSpec struct {
	Collection string
	Models     []mongo.IndexModel
}

// Indexes lists every index the API relies on. The unique cart and wishlist
// keys back the single-document upserts used for add operations.
func Indexes() []IndexSpec {
	return []IndexSpec{
		{
			Collection: CollectionProducts,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("products_id_key").SetUnique(true)},
				{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetName("products_category_idx")},
				{Keys: bson.D{{Key: "price", Value: 1}}, Options: options.Index().SetName("products_price_idx")},
				{Keys: bson.D{{Key: "rating", Value: -1}}, Options: options.Index().SetName("products_rating_idx")},
				{Keys: bson.D{{Key: "tags", Value: 1}}, Options: options.Index().SetName("products_tags_idx")},
			},
		},
		{
			Collection: CollectionCart,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("cart_id_key").SetUnique(true)},
				{
					Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "productId", Value: 1}, {Key: "size", Value: 1}},
					Options: options.Index().SetName("cart_user_product_size_key").SetUnique(true),
				},
			},
		},
		{
			Collection: CollectionWishlist,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("wishlist_id_key").SetUnique(true)},
				{
					Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "productId", Value: 1}},
					Options: options.Index().SetName("wishlist_user_product_key").SetUnique(true),
				},
			},
		},
		{
			Collection: CollectionNewsletter,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("newsletter_email_key").SetUnique(true)},
			},
		},
		{
			Collection: CollectionOrders,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("orders_id_key").SetUnique(true)},
				{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetName("orders_user_id_idx")},
			},
		},
		{
			Collection: CollectionStores,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("stores_id_key").SetUnique(true)},
				{Keys: bson.D{{Key: "city", Value: 1}}, Options: options.Index().SetName("stores_city_idx")},
				{Keys: bson.D{{Key: "pincode", Value: 1}}, Options: options.Index().SetName("stores_pincode_idx")},
			},
		},
	}
}

// EnsureIndexes creates any missing indexes. Existing indexes with the same
// name and keys are left untouched by the server.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	for _, spec := range Indexes() {
		if len(spec.Models) == 0 {
			continue
		}
		if _, err := c.Collection(spec.Collection).Indexes().CreateMany(ctx, spec.Models); err != nil {
			return fmt.Errorf("creating indexes on %s: %w", spec.Collection, err)
		}
	}
	return nil
}
