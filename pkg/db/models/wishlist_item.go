package models

// WishlistItem links a user to a saved product, once per (userId, productId).
type WishlistItem struct {
	ID        string `bson:"id" json:"id"`
	ProductID string `bson:"productId" json:"productId"`
	UserID    string `bson:"userId" json:"userId"`
}
