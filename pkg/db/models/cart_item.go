package models

// GuestUserID is the shared identity used when a caller supplies no userId.
const GuestUserID = "guest"

// CartItem is one cart line. At most one row exists per (userId, productId,
// size); a repeated add increments Quantity.
type CartItem struct {
	ID        string  `bson:"id" json:"id"`
	ProductID string  `bson:"productId" json:"productId"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Size      *string `bson:"size" json:"size"`
	UserID    string  `bson:"userId" json:"userId"`
}
