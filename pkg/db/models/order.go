package models

import "github.com/anonymous-namo-1/golden-era/pkg/enums"

// Order records a checkout. Items and Address are stored as submitted.
type Order struct {
	ID            string            `bson:"id" json:"id"`
	UserID        string            `bson:"userId" json:"userId"`
	Items         []map[string]any  `bson:"items" json:"items"`
	Total         float64           `bson:"total" json:"total"`
	Address       map[string]string `bson:"address" json:"address"`
	PaymentMethod string            `bson:"paymentMethod" json:"paymentMethod"`
	Status        enums.OrderStatus `bson:"status" json:"status"`
	CreatedAt     Timestamp         `bson:"createdAt" json:"createdAt"`
}
