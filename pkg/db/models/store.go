package models

// Store is a physical showroom returned by the store locator.
type Store struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	Pincode string `bson:"pincode" json:"pincode"`
	Phone   string `bson:"phone" json:"phone"`
	Hours   string `bson:"hours" json:"hours"`
}
