package models

// Appointment is a store visit booking.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Phone          string    `bson:"phone" json:"phone"`
	City           string    `bson:"city" json:"city"`
	PreferredStore string    `bson:"preferredStore" json:"preferredStore"`
	Date           string    `bson:"date" json:"date"`
	Time           string    `bson:"time" json:"time"`
	Purpose        string    `bson:"purpose" json:"purpose"`
	CreatedAt      Timestamp `bson:"createdAt" json:"createdAt"`
}

// ExchangeLead is an old-gold exchange enquiry.
type ExchangeLead struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Phone             string    `bson:"phone" json:"phone"`
	Email             string    `bson:"email" json:"email"`
	City              string    `bson:"city" json:"city"`
	GoldType          string    `bson:"goldType" json:"goldType"`
	ApproximateWeight string    `bson:"approximateWeight" json:"approximateWeight"`
	CreatedAt         Timestamp `bson:"createdAt" json:"createdAt"`
}

// ContactForm is a free-text message from the contact page.
type ContactForm struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     *string   `bson:"phone" json:"phone"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt Timestamp `bson:"createdAt" json:"createdAt"`
}

// StoreQuery asks a nearby store to call back about a product.
type StoreQuery struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Pincode   string    `bson:"pincode" json:"pincode"`
	ProductID string    `bson:"productId" json:"productId"`
	CreatedAt Timestamp `bson:"createdAt" json:"createdAt"`
}

// NewsletterSubscription holds one row per subscribed email.
type NewsletterSubscription struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt Timestamp `bson:"createdAt" json:"createdAt"`
}
