package models

// StoneDetails describes the primary stone set in a piece, when present.
type StoneDetails struct {
	Type    *string  `bson:"type,omitempty" json:"type"`
	Carat   *float64 `bson:"carat,omitempty" json:"carat"`
	Clarity *string  `bson:"clarity,omitempty" json:"clarity"`
	Color   *string  `bson:"color,omitempty" json:"color"`
}

// Availability flags the fulfilment modes offered for a product.
type Availability struct {
	Ship        bool `bson:"ship" json:"ship"`
	StorePickup bool `bson:"storePickup" json:"storePickup"`
}

// Product is a catalog entry. Products are loaded by the seed tool and are
// read-only through the API.
type Product struct {
	ID           string             `bson:"id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	SKU          string             `bson:"sku" json:"sku"`
	Category     string             `bson:"category" json:"category"`
	Metal        string             `bson:"metal" json:"metal"`
	Purity       string             `bson:"purity" json:"purity"`
	MetalColor   string             `bson:"metalColor" json:"metalColor"`
	GrossWeight  float64            `bson:"grossWeight" json:"grossWeight"`
	Price        float64            `bson:"price" json:"price"`
	Description  string             `bson:"description" json:"description"`
	Images       []string           `bson:"images" json:"images"`
	Tags         []string           `bson:"tags" json:"tags"`
	Occasion     []string           `bson:"occasion" json:"occasion"`
	Gender       string             `bson:"gender" json:"gender"`
	StoneDetails *StoneDetails      `bson:"stoneDetails,omitempty" json:"stoneDetails"`
	Availability Availability       `bson:"availability" json:"availability"`
	Rating       float64            `bson:"rating" json:"rating"`
	ReviewCount  int                `bson:"reviewCount" json:"reviewCount"`
	Dimensions   map[string]any     `bson:"dimensions,omitempty" json:"dimensions"`
	PriceBreakup map[string]float64 `bson:"priceBreakup,omitempty" json:"priceBreakup"`
}

// ProductSuggestion is the reduced projection returned by search suggestions.
type ProductSuggestion struct {
	ID       string   `bson:"id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Category string   `bson:"category" json:"category"`
	Images   []string `bson:"images" json:"images"`
	Price    float64  `bson:"price" json:"price"`
}
