package product

import (
	"cmp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
)

// SortKey names one of the fixed catalog orderings.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
)

// ParseSortKey maps raw input to a known key, falling back to featured.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(raw); key {
	case SortNewest, SortPriceLow, SortPriceHigh:
		return key
	default:
		return SortFeatured
	}
}

// Sort is a single-field ordering. The zero value leaves the store's natural
// order untouched.
type Sort struct {
	Field      string
	Descending bool
}

// Sort returns the ordering for the key. There is no secondary tie-break.
func (k SortKey) Sort() Sort {
	switch k {
	case SortNewest:
		return Sort{Field: "id", Descending: true}
	case SortPriceLow:
		return Sort{Field: "price"}
	case SortPriceHigh:
		return Sort{Field: "price", Descending: true}
	default:
		return Sort{Field: "rating", Descending: true}
	}
}

func (s Sort) IsZero() bool {
	return s.Field == ""
}

// Document renders the ordering for FindOptions.SetSort.
func (s Sort) Document() bson.D {
	if s.IsZero() {
		return nil
	}
	dir := 1
	if s.Descending {
		dir = -1
	}
	return bson.D{{Key: s.Field, Value: dir}}
}

// Less orders two products the way the store would for this sort.
func (s Sort) Less(a, b *models.Product) bool {
	var order int
	switch s.Field {
	case "price":
		order = cmp.Compare(a.Price, b.Price)
	case "rating":
		order = cmp.Compare(a.Rating, b.Rating)
	case "":
		return false
	default:
		order = cmp.Compare(stringField(a, s.Field), stringField(b, s.Field))
	}
	if s.Descending {
		return order > 0
	}
	return order < 0
}
