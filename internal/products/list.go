package product

import (
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	"github.com/anonymous-namo-1/golden-era/pkg/enums"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

const (
	// RelatedLimit caps the related-products lookup.
	RelatedLimit = 8
	// SuggestionLimit caps search suggestions.
	SuggestionLimit = 5
	// SuggestionMinLength is the shortest query that reaches the store.
	SuggestionMinLength = 2
	// RecommendationLimit caps quiz recommendations.
	RecommendationLimit = 12
)

// ListFilters describe the supported filter knobs for the browse endpoint.
type ListFilters struct {
	Category     string
	Metal        string
	Purity       string
	MetalColor   string
	Occasion     string
	Gender       string
	MinPrice     *float64
	MaxPrice     *float64
	Availability string
	Search       string
}

// ListInput captures the inputs needed to filter, sort and page the catalog.
type ListInput struct {
	Filters    ListFilters
	Sort       string
	Pagination pagination.Params
}

// ListResult is the paged catalog envelope.
type ListResult struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Pages    int64            `json:"pages"`
}

// Query is a complete store request: filter, ordering and window. A zero
// Limit means unbounded.
type Query struct {
	Predicate Predicate
	Sort      Sort
	Skip      int64
	Limit     int64
}

// Predicate composes the listing filters, one clause per supplied filter. An
// unrecognised availability value adds no clause.
func (f ListFilters) Predicate() Predicate {
	b := NewBuilder().
		Equal("category", f.Category).
		Equal("metal", f.Metal).
		Equal("purity", f.Purity).
		Equal("metalColor", f.MetalColor).
		Has("occasion", f.Occasion).
		Equal("gender", f.Gender).
		PriceBetween(f.MinPrice, f.MaxPrice)
	if mode, err := enums.ParseAvailabilityMode(f.Availability); err == nil {
		b.Available(mode)
	}
	return b.Search(f.Search, true).Predicate()
}

// BuildListQuery validates pagination and produces the listing query.
func BuildListQuery(input ListInput) (Query, error) {
	page := input.Pagination
	if !page.Valid(pagination.MaxLimit) {
		return Query{}, pkgerrors.New(pkgerrors.CodeValidation, "page must be >= 1 and limit between 1 and 50").
			WithDetails(map[string]any{"page": page.Page, "limit": page.Limit})
	}
	return Query{
		Predicate: input.Filters.Predicate(),
		Sort:      ParseSortKey(input.Sort).Sort(),
		Skip:      page.Skip(),
		Limit:     int64(page.Limit),
	}, nil
}

// RelatedPredicate matches other products sharing the source's category or
// any of its tags.
func RelatedPredicate(source *models.Product) Predicate {
	return NewBuilder().
		Add(notEquals{field: "id", value: source.ID}).
		Add(anyOf{
			equals{field: "category", value: source.Category},
			hasAny{field: "tags", values: source.Tags},
		}).
		Predicate()
}

// SuggestionPredicate matches name, sku or category. Tags are not searched.
func SuggestionPredicate(term string) Predicate {
	return NewBuilder().Search(term, false).Predicate()
}

// QuizInput is the transient quiz answer set. Style is accepted but does not
// narrow the recommendation.
type QuizInput struct {
	Occasion string
	Budget   []float64
	Style    string
	Metal    string
}

// Predicate builds the recommendation filter from the supplied answers.
func (q QuizInput) Predicate() (Predicate, error) {
	b := NewBuilder().Has("occasion", q.Occasion)
	switch len(q.Budget) {
	case 0:
	case 2:
		low, high := q.Budget[0], q.Budget[1]
		b.PriceBetween(&low, &high)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "budget must be a [min, max] pair").
			WithDetails(map[string]any{"budget": q.Budget})
	}
	return b.Equal("metal", q.Metal).Predicate(), nil
}
