package product

import (
	"context"
	"unicode/utf8"

	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

// Service exposes the read-only catalog operations.
type Service interface {
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Related(ctx context.Context, id string) ([]models.Product, error)
	Suggestions(ctx context.Context, q string) ([]models.ProductSuggestion, error)
	Categories(ctx context.Context) ([]string, error)
	Recommend(ctx context.Context, quiz QuizInput) ([]models.Product, error)
}

// Store is the persistence surface the service needs. Repository satisfies it.
type Store interface {
	Find(ctx context.Context, q Query) ([]models.Product, error)
	Count(ctx context.Context, p Predicate) (int64, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindSuggestions(ctx context.Context, p Predicate, limit int64) ([]models.ProductSuggestion, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type service struct {
	store Store
}

// NewService constructs a catalog service instance.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product store is required")
	}
	return &service{store: store}, nil
}

func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	query, err := BuildListQuery(input)
	if err != nil {
		return nil, err
	}

	products, err := s.store.Find(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	total, err := s.store.Count(ctx, query.Predicate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count products")
	}
	if products == nil {
		products = []models.Product{}
	}

	return &ListResult{
		Products: products,
		Total:    total,
		Page:     input.Pagination.Page,
		Limit:    input.Pagination.Limit,
		Pages:    pagination.Pages(total, input.Pagination.Limit),
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.NotFound("Product")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "get product")
	}
	return product, nil
}

// Related returns up to RelatedLimit products sharing the source's category or
// a tag. The source itself is never included.
func (s *service) Related(ctx context.Context, id string) ([]models.Product, error) {
	source, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.store.Find(ctx, Query{Predicate: RelatedPredicate(source), Limit: RelatedLimit})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "related products")
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Suggestions short-circuits queries under SuggestionMinLength characters
// without touching the store.
func (s *service) Suggestions(ctx context.Context, q string) ([]models.ProductSuggestion, error) {
	if utf8.RuneCountInString(q) < SuggestionMinLength {
		return []models.ProductSuggestion{}, nil
	}
	suggestions, err := s.store.FindSuggestions(ctx, SuggestionPredicate(q), SuggestionLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search suggestions")
	}
	if suggestions == nil {
		suggestions = []models.ProductSuggestion{}
	}
	return suggestions, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.store.DistinctCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *service) Recommend(ctx context.Context, quiz QuizInput) ([]models.Product, error) {
	predicate, err := quiz.Predicate()
	if err != nil {
		return nil, err
	}
	products, err := s.store.Find(ctx, Query{Predicate: predicate, Limit: RecommendationLimit})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "quiz recommendations")
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
