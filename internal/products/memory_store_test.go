package product

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
)

// memoryStore evaluates catalog queries in process using each clause's Match.
type memoryStore struct {
	products []models.Product

	findCalls  int
	countCalls int
	lastQuery  Query
	err        error
}

func newMemoryStore(products ...models.Product) *memoryStore {
	return &memoryStore{products: products}
}

func (m *memoryStore) filter(p Predicate) []models.Product {
	out := make([]models.Product, 0)
	for i := range m.products {
		if p.Match(&m.products[i]) {
			out = append(out, m.products[i])
		}
	}
	return out
}

func (m *memoryStore) Find(_ context.Context, q Query) ([]models.Product, error) {
	m.findCalls++
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	matched := m.filter(q.Predicate)
	if !q.Sort.IsZero() {
		slices.SortStableFunc(matched, func(a, b models.Product) int {
			switch {
			case q.Sort.Less(&a, &b):
				return -1
			case q.Sort.Less(&b, &a):
				return 1
			default:
				return 0
			}
		})
	}
	if q.Skip >= int64(len(matched)) {
		return []models.Product{}, nil
	}
	matched = matched[q.Skip:]
	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (m *memoryStore) Count(_ context.Context, p Predicate) (int64, error) {
	m.countCalls++
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.filter(p))), nil
}

func (m *memoryStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	m.findCalls++
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memoryStore) FindSuggestions(_ context.Context, p Predicate, limit int64) ([]models.ProductSuggestion, error) {
	m.findCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.ProductSuggestion, 0)
	for _, prod := range m.filter(p) {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, models.ProductSuggestion{
			ID:       prod.ID,
			Name:     prod.Name,
			Category: prod.Category,
			Images:   prod.Images,
			Price:    prod.Price,
		})
	}
	return out, nil
}

func (m *memoryStore) DistinctCategories(context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []string
	for _, prod := range m.products {
		if !slices.Contains(out, prod.Category) {
			out = append(out, prod.Category)
		}
	}
	return out, nil
}
