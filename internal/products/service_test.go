package product

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

var firstPage = pagination.Params{Page: pagination.DefaultPage, Limit: pagination.DefaultLimit}

func newTestService(t *testing.T, store Store) Service {
	t.Helper()
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func catalogOf(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Product{
			ID:       fmt.Sprintf("p%02d", i),
			Name:     fmt.Sprintf("Piece %d", i),
			Category: []string{"Ring", "Necklace", "Earrings"}[i%3],
			Price:    float64((i*7919)%90000 + 5000),
			Rating:   float64(i%5) + 0.5,
		})
	}
	return out
}

func TestNewServiceRequiresStore(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestListEndToEndExample(t *testing.T) {
	store := newMemoryStore(
		models.Product{ID: "p1", Name: "Gold Ring", Category: "Ring", Price: 30000, Occasion: []string{"Wedding"}, Tags: []string{"gold", "ring"}},
		models.Product{ID: "p2", Name: "Heavy Ring", Category: "Ring", Price: 90000},
		models.Product{ID: "p3", Name: "Chain", Category: "Chain", Price: 25000},
	)
	svc := newTestService(t, store)

	res, err := svc.List(context.Background(), ListInput{
		Filters:    ListFilters{Category: "Ring", MinPrice: floatPtr(20000), MaxPrice: floatPtr(40000)},
		Pagination: firstPage,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Products) != 1 || res.Products[0].ID != "p1" {
		t.Fatalf("expected only p1, got %+v", res.Products)
	}
	if res.Total != 1 || res.Page != 1 || res.Limit != 12 || res.Pages != 1 {
		t.Fatalf("unexpected envelope total=%d page=%d limit=%d pages=%d", res.Total, res.Page, res.Limit, res.Pages)
	}
}

func TestListPagingMath(t *testing.T) {
	svc := newTestService(t, newMemoryStore(catalogOf(25)...))
	ctx := context.Background()

	for page, wantLen := range map[int]int{1: 12, 2: 12, 3: 1, 4: 0} {
		res, err := svc.List(ctx, ListInput{Pagination: pagination.Params{Page: page, Limit: 12}})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if len(res.Products) != wantLen {
			t.Fatalf("page %d: expected %d products, got %d", page, wantLen, len(res.Products))
		}
		if res.Total != 25 || res.Pages != 3 {
			t.Fatalf("page %d: total=%d pages=%d", page, res.Total, res.Pages)
		}
		if res.Products == nil {
			t.Fatalf("page %d: expected empty slice, got nil", page)
		}
	}
}

func TestListSortOrders(t *testing.T) {
	svc := newTestService(t, newMemoryStore(catalogOf(30)...))
	ctx := context.Background()
	page := pagination.Params{Page: 1, Limit: 50}

	list := func(sort string) []models.Product {
		t.Helper()
		res, err := svc.List(ctx, ListInput{Sort: sort, Pagination: page})
		if err != nil {
			t.Fatalf("sort %s: %v", sort, err)
		}
		return res.Products
	}

	low := list("price_low")
	for i := 1; i < len(low); i++ {
		if low[i-1].Price > low[i].Price {
			t.Fatalf("price_low out of order at %d: %v > %v", i, low[i-1].Price, low[i].Price)
		}
	}

	high := list("price_high")
	for i := 1; i < len(high); i++ {
		if high[i-1].Price < high[i].Price {
			t.Fatalf("price_high out of order at %d: %v < %v", i, high[i-1].Price, high[i].Price)
		}
	}

	fallback := list("most_shiny")
	for i := 1; i < len(fallback); i++ {
		if fallback[i-1].Rating < fallback[i].Rating {
			t.Fatalf("fallback not rating-descending at %d", i)
		}
	}

	if newest := list("newest"); newest[0].ID != "p30" {
		t.Fatalf("expected p30 first for newest, got %s", newest[0].ID)
	}
}

func TestListEmptyPriceRange(t *testing.T) {
	svc := newTestService(t, newMemoryStore(catalogOf(10)...))
	res, err := svc.List(context.Background(), ListInput{
		Filters:    ListFilters{MinPrice: floatPtr(1_000_000), MaxPrice: floatPtr(2_000_000)},
		Pagination: firstPage,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Products) != 0 || res.Total != 0 || res.Pages != 0 {
		t.Fatalf("expected empty page, got %d products total=%d pages=%d", len(res.Products), res.Total, res.Pages)
	}
}

func TestListRejectsInvalidPaginationBeforeStore(t *testing.T) {
	store := newMemoryStore(catalogOf(3)...)
	svc := newTestService(t, store)

	_, err := svc.List(context.Background(), ListInput{Pagination: pagination.Params{Page: 1, Limit: 0}})
	if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.findCalls != 0 || store.countCalls != 0 {
		t.Fatalf("store reached: find=%d count=%d", store.findCalls, store.countCalls)
	}
}

func TestListWrapsStoreErrors(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("connection reset")
	svc := newTestService(t, store)

	_, err := svc.List(context.Background(), ListInput{Pagination: firstPage})
	if !pkgerrors.HasCode(err, pkgerrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(t, newMemoryStore(catalogOf(2)...))

	_, err := svc.Get(context.Background(), "P01")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Product not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}

	got, err := svc.Get(context.Background(), "p01")
	if err != nil {
		t.Fatalf("get p01: %v", err)
	}
	if got.ID != "p01" {
		t.Fatalf("expected p01, got %s", got.ID)
	}
}

func TestRelatedExcludesSource(t *testing.T) {
	products := []models.Product{
		{ID: "src", Category: "Ring", Tags: []string{"gold"}},
		{ID: "same-cat", Category: "Ring"},
		{ID: "same-tag", Category: "Bangle", Tags: []string{"gold"}},
		{ID: "unrelated", Category: "Bangle", Tags: []string{"silver"}},
	}
	for i := 0; i < 10; i++ {
		products = append(products, models.Product{ID: fmt.Sprintf("ring-%d", i), Category: "Ring"})
	}
	store := newMemoryStore(products...)
	svc := newTestService(t, store)

	related, err := svc.Related(context.Background(), "src")
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != RelatedLimit {
		t.Fatalf("expected %d related, got %d", RelatedLimit, len(related))
	}
	for _, p := range related {
		if p.ID == "src" || p.ID == "unrelated" {
			t.Fatalf("unexpected related product %s", p.ID)
		}
	}
	if store.lastQuery.Limit != RelatedLimit {
		t.Fatalf("expected limit %d, got %d", RelatedLimit, store.lastQuery.Limit)
	}
}

func TestRelatedMissingSource(t *testing.T) {
	svc := newTestService(t, newMemoryStore())
	if _, err := svc.Related(context.Background(), "nope"); !pkgerrors.HasCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSuggestions(t *testing.T) {
	store := newMemoryStore(
		models.Product{ID: "1", Name: "Gold Ring", Category: "Ring", Images: []string{"a.jpg"}, Price: 100},
		models.Product{ID: "2", Name: "Gold Chain", Category: "Chain"},
		models.Product{ID: "3", Name: "Gold Bangle", Category: "Bangle"},
		models.Product{ID: "4", Name: "Gold Pendant", Category: "Pendant"},
		models.Product{ID: "5", Name: "Gold Nosepin", Category: "Nosepin"},
		models.Product{ID: "6", Name: "Gold Anklet", Category: "Anklet"},
	)
	svc := newTestService(t, store)
	ctx := context.Background()

	short, err := svc.Suggestions(ctx, "g")
	if err != nil {
		t.Fatalf("short: %v", err)
	}
	if short == nil || len(short) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", short)
	}
	if store.findCalls != 0 {
		t.Fatalf("short query reached the store")
	}

	capped, err := svc.Suggestions(ctx, "go")
	if err != nil {
		t.Fatalf("capped: %v", err)
	}
	if len(capped) != SuggestionLimit {
		t.Fatalf("expected %d suggestions, got %d", SuggestionLimit, len(capped))
	}
	first := capped[0]
	if first.ID != "1" || first.Name != "Gold Ring" || first.Category != "Ring" || first.Price != 100 || !slices.Equal(first.Images, []string{"a.jpg"}) {
		t.Fatalf("unexpected first suggestion %+v", first)
	}

	none, err := svc.Suggestions(ctx, "platinum")
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no suggestions, got %+v err=%v", none, err)
	}
}

func TestSuggestionsCountsRawLength(t *testing.T) {
	store := newMemoryStore(models.Product{ID: "1", Name: "Gold Ring", Category: "Ring"})
	svc := newTestService(t, store)

	got, err := svc.Suggestions(context.Background(), " r")
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if store.findCalls != 1 {
		t.Fatalf("expected two-rune raw query to reach the store, calls=%d", store.findCalls)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected Gold Ring to match %q, got %+v", " r", got)
	}
}

func TestCategories(t *testing.T) {
	svc := newTestService(t, newMemoryStore(catalogOf(6)...))
	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	slices.Sort(cats)
	if !slices.Equal(cats, []string{"Earrings", "Necklace", "Ring"}) {
		t.Fatalf("unexpected categories %v", cats)
	}
}

func TestRecommend(t *testing.T) {
	products := []models.Product{
		{ID: "w1", Metal: "Gold", Occasion: []string{"Wedding"}, Price: 45000},
		{ID: "w2", Metal: "Gold", Occasion: []string{"Wedding"}, Price: 95000},
		{ID: "w3", Metal: "Platinum", Occasion: []string{"Wedding"}, Price: 45000},
		{ID: "d1", Metal: "Gold", Occasion: []string{"Daily"}, Price: 45000},
	}
	for i := 0; i < 20; i++ {
		products = append(products, models.Product{ID: fmt.Sprintf("x%d", i), Metal: "Silver"})
	}
	store := newMemoryStore(products...)
	svc := newTestService(t, store)
	ctx := context.Background()

	recs, err := svc.Recommend(ctx, QuizInput{Occasion: "Wedding", Budget: []float64{40000, 50000}, Style: "classic", Metal: "Gold"})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "w1" {
		t.Fatalf("expected only w1, got %+v", recs)
	}

	all, err := svc.Recommend(ctx, QuizInput{})
	if err != nil {
		t.Fatalf("recommend all: %v", err)
	}
	if len(all) != RecommendationLimit {
		t.Fatalf("expected %d recommendations, got %d", RecommendationLimit, len(all))
	}

	if _, err := svc.Recommend(ctx, QuizInput{Budget: []float64{1, 2, 3}}); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
