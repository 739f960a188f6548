package controllers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	product "github.com/anonymous-namo-1/golden-era/internal/products"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
)

type stubProductService struct {
	listInput   product.ListInput
	listResult  *product.ListResult
	listCalls   int
	getErr      error
	product     *models.Product
	related     []models.Product
	suggestQ    string
	suggestions []models.ProductSuggestion
	categories  []string
	quiz        product.QuizInput
	recommended []models.Product
}

func (s *stubProductService) List(_ context.Context, input product.ListInput) (*product.ListResult, error) {
	s.listCalls++
	s.listInput = input
	return s.listResult, nil
}

func (s *stubProductService) Get(_ context.Context, id string) (*models.Product, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.product, nil
}

func (s *stubProductService) Related(_ context.Context, id string) ([]models.Product, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.related, nil
}

func (s *stubProductService) Suggestions(_ context.Context, q string) ([]models.ProductSuggestion, error) {
	s.suggestQ = q
	return s.suggestions, nil
}

func (s *stubProductService) Categories(context.Context) ([]string, error) {
	return s.categories, nil
}

func (s *stubProductService) Recommend(_ context.Context, quiz product.QuizInput) ([]models.Product, error) {
	s.quiz = quiz
	return s.recommended, nil
}

func TestRootIdentifiesService(t *testing.T) {
	rec := serve(Root(), newRequest(http.MethodGet, "/api/", "", nil))
	assertMessage(t, rec, "The Golden Era API")
}

func TestProductListParsesFilters(t *testing.T) {
	svc := &stubProductService{listResult: &product.ListResult{
		Products: []models.Product{{ID: "p1", Name: "Gold Ring"}},
		Total:    1, Page: 1, Limit: 12, Pages: 1,
	}}
	req := newRequest(http.MethodGet, "/api/products?category=Ring&minPrice=20000&maxPrice=40000&occasion=Wedding&availability=ship&sort=price_low", "", nil)

	rec := serve(ProductList(svc, nil), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	f := svc.listInput.Filters
	if f.Category != "Ring" || f.Occasion != "Wedding" || f.Availability != "ship" {
		t.Fatalf("unexpected filters %+v", f)
	}
	if f.MinPrice == nil || *f.MinPrice != 20000 || f.MaxPrice == nil || *f.MaxPrice != 40000 {
		t.Fatalf("unexpected price bounds %+v", f)
	}
	if svc.listInput.Sort != "price_low" {
		t.Fatalf("expected sort price_low got %q", svc.listInput.Sort)
	}
	if svc.listInput.Pagination.Page != 1 || svc.listInput.Pagination.Limit != 12 {
		t.Fatalf("expected default pagination got %+v", svc.listInput.Pagination)
	}

	var body struct {
		Products []models.Product `json:"products"`
		Total    int64            `json:"total"`
		Page     int              `json:"page"`
		Limit    int              `json:"limit"`
		Pages    int64            `json:"pages"`
	}
	decodeBody(t, rec, &body)
	if len(body.Products) != 1 || body.Products[0].ID != "p1" || body.Total != 1 || body.Pages != 1 {
		t.Fatalf("unexpected envelope %+v", body)
	}
}

func TestProductListRejectsBadPagination(t *testing.T) {
	for _, target := range []string{
		"/api/products?page=0",
		"/api/products?limit=0",
		"/api/products?limit=51",
		"/api/products?page=-2",
		"/api/products?minPrice=cheap",
		"/api/products?search=" + strings.Repeat("s", 201),
	} {
		svc := &stubProductService{}
		rec := serve(ProductList(svc, nil), newRequest(http.MethodGet, target, "", nil))
		assertError(t, rec, http.StatusBadRequest, string(pkgerrors.CodeValidation))
		if svc.listCalls != 0 {
			t.Fatalf("%s: service should not be called", target)
		}
	}
}

func TestProductDetailNotFound(t *testing.T) {
	svc := &stubProductService{getErr: pkgerrors.NotFound("Product")}
	req := newRequest(http.MethodGet, "/api/products/missing", "", map[string]string{"id": "missing"})

	rec := serve(ProductDetail(svc, nil), req)

	body := assertError(t, rec, http.StatusNotFound, string(pkgerrors.CodeNotFound))
	if body.Error.Message != "Product not found" {
		t.Fatalf("unexpected message %q", body.Error.Message)
	}
}

func TestProductDetailSuccess(t *testing.T) {
	svc := &stubProductService{product: &models.Product{ID: "p1", Name: "Gold Ring", Price: 30000}}
	req := newRequest(http.MethodGet, "/api/products/p1", "", map[string]string{"id": "p1"})

	rec := serve(ProductDetail(svc, nil), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var got models.Product
	decodeBody(t, rec, &got)
	if got.ID != "p1" || got.Price != 30000 {
		t.Fatalf("unexpected product %+v", got)
	}
}

func TestProductRelatedReturnsList(t *testing.T) {
	svc := &stubProductService{related: []models.Product{{ID: "p2"}, {ID: "p3"}}}
	req := newRequest(http.MethodGet, "/api/products/related/p1", "", map[string]string{"id": "p1"})

	rec := serve(ProductRelated(svc, nil), req)

	var got []models.Product
	decodeBody(t, rec, &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 related got %d", len(got))
	}
}

func TestSearchSuggestionsPassesQuery(t *testing.T) {
	svc := &stubProductService{suggestions: []models.ProductSuggestion{{ID: "p1", Name: "Gold Ring"}}}
	rec := serve(SearchSuggestions(svc, nil), newRequest(http.MethodGet, "/api/search/suggestions?q=go", "", nil))

	if svc.suggestQ != "go" {
		t.Fatalf("expected q=go got %q", svc.suggestQ)
	}
	var got []models.ProductSuggestion
	decodeBody(t, rec, &got)
	if len(got) != 1 || got[0].Name != "Gold Ring" {
		t.Fatalf("unexpected suggestions %+v", got)
	}
}

func TestSearchSuggestionsKeepsRawQuery(t *testing.T) {
	svc := &stubProductService{}
	serve(SearchSuggestions(svc, nil), newRequest(http.MethodGet, "/api/search/suggestions?q=%20a", "", nil))
	if svc.suggestQ != " a" {
		t.Fatalf("expected untrimmed q, got %q", svc.suggestQ)
	}

	rec := serve(SearchSuggestions(svc, nil), newRequest(http.MethodGet, "/api/search/suggestions?q="+strings.Repeat("g", 201), "", nil))
	assertError(t, rec, http.StatusBadRequest, string(pkgerrors.CodeValidation))
}

func TestCategoriesReturnsPlainList(t *testing.T) {
	svc := &stubProductService{categories: []string{"Ring", "Necklace"}}
	rec := serve(Categories(svc, nil), newRequest(http.MethodGet, "/api/categories", "", nil))

	var got []string
	decodeBody(t, rec, &got)
	if len(got) != 2 || got[0] != "Ring" {
		t.Fatalf("unexpected categories %v", got)
	}
}

func TestQuizResultsMapsPayload(t *testing.T) {
	svc := &stubProductService{recommended: []models.Product{{ID: "p1"}}}
	body := `{"occasion":"Wedding","budget":[10000,50000],"style":"classic","metal":"Gold","extra":true}`

	rec := serve(QuizResults(svc, nil), newRequest(http.MethodPost, "/api/quiz-results", body, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.quiz.Occasion != "Wedding" || svc.quiz.Metal != "Gold" || len(svc.quiz.Budget) != 2 || svc.quiz.Budget[1] != 50000 {
		t.Fatalf("unexpected quiz input %+v", svc.quiz)
	}
}

func TestQuizResultsRejectsMalformedBudget(t *testing.T) {
	svc := &stubProductService{}
	rec := serve(QuizResults(svc, nil), newRequest(http.MethodPost, "/api/quiz-results", `{"budget":[10000]}`, nil))

	body := assertError(t, rec, http.StatusBadRequest, string(pkgerrors.CodeValidation))
	if body.Error.Details["budget"] == nil {
		t.Fatalf("expected budget detail, got %+v", body.Error.Details)
	}
}
