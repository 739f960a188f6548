package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/anonymous-namo-1/golden-era/api/responses"
	"github.com/anonymous-namo-1/golden-era/api/validators"
	product "github.com/anonymous-namo-1/golden-era/internal/products"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

// ProductList returns the filtered, sorted and paged catalog.
func ProductList(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		page, err := parsePage(r, pagination.DefaultLimit, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		minPrice, err := validators.ParseQueryFloat(r, "minPrice")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryFloat(r, "maxPrice")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		q, err := queryStrings(r, "category", "metal", "purity", "metalColor", "occasion", "gender", "availability", "search", "sort")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := product.ListInput{
			Filters: product.ListFilters{
				Category:     q["category"],
				Metal:        q["metal"],
				Purity:       q["purity"],
				MetalColor:   q["metalColor"],
				Occasion:     q["occasion"],
				Gender:       q["gender"],
				MinPrice:     minPrice,
				MaxPrice:     maxPrice,
				Availability: q["availability"],
				Search:       q["search"],
			},
			Sort:       q["sort"],
			Pagination: page,
		}

		result, err := svc.List(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ProductDetail returns a single product by its id.
func ProductDetail(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		item, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// ProductRelated returns products sharing the source's category or a tag.
func ProductRelated(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		items, err := svc.Related(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// SearchSuggestions passes q through untrimmed; the length gate counts the
// raw value.
func SearchSuggestions(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		term, err := validators.QueryRaw(r, "q")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.Suggestions(ctx, term)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func Categories(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		categories, err := svc.Categories(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

type quizPayload struct {
	Occasion string    `json:"occasion"`
	Budget   []float64 `json:"budget" validate:"omitempty,len=2"`
	Style    string    `json:"style"`
	Metal    string    `json:"metal"`
}

// QuizResults recommends up to twelve products for a quiz answer set.
func QuizResults(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload quizPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.Recommend(ctx, product.QuizInput{
			Occasion: payload.Occasion,
			Budget:   payload.Budget,
			Style:    payload.Style,
			Metal:    payload.Metal,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}
