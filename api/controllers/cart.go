package controllers

import (
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/anonymous-namo-1/golden-era/api/responses"
	"github.com/anonymous-namo-1/golden-era/api/validators"
	"github.com/anonymous-namo-1/golden-era/internal/cart"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

const (
	msgAddedToCart  = "Added to cart"
	msgCartUpdated  = "Cart updated"
	msgItemRemoved  = "Item removed"
	msgCartCleared  = "Cart cleared"
	defaultQuantity = 1
)

type addToCartPayload struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  *int    `json:"quantity" validate:"omitempty,min=1"`
	Size      *string `json:"size"`
	UserID    string  `json:"userId" validate:"omitempty,max=200"`
}

func CartList(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		page, err := parsePage(r, pagination.DefaultListLimit, pagination.MaxListLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		userID, err := queryUserID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.List(ctx, userID, page)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// CartAdd inserts a cart line or increments the quantity of the matching
// (userId, productId, size) line.
func CartAdd(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addToCartPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		quantity := defaultQuantity
		if payload.Quantity != nil {
			quantity = *payload.Quantity
		}

		result, err := svc.Add(ctx, cart.AddInput{
			ProductID: payload.ProductID,
			Quantity:  quantity,
			Size:      payload.Size,
			UserID:    payload.UserID,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if result.Created {
			responses.WriteMessage(w, msgAddedToCart)
			return
		}
		responses.WriteMessage(w, msgCartUpdated)
	}
}

// CartUpdate sets the quantity of a cart line from ?quantity=.
func CartUpdate(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}
		if strings.TrimSpace(r.URL.Query().Get("quantity")) == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"quantity": "is required"}))
			return
		}
		quantity, err := validators.ParseQueryInt(r, "quantity", 0, 1, math.MaxInt32)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.UpdateQuantity(ctx, id, quantity); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, msgCartUpdated)
	}
}

func CartRemove(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		if err := svc.Remove(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, msgItemRemoved)
	}
}

func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, err := queryUserID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.Clear(ctx, userID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, msgCartCleared)
	}
}
