package controllers

import (
	"net/http"

	"github.com/anonymous-namo-1/golden-era/api/responses"
	"github.com/anonymous-namo-1/golden-era/api/validators"
	"github.com/anonymous-namo-1/golden-era/internal/orders"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
	"github.com/anonymous-namo-1/golden-era/pkg/types"
)

const msgOrderPlaced = "Order placed successfully"

type createOrderPayload struct {
	UserID        string            `json:"userId" validate:"omitempty,max=200"`
	Items         []map[string]any  `json:"items" validate:"required"`
	Total         *float64          `json:"total" validate:"required"`
	Address       map[string]string `json:"address" validate:"required"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
}

// CreateOrder records a checkout submission with status pending.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithUserID(ctx, orders.UserOrGuest(payload.UserID))
		}
		order, err := svc.Create(ctx, orders.CreateInput{
			UserID:        payload.UserID,
			Items:         payload.Items,
			Total:         *payload.Total,
			Address:       payload.Address,
			PaymentMethod: payload.PaymentMethod,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.OrderPlaced{Message: msgOrderPlaced, OrderID: order.ID})
	}
}

func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
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

		list, err := svc.ListByUser(ctx, userID, page)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
