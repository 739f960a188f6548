package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	"github.com/anonymous-namo-1/golden-era/pkg/enums"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

// OrderRepository defines the persistence surface required by the service.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) error
	ListByUser(ctx context.Context, userID string, page pagination.Params) ([]models.Order, error)
}

// CreateInput is a checkout submission. Items and Address are stored verbatim.
type CreateInput struct {
	UserID        string
	Items         []map[string]any
	Total         float64
	Address       map[string]string
	PaymentMethod string
}

// Service records orders. Payment is declared, never processed.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Order, error)
	ListByUser(ctx context.Context, userID string, page pagination.Params) ([]models.Order, error)
}

type service struct {
	repo  OrderRepository
	logg  *logger.Logger
	newID func() string
	now   func() time.Time
}

func NewService(repo OrderRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order repository is required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{repo: repo, logg: logg, newID: uuid.NewString, now: time.Now}, nil
}

// UserOrGuest falls back to the shared guest identity for blank ids.
func UserOrGuest(userID string) string {
	if trimmed := strings.TrimSpace(userID); trimmed != "" {
		return trimmed
	}
	return models.GuestUserID
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Order, error) {
	missing := map[string]string{}
	if input.Items == nil {
		missing["items"] = "is required"
	}
	if input.Address == nil {
		missing["address"] = "is required"
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		missing["paymentMethod"] = "is required"
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(missing)
	}

	order := models.Order{
		ID:            s.newID(),
		UserID:        UserOrGuest(input.UserID),
		Items:         input.Items,
		Total:         input.Total,
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
		Status:        enums.OrderStatusPending,
		CreatedAt:     models.NewTimestamp(s.now()),
	}

	if rec := Reconcile(order.Items, order.Total); !rec.Matches() {
		warnCtx := s.logg.WithFields(ctx, map[string]any{
			"order_id":       order.ID,
			"declared_total": rec.Declared.String(),
			"line_total":     rec.LineTotal.String(),
			"priced_items":   rec.Priced,
			"unpriced_items": rec.Unpriced,
		})
		s.logg.Warn(warnCtx, "order.total_mismatch")
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}
	return &order, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, page pagination.Params) ([]models.Order, error) {
	if !page.Valid(pagination.MaxListLimit) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "page must be >= 1 and limit between 1 and 100")
	}
	orders, err := s.repo.ListByUser(ctx, UserOrGuest(userID), page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
