package cart

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

// AddInput is a validated add-to-cart request.
type AddInput struct {
	ProductID string
	Quantity  int
	Size      *string
	UserID    string
}

// AddResult tells the caller whether a new line was created or an existing
// line was incremented. The stored line's id is not reported back.
type AddResult struct {
	Created bool
}

// Service exposes guest-identity cart operations.
type Service interface {
	Add(ctx context.Context, input AddInput) (AddResult, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context, userID string) error
	List(ctx context.Context, userID string, page pagination.Params) ([]models.CartItem, error)
}

type service struct {
	repo  CartRepository
	newID func() string
}

// NewService builds a cart service backed by the provided repository.
func NewService(repo CartRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repository is required")
	}
	return &service{repo: repo, newID: uuid.NewString}, nil
}

// UserOrGuest maps an absent identity to the shared guest user.
func UserOrGuest(userID string) string {
	if trimmed := strings.TrimSpace(userID); trimmed != "" {
		return trimmed
	}
	return models.GuestUserID
}

func (s *service) Add(ctx context.Context, input AddInput) (AddResult, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return AddResult{}, pkgerrors.New(pkgerrors.CodeValidation, "productId is required").
			WithDetails(map[string]string{"productId": "is required"})
	}
	if input.Quantity < 1 {
		return AddResult{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1").
			WithDetails(map[string]string{"quantity": "must be at least 1"})
	}

	item := models.CartItem{
		ID:        s.newID(),
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Size:      input.Size,
		UserID:    UserOrGuest(input.UserID),
	}
	created, err := s.repo.AddOrIncrement(ctx, item)
	if err != nil {
		return AddResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add to cart")
	}
	return AddResult{Created: created}, nil
}

func (s *service) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1").
			WithDetails(map[string]any{"quantity": quantity})
	}
	matched, err := s.repo.SetQuantity(ctx, id, quantity)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cart quantity")
	}
	if !matched {
		return pkgerrors.NotFound("Item")
	}
	return nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	if !deleted {
		return pkgerrors.NotFound("Item")
	}
	return nil
}

// Clear removes every line for the user. An empty cart is not an error.
func (s *service) Clear(ctx context.Context, userID string) error {
	if _, err := s.repo.DeleteByUser(ctx, UserOrGuest(userID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return nil
}

func (s *service) List(ctx context.Context, userID string, page pagination.Params) ([]models.CartItem, error) {
	if !page.Valid(pagination.MaxListLimit) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "page must be >= 1 and limit between 1 and 100")
	}
	items, err := s.repo.ListByUser(ctx, UserOrGuest(userID), page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart")
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}
