package wishlist

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

// WishlistRepository defines the persistence surface required by the service.
type WishlistRepository interface {
	Insert(ctx context.Context, item models.WishlistItem) (inserted bool, err error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
	ListByUser(ctx context.Context, userID string, page pagination.Params) ([]models.WishlistItem, error)
}

// Service exposes business rules for wishlist management.
type Service interface {
	// AddItem reports added=false when the product is already saved; that is
	// a successful outcome, not an error.
	AddItem(ctx context.Context, userID, productID string) (added bool, err error)
	RemoveItem(ctx context.Context, id string) error
	List(ctx context.Context, userID string, page pagination.Params) ([]models.WishlistItem, error)
}

type service struct {
	repo  WishlistRepository
	newID func() string
}

// NewService builds a wishlist service with the required dependencies.
func NewService(repo WishlistRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	return &service{repo: repo, newID: uuid.NewString}, nil
}

func userOrGuest(userID string) string {
	if trimmed := strings.TrimSpace(userID); trimmed != "" {
		return trimmed
	}
	return models.GuestUserID
}

func (s *service) AddItem(ctx context.Context, userID, productID string) (bool, error) {
	if strings.TrimSpace(productID) == "" {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "productId is required").
			WithDetails(map[string]string{"productId": "is required"})
	}
	added, err := s.repo.Insert(ctx, models.WishlistItem{
		ID:        s.newID(),
		ProductID: productID,
		UserID:    userOrGuest(userID),
	})
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add wishlist item")
	}
	return added, nil
}

func (s *service) RemoveItem(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove wishlist item")
	}
	if !deleted {
		return pkgerrors.NotFound("Item")
	}
	return nil
}

func (s *service) List(ctx context.Context, userID string, page pagination.Params) ([]models.WishlistItem, error) {
	if !page.Valid(pagination.MaxListLimit) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "page must be >= 1 and limit between 1 and 100")
	}
	items, err := s.repo.ListByUser(ctx, userOrGuest(userID), page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list wishlist")
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	return items, nil
}
