package cart

import (
	"context"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

// CartRepository defines the persistence surface required by the cart service.
type CartRepository interface {
	// AddOrIncrement inserts the line or atomically increments the quantity of
	// the existing (userId, productId, size) line. inserted reports which.
	AddOrIncrement(ctx context.Context, item models.CartItem) (inserted bool, err error)
	SetQuantity(ctx context.Context, id string, quantity int) (matched bool, err error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	ListByUser(ctx context.Context, userID string, page pagination.Params) ([]models.CartItem, error)
}
