package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

type stubWishlistService struct {
	seen      map[string]bool
	removeErr error
	items     []models.WishlistItem
}

func (s *stubWishlistService) AddItem(_ context.Context, userID, productID string) (bool, error) {
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	key := userID + "|" + productID
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	return true, nil
}

func (s *stubWishlistService) RemoveItem(context.Context, string) error {
	return s.removeErr
}

func (s *stubWishlistService) List(context.Context, string, pagination.Params) ([]models.WishlistItem, error) {
	return s.items, nil
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	svc := &stubWishlistService{}
	body := `{"productId":"p1","userId":"u1"}`

	assertMessage(t, serve(WishlistAdd(svc, nil), newRequest(http.MethodPost, "/api/wishlist", body, nil)), "Added to wishlist")
	assertMessage(t, serve(WishlistAdd(svc, nil), newRequest(http.MethodPost, "/api/wishlist", body, nil)), "Already in wishlist")
}

func TestWishlistAddRequiresProduct(t *testing.T) {
	rec := serve(WishlistAdd(&stubWishlistService{}, nil), newRequest(http.MethodPost, "/api/wishlist", `{"userId":"u1"}`, nil))
	body := assertError(t, rec, http.StatusBadRequest, string(pkgerrors.CodeValidation))
	if body.Error.Details["productId"] != "is required" {
		t.Fatalf("unexpected details %+v", body.Error.Details)
	}
}

func TestWishlistRemoveNotFound(t *testing.T) {
	svc := &stubWishlistService{removeErr: pkgerrors.NotFound("Item")}
	req := newRequest(http.MethodDelete, "/api/wishlist/w9", "", map[string]string{"id": "w9"})
	assertError(t, serve(WishlistRemove(svc, nil), req), http.StatusNotFound, string(pkgerrors.CodeNotFound))
}

func TestWishlistListRejectsOversizedLimit(t *testing.T) {
	rec := serve(WishlistList(&stubWishlistService{}, nil), newRequest(http.MethodGet, "/api/wishlist?limit=101", "", nil))
	assertError(t, rec, http.StatusBadRequest, string(pkgerrors.CodeValidation))
}
