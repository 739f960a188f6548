package stores

import (
	"context"
	"strings"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
)

type storeLister interface {
	List(ctx context.Context, f Filter) ([]models.Store, error)
}

// Service exposes the store locator.
type Service interface {
	Locate(ctx context.Context, city, pincode string) ([]models.Store, error)
}

type service struct {
	repo storeLister
}

func NewService(repo storeLister) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store repository is required")
	}
	return &service{repo: repo}, nil
}

// Locate returns stores matching city and pincode (ANDed when both are set),
// or every store when neither is.
func (s *service) Locate(ctx context.Context, city, pincode string) ([]models.Store, error) {
	stores, err := s.repo.List(ctx, Filter{City: strings.TrimSpace(city), Pincode: strings.TrimSpace(pincode)})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list stores")
	}
	if stores == nil {
		stores = []models.Store{}
	}
	return stores, nil
}
