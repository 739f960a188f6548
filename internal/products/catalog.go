package product

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
)

// LoadCatalog decodes a JSON array of products and rejects rows without an id
// or with an id seen earlier in the file.
func LoadCatalog(r io.Reader) ([]models.Product, error) {
	var products []models.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode catalog")
	}

	seen := make(map[string]int, len(products))
	for i, p := range products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product at index %d has no id", i))
		}
		if prev, dup := seen[id]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("duplicate product id %q at index %d and %d", id, prev, i))
		}
		seen[id] = i
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
