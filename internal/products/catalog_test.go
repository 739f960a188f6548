package product

import (
	"slices"
	"strings"
	"testing"

	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
)

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	input := `[
		{"id":"p1","name":"Gold Ring","category":"Ring","price":30000,"occasion":["Wedding"],"tags":["gold","ring"],
		 "availability":{"ship":true,"storePickup":false},"stoneDetails":{"type":"Diamond","carat":0.5}},
		{"id":"p2","name":"Pearl Necklace","category":"Necklace","price":45000}
	]`

	products, err := LoadCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(products) != 2 || products[0].ID != "p1" {
		t.Fatalf("unexpected products %+v", products)
	}
	if !slices.Equal(products[0].Occasion, []string{"Wedding"}) || !products[0].Availability.Ship {
		t.Fatalf("unexpected first product %+v", products[0])
	}
	stone := products[0].StoneDetails
	if stone == nil || stone.Carat == nil || *stone.Carat != 0.5 {
		t.Fatalf("expected carat 0.5, got %+v", stone)
	}
}

func TestLoadCatalogRejectsBadRows(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing id":   `[{"name":"No Id"}]`,
		"duplicate id": `[{"id":"p1"},{"id":"p1"}]`,
		"not an array": `{"id":"p1"}`,
	}
	for name, input := range cases {
		if _, err := LoadCatalog(strings.NewReader(input)); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestLoadCatalogEmptyArray(t *testing.T) {
	t.Parallel()

	products, err := LoadCatalog(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", products)
	}
}
