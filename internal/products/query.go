package product

import (
	"regexp"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	"github.com/anonymous-namo-1/golden-era/pkg/enums"
)

// Clause is a single typed predicate over a product document. Each clause
// renders itself as a MongoDB filter fragment and can also be evaluated
// against a decoded product, which keeps the catalog queries runnable against
// an in-memory store.
type Clause interface {
	Document() bson.M
	Match(p *models.Product) bool
}

// Predicate is a conjunction of clauses. An empty predicate matches every
// product.
type Predicate []Clause

// Document renders the predicate as a MongoDB filter.
func (p Predicate) Document() bson.M {
	switch len(p) {
	case 0:
		return bson.M{}
	case 1:
		return p[0].Document()
	}
	parts := make(bson.A, 0, len(p))
	for _, clause := range p {
		parts = append(parts, clause.Document())
	}
	return bson.M{"$and": parts}
}

// Match reports whether every clause accepts the product.
func (p Predicate) Match(prod *models.Product) bool {
	for _, clause := range p {
		if !clause.Match(prod) {
			return false
		}
	}
	return true
}

// Builder accumulates clauses. Helpers skip inputs that are absent so callers
// can pass raw optional parameters straight through.
type Builder struct {
	clauses Predicate
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a clause unconditionally.
func (b *Builder) Add(c Clause) *Builder {
	if c != nil {
		b.clauses = append(b.clauses, c)
	}
	return b
}

// Equal requires a scalar field to equal value, when value is non-empty.
func (b *Builder) Equal(field, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Add(equals{field: field, value: value})
}

// Has requires an array field to contain value, when value is non-empty.
func (b *Builder) Has(field, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Add(hasElement{field: field, value: value})
}

// PriceBetween applies inclusive bounds for whichever of min and max is set.
func (b *Builder) PriceBetween(min, max *float64) *Builder {
	if min == nil && max == nil {
		return b
	}
	return b.Add(priceRange{min: min, max: max})
}

// Available requires the availability flag for mode. Unknown modes are ignored.
func (b *Builder) Available(mode enums.AvailabilityMode) *Builder {
	if !mode.IsValid() {
		return b
	}
	return b.Add(flagSet{field: "availability." + mode.String()})
}

// Search matches term as a case-insensitive substring of name, sku or
// category. When includeTags is set an exact tag match also qualifies.
func (b *Builder) Search(term string, includeTags bool) *Builder {
	if term == "" {
		return b
	}
	alternatives := anyOf{
		substring{field: "name", term: term},
		substring{field: "sku", term: term},
		substring{field: "category", term: term},
	}
	if includeTags {
		alternatives = append(alternatives, hasElement{field: "tags", value: term})
	}
	return b.Add(alternatives)
}

// Predicate returns the accumulated conjunction.
func (b *Builder) Predicate() Predicate {
	return slices.Clone(b.clauses)
}

func stringField(p *models.Product, field string) string {
	switch field {
	case "id":
		return p.ID
	case "name":
		return p.Name
	case "sku":
		return p.SKU
	case "category":
		return p.Category
	case "metal":
		return p.Metal
	case "purity":
		return p.Purity
	case "metalColor":
		return p.MetalColor
	case "gender":
		return p.Gender
	default:
		return ""
	}
}

func arrayField(p *models.Product, field string) []string {
	switch field {
	case "tags":
		return p.Tags
	case "occasion":
		return p.Occasion
	case "images":
		return p.Images
	default:
		return nil
	}
}

type equals struct {
	field string
	value string
}

func (c equals) Document() bson.M { return bson.M{c.field: c.value} }

func (c equals) Match(p *models.Product) bool { return stringField(p, c.field) == c.value }

type notEquals struct {
	field string
	value string
}

func (c notEquals) Document() bson.M { return bson.M{c.field: bson.M{"$ne": c.value}} }

func (c notEquals) Match(p *models.Product) bool { return stringField(p, c.field) != c.value }

// hasElement relies on MongoDB matching a scalar against any array element.
type hasElement struct {
	field string
	value string
}

func (c hasElement) Document() bson.M { return bson.M{c.field: c.value} }

func (c hasElement) Match(p *models.Product) bool {
	return slices.Contains(arrayField(p, c.field), c.value)
}

type hasAny struct {
	field  string
	values []string
}

func (c hasAny) Document() bson.M {
	values := make(bson.A, 0, len(c.values))
	for _, v := range c.values {
		values = append(values, v)
	}
	return bson.M{c.field: bson.M{"$in": values}}
}

func (c hasAny) Match(p *models.Product) bool {
	for _, have := range arrayField(p, c.field) {
		if slices.Contains(c.values, have) {
			return true
		}
	}
	return false
}

type priceRange struct {
	min *float64
	max *float64
}

func (c priceRange) Document() bson.M {
	bounds := bson.M{}
	if c.min != nil {
		bounds["$gte"] = *c.min
	}
	if c.max != nil {
		bounds["$lte"] = *c.max
	}
	return bson.M{"price": bounds}
}

func (c priceRange) Match(p *models.Product) bool {
	if c.min != nil && p.Price < *c.min {
		return false
	}
	if c.max != nil && p.Price > *c.max {
		return false
	}
	return true
}

type flagSet struct {
	field string
}

func (c flagSet) Document() bson.M { return bson.M{c.field: true} }

func (c flagSet) Match(p *models.Product) bool {
	switch c.field {
	case "availability.ship":
		return p.Availability.Ship
	case "availability.storePickup":
		return p.Availability.StorePickup
	default:
		return false
	}
}

// substring matches the literal term; regex metacharacters are escaped.
type substring struct {
	field string
	term  string
}

func (c substring) Document() bson.M {
	return bson.M{c.field: primitive.Regex{Pattern: regexp.QuoteMeta(c.term), Options: "i"}}
}

func (c substring) Match(p *models.Product) bool {
	return strings.Contains(strings.ToLower(stringField(p, c.field)), strings.ToLower(c.term))
}

type anyOf []Clause

func (c anyOf) Document() bson.M {
	parts := make(bson.A, 0, len(c))
	for _, clause := range c {
		parts = append(parts, clause.Document())
	}
	return bson.M{"$or": parts}
}

func (c anyOf) Match(p *models.Product) bool {
	for _, clause := range c {
		if clause.Match(p) {
			return true
		}
	}
	return false
}
