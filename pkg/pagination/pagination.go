package pagination

const (
	// DefaultPage is used when the caller omits page.
	DefaultPage = 1
	// DefaultLimit is the catalog page size when a limit is not provided.
	DefaultLimit = 12
	// MaxLimit caps how many catalog rows any listing can request.
	MaxLimit = 50

	// DefaultListLimit is the window for per-user lists (cart, wishlist, orders).
	DefaultListLimit = 100
	// MaxListLimit caps per-user list windows.
	MaxListLimit = 100
)

// Params holds page/limit pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Valid reports whether both bounds are within [1, maxLimit].
func (p Params) Valid(maxLimit int) bool {
	return p.Page >= 1 && p.Limit >= 1 && p.Limit <= maxLimit
}

// Skip is the number of rows before the requested page.
func (p Params) Skip() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	return int64(p.Page-1) * int64(p.Limit)
}

// Pages returns ceil(total/limit), or zero when limit is not positive.
func Pages(total int64, limit int) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}
