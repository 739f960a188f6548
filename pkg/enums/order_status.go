package enums

// OrderStatus tracks where a storefront order sits in fulfilment. Orders are
// created pending; nothing in this service advances them.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}
