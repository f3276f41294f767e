package shelves

// Order is a whitelisted shelf item sort. The values match the sort dropdown
// the stock view renders.
type Order string

const (
	OrderNameAsc  Order = "name-asc"
	OrderNameDesc Order = "name-desc"
	OrderQtyAsc   Order = "qty-asc"
	OrderQtyDesc  Order = "qty-desc"
	OrderTimeAsc  Order = "time-asc"
	OrderTimeDesc Order = "time-desc"
)

// DefaultOrder matches the dropdown's initial selection.
const DefaultOrder = OrderNameAsc

var orderClauses = map[Order]string{
	OrderNameAsc:  "si.product_name ASC",
	OrderNameDesc: "si.product_name DESC",
	OrderQtyAsc:   "si.amount ASC",
	OrderQtyDesc:  "si.amount DESC",
	OrderTimeAsc:  "si.received_at ASC",
	OrderTimeDesc: "si.received_at DESC",
}

// ParseOrder maps a query value to a known sort, falling back to the default
// for blank or unknown values. Only whitelisted clauses ever reach the SQL.
func ParseOrder(value string) Order {
	if _, ok := orderClauses[Order(value)]; ok {
		return Order(value)
	}
	return DefaultOrder
}

// clause returns the ORDER BY expression with a stable id tiebreak.
func (o Order) clause() string {
	expr, ok := orderClauses[o]
	if !ok {
		expr = orderClauses[DefaultOrder]
	}
	return expr + ", si.shelf_item_id ASC"
}
