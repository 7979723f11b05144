package domain

// OrderStatus represents the fulfillment state of an order.
type OrderStatus string

// List of possible order statuses
const (
	StatusPending        OrderStatus = "pending"
	StatusAccepted       OrderStatus = "accepted"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

var allowedStatuses = [...]OrderStatus{
	StatusPending, StatusAccepted, StatusPreparing,
	StatusOutForDelivery, StatusDelivered, StatusCancelled,
}

// statusRank orders the forward progression of an order.
var statusRank = map[OrderStatus]int{
	StatusPending:        0,
	StatusAccepted:       1,
	StatusPreparing:      2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// Valid checks if the OrderStatus is valid.
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransition reports whether an order may move from s to next.
// Statuses only progress forward, except that any non-terminal status may
// move to cancelled.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == StatusDelivered || s == StatusCancelled {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// ActiveStatuses returns the statuses of orders a vendor is currently
// working on.
func ActiveStatuses() []OrderStatus {
	return []OrderStatus{StatusAccepted, StatusPreparing, StatusOutForDelivery}
}
